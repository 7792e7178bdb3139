package core

import "periphfake/mocks"

// Typed double accessors for test code. Each returns the double of the
// current generation so expectations can be set on it.

func (c *Context) FunctionMock() *mocks.Function {
	return lookup(c.doubles, Function, mocks.NewFunction)
}

func (c *Context) PrintMock() *mocks.Print {
	return lookup(c.doubles, Print, mocks.NewPrint)
}

func (c *Context) StreamMock() *mocks.Stream {
	return lookup(c.doubles, Stream, mocks.NewStream)
}

func (c *Context) SerialMock() *mocks.Serial {
	return lookup(c.doubles, Serial, mocks.NewSerial)
}

func (c *Context) SPIMock() *mocks.SPI {
	return lookup(c.doubles, SPI, mocks.NewSPI)
}

func (c *Context) WireMock() *mocks.Wire {
	return lookup(c.doubles, Wire, mocks.NewWire)
}
