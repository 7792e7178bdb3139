package core

import "periphfake/hal"

// Instances holds the active instance of every category for one generation.
// Fields stay nil until the category is first asked for. A field cleared by
// a test is derived again from the same double on the next lookup.
type Instances struct {
	Function hal.Function
	Print    hal.Print
	Stream   hal.Stream
	Serial   hal.Serial
	SPI      hal.SPI
	Wire     hal.Wire
}

// Instance returns the active instance of cat, creating its double on first
// use. Repeated calls within one generation return the same value.
func (c *Context) Instance(cat Category) any {
	switch cat {
	case Function:
		return c.Function()
	case Print:
		return c.Print()
	case Stream:
		return c.Stream()
	case Serial:
		return c.Serial()
	case SPI:
		return c.SPI()
	case Wire:
		return c.Wire()
	}
	panic("core: unknown category " + cat.String())
}

// Double returns the double behind cat as an untyped value.
func (c *Context) Double(cat Category) any {
	if !cat.valid() {
		panic("core: unknown category " + cat.String())
	}
	return c.doubles.create(cat)
}

func (c *Context) Function() hal.Function {
	if c.Instances.Function == nil {
		c.Instances.Function = c.FunctionMock()
	}
	return c.Instances.Function
}

func (c *Context) Print() hal.Print {
	if c.Instances.Print == nil {
		c.Instances.Print = c.PrintMock()
	}
	return c.Instances.Print
}

func (c *Context) Stream() hal.Stream {
	if c.Instances.Stream == nil {
		c.Instances.Stream = c.StreamMock()
	}
	return c.Instances.Stream
}

func (c *Context) Serial() hal.Serial {
	if c.Instances.Serial == nil {
		c.Instances.Serial = c.SerialMock()
	}
	return c.Instances.Serial
}

func (c *Context) SPI() hal.SPI {
	if c.Instances.SPI == nil {
		c.Instances.SPI = c.SPIMock()
	}
	return c.Instances.SPI
}

func (c *Context) Wire() hal.Wire {
	if c.Instances.Wire == nil {
		c.Instances.Wire = c.WireMock()
	}
	return c.Instances.Wire
}
