package core

import "strconv"

// Category identifies one kind of peripheral that has a double.
// The set is closed; each category maps to exactly one mocks type.
type Category uint8

const (
	Function Category = iota // board functions (pins, time, tone, ...)
	Print                    // generic text/byte output
	Stream                   // generic bidirectional byte stream
	Serial                   // UART, is-a Stream
	SPI                      // SPI bus
	Wire                     // I2C controller, is-a Stream

	numCategories
)

var categoryNames = [numCategories]string{
	Function: "Function",
	Print:    "Print",
	Stream:   "Stream",
	Serial:   "Serial",
	SPI:      "SPI",
	Wire:     "Wire",
}

func (c Category) String() string {
	if !c.valid() {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

func (c Category) valid() bool {
	return c < numCategories
}

// Categories returns every category in registration order
func Categories() []Category {
	all := make([]Category, numCategories)
	for i := range all {
		all[i] = Category(i)
	}
	return all
}
