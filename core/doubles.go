package core

import (
	"github.com/stretchr/testify/mock"

	"periphfake/mocks"
)

// double is what every mocks type provides through its embedded mock.Mock
type double interface {
	Test(t mock.TestingT)
	AssertExpectations(t mock.TestingT) bool
}

// bank owns the doubles of one generation, at most one per category.
type bank struct {
	slots [numCategories]double
	t     mock.TestingT // failure sink for doubles created from now on
}

func newBank(t mock.TestingT) *bank {
	return &bank{t: t}
}

// peek returns the double for cat without creating it
func (b *bank) peek(cat Category) any {
	if d := b.slots[cat]; d != nil {
		return d
	}
	return nil
}

func (b *bank) adopt(cat Category, d double) {
	if b.t != nil {
		d.Test(b.t)
	}
	b.slots[cat] = d
	debugf("created %s double", cat)
}

// bind routes failures of existing and future doubles to t. A nil t restores
// testify's default of panicking.
func (b *bank) bind(t mock.TestingT) {
	b.t = t
	for _, d := range b.slots {
		if d != nil {
			d.Test(t)
		}
	}
}

func (b *bank) assertExpectations(t mock.TestingT) {
	for _, d := range b.slots {
		if d != nil {
			d.AssertExpectations(t)
		}
	}
}

// lookup returns the double for cat, creating it on first use.
func lookup[D double](b *bank, cat Category, create func() D) D {
	if d, ok := b.slots[cat].(D); ok {
		return d
	}
	d := create()
	b.adopt(cat, d)
	return d
}

// create returns the double for cat, constructing it the first time the
// category is asked for in this generation.
func (b *bank) create(cat Category) double {
	switch cat {
	case Function:
		return lookup(b, cat, mocks.NewFunction)
	case Print:
		return lookup(b, cat, mocks.NewPrint)
	case Stream:
		return lookup(b, cat, mocks.NewStream)
	case Serial:
		return lookup(b, cat, mocks.NewSerial)
	case SPI:
		return lookup(b, cat, mocks.NewSPI)
	case Wire:
		return lookup(b, cat, mocks.NewWire)
	}
	panic("core: unknown category " + cat.String())
}
