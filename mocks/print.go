package mocks

import (
	"github.com/stretchr/testify/mock"

	"periphfake/hal"
)

// printer implements hal.Print on top of the mock it is bound to. It is
// embedded by every stream-like double.
type printer struct {
	m *mock.Mock
}

func (p printer) Write(b []byte) (int, error) {
	ret := invoke(p.m, "Write", b)
	return result[int](ret, "Write", 0), result[error](ret, "Write", 1)
}

func (p printer) WriteByte(c byte) error {
	ret := invoke(p.m, "WriteByte", c)
	return result[error](ret, "WriteByte", 0)
}

// Print and Println record their operands as a single []any argument, so
// On("Print", mock.Anything) matches any call.
func (p printer) Print(a ...any) int {
	ret := invoke(p.m, "Print", a)
	return result[int](ret, "Print", 0)
}

func (p printer) Println(a ...any) int {
	ret := invoke(p.m, "Println", a)
	return result[int](ret, "Println", 0)
}

func (p printer) Printf(format string, a ...any) int {
	ret := invoke(p.m, "Printf", format, a)
	return result[int](ret, "Printf", 0)
}

func (p printer) Flush() {
	invoke(p.m, "Flush")
}

// Print is a double for hal.Print.
type Print struct {
	mock.Mock
	printer
}

var _ hal.Print = (*Print)(nil)

// NewPrint returns a Print double with no expectations.
func NewPrint() *Print {
	p := &Print{}
	p.printer = printer{m: &p.Mock}
	return p
}
