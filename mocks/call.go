// Package mocks contains the call-recording doubles that stand in for the
// peripherals of package hal.
//
// Every double embeds testify's mock.Mock, so expectations are set with On
// and checked with AssertCalled / AssertNumberOfCalls. A method that has no
// live expectation is still recorded and answers with zero values, which is
// what an unconfigured peripheral returns. A return value may be given as a
// func() T to compute it on every call.
package mocks

import (
	"fmt"

	"github.com/stretchr/testify/mock"
)

// invoke records a call to method and returns its stubbed results. When
// nothing is stubbed for method a single-use expectation with no return
// values is registered first, so the call lands in m.Calls like any other.
func invoke(m *mock.Mock, method string, args ...any) mock.Arguments {
	if !stubbed(m, method) {
		m.On(method, anything(len(args))...).Once()
	}
	return m.MethodCalled(method, args...)
}

// stubbed reports whether method has an expectation that can still match.
// ExpectedCalls is read without the mock's lock; doubles are driven from a
// single goroutine.
func stubbed(m *mock.Mock, method string) bool {
	for _, call := range m.ExpectedCalls {
		if call.Method == method && call.Repeatability > -1 {
			return true
		}
	}
	return false
}

func anything(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = mock.Anything
	}
	return args
}

// result extracts return value i of method. Missing values are zero.
func result[T any](ret mock.Arguments, method string, i int) T {
	var zero T
	if i >= len(ret) || ret.Get(i) == nil {
		return zero
	}
	switch v := ret.Get(i).(type) {
	case T:
		return v
	case func() T:
		return v()
	}
	panic(fmt.Sprintf("mocks: %s return value %d is %T, want %T", method, i, ret.Get(i), zero))
}
