// Package fixture drives the stream-like doubles of package mocks from
// plain bytes: RX feeds what the firmware reads, TX collects what it writes.
package fixture

import (
	"github.com/stretchr/testify/mock"
)

// Stub is the part of testify's mock.Mock the fixtures use. Every double in
// package mocks satisfies it.
type Stub interface {
	On(methodName string, arguments ...any) *mock.Call
}
