// Package hal defines the peripheral API that firmware is written against.
//
// Firmware only sees these interfaces. On hardware they are backed by the
// target's drivers; on a development host package board backs them with the
// doubles held by package core.
package hal
