//go:build !tinygo || !(arm || arm64)

package semihosting

import "unsafe"

// monitor stands in for the debugger on builds that cannot trap, such as
// unit tests on the development machine.
type monitor interface {
	service(op Op, arg unsafe.Pointer) uintptr
	serviceValue(op Op, value uintptr) uintptr
}

// attached is nil unless a test installs a monitor. With nothing attached
// every call returns the -1 word.
var attached monitor

func trap(op Op, arg unsafe.Pointer) uintptr {
	if attached == nil {
		return ^uintptr(0)
	}
	return attached.service(op, arg)
}

func trapValue(op Op, value uintptr) uintptr {
	if attached == nil {
		return ^uintptr(0)
	}
	return attached.serviceValue(op, value)
}
