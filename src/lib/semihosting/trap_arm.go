//go:build tinygo && arm

package semihosting

import (
	"runtime"
	"unsafe"

	"github.com/tinygo-org/tinygo/src/device/arm"
)

// trap issues bkpt 0xab with op in r0 and arg in r1; the result comes back
// in r0.
func trap(op Op, arg unsafe.Pointer) uintptr {
	r := arm.SemihostingCall(int(op), uintptr(arg))
	runtime.KeepAlive(arg)
	return uintptr(r)
}

func trapValue(op Op, value uintptr) uintptr {
	return uintptr(arm.SemihostingCall(int(op), value))
}
