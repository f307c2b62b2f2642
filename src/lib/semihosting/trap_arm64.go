//go:build tinygo && arm64

package semihosting

/*
// hlt #0xf000 with op in x0 and the argument in x1; the host answers in x0
// and may write any memory the argument points at.
static unsigned long semihosting_call(unsigned long op, unsigned long arg)
{
	register unsigned long x0 __asm__("x0") = op;
	register unsigned long x1 __asm__("x1") = arg;
	__asm__ volatile ("hlt #0xf000"
		: "+r" (x0)
		: "r" (x1)
		: "memory", "cc");
	return x0;
}
*/
import "C"

import (
	"runtime"
	"unsafe"
)

func trap(op Op, arg unsafe.Pointer) uintptr {
	r := trapValue(op, uintptr(arg))
	runtime.KeepAlive(arg)
	return r
}

func trapValue(op Op, value uintptr) uintptr {
	return uintptr(C.semihosting_call(C.ulong(op), C.ulong(value)))
}
