// Package semihosting issues ARM semihosting calls to the debugger or
// emulator attached to the target. Each function packs its argument block,
// traps into the host with (op, argument) in the first two registers and
// returns the host's result. Nothing is buffered, retried or tracked between
// calls; failures come back as the protocol's sentinel values (see Op.Failed
// and Check).
//
// A debugger (or QEMU with -semihosting) must be attached before the first
// call, otherwise the trap instruction faults the target.
package semihosting

import (
	"unsafe"
)

// Argument blocks. Field order and width are the host's wire format: every
// field is one machine word, pointers included.

type openArgs struct {
	path   unsafe.Pointer
	mode   uintptr
	length uintptr
}

type transferArgs struct { // SYS_WRITE, SYS_READ
	handle uintptr
	buf    unsafe.Pointer
	count  uintptr
}

type seekArgs struct {
	handle uintptr
	pos    uintptr
}

type tmpNamArgs struct {
	buf  unsafe.Pointer
	id   uintptr
	size uintptr
}

type pathArgs struct { // SYS_REMOVE, SYS_SYSTEM
	path   unsafe.Pointer
	length uintptr
}

type renameArgs struct {
	oldPath   unsafe.Pointer
	oldLength uintptr
	newPath   unsafe.Pointer
	newLength uintptr
}

type cmdlineArgs struct {
	buf  unsafe.Pointer
	size uintptr // the host replaces this with the length of the command line
}

type heapInfoArgs struct {
	block unsafe.Pointer
}

// elapsedArgs is two words on A32 and one 64-bit word on A64; both are
// the same eight little-endian bytes.
type elapsedArgs struct {
	low  uint32
	high uint32
}

type exitArgs struct {
	reason uintptr
	code   uintptr
}

// HeapInfoBlock is filled in by SYS_HEAPINFO. The host may leave any field
// zero when it does not know the value.
type HeapInfoBlock struct {
	HeapBase   uintptr
	HeapLimit  uintptr
	StackBase  uintptr
	StackLimit uintptr
}

// cstring returns s as a NUL terminated byte slice.
func cstring(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

func bufPtr(buf []byte) unsafe.Pointer {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&buf[0])
}

// Open opens path on the host, returning a handle or -1.
func Open(path string, mode OpenMode) int {
	p := cstring(path)
	args := openArgs{path: bufPtr(p), mode: uintptr(mode), length: uintptr(len(path))}
	return int(trap(OpOpen, unsafe.Pointer(&args)))
}

// Close returns 0 on success and -1 on error.
func Close(handle int) int {
	h := uintptr(handle)
	return int(trap(OpClose, unsafe.Pointer(&h)))
}

// WriteC writes one byte to the debug channel.
func WriteC(c byte) {
	trap(OpWriteC, unsafe.Pointer(&c))
}

// Write0 writes s to the debug channel. The host stops at the first NUL.
func Write0(s string) {
	p := cstring(s)
	trap(OpWrite0, bufPtr(p))
}

// Write writes buf to handle and returns the number of bytes written. The
// host reports the number of bytes it did not write.
func Write(handle int, buf []byte) int {
	args := transferArgs{handle: uintptr(handle), buf: bufPtr(buf), count: uintptr(len(buf))}
	return len(buf) - int(trap(OpWrite, unsafe.Pointer(&args)))
}

// Read reads up to len(buf) bytes from handle and returns the number read.
// The host reports the number of bytes it did not fill.
func Read(handle int, buf []byte) int {
	args := transferArgs{handle: uintptr(handle), buf: bufPtr(buf), count: uintptr(len(buf))}
	return len(buf) - int(trap(OpRead, unsafe.Pointer(&args)))
}

// ReadC blocks until a byte is read from the host console.
func ReadC() byte {
	return byte(trap(OpReadC, nil))
}

// IsError returns 0 if status (the result of another call) is not an error.
func IsError(status int) int {
	s := uintptr(status)
	return int(trap(OpIsError, unsafe.Pointer(&s)))
}

// IsTTY returns 1 for an interactive handle, 0 for a file and anything
// else on error.
func IsTTY(handle int) int {
	h := uintptr(handle)
	return int(trap(OpIsTTY, unsafe.Pointer(&h)))
}

// Seek moves handle to the absolute offset pos. 0 on success, -1 on error.
func Seek(handle int, pos int) int {
	args := seekArgs{handle: uintptr(handle), pos: uintptr(pos)}
	return int(trap(OpSeek, unsafe.Pointer(&args)))
}

// FileLen returns the length of the file behind handle, or -1.
func FileLen(handle int) int {
	h := uintptr(handle)
	return int(trap(OpFileLen, unsafe.Pointer(&h)))
}

// TmpNam asks the host for a temporary file name for id (0-255), written
// NUL terminated into buf. 0 on success, -1 on error.
func TmpNam(buf []byte, id int) int {
	args := tmpNamArgs{buf: bufPtr(buf), id: uintptr(id), size: uintptr(len(buf))}
	return int(trap(OpTmpNam, unsafe.Pointer(&args)))
}

// Remove deletes path on the host. 0 on success, otherwise a host error code.
func Remove(path string) int {
	p := cstring(path)
	args := pathArgs{path: bufPtr(p), length: uintptr(len(path))}
	return int(trap(OpRemove, unsafe.Pointer(&args)))
}

// Rename returns 0 on success, otherwise a host error code.
func Rename(oldPath, newPath string) int {
	o, n := cstring(oldPath), cstring(newPath)
	args := renameArgs{
		oldPath:   bufPtr(o),
		oldLength: uintptr(len(oldPath)),
		newPath:   bufPtr(n),
		newLength: uintptr(len(newPath)),
	}
	return int(trap(OpRename, unsafe.Pointer(&args)))
}

// Clock returns centiseconds since execution started, or -1.
func Clock() int {
	return int(trap(OpClock, nil))
}

// Time returns seconds since 00:00 January 1, 1970 on the host.
func Time() uint {
	return uint(trap(OpTime, nil))
}

// System runs command in the host's shell and returns its status.
func System(command string) int {
	c := cstring(command)
	args := pathArgs{path: bufPtr(c), length: uintptr(len(command))}
	return int(trap(OpSystem, unsafe.Pointer(&args)))
}

// Errno returns the host's errno from the last failed call.
func Errno() int {
	return int(trap(OpErrno, nil))
}

// GetCmdline copies the command line the target was started with into buf.
// 0 on success.
func GetCmdline(buf []byte) int {
	_, status := getCmdline(buf)
	return status
}

func getCmdline(buf []byte) (int, int) {
	args := cmdlineArgs{buf: bufPtr(buf), size: uintptr(len(buf))}
	status := int(trap(OpGetCmdline, unsafe.Pointer(&args)))
	return int(args.size), status
}

// HeapInfo asks the host to fill block. The host receives a pointer to a
// word holding the address of block.
func HeapInfo(block *HeapInfoBlock) int {
	args := heapInfoArgs{block: unsafe.Pointer(block)}
	return int(trap(OpHeapInfo, unsafe.Pointer(&args)))
}

// Elapsed returns the target tick count as two 32-bit halves. status is 0
// on success and -1 on error. The host writes the count into the block
// itself, so no pointers to the halves are passed.
func Elapsed() (low, high uint32, status int) {
	var args elapsedArgs
	status = int(trap(OpElapsed, unsafe.Pointer(&args)))
	return args.low, args.high, status
}

// TickFreq returns the tick rate of Elapsed in ticks per second, or -1.
func TickFreq() int {
	return int(trap(OpTickFreq, nil))
}

// Exit reports reason (and code, on 64-bit targets) to the host, which
// normally terminates the session. 32-bit hosts only receive the reason.
func Exit(reason StopCode, code int) {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		args := exitArgs{reason: uintptr(reason), code: uintptr(code)}
		trap(OpExit, unsafe.Pointer(&args))
		return
	}
	trapValue(OpExit, uintptr(reason))
}
