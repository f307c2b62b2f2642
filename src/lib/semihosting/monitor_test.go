package semihosting

import (
	"testing"
	"unsafe"
)

// fakeHost is an in-memory debug monitor. It reads the argument blocks the
// way a host would, straight out of target memory.
type fakeHost struct {
	files   map[string][]byte
	handles map[int]*fakeHandle
	next    int
	errno   int

	debug  []byte // SYS_WRITEC and SYS_WRITE0
	stdout []byte // writes to ":tt"
	input  []byte // SYS_READC and reads from ":tt"

	maxTransfer int // 0 means no limit
	clock       int
	epoch       uint
	tickFreq    int
	ticks       uint64
	cmdline     string
	heap        HeapInfoBlock
	commands    []string
	exits       [][2]uintptr
	calls       []Op
}

type fakeHandle struct {
	name    string
	mode    OpenMode
	pos     int
	console bool
}

func attachFake(t *testing.T) *fakeHost {
	t.Helper()
	h := &fakeHost{
		files:    map[string][]byte{},
		handles:  map[int]*fakeHandle{},
		next:     1,
		epoch:    1700000000,
		tickFreq: 1000000,
	}
	attached = h
	t.Cleanup(func() { attached = nil })
	return h
}

func word(v int) uintptr {
	return uintptr(v)
}

func (h *fakeHost) fail(errno int) uintptr {
	h.errno = errno
	return word(-1)
}

// hostString reads a path argument, which must be NUL terminated right
// after length bytes.
func hostString(p unsafe.Pointer, length uintptr) (string, bool) {
	if p == nil {
		return "", false
	}
	if *(*byte)(unsafe.Add(p, length)) != 0 {
		return "", false
	}
	return string(unsafe.Slice((*byte)(p), length)), true
}

func hostCString(p unsafe.Pointer) string {
	var b []byte
	for i := uintptr(0); ; i++ {
		c := *(*byte)(unsafe.Add(p, i))
		if c == 0 {
			return string(b)
		}
		b = append(b, c)
	}
}

func readable(m OpenMode) bool {
	switch m {
	case ModeR, ModeRB, ModeRP, ModeRPB, ModeWP, ModeWPB, ModeAP, ModeAPB:
		return true
	}
	return false
}

func writable(m OpenMode) bool {
	return m != ModeR && m != ModeRB
}

func (h *fakeHost) service(op Op, arg unsafe.Pointer) uintptr {
	h.calls = append(h.calls, op)
	switch op {
	case OpOpen:
		a := (*openArgs)(arg)
		name, ok := hostString(a.path, a.length)
		if !ok || !OpenMode(a.mode).Valid() {
			return h.fail(int(EINVAL))
		}
		return h.open(name, OpenMode(a.mode))
	case OpClose:
		handle := int(*(*uintptr)(arg))
		if _, ok := h.handles[handle]; !ok {
			return h.fail(int(EBADF))
		}
		delete(h.handles, handle)
		return 0
	case OpWriteC:
		h.debug = append(h.debug, *(*byte)(arg))
		return 0
	case OpWrite0:
		h.debug = append(h.debug, hostCString(arg)...)
		return 0
	case OpWrite:
		a := (*transferArgs)(arg)
		return h.write(int(a.handle), unsafe.Slice((*byte)(a.buf), a.count))
	case OpRead:
		a := (*transferArgs)(arg)
		return h.read(int(a.handle), unsafe.Slice((*byte)(a.buf), a.count))
	case OpReadC:
		if len(h.input) == 0 {
			return 0
		}
		c := h.input[0]
		h.input = h.input[1:]
		return uintptr(c)
	case OpIsError:
		if int(*(*uintptr)(arg)) < 0 {
			return 1
		}
		return 0
	case OpIsTTY:
		fh, ok := h.handles[int(*(*uintptr)(arg))]
		if !ok {
			return h.fail(int(EBADF))
		}
		if fh.console {
			return 1
		}
		return 0
	case OpSeek:
		a := (*seekArgs)(arg)
		fh, ok := h.handles[int(a.handle)]
		if !ok || fh.console {
			return h.fail(int(EBADF))
		}
		if int(a.pos) < 0 {
			return h.fail(int(EINVAL))
		}
		fh.pos = int(a.pos)
		return 0
	case OpFileLen:
		fh, ok := h.handles[int(*(*uintptr)(arg))]
		if !ok || fh.console {
			return h.fail(int(EBADF))
		}
		return word(len(h.files[fh.name]))
	case OpTmpNam:
		a := (*tmpNamArgs)(arg)
		if a.id > 255 {
			return h.fail(int(EINVAL))
		}
		name := "/tmp/esem" + string(rune('a'+a.id%26))
		if uintptr(len(name)+1) > a.size {
			return h.fail(int(EINVAL))
		}
		copy(unsafe.Slice((*byte)(a.buf), a.size), name+"\x00")
		return 0
	case OpRemove:
		a := (*pathArgs)(arg)
		name, ok := hostString(a.path, a.length)
		if !ok {
			return h.fail(int(EINVAL))
		}
		if _, ok := h.files[name]; !ok {
			return h.fail(int(ENOENT))
		}
		delete(h.files, name)
		return 0
	case OpRename:
		a := (*renameArgs)(arg)
		from, ok1 := hostString(a.oldPath, a.oldLength)
		to, ok2 := hostString(a.newPath, a.newLength)
		if !ok1 || !ok2 {
			return h.fail(int(EINVAL))
		}
		data, ok := h.files[from]
		if !ok {
			return h.fail(int(ENOENT))
		}
		delete(h.files, from)
		h.files[to] = data
		return 0
	case OpClock:
		return word(h.clock)
	case OpTime:
		return uintptr(h.epoch)
	case OpSystem:
		a := (*pathArgs)(arg)
		cmd, ok := hostString(a.path, a.length)
		if !ok {
			return h.fail(int(EINVAL))
		}
		h.commands = append(h.commands, cmd)
		return 0
	case OpErrno:
		return word(h.errno)
	case OpGetCmdline:
		a := (*cmdlineArgs)(arg)
		if uintptr(len(h.cmdline)+1) > a.size {
			return h.fail(int(EINVAL))
		}
		copy(unsafe.Slice((*byte)(a.buf), a.size), h.cmdline+"\x00")
		a.size = uintptr(len(h.cmdline))
		return 0
	case OpHeapInfo:
		a := (*heapInfoArgs)(arg)
		*(*HeapInfoBlock)(a.block) = h.heap
		return 0
	case OpElapsed:
		a := (*elapsedArgs)(arg)
		a.low, a.high = uint32(h.ticks), uint32(h.ticks>>32)
		return 0
	case OpTickFreq:
		return word(h.tickFreq)
	case OpExit:
		a := (*exitArgs)(arg)
		h.exits = append(h.exits, [2]uintptr{a.reason, a.code})
		return 0
	}
	return h.fail(int(EINVAL))
}

func (h *fakeHost) serviceValue(op Op, value uintptr) uintptr {
	h.calls = append(h.calls, op)
	if op == OpExit {
		h.exits = append(h.exits, [2]uintptr{value, 0})
		return 0
	}
	return h.fail(int(EINVAL))
}

func (h *fakeHost) open(name string, mode OpenMode) uintptr {
	fh := &fakeHandle{name: name, mode: mode}
	switch {
	case name == ConsolePath:
		fh.console = true
	case mode <= ModeRPB:
		if _, ok := h.files[name]; !ok {
			return h.fail(int(ENOENT))
		}
	case mode <= ModeWPB:
		h.files[name] = []byte{}
	default:
		h.files[name] = append([]byte{}, h.files[name]...)
		fh.pos = len(h.files[name])
	}
	handle := h.next
	h.next++
	h.handles[handle] = fh
	return word(handle)
}

// write and read return the number of bytes not transferred.
func (h *fakeHost) write(handle int, src []byte) uintptr {
	fh, ok := h.handles[handle]
	if !ok || !writable(fh.mode) {
		h.errno = int(EBADF)
		return word(len(src))
	}
	n := len(src)
	if h.maxTransfer > 0 && n > h.maxTransfer {
		n = h.maxTransfer
	}
	if fh.console {
		h.stdout = append(h.stdout, src[:n]...)
		return word(len(src) - n)
	}
	data := h.files[fh.name]
	if fh.mode >= ModeA {
		fh.pos = len(data)
	}
	for len(data) < fh.pos+n {
		data = append(data, 0)
	}
	copy(data[fh.pos:], src[:n])
	fh.pos += n
	h.files[fh.name] = data
	return word(len(src) - n)
}

func (h *fakeHost) read(handle int, dst []byte) uintptr {
	fh, ok := h.handles[handle]
	if !ok || !readable(fh.mode) && !fh.console {
		h.errno = int(EBADF)
		return word(len(dst))
	}
	if fh.console {
		n := copy(dst, h.input)
		h.input = h.input[n:]
		return word(len(dst) - n)
	}
	data := h.files[fh.name]
	n := 0
	if fh.pos < len(data) {
		n = copy(dst, data[fh.pos:])
	}
	fh.pos += n
	return word(len(dst) - n)
}
