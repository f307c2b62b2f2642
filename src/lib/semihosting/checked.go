package semihosting

// Wrappers returning Go errors. They make exactly one semihosting call
// (plus SYS_ERRNO on failure) and keep the raw function's semantics.

func OpenFile(path string, mode OpenMode) (int, error) {
	h := Open(path, mode)
	if err := Check(OpOpen, h); err != nil {
		return -1, err
	}
	return h, nil
}

func CloseFile(handle int) error {
	return Check(OpClose, Close(handle))
}

// CmdlineMax is the buffer Cmdline offers the host, terminator included.
const CmdlineMax = 256

// Cmdline returns the command line the host started the target with. Hosts
// fail SYS_GET_CMDLINE rather than truncate, so a command line of
// CmdlineMax bytes or more comes back as an *Error; use GetCmdline with a
// larger buffer for those.
func Cmdline() (string, error) {
	buf := make([]byte, CmdlineMax)
	n, status := getCmdline(buf)
	if err := Check(OpGetCmdline, status); err != nil {
		return "", err
	}
	if n > len(buf) {
		n = len(buf)
	}
	return string(trimNUL(buf[:n])), nil
}

// TempName returns the host's temporary file name for id.
func TempName(id int) (string, error) {
	buf := make([]byte, 256)
	if err := Check(OpTmpNam, TmpNam(buf, id)); err != nil {
		return "", err
	}
	return string(trimNUL(buf)), nil
}

func Heap() (HeapInfoBlock, error) {
	var b HeapInfoBlock
	if err := Check(OpHeapInfo, HeapInfo(&b)); err != nil {
		return HeapInfoBlock{}, err
	}
	return b, nil
}

// ElapsedTicks returns the 64-bit tick count; see TickFreq for its rate.
func ElapsedTicks() (uint64, error) {
	low, high, status := Elapsed()
	if err := Check(OpElapsed, status); err != nil {
		return 0, err
	}
	return uint64(high)<<32 | uint64(low), nil
}

func trimNUL(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}
