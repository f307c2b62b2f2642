package semihosting

import "strconv"

// Op is the semihosting operation number placed in the first register.
type Op uintptr

const (
	OpOpen       Op = 0x01
	OpClose      Op = 0x02
	OpWriteC     Op = 0x03
	OpWrite0     Op = 0x04
	OpWrite      Op = 0x05
	OpRead       Op = 0x06
	OpReadC      Op = 0x07
	OpIsError    Op = 0x08
	OpIsTTY      Op = 0x09
	OpSeek       Op = 0x0A
	OpFileLen    Op = 0x0C
	OpTmpNam     Op = 0x0D
	OpRemove     Op = 0x0E
	OpRename     Op = 0x0F
	OpClock      Op = 0x10
	OpTime       Op = 0x11
	OpSystem     Op = 0x12
	OpErrno      Op = 0x13
	OpGetCmdline Op = 0x15
	OpHeapInfo   Op = 0x16
	OpExit       Op = 0x18
	OpElapsed    Op = 0x30
	OpTickFreq   Op = 0x31
)

var opNames = map[Op]string{
	OpOpen:       "SYS_OPEN",
	OpClose:      "SYS_CLOSE",
	OpWriteC:     "SYS_WRITEC",
	OpWrite0:     "SYS_WRITE0",
	OpWrite:      "SYS_WRITE",
	OpRead:       "SYS_READ",
	OpReadC:      "SYS_READC",
	OpIsError:    "SYS_ISERROR",
	OpIsTTY:      "SYS_ISTTY",
	OpSeek:       "SYS_SEEK",
	OpFileLen:    "SYS_FLEN",
	OpTmpNam:     "SYS_TMPNAM",
	OpRemove:     "SYS_REMOVE",
	OpRename:     "SYS_RENAME",
	OpClock:      "SYS_CLOCK",
	OpTime:       "SYS_TIME",
	OpSystem:     "SYS_SYSTEM",
	OpErrno:      "SYS_ERRNO",
	OpGetCmdline: "SYS_GET_CMDLINE",
	OpHeapInfo:   "SYS_HEAPINFO",
	OpExit:       "SYS_EXIT",
	OpElapsed:    "SYS_ELAPSED",
	OpTickFreq:   "SYS_TICKFREQ",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "SYS_0x" + strconv.FormatUint(uint64(op), 16)
}

// Failed reports whether status, as returned by the function for op, is
// one of that operation's failure values. Transfer counts from Read and
// Write never fail here; a short count is the caller's business.
func (op Op) Failed(status int) bool {
	switch op {
	case OpOpen, OpClose, OpSeek, OpFileLen, OpClock, OpElapsed, OpTickFreq:
		return status == -1
	case OpIsTTY:
		return status != 0 && status != 1
	case OpTmpNam, OpRemove, OpRename, OpSystem, OpGetCmdline, OpHeapInfo:
		return status != 0
	}
	return false
}
