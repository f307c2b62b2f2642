package semihosting

// OpenMode selects the fopen() mode the host uses for SYS_OPEN. The numeric
// values are fixed by the protocol.
type OpenMode uintptr

const (
	ModeR   OpenMode = iota // "r"
	ModeRB                  // "rb"
	ModeRP                  // "r+"
	ModeRPB                 // "r+b"
	ModeW                   // "w"
	ModeWB                  // "wb"
	ModeWP                  // "w+"
	ModeWPB                 // "w+b"
	ModeA                   // "a"
	ModeAB                  // "ab"
	ModeAP                  // "a+"
	ModeAPB                 // "a+b"
)

var modeNames = [...]string{"r", "rb", "r+", "r+b", "w", "wb", "w+", "w+b", "a", "ab", "a+", "a+b"}

// ConsolePath is the special file name of the host console. Opened with
// StdoutMode it is the host's stdout, with StdinMode its stdin.
const ConsolePath = ":tt"

const (
	StdoutMode = ModeW
	StdinMode  = ModeR
)

func (m OpenMode) Valid() bool {
	return m <= ModeAPB
}

func (m OpenMode) String() string {
	if !m.Valid() {
		return "invalid"
	}
	return modeNames[m]
}

// StopCode is the reason passed to SYS_EXIT.
type StopCode uintptr

const (
	StopBreakpoint          StopCode = 0x20020
	StopWatchpoint          StopCode = 0x20021
	StopStepComplete        StopCode = 0x20022
	StopRuntimeErrorUnknown StopCode = 0x20023
	StopInternalError       StopCode = 0x20024
	StopUserInterruption    StopCode = 0x20025
	StopApplicationExit     StopCode = 0x20026
	StopStackOverflow       StopCode = 0x20027
	StopDivisionByZero      StopCode = 0x20028
	StopOSSpecific          StopCode = 0x20029
)
