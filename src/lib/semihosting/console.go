package semihosting

import "fmt"

// Console is implemented by anything that can take log lines.
type Console interface {
	Logf(string, ...interface{})
}

// DebugConsole logs through the debug channel (SYS_WRITE0/SYS_WRITEC). It
// needs no open handle, so it works before anything else is set up.
type DebugConsole struct {
	// CRLF sends "\r\n" for every "\n", for hosts that want a raw terminal.
	CRLF bool
}

var _ Console = &DebugConsole{}

// Logf formats like fmt.Sprintf and adds a newline if format lacks one.
func (c *DebugConsole) Logf(format string, values ...interface{}) {
	if format == "" {
		return
	}
	s := fmt.Sprintf(format, values...)
	if format[len(format)-1] != '\n' {
		s += "\n"
	}
	c.WriteString(s)
}

func (c *DebugConsole) WriteString(s string) {
	if !c.CRLF {
		Write0(s)
		return
	}
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' {
			continue
		}
		Write0(s[start:i] + "\r\n")
		start = i + 1
	}
	if start < len(s) {
		Write0(s[start:])
	}
}

// Write sends p to the debug channel. SYS_WRITE0 stops at NUL, so NUL bytes
// go out one at a time with SYS_WRITEC.
func (c *DebugConsole) Write(p []byte) (int, error) {
	start := 0
	for i, b := range p {
		if b != 0 {
			continue
		}
		if start < i {
			c.WriteString(string(p[start:i]))
		}
		WriteC(0)
		start = i + 1
	}
	if start < len(p) {
		c.WriteString(string(p[start:]))
	}
	return len(p), nil
}
