package main

import (
	sh "esem/src/lib/semihosting"
)

func main() {
	console := &sh.DebugConsole{CRLF: true}
	console.Logf("hello, world")
	console.Logf("clock: %d centiseconds, %d ticks/sec", sh.Clock(), sh.TickFreq())
	if ticks, err := sh.ElapsedTicks(); err != nil {
		console.Logf("elapsed: %v", err)
	} else {
		console.Logf("elapsed: %d ticks", ticks)
	}

	//exit with code 22
	sh.Exit(sh.StopApplicationExit, 22)
}
