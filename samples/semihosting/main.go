// Command semihosting is a smoke test for the semihosting library. Build it
// for a Cortex-M target and run it under QEMU with semihosting enabled:
//
//	tinygo build -target=cortex-m-qemu -o semi.elf ./samples/semihosting
//	qemu-system-arm -M mps2-an385 -semihosting -nographic -kernel semi.elf
//
// The AArch64 trap is build-checked with
//
//	GOOS=linux GOARCH=arm64 tinygo build -o semi-arm64 ./samples/semihosting
//
// (make smoke runs both builds.)
package main

import (
	sh "esem/src/lib/semihosting"
)

const testFile = "something.txt"

func main() {
	sh.Write0("Debug channel string : TEST \n")
	sh.Write0("Debug channel char (T): ")
	sh.WriteC('T')
	sh.Write0("\n")

	stdout := sh.Open(sh.ConsolePath, sh.StdoutMode)
	say := func(s string) {
		sh.Write(stdout, []byte(s))
	}
	say("Stdout channel string : TEST \n")

	say("Checking test file \"" + testFile + "\"\n")
	if file := sh.Open(testFile, sh.ModeR); file != -1 {
		say("Test file found\n")
		buf := make([]byte, 128)
		n := sh.Read(file, buf)
		say("Test file content (up to 128 chars)\n")
		sh.Write(stdout, buf[:n])
		sh.Close(file)
		say("Removing test file\n")
		sh.Remove(testFile)
	} else {
		say("Test file is not found\n")
		say("Creating test file \"" + testFile + "\"\n")
		file = sh.Open(testFile, sh.ModeW)
		say("Writing \"Test string\\n\" to test file\n")
		sh.Write(file, []byte("Test string\n"))
		sh.Close(file)
	}

	say("Trying to execute command (will work only on Ubuntu base)\n")
	sh.System("notify-send Semihosting test")

	sh.Exit(sh.StopApplicationExit, 0)
}
