package semihosting

import "strconv"

// HostErrno is an errno value reported by SYS_ERRNO. The numbering is the
// host C library's; the common values below agree across newlib, glibc and
// QEMU's semihosting layer.
type HostErrno int

const (
	EPERM   HostErrno = 1
	ENOENT  HostErrno = 2
	EIO     HostErrno = 5
	EBADF   HostErrno = 9
	ENOMEM  HostErrno = 12
	EACCES  HostErrno = 13
	EFAULT  HostErrno = 14
	EBUSY   HostErrno = 16
	EEXIST  HostErrno = 17
	ENOTDIR HostErrno = 20
	EISDIR  HostErrno = 21
	EINVAL  HostErrno = 22
	ENFILE  HostErrno = 23
	EMFILE  HostErrno = 24
	EFBIG   HostErrno = 27
	ENOSPC  HostErrno = 28
	ESPIPE  HostErrno = 29
	EROFS   HostErrno = 30
)

var errnoText = map[HostErrno]string{
	EPERM:   "operation not permitted",
	ENOENT:  "no such file or directory",
	EIO:     "input/output error",
	EBADF:   "bad file descriptor",
	ENOMEM:  "cannot allocate memory",
	EACCES:  "permission denied",
	EFAULT:  "bad address",
	EBUSY:   "device or resource busy",
	EEXIST:  "file exists",
	ENOTDIR: "not a directory",
	EISDIR:  "is a directory",
	EINVAL:  "invalid argument",
	ENFILE:  "too many open files in system",
	EMFILE:  "too many open files",
	EFBIG:   "file too large",
	ENOSPC:  "no space left on device",
	ESPIPE:  "illegal seek",
	EROFS:   "read-only file system",
}

func (e HostErrno) Error() string {
	if t, ok := errnoText[e]; ok {
		return t
	}
	return "host errno " + strconv.Itoa(int(e))
}

// Error is a failed semihosting call. Errno is what the host reported
// right after the failure.
type Error struct {
	Op     Op
	Status int
	Errno  HostErrno
}

func (e *Error) Error() string {
	return "semihosting: " + e.Op.String() + " failed (status " +
		strconv.Itoa(e.Status) + "): " + e.Errno.Error()
}

func (e *Error) Unwrap() error {
	return e.Errno
}

// Check turns the status returned for op into an error, asking the host for
// errno when the status is a failure.
func Check(op Op, status int) error {
	if !op.Failed(status) {
		return nil
	}
	return &Error{Op: op, Status: status, Errno: HostErrno(Errno())}
}
