//go:build linux

package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// RealTerminal drives the process's controlling terminal. The poll path runs
// with canonical mode off and O_NONBLOCK set; ReadLine temporarily restores
// the original blocking line discipline for prompts.
type RealTerminal struct {
	fd       int
	out      io.Writer
	oldState unix.Termios
	rawState unix.Termios
	oldFlags int
	restored bool
}

// NewRealTerminal captures the current terminal state and switches stdin to
// raw non-blocking mode. Failure to reconfigure the terminal is fatal for
// the caller: continuing with cooked blocking input would stall the poll
// loop.
func NewRealTerminal() (*RealTerminal, error) {
	fd := int(os.Stdin.Fd())

	oldState, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("read terminal settings: %w", err)
	}

	rawState := *oldState
	rawState.Lflag &^= unix.ICANON

	oldFlags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		return nil, fmt.Errorf("read stdin flags: %w", err)
	}

	t := &RealTerminal{
		fd:       fd,
		out:      os.Stdout,
		oldState: *oldState,
		rawState: rawState,
		oldFlags: oldFlags,
	}
	if err := t.setRaw(true); err != nil {
		return nil, err
	}
	return t, nil
}

// PollRead drains whatever bytes are waiting on stdin, up to 64 per call.
func (t *RealTerminal) PollRead() ([]byte, error) {
	buf := make([]byte, 64)
	n, err := unix.Read(t.fd, buf)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR {
			return nil, nil
		}
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if n <= 0 {
		return nil, nil
	}
	return buf[:n], nil
}

// ReadLine reads one blocking line in the terminal's original mode.
func (t *RealTerminal) ReadLine() (string, error) {
	if err := t.setRaw(false); err != nil {
		return "", err
	}
	defer t.setRaw(true)

	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := unix.Read(t.fd, buf)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if n == 0 || buf[0] == '\n' {
			break
		}
		line = append(line, buf[0])
	}
	return strings.TrimSpace(string(line)), nil
}

// Print writes user-facing dialogue to stdout.
func (t *RealTerminal) Print(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// Clear wipes the screen and homes the cursor.
func (t *RealTerminal) Clear() {
	fmt.Fprint(t.out, "\033[2J\033[0;0H\n")
}

// Restore reinstates the original terminal settings and stdin flags.
func (t *RealTerminal) Restore() error {
	if t.restored {
		return nil
	}
	t.restored = true
	return t.setRaw(false)
}

// setRaw flips between the raw non-blocking poll mode and the original
// blocking line discipline.
func (t *RealTerminal) setRaw(raw bool) error {
	state, flags := &t.oldState, t.oldFlags
	if raw {
		state, flags = &t.rawState, t.oldFlags|unix.O_NONBLOCK
	}
	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, state); err != nil {
		return fmt.Errorf("set terminal mode: %w", err)
	}
	if _, err := unix.FcntlInt(uintptr(t.fd), unix.F_SETFL, flags); err != nil {
		return fmt.Errorf("set stdin flags: %w", err)
	}
	return nil
}
