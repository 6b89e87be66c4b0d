//go:build !linux

package term

import "errors"

// RealTerminal is not available on non-Linux platforms.
type RealTerminal struct{}

// NewRealTerminal returns an error on non-Linux platforms.
func NewRealTerminal() (*RealTerminal, error) {
	return nil, errors.New("term: raw terminal mode not supported on this platform (requires Linux)")
}

// PollRead is not implemented on non-Linux platforms.
func (t *RealTerminal) PollRead() ([]byte, error) {
	return nil, errors.New("term: not supported")
}

// ReadLine is not implemented on non-Linux platforms.
func (t *RealTerminal) ReadLine() (string, error) {
	return "", errors.New("term: not supported")
}

// Print is not implemented on non-Linux platforms.
func (t *RealTerminal) Print(format string, args ...any) {}

// Clear is not implemented on non-Linux platforms.
func (t *RealTerminal) Clear() {}

// Restore is not implemented on non-Linux platforms.
func (t *RealTerminal) Restore() error {
	return nil
}
