//go:build !linux

package gpio

import "errors"

// RealLamp is not available on non-Linux platforms.
type RealLamp struct{}

// NewRealLamp returns an error on non-Linux platforms.
func NewRealLamp(pin int) (*RealLamp, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

// Set is not implemented on non-Linux platforms.
func (l *RealLamp) Set(on bool) error {
	return errors.New("gpio: not supported")
}

// Close is not implemented on non-Linux platforms.
func (l *RealLamp) Close() error {
	return nil
}
