// Package gpio drives the optional reminder lamp with hardware abstraction.
// The real implementation uses the Linux GPIO character device; the fake
// allows testing without hardware.
package gpio

// DefaultPinLamp is the BCM pin the lamp ships on.
const DefaultPinLamp = 17

// Lamp switches the reminder lamp on and off.
type Lamp interface {
	// Set drives the lamp to the given state.
	Set(on bool) error

	// Close turns the lamp off and releases GPIO resources.
	Close() error
}
