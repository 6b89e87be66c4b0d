// Package term wraps the terminal the reminder talks through: a non-blocking
// raw byte drain for the poll loop, blocking line reads for prompts, and
// screen control. The real implementation switches the controlling terminal
// between the two input modes; the fake scripts both paths for tests.
package term

// Terminal is the console collaborator for the poll loop and the
// confirmation dialogue.
type Terminal interface {
	// PollRead returns any bytes waiting on stdin without blocking.
	// A nil slice with a nil error means nothing was available.
	PollRead() ([]byte, error)

	// ReadLine switches stdin to blocking line-buffered input, reads one
	// line, and switches back. The terminator is stripped and surrounding
	// whitespace trimmed.
	ReadLine() (string, error)

	// Print writes user-facing dialogue to the screen.
	Print(format string, args ...any)

	// Clear wipes the screen and homes the cursor.
	Clear()

	// Restore puts the terminal back the way it was found. Safe to call
	// more than once.
	Restore() error
}
