package term

import (
	"bytes"
	"errors"
	"fmt"
)

// FakeTerminal scripts both input paths and records output for tests.
type FakeTerminal struct {
	// Chunks are returned one per PollRead call; a nil entry means nothing
	// was available on that poll. When exhausted, PollRead keeps returning
	// nothing.
	Chunks [][]byte

	// Lines are returned one per ReadLine call.
	Lines []string

	// Output collects everything printed.
	Output bytes.Buffer

	// Clears counts Clear calls.
	Clears int

	// Restored tracks whether Restore was called.
	Restored bool

	// PollError, if set, is returned by PollRead.
	PollError error

	// ReadLineError, if set, is returned by ReadLine.
	ReadLineError error

	chunkIndex int
	lineIndex  int
}

// NewFakeTerminal creates a FakeTerminal with the given scripted poll chunks
// and prompt lines.
func NewFakeTerminal(chunks [][]byte, lines []string) *FakeTerminal {
	return &FakeTerminal{Chunks: chunks, Lines: lines}
}

// PollRead returns the next scripted chunk, or nothing once exhausted.
func (f *FakeTerminal) PollRead() ([]byte, error) {
	if f.PollError != nil {
		return nil, f.PollError
	}
	if f.chunkIndex >= len(f.Chunks) {
		return nil, nil
	}
	chunk := f.Chunks[f.chunkIndex]
	f.chunkIndex++
	return chunk, nil
}

// ReadLine returns the next scripted prompt answer.
func (f *FakeTerminal) ReadLine() (string, error) {
	if f.ReadLineError != nil {
		return "", f.ReadLineError
	}
	if f.lineIndex >= len(f.Lines) {
		return "", errors.New("no scripted lines left")
	}
	line := f.Lines[f.lineIndex]
	f.lineIndex++
	return line, nil
}

// Print records the formatted output.
func (f *FakeTerminal) Print(format string, args ...any) {
	fmt.Fprintf(&f.Output, format, args...)
}

// Clear counts the screen wipe.
func (f *FakeTerminal) Clear() {
	f.Clears++
}

// Restore marks the terminal as restored.
func (f *FakeTerminal) Restore() error {
	f.Restored = true
	return nil
}

// LinesRead reports how many scripted prompt answers were consumed.
func (f *FakeTerminal) LinesRead() int {
	return f.lineIndex
}
