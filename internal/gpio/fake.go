package gpio

// FakeLamp records lamp transitions for test assertions.
type FakeLamp struct {
	// On is the current lamp state.
	On bool

	// Transitions records every state passed to Set, in order.
	Transitions []bool

	// Closed tracks if Close was called.
	Closed bool

	// SetError, if set, will be returned by Set.
	SetError error
}

// NewFakeLamp creates a FakeLamp, initially off.
func NewFakeLamp() *FakeLamp {
	return &FakeLamp{}
}

// Set records the transition.
func (f *FakeLamp) Set(on bool) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.On = on
	f.Transitions = append(f.Transitions, on)
	return nil
}

// Close turns the lamp off and marks it closed.
func (f *FakeLamp) Close() error {
	f.On = false
	f.Closed = true
	return nil
}

// Reset clears recorded state.
func (f *FakeLamp) Reset() {
	f.On = false
	f.Transitions = nil
	f.Closed = false
	f.SetError = nil
}
