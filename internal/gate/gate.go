// Package gate runs the yes/no confirmation dialogue for a triggered
// activity. The dialogue is a small state machine: idle between triggers, a
// blocking awaiting-confirmation state while the user answers, then either
// the activity is done or the gate returns to idle.
package gate

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sweeney/day-reminder/internal/schedule"
)

// Fixed dialogue pauses: the user gets a beat before the prompt appears and
// before the screen wipes.
const (
	promptDelay = 3 * time.Second
	clearDelay  = 2 * time.Second
)

// LineReader supplies blocking line input for prompts.
type LineReader interface {
	ReadLine() (string, error)
}

// Screen is the output surface the dialogue writes to.
type Screen interface {
	Print(format string, args ...any)
	Clear()
}

// Indicator is an optional physical signal mirroring the awaiting state,
// e.g. a GPIO lamp that lights while a confirmation is pending.
type Indicator interface {
	Set(on bool) error
}

// Sleeper pauses the dialogue. Production uses time.Sleep; tests inject a
// recorder.
type Sleeper func(d time.Duration)

// Outcome is the result of routing an activity through the gate.
type Outcome int

const (
	// OutcomeDeclined means the user answered "no". The activity stays
	// not-done and may trigger again in a later minute.
	OutcomeDeclined Outcome = iota

	// OutcomeMarkedDone means the user confirmed; the activity is now done
	// for the rest of the process lifetime.
	OutcomeMarkedDone

	// OutcomeAlreadyDone means the activity was done before the gate ran;
	// no confirmation was asked.
	OutcomeAlreadyDone
)

// State is the gate's dialogue state.
type State int

const (
	// StateIdle means no confirmation is in progress.
	StateIdle State = iota

	// StateAwaiting means the gate is blocked on a yes/no answer.
	StateAwaiting
)

// Gate owns the confirmation dialogue.
type Gate struct {
	in        LineReader
	out       Screen
	sleep     Sleeper
	indicator Indicator
	state     State
}

// New creates a Gate reading answers from in and writing dialogue to out.
func New(in LineReader, out Screen) *Gate {
	return &Gate{in: in, out: out, sleep: time.Sleep}
}

// SetSleeper replaces the dialogue pause implementation.
func (g *Gate) SetSleeper(sleep Sleeper) {
	g.sleep = sleep
}

// SetIndicator attaches a physical signal that follows the awaiting state.
func (g *Gate) SetIndicator(indicator Indicator) {
	g.indicator = indicator
}

// State returns the current dialogue state.
func (g *Gate) State() State {
	return g.state
}

// Confirm routes one activity through the dialogue. For a not-done activity
// it blocks the caller until the user answers "yes" or "no", looping on
// anything else, and marks the activity done on "yes". For a done activity
// it acknowledges and returns immediately. Only the caller is suspended
// while blocked; the clock accelerator keeps running.
func (g *Gate) Confirm(a *schedule.Activity) (Outcome, error) {
	if a.Done {
		g.out.Print("Chill, you've already done: %s\n", a.Name)
		g.sleep(clearDelay)
		g.out.Clear()
		return OutcomeAlreadyDone, nil
	}

	g.setState(StateAwaiting)
	defer g.setState(StateIdle)

	g.sleep(promptDelay)
	for {
		g.out.Print("Are you doing %s now? (yes/no)\t", a.Name)
		answer, err := g.in.ReadLine()
		if err != nil {
			return OutcomeDeclined, fmt.Errorf("read confirmation: %w", err)
		}
		switch strings.TrimSpace(answer) {
		case "yes":
			a.Done = true
			g.out.Print("%s marked as done.\n", a.Name)
			g.sleep(clearDelay)
			g.out.Clear()
			return OutcomeMarkedDone, nil
		case "no":
			g.sleep(clearDelay)
			g.out.Clear()
			return OutcomeDeclined, nil
		}
		// Anything else re-prompts.
	}
}

func (g *Gate) setState(s State) {
	g.state = s
	if g.indicator == nil {
		return
	}
	if err := g.indicator.Set(s == StateAwaiting); err != nil {
		log.Printf("gate: indicator set error: %v", err)
	}
}
