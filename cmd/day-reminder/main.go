// Command day-reminder nags its user through a fixed daily schedule on an
// accelerated simulated clock. It polls the schedule at a fixed cadence,
// announces activities as they start or come within ten minutes of ending,
// and accepts "now" or HH:MM time queries typed at any point.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sweeney/day-reminder/internal/gate"
	"github.com/sweeney/day-reminder/internal/gpio"
	"github.com/sweeney/day-reminder/internal/input"
	"github.com/sweeney/day-reminder/internal/logic"
	"github.com/sweeney/day-reminder/internal/mqtt"
	"github.com/sweeney/day-reminder/internal/schedule"
	"github.com/sweeney/day-reminder/internal/simclock"
	"github.com/sweeney/day-reminder/internal/status"
	"github.com/sweeney/day-reminder/internal/term"
	"github.com/sweeney/day-reminder/internal/web"
)

func main() {
	poll := flag.Duration("poll", 100*time.Millisecond, "Poll loop interval")
	tick := flag.Duration("tick", simclock.DefaultTickInterval, "Clock accelerator interval")
	speed := flag.Int("speed", 0, "Speed factor 1-30 (0 prompts interactively)")
	broker := flag.String("broker", "", "MQTT broker address (empty to disable)")
	httpAddr := flag.String("http", "", "HTTP status address (empty to disable)")
	lampPin := flag.Int("pin-lamp", -1, "BCM pin for the reminder lamp (-1 to disable)")
	scheduleFile := flag.String("schedule", "", "YAML schedule file (empty for the built-in day)")

	flag.Parse()

	// Operational logging goes to stderr so it does not tear up the
	// dialogue on stdout.
	log.SetOutput(os.Stderr)

	if err := run(*poll, *tick, *speed, *broker, *httpAddr, *lampPin, *scheduleFile); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(poll, tick time.Duration, speed int, broker, httpAddr string, lampPin int, scheduleFile string) error {
	activities := schedule.Default()
	scheduleSrc := "builtin"
	if scheduleFile != "" {
		loaded, err := schedule.LoadFile(scheduleFile)
		if err != nil {
			return fmt.Errorf("load schedule: %w", err)
		}
		activities = loaded
		scheduleSrc = scheduleFile
	}

	terminal, err := term.NewRealTerminal()
	if err != nil {
		return fmt.Errorf("terminal setup: %w", err)
	}
	defer terminal.Restore()

	if speed == 0 {
		speed, err = promptSpeedFactor(terminal)
		if err != nil {
			return err
		}
	}

	clock, err := simclock.New(time.Now(), speed)
	if err != nil {
		return err
	}
	clock.Start(tick)

	var publisher mqtt.Publisher
	var mqttStatus mqtt.ConnectionStatus
	if broker != "" {
		real, err := mqtt.NewRealPublisher(broker)
		if err != nil {
			log.Printf("mqtt connect: %v (events disabled)", err)
		} else {
			publisher = real
			mqttStatus = real
			defer publisher.Close()
		}
	}

	confirmGate := gate.New(terminal, terminal)
	if lampPin >= 0 {
		lamp, err := gpio.NewRealLamp(lampPin)
		if err != nil {
			log.Printf("lamp init: %v (lamp disabled)", err)
		} else {
			confirmGate.SetIndicator(lamp)
			defer lamp.Close()
		}
	}

	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:      poll.Milliseconds(),
		TickMs:      tick.Milliseconds(),
		SpeedFactor: speed,
		Broker:      broker,
		HTTPAddr:    httpAddr,
		LampPin:     lampPin,
		ScheduleSrc: scheduleSrc,
	})
	tracker.Update(clock.Sample(), activities, logic.TriggerCounts{})

	if publisher != nil {
		snap := tracker.Snapshot()
		startup := mqtt.SystemEvent{
			Timestamp:  snap.Now,
			Event:      "STARTUP",
			Retained:   true,
			RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
		}
		if err := publisher.PublishSystem(startup); err != nil {
			log.Printf("failed to publish startup event: %v", err)
		}
	}

	if httpAddr != "" {
		srv := web.New(httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", httpAddr)
	}

	log.Printf("started: poll=%v tick=%v speed=%d broker=%q schedule=%s", poll, tick, speed, broker, scheduleSrc)

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(activities, clock, terminal, confirmGate, publisher, mqttStatus, tracker, ticker.C, sigCh)
}

// promptSpeedFactor asks for the clock acceleration on a blocking line
// prompt, looping until the answer is an integer in range.
func promptSpeedFactor(terminal term.Terminal) (int, error) {
	for {
		terminal.Print("How many times would you like to speed it up? (1...30)\t")
		line, err := terminal.ReadLine()
		if err != nil {
			return 0, fmt.Errorf("read speed factor: %w", err)
		}
		speed, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || speed < simclock.MinSpeedFactor || speed > simclock.MaxSpeedFactor {
			continue
		}
		terminal.Clear()
		return speed, nil
	}
}

// runLoop is the poll loop: sample the simulated clock, scan for triggers,
// drain typed input, resolve completed query lines. It returns when the
// simulated day ends or a shutdown signal arrives.
func runLoop(activities []schedule.Activity, clock *simclock.Clock, terminal term.Terminal, confirmGate *gate.Gate, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, tickCh <-chan time.Time, sig <-chan os.Signal) error {
	checker := logic.NewChecker()
	var acc input.Accumulator
	endOfDay := clock.EndOfDay()

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			publishShutdown(publisher, tracker, signalName)
			return nil

		case <-tickCh:
			now := clock.Sample()
			if !now.Before(endOfDay) {
				log.Printf("simulated day complete at %s", now.Format("15:04:05"))
				publishShutdown(publisher, tracker, "END_OF_DAY")
				return nil
			}

			for _, trig := range checker.Check(activities, now) {
				announce(terminal, trig)
				publishEvent(publisher, mqtt.FromTrigger(trig))

				outcome, err := confirmGate.Confirm(&activities[trig.Index])
				if err != nil {
					return err
				}
				if outcome == gate.OutcomeMarkedDone {
					publishEvent(publisher, mqtt.Event{
						Timestamp: now,
						Type:      mqtt.EventMarkedDone,
						Activity:  trig.Name,
						Index:     trig.Index,
					})
				}
			}

			raw, err := terminal.PollRead()
			if err != nil {
				log.Printf("stdin read error: %v", err)
			}
			for _, line := range acc.Feed(raw) {
				if err := resolveQuery(activities, checker, confirmGate, terminal, publisher, now, line); err != nil {
					return err
				}
			}

			tracker.Update(now, activities, checker.Counts())
			if mqttStatus != nil {
				tracker.SetMQTTConnected(mqttStatus.IsConnected())
			}
		}
	}
}

// announce prints the reminder notice for a fired trigger.
func announce(terminal term.Terminal, trig logic.Trigger) {
	switch trig.Kind {
	case logic.TriggerStart:
		terminal.Print("Time for %s\n", trig.Name)
	case logic.TriggerDueSoon:
		terminal.Print("Don't forget to do %s in 10 minutes!\n", trig.Name)
	}
}

// resolveQuery handles one completed input line: validate it, sweep the
// schedule at the query time, and route every match through the gate. Done
// activities are visited too; the gate's done branch answers for them.
func resolveQuery(activities []schedule.Activity, checker *logic.Checker, confirmGate *gate.Gate, terminal term.Terminal, publisher mqtt.Publisher, now time.Time, line string) error {
	queryTime, err := input.ParseQuery(line, now)
	if err != nil {
		terminal.Print("Please enter a time (\"now\" or \"HH:MM\")\n")
		return nil
	}

	tod := schedule.TimeOfDay{Hour: queryTime.Hour(), Minute: queryTime.Minute()}
	matches := checker.Query(activities, tod)
	if len(matches) == 0 {
		terminal.Print("There is no activity to do.\n")
		terminal.Clear()
		return nil
	}

	for _, i := range matches {
		terminal.Print("Time for %s\n", activities[i].Name)
		outcome, err := confirmGate.Confirm(&activities[i])
		if err != nil {
			return err
		}
		if outcome == gate.OutcomeMarkedDone {
			publishEvent(publisher, mqtt.Event{
				Timestamp: now,
				Type:      mqtt.EventMarkedDone,
				Activity:  activities[i].Name,
				Index:     i,
			})
		}
	}
	return nil
}

func publishEvent(publisher mqtt.Publisher, event mqtt.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(event); err != nil {
		log.Printf("publish error: %v", err)
	}
}

func publishShutdown(publisher mqtt.Publisher, tracker *status.Tracker, reason string) {
	if publisher == nil {
		return
	}
	snap := tracker.Snapshot()
	event := mqtt.SystemEvent{
		Timestamp:  snap.Now,
		Event:      "SHUTDOWN",
		Reason:     reason,
		Retained:   true,
		RawPayload: status.FormatStatusEvent(snap, "SHUTDOWN", reason),
	}
	if err := publisher.PublishSystem(event); err != nil {
		log.Printf("failed to publish shutdown event: %v", err)
	}
}
