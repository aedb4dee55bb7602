package timer

import (
	"log/slog"
	"time"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// Init creates the channels and starts a timer goroutine with the given
// duration. Start arms or restarts the countdown, Stop cancels it.
func Init(duration time.Duration) (chan bool, chan TimerAction) {
	// Buffered so a firing timer never blocks against a caller that is
	// sending an action at the same moment.
	timeout := make(chan bool, 1)
	action := make(chan TimerAction)
	go run(duration, timeout, action)
	return timeout, action
}

func run(duration time.Duration, timeout chan<- bool, action <-chan TimerAction) {
	t := time.NewTimer(duration)
	t.Stop() // armed by the first Start action
	for {
		select {
		case a := <-action:
			switch a {
			case Start:
				resetTimer(t, duration)
			case Stop:
				t.Stop()
			}
		case <-t.C:
			timeout <- true
			slog.Debug("Timer timed out")
		}
	}
}

// Stops the timer and resets it.
func resetTimer(t *time.Timer, duration time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(duration)
}
