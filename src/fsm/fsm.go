// Contains the cooperative motor and elevator state machines with
// run-to-completion event dispatch.
package fsm

import (
	"fmt"
	"log/slog"
	"sync"

	"liftfsm/src/types"

	"github.com/tiendc/go-deepcopy"
)

// Event is the closed set of inputs the machines react to. Each event is a
// small value struct implementing the marker method.
type Event interface {
	event()
}

// Motor command events.
type (
	MotorUp   struct{}
	MotorDown struct{}
	MotorStop struct{}
)

// Elevator events.
type (
	Call        struct{ Floor int }
	FloorSensor struct{ Floor int }
	Alarm       struct{}
)

func (MotorUp) event()     {}
func (MotorDown) event()   {}
func (MotorStop) event()   {}
func (Call) event()        {}
func (FloorSensor) event() {}
func (Alarm) event()       {}

// EventName formats an event for logs and transition records.
func EventName(ev Event) string {
	switch v := ev.(type) {
	case Call:
		return fmt.Sprintf("Call(%d)", v.Floor)
	case FloorSensor:
		return fmt.Sprintf("FloorSensor(%d)", v.Floor)
	case Alarm:
		return "Alarm"
	case MotorUp:
		return "MotorUp"
	case MotorDown:
		return "MotorDown"
	case MotorStop:
		return "MotorStop"
	}
	return "Unknown"
}

// OutputDevice is the boundary to everything outside the machines. Motor
// receives the direction to apply each time a motor variant is entered;
// CallMaintenance and CallFirefighters are the panic transition alerts.
// Nil fields are skipped. Hooks run inside the dispatch critical section and
// must not call back into the controller.
type OutputDevice struct {
	Motor            func(types.MotorDirection)
	CallMaintenance  func()
	CallFirefighters func()
}

func (d OutputDevice) applyMotor(dir types.MotorDirection) {
	if d.Motor != nil {
		d.Motor(dir)
	}
}

func (d OutputDevice) maintenance() {
	if d.CallMaintenance != nil {
		d.CallMaintenance()
	}
}

func (d OutputDevice) firefighters() {
	if d.CallFirefighters != nil {
		d.CallFirefighters()
	}
}

// TransitionRecord is one entry of the bounded transition history. Initial
// entries on start are recorded with an empty From.
type TransitionRecord struct {
	Seq     uint64
	Machine string
	From    string
	To      string
	Cause   string
}

const traceCap = 32

// Controller owns one motor machine and one elevator machine and serializes
// dispatch on a single mutex, so every reaction, including nested motor
// commands, runs to completion before the next event is taken.
type Controller struct {
	mu       sync.Mutex
	motor    *MotorMachine
	elevator *ElevatorMachine
	out      OutputDevice
	trace    []TransitionRecord
	seq      uint64
	started  bool
}

// NewController wires the two machines around the given output device. Both
// floor fields start at initialFloor. Start must be called before events are
// dispatched.
func NewController(initialFloor int, out OutputDevice) *Controller {
	c := &Controller{out: out}
	c.motor = newMotorMachine(c)
	c.elevator = newElevatorMachine(c, initialFloor)
	return c
}

// Start enters the initial states, motor first so its direction is defined
// before the elevator's Idle entry issues the first stop command.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	c.started = true
	c.motor.start()
	c.elevator.start()
}

// Dispatch delivers one event to both machines, motor first, and returns when
// the full reaction chain has completed.
func (c *Controller) Dispatch(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		slog.Warn("Event dispatched before start", "event", EventName(ev))
		return
	}
	c.send(ev)
}

// send runs under the dispatch lock. Entry and transition actions reuse it,
// so a nested motor command completes before the outer reaction returns.
func (c *Controller) send(ev Event) {
	c.motor.react(ev)
	c.elevator.react(ev)
}

func (c *Controller) record(machine, from, to, cause string) {
	c.seq++
	c.trace = append(c.trace, TransitionRecord{
		Seq:     c.seq,
		Machine: machine,
		From:    from,
		To:      to,
		Cause:   cause,
	})
	if len(c.trace) > traceCap {
		c.trace = c.trace[1:]
	}
}

// Snapshot is a consistent copy of both machines' observable state.
type Snapshot struct {
	MotorState types.MotorState
	Direction  types.MotorDirection
	Behaviour  types.ElevBehaviour
	Floor      int
	DestFloor  int
	Trace      []TransitionRecord
}

// Snapshot copies the state under the dispatch lock. The trace is deep copied
// so the caller can hold it without racing the controller.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		MotorState: c.motor.state,
		Direction:  c.motor.direction,
		Behaviour:  c.elevator.behaviour,
		Floor:      c.elevator.currentFloor,
		DestFloor:  c.elevator.destFloor,
	}
	if err := deepcopy.Copy(&snap.Trace, &c.trace); err != nil {
		panic(err)
	}
	return snap
}
