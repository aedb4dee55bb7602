package fsm

import (
	"log/slog"

	"liftfsm/src/types"
)

// ElevatorMachine moves the car between floors by commanding the motor
// machine. currentFloor and destFloor live for the whole process. There is no
// way out of Panic.
type ElevatorMachine struct {
	ctrl         *Controller
	behaviour    types.ElevBehaviour
	currentFloor int
	destFloor    int
}

func newElevatorMachine(c *Controller, initialFloor int) *ElevatorMachine {
	return &ElevatorMachine{
		ctrl:         c,
		behaviour:    types.Idle,
		currentFloor: initialFloor,
		destFloor:    initialFloor,
	}
}

func (e *ElevatorMachine) start() {
	e.enter()
	e.ctrl.record("elevator", "", e.behaviour.String(), "start")
}

func (e *ElevatorMachine) react(ev Event) {
	switch v := ev.(type) {
	case Call:
		e.onCall(v)
	case FloorSensor:
		e.onFloorSensor(v)
	case Alarm:
		e.onAlarm()
	}
}

// onCall starts a trip from Idle. Calls received while Moving or panicked are
// dropped.
func (e *ElevatorMachine) onCall(v Call) {
	if e.behaviour != types.Idle {
		slog.Debug("Call dropped", "floor", v.Floor, "behaviour", e.behaviour)
		return
	}
	e.destFloor = v.Floor
	if e.destFloor == e.currentFloor {
		slog.Debug("Called to current floor", "floor", v.Floor)
		return
	}
	slog.Info("Call accepted", "from", e.currentFloor, "to", e.destFloor)
	e.transit(types.Moving, EventName(v), func() {
		if e.destFloor > e.currentFloor {
			e.ctrl.send(MotorUp{})
		} else {
			e.ctrl.send(MotorDown{})
		}
	})
}

// onFloorSensor advances the position bookkeeping while Moving. A reading
// that is not the adjacent floor in the direction of travel means the
// position can no longer be trusted, and the machine locks up in Panic.
func (e *ElevatorMachine) onFloorSensor(v FloorSensor) {
	if e.behaviour != types.Moving {
		slog.Debug("Floor sensor ignored", "floor", v.Floor, "behaviour", e.behaviour)
		return
	}
	expected := e.currentFloor + int(e.ctrl.motor.direction)
	if v.Floor != expected {
		slog.Error("Floor sensor mismatch", "expected", expected, "got", v.Floor)
		e.transit(types.Panic, EventName(v), e.ctrl.out.maintenance)
		return
	}
	e.currentFloor = v.Floor
	if e.currentFloor == e.destFloor {
		slog.Info("Arrived at destination", "floor", v.Floor)
		e.transit(types.Idle, EventName(v), nil)
		return
	}
	slog.Debug("Passing floor", "floor", v.Floor)
}

// onAlarm escalates to Panic from any state. A repeated alarm while already
// panicked re-runs the transition, so the alert and the stop command are
// issued again.
func (e *ElevatorMachine) onAlarm() {
	slog.Error("Alarm received", "behaviour", e.behaviour)
	e.transit(types.Panic, "Alarm", e.ctrl.out.firefighters)
}

// transit runs the transition action while still in the old state, then
// updates the state and runs its entry action. Elevator states have no exit
// actions.
func (e *ElevatorMachine) transit(next types.ElevBehaviour, cause string, action func()) {
	from := e.behaviour
	if action != nil {
		action()
	}
	e.behaviour = next
	e.enter()
	e.ctrl.record("elevator", from.String(), next.String(), cause)
}

// enter runs the entry action of the current state. Idle and Panic stop the
// motor; Moving has no entry action.
func (e *ElevatorMachine) enter() {
	switch e.behaviour {
	case types.Idle, types.Panic:
		e.ctrl.send(MotorStop{})
	}
}
