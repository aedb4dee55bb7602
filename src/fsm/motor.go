package fsm

import (
	"log/slog"

	"liftfsm/src/types"
)

// MotorMachine tracks the commanded drive direction. Commands are accepted
// from every state, transitions are unconditional, and re-entering a state
// re-applies its direction to the output device.
type MotorMachine struct {
	ctrl      *Controller
	state     types.MotorState
	direction types.MotorDirection
}

func newMotorMachine(c *Controller) *MotorMachine {
	return &MotorMachine{ctrl: c, state: types.MS_Stopped}
}

func (m *MotorMachine) start() {
	m.enter()
	m.ctrl.record("motor", "", m.state.String(), "start")
}

func (m *MotorMachine) react(ev Event) {
	switch ev.(type) {
	case MotorUp:
		m.transit(types.MS_Up, EventName(ev))
	case MotorDown:
		m.transit(types.MS_Down, EventName(ev))
	case MotorStop:
		m.transit(types.MS_Stopped, EventName(ev))
	}
}

// transit updates the state and runs its entry action. Motor states have no
// exit actions and motor transitions carry no transition action.
func (m *MotorMachine) transit(next types.MotorState, cause string) {
	from := m.state
	m.state = next
	m.enter()
	m.ctrl.record("motor", from.String(), next.String(), cause)
}

// enter sets the direction pinned by the current state and applies it.
func (m *MotorMachine) enter() {
	switch m.state {
	case types.MS_Up:
		m.direction = types.MD_Up
	case types.MS_Down:
		m.direction = types.MD_Down
	default:
		m.direction = types.MD_Stop
	}
	m.ctrl.out.applyMotor(m.direction)
	slog.Debug("Motor direction applied", "state", m.state, "direction", m.direction)
}
