package types

// MotorDirection is the signed direction applied to the motor, matching the
// values the elevator server wire format uses.
type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

func (d MotorDirection) String() string {
	switch d {
	case MD_Up:
		return "Up"
	case MD_Down:
		return "Down"
	case MD_Stop:
		return "Stop"
	}
	return "Unknown"
}

// MotorState is the motor machine variant. Each variant pins one direction
// value, set on entry.
type MotorState int

const (
	MS_Stopped MotorState = iota
	MS_Up
	MS_Down
)

func (s MotorState) String() string {
	switch s {
	case MS_Stopped:
		return "Stopped"
	case MS_Up:
		return "Up"
	case MS_Down:
		return "Down"
	}
	return "Unknown"
}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	Moving
	Panic
)

func (b ElevBehaviour) String() string {
	switch b {
	case Idle:
		return "Idle"
	case Moving:
		return "Moving"
	case Panic:
		return "Panic"
	}
	return "Unknown"
}

// StatusMessage is the state report broadcast over UDP after every processed
// event and on the periodic refresh tick.
type StatusMessage struct {
	CarID          string
	Addr           string
	Counter        uint64
	Behaviour      ElevBehaviour
	Floor          int
	DestFloor      int
	Direction      MotorDirection
	LastTransition string
}
