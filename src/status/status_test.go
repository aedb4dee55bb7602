package status

import (
	"strings"
	"testing"

	"liftfsm/src/fsm"
	"liftfsm/src/types"
)

func TestFromSnapshot(t *testing.T) {
	snap := fsm.Snapshot{
		MotorState: types.MS_Up,
		Direction:  types.MD_Up,
		Behaviour:  types.Moving,
		Floor:      1,
		DestFloor:  3,
		Trace: []fsm.TransitionRecord{
			{Seq: 4, Machine: "elevator", From: "Idle", To: "Moving", Cause: "Call(3)"},
		},
	}

	msg := FromSnapshot("2", "10.0.0.5", 7, snap)

	if msg.CarID != "2" || msg.Addr != "10.0.0.5" || msg.Counter != 7 {
		t.Errorf("Expected identity fields to be carried over, got %+v", msg)
	}
	if msg.Behaviour != types.Moving || msg.Floor != 1 || msg.DestFloor != 3 || msg.Direction != types.MD_Up {
		t.Errorf("Expected state fields to match the snapshot, got %+v", msg)
	}
	if !strings.Contains(msg.LastTransition, "Idle -> Moving") || !strings.Contains(msg.LastTransition, "Call(3)") {
		t.Errorf("Expected the last transition to be rendered, got %q", msg.LastTransition)
	}
}

func TestFromSnapshotEmptyTrace(t *testing.T) {
	msg := FromSnapshot("1", "localhost", 1, fsm.Snapshot{Behaviour: types.Idle})
	if msg.LastTransition != "" {
		t.Errorf("Expected no transition text, got %q", msg.LastTransition)
	}
}
