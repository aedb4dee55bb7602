package fsm

import (
	"testing"

	"liftfsm/src/types"
)

func TestMotorCommands(t *testing.T) {
	testCases := []struct {
		name      string
		event     Event
		wantState types.MotorState
		wantDir   types.MotorDirection
	}{
		{name: "up", event: MotorUp{}, wantState: types.MS_Up, wantDir: types.MD_Up},
		{name: "down", event: MotorDown{}, wantState: types.MS_Down, wantDir: types.MD_Down},
		{name: "stop", event: MotorStop{}, wantState: types.MS_Stopped, wantDir: types.MD_Stop},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, rec := newTestController(t, 0)
			ctrl.Dispatch(tc.event)

			snap := ctrl.Snapshot()
			if snap.MotorState != tc.wantState {
				t.Errorf("Expected motor state to be %v, got %v", tc.wantState, snap.MotorState)
			}
			if snap.Direction != tc.wantDir {
				t.Errorf("Expected direction to be %v, got %v", tc.wantDir, snap.Direction)
			}
			if len(rec.motor) != 1 || rec.motor[0] != tc.wantDir {
				t.Errorf("Expected the direction to be applied once, got %v", rec.motor)
			}
		})
	}
}

func TestMotorCommandsAcceptedFromEveryState(t *testing.T) {
	ctrl, _ := newTestController(t, 0)
	sequence := []struct {
		event Event
		want  types.MotorState
	}{
		{event: MotorUp{}, want: types.MS_Up},
		{event: MotorDown{}, want: types.MS_Down},
		{event: MotorUp{}, want: types.MS_Up},
		{event: MotorStop{}, want: types.MS_Stopped},
		{event: MotorDown{}, want: types.MS_Down},
		{event: MotorStop{}, want: types.MS_Stopped},
	}
	for i, step := range sequence {
		ctrl.Dispatch(step.event)
		snap := ctrl.Snapshot()
		if snap.MotorState != step.want {
			t.Errorf("Step %d: expected motor state %v, got %v", i, step.want, snap.MotorState)
		}
		assertMotorConsistent(t, snap)
	}
}

func TestMotorCommandIdempotence(t *testing.T) {
	ctrl, rec := newTestController(t, 0)
	ctrl.Dispatch(MotorUp{})
	ctrl.Dispatch(MotorUp{})

	snap := ctrl.Snapshot()
	if snap.MotorState != types.MS_Up || snap.Direction != types.MD_Up {
		t.Errorf("Expected the motor to stay Up, got %v with direction %v", snap.MotorState, snap.Direction)
	}
	if len(rec.motor) != 2 || rec.motor[0] != types.MD_Up || rec.motor[1] != types.MD_Up {
		t.Errorf("Expected the same direction to be re-applied on repeat, got %v", rec.motor)
	}
}
