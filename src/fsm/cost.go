package fsm

import (
	"time"

	"liftfsm/src/config"
	"liftfsm/src/types"

	"github.com/tiendc/go-deepcopy"
)

// UnserviceableCost is returned for calls the car can never serve.
const UnserviceableCost = 100 * time.Second

// EstimateServeTime simulates serving a call on a copy of the snapshot and
// returns the accumulated travel time.
//   - a panicked car gets the unserviceable cost
//   - a trip in flight is finished before the new call is taken
//   - reversing after the current trip adds a direction change penalty
func EstimateServeTime(snap Snapshot, call Call) time.Duration {
	sim := new(Snapshot)
	if err := deepcopy.Copy(sim, &snap); err != nil {
		panic(err)
	}

	if sim.Behaviour == types.Panic {
		return UnserviceableCost
	}

	var cost time.Duration

	if sim.Behaviour == types.Moving {
		dir := getDirection(sim.Floor, sim.DestFloor)
		if dir == types.MD_Stop || dir != sim.Direction {
			// The motor is not carrying the car toward its destination, so
			// no arrival can be predicted.
			return UnserviceableCost
		}
		for sim.Floor != sim.DestFloor {
			sim.Floor += int(dir)
			cost += config.TravelDuration
		}
	}

	if call.Floor == sim.Floor {
		return cost
	}

	dir := getDirection(sim.Floor, call.Floor)
	if sim.Direction != types.MD_Stop && dir != sim.Direction {
		cost += config.DirChangePenalty
	}
	for sim.Floor != call.Floor {
		sim.Floor += int(dir)
		cost += config.TravelDuration
	}
	return cost
}

func getDirection(from, to int) types.MotorDirection {
	if from < to {
		return types.MD_Up
	}
	if from > to {
		return types.MD_Down
	}
	return types.MD_Stop
}
