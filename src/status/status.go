// Contains the UDP status broadcast: each car publishes its state after every
// processed event, and a monitor can follow the whole fleet.
package status

import (
	"fmt"
	"log/slog"
	"strconv"

	"liftfsm/src/fsm"
	"liftfsm/src/types"

	"github.com/angrycompany16/Network-go/network/localip"
	"github.com/angrycompany16/Network-go/network/transfer"
)

// Publisher broadcasts status messages on the status port. Publish is called
// after every processed event and on the periodic refresh tick.
type Publisher struct {
	carID   string
	addr    string
	counter uint64
	txCh    chan types.StatusMessage
}

func NewPublisher(carID int, port int) *Publisher {
	ip, err := localip.LocalIP()
	if err != nil {
		slog.Warn("Could not resolve local IP", "error", err)
		ip = "localhost"
	}

	p := &Publisher{
		carID: strconv.Itoa(carID),
		addr:  ip,
		txCh:  make(chan types.StatusMessage),
	}
	go transfer.BroadcastSender(port, p.txCh)
	return p
}

// Publish sends one status message built from the snapshot.
func (p *Publisher) Publish(snap fsm.Snapshot) {
	p.counter++
	p.txCh <- FromSnapshot(p.carID, p.addr, p.counter, snap)
}

// FromSnapshot renders a snapshot as the broadcast message format.
func FromSnapshot(carID, addr string, counter uint64, snap fsm.Snapshot) types.StatusMessage {
	msg := types.StatusMessage{
		CarID:     carID,
		Addr:      addr,
		Counter:   counter,
		Behaviour: snap.Behaviour,
		Floor:     snap.Floor,
		DestFloor: snap.DestFloor,
		Direction: snap.Direction,
	}
	if n := len(snap.Trace); n > 0 {
		last := snap.Trace[n-1]
		msg.LastTransition = fmt.Sprintf("%s: %s -> %s (%s)", last.Machine, last.From, last.To, last.Cause)
	}
	return msg
}
