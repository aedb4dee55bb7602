package status

import (
	"log/slog"
	"time"

	"liftfsm/src/config"
	"liftfsm/src/types"
	"liftfsm/src/utils"

	"github.com/angrycompany16/Network-go/network/transfer"
)

type carEntry struct {
	lastSeen time.Time
	lastMsg  types.StatusMessage
}

// Monitor follows status broadcasts until the process exits. Cars are
// reported connected when first heard and lost when silent past the peer
// timeout.
func Monitor(port int) {
	rxCh := make(chan types.StatusMessage)
	go transfer.BroadcastReceiver(port, rxCh)

	cars := make(map[string]*carEntry)
	sweep := time.NewTicker(config.PeerTimeout / 2)

	slog.Info("Monitoring status broadcasts", "port", port)
	for {
		select {
		case msg := <-rxCh:
			entry, known := cars[msg.CarID]
			if !known {
				entry = &carEntry{}
				cars[msg.CarID] = entry
				slog.Info("Car connected", "car", msg.CarID, "addr", msg.Addr)
			}
			if msg.LastTransition != "" && msg.LastTransition != entry.lastMsg.LastTransition {
				slog.Info("Car transitioned", "car", msg.CarID, "transition", msg.LastTransition)
			}
			entry.lastSeen = time.Now()
			entry.lastMsg = msg
			utils.PrintStatus(msg)

		case <-sweep.C:
			for id, entry := range cars {
				if time.Since(entry.lastSeen) > config.PeerTimeout {
					slog.Warn("Car lost", "car", id, "lastFloor", entry.lastMsg.Floor)
					delete(cars, id)
				}
			}
		}
	}
}
