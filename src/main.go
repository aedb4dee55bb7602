package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	"liftfsm/src/config"
	"liftfsm/src/fsm"
	"liftfsm/src/status"
	"liftfsm/src/timer"
	"liftfsm/src/types"
	"liftfsm/src/utils"

	"github.com/angrycompany16/driver-go/elevio"
	"github.com/eiannone/keyboard"
)

func main() {
	carID := flag.Int("id", 0, "Car ID of the elevator")
	configPath := flag.String("config", "", "Path to a YAML config file overriding the defaults")
	interactive := flag.Bool("interactive", false, "Drive the machines from the keyboard instead of the elevator server")
	monitor := flag.Bool("monitor", false, "Follow status broadcasts without driving a car")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal("Failed to load config file: ", err)
		}
	}
	utils.InitLogger(*carID, cfg.SlogLevel())

	switch {
	case *monitor:
		status.Monitor(cfg.StatusPort)
	case *interactive:
		runInteractive(*carID, cfg)
	default:
		runDrive(*carID, cfg)
	}
}

// runDrive closes the physical loop against the elevator server: button
// presses become calls, floor sensor readings feed the machines, and motor
// commands go back to the hardware.
func runDrive(carID int, cfg config.Config) {
	elevio.Init(fmt.Sprintf("localhost:%d", config.ElevServerPort+carID), cfg.NumFloors)

	out := fsm.OutputDevice{
		Motor: func(dir types.MotorDirection) {
			elevio.SetMotorDirection(elevio.MotorDirection(dir))
		},
		CallMaintenance: func() {
			elevio.SetStopLamp(true)
			slog.Error("Calling maintenance")
		},
		CallFirefighters: func() {
			elevio.SetStopLamp(true)
			slog.Error("Calling firefighters")
		},
	}

	elevio.SetStopLamp(false)
	initialFloor := findInitialFloor()
	elevio.SetFloorIndicator(initialFloor)

	ctrl := fsm.NewController(initialFloor, out)
	ctrl.Start()

	pub := status.NewPublisher(carID, cfg.StatusPort)
	pub.Publish(ctrl.Snapshot())

	drvButtons := make(chan elevio.ButtonEvent)
	drvFloors := make(chan int)
	drvObstr := make(chan bool)
	drvStop := make(chan bool)
	go elevio.PollButtons(drvButtons)
	go elevio.PollFloorSensor(drvFloors)
	go elevio.PollObstructionSwitch(drvObstr)
	go elevio.PollStopButton(drvStop)

	watchdogTimeout, watchdogAction := timer.Init(config.WatchdogTimeout)
	statusTick := time.NewTicker(config.StatusInterval)

	for {
		select {
		case btn := <-drvButtons:
			call := fsm.Call{Floor: btn.Floor}
			slog.Debug("Serve estimate", "floor", btn.Floor, "cost", fsm.EstimateServeTime(ctrl.Snapshot(), call))
			ctrl.Dispatch(call)
			afterEvent(ctrl, pub, watchdogAction)

		case floor := <-drvFloors:
			elevio.SetFloorIndicator(floor)
			ctrl.Dispatch(fsm.FloorSensor{Floor: floor})
			afterEvent(ctrl, pub, watchdogAction)

		case <-drvStop:
			ctrl.Dispatch(fsm.Alarm{})
			afterEvent(ctrl, pub, watchdogAction)

		case obstructed := <-drvObstr:
			slog.Warn("Obstruction state changed", "obstructed", obstructed)

		case <-watchdogTimeout:
			slog.Error("No floor sensor reading while moving")
			ctrl.Dispatch(fsm.Alarm{})
			afterEvent(ctrl, pub, watchdogAction)

		case <-statusTick.C:
			pub.Publish(ctrl.Snapshot())
		}
	}
}

// afterEvent publishes fresh status and keeps the stall watchdog aligned with
// the motion state.
func afterEvent(ctrl *fsm.Controller, pub *status.Publisher, watchdogAction chan<- timer.TimerAction) {
	snap := ctrl.Snapshot()
	pub.Publish(snap)
	if snap.Behaviour == types.Moving {
		watchdogAction <- timer.Start
	} else {
		watchdogAction <- timer.Stop
	}
}

// findInitialFloor drives down until the first floor sensor reading when the
// car starts between floors.
func findInitialFloor() int {
	if floor := elevio.GetFloor(); floor != -1 {
		return floor
	}
	slog.Debug("No floor detected, moving down to the first floor sensor")
	elevio.SetMotorDirection(elevio.MD_Down)
	for {
		if floor := elevio.GetFloor(); floor != -1 {
			elevio.SetMotorDirection(elevio.MD_Stop)
			slog.Debug("Floor sensor triggered", "floor", floor)
			return floor
		}
	}
}

// runInteractive drives the machines from the keyboard: c<floor> sends a
// call, s<floor> a floor sensor reading, a the alarm, e logs serve estimates
// for every floor.
func runInteractive(carID int, cfg config.Config) {
	if err := keyboard.Open(); err != nil {
		log.Fatal("Failed to open keyboard: ", err)
	}
	defer keyboard.Close()

	out := fsm.OutputDevice{
		Motor: func(dir types.MotorDirection) {
			slog.Info("Motor", "direction", dir)
		},
		CallMaintenance:  func() { slog.Error("Calling maintenance") },
		CallFirefighters: func() { slog.Error("Calling firefighters") },
	}
	ctrl := fsm.NewController(cfg.InitialFloor, out)
	ctrl.Start()

	pub := status.NewPublisher(carID, cfg.StatusPort)
	pub.Publish(ctrl.Snapshot())

	fmt.Println("c<floor>: call | s<floor>: floor sensor | a: alarm | e: estimates | q: quit")
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			log.Fatal("Failed to read key: ", err)
		}
		if key == keyboard.KeyCtrlC || char == 'q' {
			return
		}

		switch char {
		case 'c':
			floor, ok := readFloor(cfg.NumFloors)
			if !ok {
				continue
			}
			ctrl.Dispatch(fsm.Call{Floor: floor})
		case 's':
			floor, ok := readFloor(cfg.NumFloors)
			if !ok {
				continue
			}
			ctrl.Dispatch(fsm.FloorSensor{Floor: floor})
		case 'a':
			ctrl.Dispatch(fsm.Alarm{})
		case 'e':
			snap := ctrl.Snapshot()
			for floor := 0; floor < cfg.NumFloors; floor++ {
				slog.Info("Serve estimate", "floor", floor, "cost", fsm.EstimateServeTime(snap, fsm.Call{Floor: floor}))
			}
		default:
			continue
		}
		pub.Publish(ctrl.Snapshot())
	}
}

// readFloor reads the digit following a c or s command.
func readFloor(numFloors int) (int, bool) {
	char, _, err := keyboard.GetKey()
	if err != nil {
		log.Fatal("Failed to read key: ", err)
	}
	floor := int(char - '0')
	if floor < 0 || floor >= numFloors {
		slog.Warn("Floor out of range", "key", string(char))
		return 0, false
	}
	return floor, true
}
