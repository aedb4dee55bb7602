package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"liftfsm/src/types"
)

// InitLogger sets up global logging with compact timestamps and file:line
// source references, mirrored to stdout and a per-car log file.
func InitLogger(carID int, level slog.Level) {
	logFile, err := os.OpenFile(fmt.Sprintf("car%d.log", carID), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		panic(err)
	}

	multiWriter := io.MultiWriter(os.Stdout, logFile)

	handler := slog.NewTextHandler(multiWriter, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
}

// PrintStatus renders one overwriting status line for a monitored car.
func PrintStatus(msg types.StatusMessage) {
	fmt.Printf("\rCar %s | %s | floor %d -> %d | motor %s | seq %d    ",
		msg.CarID, msg.Behaviour, msg.Floor, msg.DestFloor, msg.Direction, msg.Counter)
}
