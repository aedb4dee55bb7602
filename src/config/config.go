package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-yaml/yaml"
)

const (
	NumFloors        = 4
	TravelDuration   = 2 * time.Second
	DirChangePenalty = 2 * time.Second
	WatchdogTimeout  = 4 * time.Second
	StatusInterval   = 500 * time.Millisecond
	PeerTimeout      = 5 * time.Second
	ElevServerPort   = 15657
	StatusPort       = 36251 // Akkordrekke
)

// Config holds the settings that a YAML file may override. Zero configuration
// is valid: Default covers a local four-floor car.
type Config struct {
	InitialFloor int    `yaml:"InitialFloor"`
	NumFloors    int    `yaml:"NumFloors"`
	StatusPort   int    `yaml:"StatusPort"`
	LogLevel     string `yaml:"LogLevel"`
}

func Default() Config {
	return Config{
		InitialFloor: 0,
		NumFloors:    NumFloors,
		StatusPort:   StatusPort,
		LogLevel:     "debug",
	}
}

// Load reads a YAML file on top of the defaults. The defaults are returned
// alongside the error so callers can decide whether a missing file is fatal.
func Load(path string) (Config, error) {
	c := Default()
	file, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
