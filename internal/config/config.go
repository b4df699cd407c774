package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName    = "Organizador de Tarefas"
	AppID      = "com.agenda.organizador"
	AppVersion = "1.0.0"

	DefaultWindowWidth  = 480
	DefaultWindowHeight = 560

	DefaultCheckInterval = 60 * time.Second
	MinCheckInterval     = time.Second

	// EnvFile is read from the working directory when present
	EnvFile = ".env"
)

// Config holds runtime settings. Everything has a usable default.
type Config struct {
	WindowWidth   float32
	WindowHeight  float32
	CheckInterval time.Duration
	LogLevel      string
	JSONLogs      bool
}

func Default() Config {
	return Config{
		WindowWidth:   DefaultWindowWidth,
		WindowHeight:  DefaultWindowHeight,
		CheckInterval: DefaultCheckInterval,
		LogLevel:      "info",
		JSONLogs:      false,
	}
}

// FromEnv overlays AGENDA_* variables from the environment and from EnvFile
// on the defaults. Unparseable values are ignored.
func FromEnv() (Config, error) {
	return FromEnvFile(EnvFile)
}

// FromEnvFile is FromEnv with an explicit dotenv path. Process variables win
// over file entries and a missing file is not an error. A malformed file is
// reported but the process environment still applies.
func FromEnvFile(path string) (Config, error) {
	fileEnv, err := godotenv.Read(path)
	if err != nil {
		fileEnv = nil
		if errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
	}

	lookup := func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := fileEnv[key]
		return value, ok
	}
	return fromLookup(lookup), err
}

func fromLookup(lookup func(string) (string, bool)) Config {
	config := Default()

	if level, ok := lookup("AGENDA_LOG_LEVEL"); ok && level != "" {
		config.LogLevel = level
	} else if debug, ok := lookup("DEBUG"); ok && debug == "1" {
		config.LogLevel = "debug"
	}

	if jsonLogs, ok := lookup("AGENDA_JSON_LOGS"); ok {
		config.JSONLogs = jsonLogs == "true"
	}

	if raw, ok := lookup("AGENDA_CHECK_INTERVAL"); ok {
		if interval, err := time.ParseDuration(raw); err == nil {
			config.CheckInterval = interval
		}
	}
	if config.CheckInterval < MinCheckInterval {
		config.CheckInterval = MinCheckInterval
	}

	return config
}
