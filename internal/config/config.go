package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
)

type Config struct {
	LogLevel slog.Level
	Output   Output
	Color    bool

	// grading engine
	PartialMulti    bool
	MaxEditDistance int
}

func FromEnv() Config {
	out := Output(strings.ToLower(os.Getenv("GRADECALC_OUTPUT")))
	if out != OutputJSON {
		out = OutputText
	}
	return Config{
		LogLevel:        ParseLevel(os.Getenv("LOG_LEVEL")),
		Output:          out,
		Color:           envBool("GRADECALC_COLOR", true),
		PartialMulti:    envBool("GRADECALC_PARTIAL_MULTI", true),
		MaxEditDistance: envInt("GRADECALC_MAX_EDIT_DISTANCE", 1),
	}
}

// ParseLevel falls back to Info for anything it does not recognise.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil || v < 0 {
		return def
	}
	return v
}
