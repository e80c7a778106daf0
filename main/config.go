package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/rawbytedev/ucwire"
)

type fileConfig struct {
	StartMarker string `toml:"start_marker"`
	StopMarker  string `toml:"stop_marker"`
}

type dumpConfig struct {
	Start byte
	Stop  byte
}

func defaultConfig() dumpConfig {
	return dumpConfig{Start: ucwire.DefaultStart, Stop: ucwire.DefaultStop}
}

// loadConfig reads marker overrides from a TOML file. Markers may be given
// as a single character ("A") or as hex ("0x41").
func loadConfig(path string) (dumpConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return dumpConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("start_marker") {
		b, err := parseMarker(raw.StartMarker)
		if err != nil {
			return dumpConfig{}, fmt.Errorf("parse start_marker: %w", err)
		}
		cfg.Start = b
	}
	if meta.IsDefined("stop_marker") {
		b, err := parseMarker(raw.StopMarker)
		if err != nil {
			return dumpConfig{}, fmt.Errorf("parse stop_marker: %w", err)
		}
		cfg.Stop = b
	}
	return cfg, nil
}

func parseMarker(s string) (byte, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	var v int
	if _, err := fmt.Sscanf(s, "0x%x", &v); err == nil && v >= 0 && v <= 0xFF {
		return byte(v), nil
	}
	return 0, fmt.Errorf("marker %q is not a single character or 0xNN byte", s)
}
