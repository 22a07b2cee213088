package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/OV2/snes9x-libsnes/libsnes"
)

// loadConfig reads the bridge configuration from path. An empty path or a
// missing file gives the defaults, and keys absent from the file keep their
// default values. Out-of-range settings are reset to their defaults.
func loadConfig(path string) (libsnes.Config, error) {
	cfg := libsnes.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if corrected := cfg.Settings.Validate(); len(corrected) > 0 {
		log.Printf("Config: reset out-of-range settings to defaults: %s", strings.Join(corrected, ", "))
	}
	return cfg, nil
}

var deviceNames = map[string]libsnes.DeviceKind{
	"joypad":     libsnes.DeviceJoypad,
	"multitap":   libsnes.DeviceMultitap,
	"mouse":      libsnes.DeviceMouse,
	"superscope": libsnes.DeviceSuperScope,
	"justifier":  libsnes.DeviceJustifier,
	"justifiers": libsnes.DeviceJustifiers,
}

// parseDevice maps a -port flag value to a device kind.
func parseDevice(name string) (libsnes.DeviceKind, error) {
	kind, ok := deviceNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown device %q", name)
	}
	return kind, nil
}
