// Package settings reads the device configuration file, config/system.json,
// written by the desktop config editor. Only the command-line shell uses it;
// the scanner never does.
package settings

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// RelPath is where the file lives on the device card.
const RelPath = "config/system.json"

const (
	MaxBrightness = 3
	MinHeartbeat  = 40
	MaxHeartbeat  = 240
)

// Complication positions.
const (
	TopLeft     = "top_left"
	TopRight    = "top_right"
	BottomLeft  = "bottom_left"
	BottomRight = "bottom_right"
)

// Complication types.
const (
	CompOff          = "off"
	CompTemperatureC = "temperature_c"
	CompHumidity     = "humidity_percent"
	CompBattery      = "battery_percent"
	CompWifiStrength = "wifi_strength_percent"
)

type Logging struct {
	Enabled bool   `json:"enabled"`
	Level   string `json:"level"`
}

type Complication struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

type UI struct {
	Complications map[string]Complication `json:"complications"`
}

// Settings mirrors system.json.
type Settings struct {
	Brightness     int     `json:"brightness"`
	HeartbeatSpeed int     `json:"heartbeat_speed"`
	Language       string  `json:"language"`
	Logging        Logging `json:"logging"`
	UI             UI      `json:"ui"`
}

// Defaults are what the device writes when the file is missing.
func Defaults() Settings {
	return Settings{
		Brightness:     2,
		HeartbeatSpeed: 120,
		Language:       "en",
		Logging:        Logging{Enabled: true, Level: "info"},
		UI: UI{Complications: map[string]Complication{
			TopLeft:     {Type: CompTemperatureC, Label: "T"},
			TopRight:    {Type: CompHumidity, Label: "H"},
			BottomLeft:  {Type: CompBattery, Label: "BAT"},
			BottomRight: {Type: CompWifiStrength, Label: "WiFi"},
		}},
	}
}

// file is the on-disk shape; pointers tell "absent" from "zero".
type file struct {
	Brightness     *int    `json:"brightness"`
	HeartbeatSpeed *int    `json:"heartbeat_speed"`
	Language       *string `json:"language"`
	Logging        *struct {
		Enabled *bool   `json:"enabled"`
		Level   *string `json:"level"`
	} `json:"logging"`
	UI *struct {
		Complications map[string]struct {
			Type  *string `json:"type"`
			Label *string `json:"label"`
		} `json:"complications"`
	} `json:"ui"`
}

// Load reads path over Defaults. On any error it returns Defaults together
// with the error, the way the device falls back.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	s, err := Parse(data)
	if err != nil {
		return Defaults(), fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes data over Defaults and clamps every field into range.
func Parse(data []byte) (Settings, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return Defaults(), err
	}
	s := Defaults()
	if f.Brightness != nil {
		s.Brightness = clamp(*f.Brightness, 0, MaxBrightness)
	}
	if f.HeartbeatSpeed != nil {
		s.HeartbeatSpeed = clamp(*f.HeartbeatSpeed, MinHeartbeat, MaxHeartbeat)
	}
	if f.Language != nil {
		s.Language = *f.Language
	}
	if f.Logging != nil {
		if f.Logging.Enabled != nil {
			s.Logging.Enabled = *f.Logging.Enabled
		}
		if f.Logging.Level != nil {
			s.Logging.Level = LevelName(ParseLevel(*f.Logging.Level))
		}
	}
	if f.UI != nil {
		for pos, c := range f.UI.Complications {
			cur, ok := s.UI.Complications[pos]
			if !ok {
				continue
			}
			if c.Type != nil {
				cur.Type = ParseComplicationType(*c.Type)
			}
			if c.Label != nil {
				cur.Label = *c.Label
			}
			s.UI.Complications[pos] = cur
		}
	}
	return s, nil
}

// Marshal renders s the way the device writes the file.
func Marshal(s Settings) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ParseLevel maps a level name to slog; unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// LevelName is the inverse of ParseLevel.
func LevelName(l slog.Level) string {
	switch {
	case l <= slog.LevelDebug:
		return "debug"
	case l >= slog.LevelError:
		return "error"
	case l >= slog.LevelWarn:
		return "warn"
	}
	return "info"
}

// LogLevel is the effective level: disabled logging keeps only errors.
func (s Settings) LogLevel() slog.Level {
	if !s.Logging.Enabled {
		return slog.LevelError
	}
	return ParseLevel(s.Logging.Level)
}

// ParseComplicationType accepts the editor's names; "none" and unknown
// values turn the slot off.
func ParseComplicationType(s string) string {
	switch v := strings.ToLower(s); v {
	case CompTemperatureC, CompHumidity, CompBattery, CompWifiStrength:
		return v
	}
	return CompOff
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
