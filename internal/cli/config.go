package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/ramptone/ramptone/internal/colour"
	"github.com/ramptone/ramptone/internal/ramp"
)

// FileConfig is the on-disk ramp-set configuration, decodable from TOML or
// JSON (picked by file extension).
type FileConfig struct {
	Background string        `toml:"background" json:"background"`
	Colors     []ColorConfig `toml:"color" json:"colors"`
}

// ColorConfig describes one colour's ramp in a config file.
type ColorConfig struct {
	ID                 string             `toml:"id" json:"id"`
	Base               string             `toml:"base" json:"base"`
	Method             string             `toml:"method" json:"method"`
	PreserveIdentity   bool               `toml:"preserve-identity" json:"preserveIdentity"`
	HueCorrection      bool               `toml:"hue-correction" json:"hueCorrection"`
	HueDriftCorrection bool               `toml:"hue-drift-correction" json:"hueDriftCorrection"`
	CorrectOverrides   bool               `toml:"correct-overrides" json:"correctOverrides"`
	HueShift           *HueShiftConfig    `toml:"hue-shift" json:"hueShift,omitempty"`
	ChromaCurve        *ChromaCurveConfig `toml:"chroma-curve" json:"chromaCurve,omitempty"`
	Stops              []StopConfig       `toml:"stop" json:"stops,omitempty"`
}

// HueShiftConfig mirrors ramp.HueShift for config files.
type HueShiftConfig struct {
	Preset   string  `toml:"preset" json:"preset"`
	LightDeg float64 `toml:"light-deg" json:"lightDeg"`
	DarkDeg  float64 `toml:"dark-deg" json:"darkDeg"`
	Invert   bool    `toml:"invert" json:"invert"`
}

// ChromaCurveConfig mirrors ramp.ChromaCurve for config files.
type ChromaCurveConfig struct {
	Preset   string             `toml:"preset" json:"preset"`
	LightPct float64            `toml:"light-pct" json:"lightPct"`
	MidPct   float64            `toml:"mid-pct" json:"midPct"`
	DarkPct  float64            `toml:"dark-pct" json:"darkPct"`
	Points   []CurvePointConfig `toml:"point" json:"points,omitempty"`
}

// CurvePointConfig is one custom chroma-curve control point.
type CurvePointConfig struct {
	L       float64 `toml:"l" json:"l"`
	Percent float64 `toml:"percent" json:"percent"`
}

// StopConfig overrides a single stop: a target lightness, a target
// contrast ratio, or a full manual hex override.
type StopConfig struct {
	Number    int      `toml:"number" json:"number"`
	Lightness *float64 `toml:"lightness" json:"lightness,omitempty"`
	Contrast  *float64 `toml:"contrast" json:"contrast,omitempty"`
	Hex       string   `toml:"hex" json:"hex,omitempty"`
}

// LoadConfig reads and validates a ramp-set configuration file. Colours
// without an explicit ID are assigned one.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (use .toml or .json)", filepath.Ext(path))
	}

	if len(cfg.Colors) == 0 {
		return nil, fmt.Errorf("config defines no colours")
	}
	for i := range cfg.Colors {
		if cfg.Colors[i].Base == "" {
			return nil, fmt.Errorf("colour %d has no base colour", i)
		}
		if cfg.Colors[i].ID == "" {
			cfg.Colors[i].ID = uuid.NewString()
		}
	}

	return &cfg, nil
}

// ToRamp converts a colour's file configuration into engine inputs.
func (c ColorConfig) ToRamp(background string) (ramp.Config, []ramp.Stop) {
	cfg := ramp.Config{
		BaseColor:          c.Base,
		Method:             ramp.Method(c.Method),
		Background:         background,
		PreserveIdentity:   c.PreserveIdentity,
		HueCorrection:      c.HueCorrection,
		HueDriftCorrection: c.HueDriftCorrection,
		CorrectOverrides:   c.CorrectOverrides,
	}

	if c.HueShift != nil {
		cfg.HueShift = &ramp.HueShift{
			Preset:   ramp.HueShiftPreset(c.HueShift.Preset),
			LightDeg: c.HueShift.LightDeg,
			DarkDeg:  c.HueShift.DarkDeg,
			Invert:   c.HueShift.Invert,
		}
	}
	if c.ChromaCurve != nil {
		curve := &ramp.ChromaCurve{
			Preset:   ramp.ChromaCurvePreset(c.ChromaCurve.Preset),
			LightPct: c.ChromaCurve.LightPct,
			MidPct:   c.ChromaCurve.MidPct,
			DarkPct:  c.ChromaCurve.DarkPct,
		}
		for _, p := range c.ChromaCurve.Points {
			curve.Points = append(curve.Points, ramp.CurvePoint{L: p.L, Percent: p.Percent})
		}
		cfg.ChromaCurve = curve
	}

	stops := ramp.DefaultStops()
	byNumber := make(map[int]int, len(stops))
	for i, s := range stops {
		byNumber[s.Number] = i
	}

	for _, sc := range c.Stops {
		stop := ramp.Stop{
			Number:            sc.Number,
			LightnessOverride: sc.Lightness,
			ContrastOverride:  sc.Contrast,
		}
		if sc.Hex != "" {
			manual := colour.ParseHex(sc.Hex)
			stop.ManualOverride = &manual
		}
		if i, ok := byNumber[sc.Number]; ok {
			stops[i] = stop
		} else {
			stops = append(stops, stop)
		}
	}

	return cfg, stops
}
