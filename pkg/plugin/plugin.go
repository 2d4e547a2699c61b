// Package plugin provides the public API for ramptone exporter plugins.
// External plugins should import this package instead of internal
// packages.
package plugin

import (
	"context"

	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current plugin API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.1.0"
)

// Handshake is the handshake configuration for the go-plugin protocol.
// It ensures exporter plugins only connect to compatible hosts.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  0, // Major version from ProtocolVersion
	MagicCookieKey:   "RAMPTONE_PLUGIN",
	MagicCookieValue: "ramptone_token_exporter",
}

// Exporter is the interface exporter plugins must implement for go-plugin
// RPC.
type Exporter interface {
	// Export renders the palette into one or more files.
	// Returns a map of filename -> content.
	Export(ctx context.Context, palette PaletteData) (map[string][]byte, error)

	// GetMetadata returns plugin metadata.
	GetMetadata() Info
}

// Info contains metadata about an exporter plugin.
type Info struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
}

// PaletteData is the JSON-safe palette payload sent to exporter plugins.
type PaletteData struct {
	Ramps []RampData `json:"ramps"`
}

// RampData is one generated colour ramp.
type RampData struct {
	ColorID       string     `json:"colorId"`
	Stops         []StopData `json:"stops"`
	HadDuplicates bool       `json:"hadDuplicates"`
}

// StopData is one generated stop with its diagnostics.
type StopData struct {
	Number     int     `json:"number"`
	Hex        string  `json:"hex"`
	Lightness  float64 `json:"lightness"`
	WasNudged  bool    `json:"wasNudged,omitempty"`
	TooSimilar bool    `json:"tooSimilar,omitempty"`
	DeltaE     float64 `json:"deltaE,omitempty"`
}

// Serve runs an exporter implementation as a go-plugin server. Plugin
// binaries call this from main.
func Serve(impl Exporter) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			"exporter": &ExporterRPC{Impl: impl},
		},
	})
}
