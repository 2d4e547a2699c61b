package export

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/ramptone/ramptone/internal/ramp"
)

//go:embed tokens.css.tmpl
var cssTemplates embed.FS

// CSS renders ramps as CSS custom properties.
type CSS struct {
	// Prefix is prepended to every variable name ("--<prefix><id>-<stop>").
	Prefix string
}

// NewCSS creates the CSS exporter with no variable prefix.
func NewCSS() *CSS {
	return &CSS{}
}

// Name returns the exporter name.
func (e *CSS) Name() string {
	return "css"
}

// Description returns the exporter description.
func (e *CSS) Description() string {
	return "CSS custom properties (one --<id>-<stop> variable per stop)"
}

type cssData struct {
	Prefix string
	Ramps  []cssRamp
}

type cssRamp struct {
	ID    string
	Stops []cssStop
}

type cssStop struct {
	Number int
	Hex    string
}

// Export renders all ramps into a single tokens.css file.
func (e *CSS) Export(results []ramp.Result) (map[string][]byte, error) {
	tmplContent, err := cssTemplates.ReadFile("tokens.css.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read CSS template: %w", err)
	}

	tmpl, err := template.New("tokens.css").Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSS template: %w", err)
	}

	data := cssData{Prefix: e.Prefix}
	for _, result := range results {
		r := cssRamp{ID: cssIdent(result.ColorID)}
		for _, stop := range result.Stops {
			r.Stops = append(r.Stops, cssStop{Number: stop.StopNumber, Hex: stop.Hex})
		}
		data.Ramps = append(data.Ramps, r)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}

	return map[string][]byte{"tokens.css": buf.Bytes()}, nil
}

// cssIdent makes a colour ID safe for use in a CSS custom property name.
func cssIdent(id string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(id) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "colour"
	}
	return b.String()
}
