package export

import (
	"encoding/json"
	"fmt"

	"github.com/ramptone/ramptone/internal/ramp"
)

// JSON renders ramps as a design-token JSON document, one entry per stop
// under its colour's key.
type JSON struct{}

// NewJSON creates the JSON exporter.
func NewJSON() *JSON {
	return &JSON{}
}

// Name returns the exporter name.
func (e *JSON) Name() string {
	return "json"
}

// Description returns the exporter description.
func (e *JSON) Description() string {
	return "Design-token JSON (value/type per stop, diagnostics included)"
}

type jsonToken struct {
	Value      string  `json:"value"`
	Type       string  `json:"type"`
	Lightness  float64 `json:"lightness"`
	WasNudged  bool    `json:"wasNudged,omitempty"`
	TooSimilar bool    `json:"tooSimilar,omitempty"`
}

type jsonRamp struct {
	Stops         map[string]jsonToken `json:"stops"`
	HadDuplicates bool                 `json:"hadDuplicates,omitempty"`
}

// Export renders all ramps into a single tokens.json file.
func (e *JSON) Export(results []ramp.Result) (map[string][]byte, error) {
	doc := map[string]jsonRamp{}
	for _, result := range results {
		r := jsonRamp{
			Stops:         make(map[string]jsonToken, len(result.Stops)),
			HadDuplicates: result.HadDuplicates,
		}
		for _, stop := range result.Stops {
			r.Stops[fmt.Sprintf("%d", stop.StopNumber)] = jsonToken{
				Value:      stop.Hex,
				Type:       "color",
				Lightness:  round3(stop.ExpandedL),
				WasNudged:  stop.WasNudged,
				TooSimilar: stop.TooSimilar,
			}
		}
		doc[result.ColorID] = r
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tokens: %w", err)
	}
	data = append(data, '\n')

	return map[string][]byte{"tokens.json": data}, nil
}

// round3 fixes the number of decimals the JSON exporter publishes.
func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}
