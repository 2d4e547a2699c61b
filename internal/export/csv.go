package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/ramptone/ramptone/internal/ramp"
)

// CSV renders ramps as comma-separated rows, one per stop.
type CSV struct{}

// NewCSV creates the CSV exporter.
func NewCSV() *CSV {
	return &CSV{}
}

// Name returns the exporter name.
func (e *CSV) Name() string {
	return "csv"
}

// Description returns the exporter description.
func (e *CSV) Description() string {
	return "CSV rows (colour, stop, hex, lightness, nudged, tooSimilar)"
}

// Export renders all ramps into a single tokens.csv file.
func (e *CSV) Export(results []ramp.Result) (map[string][]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"colour", "stop", "hex", "lightness", "nudged", "tooSimilar"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		for _, stop := range result.Stops {
			row := []string{
				result.ColorID,
				strconv.Itoa(stop.StopNumber),
				stop.Hex,
				strconv.FormatFloat(round3(stop.ExpandedL), 'f', 3, 64),
				strconv.FormatBool(stop.WasNudged),
				strconv.FormatBool(stop.TooSimilar),
			}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return map[string][]byte{"tokens.csv": buf.Bytes()}, nil
}
