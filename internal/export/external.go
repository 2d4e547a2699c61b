package export

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	"github.com/ramptone/ramptone/internal/ramp"
	"github.com/ramptone/ramptone/pkg/plugin"
)

// External wraps an out-of-process exporter plugin binary speaking the
// go-plugin protocol. The binary is launched per Export call and torn down
// afterwards.
type External struct {
	path   string
	logger hclog.Logger
}

// NewExternal creates an exporter backed by the plugin binary at path.
func NewExternal(path string, logger hclog.Logger) *External {
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return &External{path: path, logger: logger}
}

// Name returns the exporter name, derived from the binary name.
func (e *External) Name() string {
	return "external:" + filepath.Base(e.path)
}

// Description returns the exporter description.
func (e *External) Description() string {
	return fmt.Sprintf("External exporter plugin (%s)", e.path)
}

// Export launches the plugin, hands it the palette over RPC, and collects
// the rendered files.
func (e *External) Export(results []ramp.Result) (map[string][]byte, error) {
	client := goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig: plugin.Handshake,
		Plugins: map[string]goplugin.Plugin{
			"exporter": &plugin.ExporterRPC{},
		},
		Cmd:              exec.Command(e.path),
		AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolNetRPC},
		Logger:           e.logger,
	})
	defer client.Kill()

	rpcClient, err := client.Client()
	if err != nil {
		return nil, fmt.Errorf("failed to start plugin %s: %w", e.path, err)
	}

	raw, err := rpcClient.Dispense("exporter")
	if err != nil {
		return nil, fmt.Errorf("failed to dispense exporter from %s: %w", e.path, err)
	}

	exporter, ok := raw.(*plugin.ExporterRPCClient)
	if !ok {
		return nil, fmt.Errorf("plugin %s exposed an unexpected type %T", e.path, raw)
	}

	files, err := exporter.Export(context.Background(), ToPaletteData(results))
	if err != nil {
		return nil, fmt.Errorf("plugin %s export failed: %w", e.path, err)
	}
	return files, nil
}

// ToPaletteData converts engine results into the JSON-safe plugin payload.
func ToPaletteData(results []ramp.Result) plugin.PaletteData {
	data := plugin.PaletteData{Ramps: make([]plugin.RampData, 0, len(results))}
	for _, result := range results {
		r := plugin.RampData{
			ColorID:       result.ColorID,
			HadDuplicates: result.HadDuplicates,
			Stops:         make([]plugin.StopData, 0, len(result.Stops)),
		}
		for _, stop := range result.Stops {
			r.Stops = append(r.Stops, plugin.StopData{
				Number:     stop.StopNumber,
				Hex:        stop.Hex,
				Lightness:  stop.ExpandedL,
				WasNudged:  stop.WasNudged,
				TooSimilar: stop.TooSimilar,
				DeltaE:     stop.DeltaE,
			})
		}
		data.Ramps = append(data.Ramps, r)
	}
	return data
}
