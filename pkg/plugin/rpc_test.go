package plugin

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// mockExporter is a test double for the exporter interface.
type mockExporter struct {
	files     map[string][]byte
	metadata  Info
	exportErr error
}

func (m *mockExporter) Export(_ context.Context, _ PaletteData) (map[string][]byte, error) {
	if m.exportErr != nil {
		return nil, m.exportErr
	}
	return m.files, nil
}

func (m *mockExporter) GetMetadata() Info {
	return m.metadata
}

func TestExporterRPCServerExport(t *testing.T) {
	mock := &mockExporter{
		files: map[string][]byte{
			"tokens.css": []byte(":root {}\n"),
		},
	}
	server := &ExporterRPCServer{Impl: mock}

	palette := PaletteData{
		Ramps: []RampData{{
			ColorID: "brand",
			Stops:   []StopData{{Number: 500, Hex: "#3366FF", Lightness: 0.57}},
		}},
	}

	var resp []byte
	if err := server.Export(palette, &resp); err != nil {
		t.Fatal(err)
	}

	var files map[string][]byte
	if err := json.Unmarshal(resp, &files); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if string(files["tokens.css"]) != ":root {}\n" {
		t.Errorf("unexpected file payload: %q", files["tokens.css"])
	}
}

func TestExporterRPCServerExportError(t *testing.T) {
	server := &ExporterRPCServer{Impl: &mockExporter{exportErr: errors.New("boom")}}

	var resp []byte
	if err := server.Export(PaletteData{}, &resp); err == nil {
		t.Error("implementation error should propagate over RPC")
	}
}

func TestExporterRPCServerMetadata(t *testing.T) {
	want := Info{
		Name:            "mock",
		Version:         "1.2.3",
		ProtocolVersion: ProtocolVersion,
		Description:     "test exporter",
	}
	server := &ExporterRPCServer{Impl: &mockExporter{metadata: want}}

	var got Info
	if err := server.GetMetadata(nil, &got); err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("metadata = %+v, want %+v", got, want)
	}
}

func TestExporterRPCPluginConstructors(t *testing.T) {
	p := &ExporterRPC{Impl: &mockExporter{}}

	srv, err := p.Server(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := srv.(*ExporterRPCServer); !ok {
		t.Errorf("Server() returned %T", srv)
	}

	cli, err := p.Client(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cli.(*ExporterRPCClient); !ok {
		t.Errorf("Client() returned %T", cli)
	}
}

func TestPaletteDataJSONRoundTrip(t *testing.T) {
	in := PaletteData{
		Ramps: []RampData{{
			ColorID:       "accent",
			HadDuplicates: true,
			Stops: []StopData{
				{Number: 50, Hex: "#EEF2FF", Lightness: 0.97},
				{Number: 500, Hex: "#3366FF", Lightness: 0.57, WasNudged: true},
			},
		}},
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	var out PaletteData
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Ramps) != 1 || len(out.Ramps[0].Stops) != 2 {
		t.Fatalf("lost data in round trip: %+v", out)
	}
	if out.Ramps[0].Stops[1].WasNudged != true {
		t.Error("WasNudged flag lost")
	}
}
