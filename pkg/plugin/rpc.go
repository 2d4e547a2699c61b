// Package plugin provides the public API for ramptone exporter plugins.
package plugin

import (
	"context"
	"encoding/json"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// ExporterRPC implements the go-plugin Plugin interface for exporters.
type ExporterRPC struct {
	plugin.Plugin
	Impl Exporter
}

// Server returns an RPC server for this plugin.
func (p *ExporterRPC) Server(*plugin.MuxBroker) (any, error) {
	return &ExporterRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *ExporterRPC) Client(b *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &ExporterRPCClient{client: c}, nil
}

// ExporterRPCServer is the RPC server implementation for exporters.
type ExporterRPCServer struct {
	Impl Exporter
}

// Export implements the RPC method for palette export. Files cross the
// wire as JSON to keep the payload gob-free on both ends.
func (s *ExporterRPCServer) Export(palette PaletteData, resp *[]byte) error {
	files, err := s.Impl.Export(context.Background(), palette)
	if err != nil {
		return err
	}

	data, err := json.Marshal(files)
	if err != nil {
		return err
	}

	*resp = data
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *ExporterRPCServer) GetMetadata(_ any, resp *Info) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// ExporterRPCClient is the RPC client implementation for exporters.
type ExporterRPCClient struct {
	client *rpc.Client
}

// Export calls the remote Export method.
func (c *ExporterRPCClient) Export(_ context.Context, palette PaletteData) (map[string][]byte, error) {
	var respBytes []byte
	if err := c.client.Call("Plugin.Export", palette, &respBytes); err != nil {
		return nil, err
	}

	var files map[string][]byte
	if err := json.Unmarshal(respBytes, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// GetMetadata calls the remote GetMetadata method.
func (c *ExporterRPCClient) GetMetadata() (Info, error) {
	var info Info
	err := c.client.Call("Plugin.GetMetadata", new(any), &info)
	return info, err
}
