package export

import (
	"archive/tar"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/ulikunitz/xz"
)

// WriteBundle writes a set of exporter outputs as a .tar.xz token bundle.
// Entries are written in sorted filename order with a fixed timestamp so
// identical inputs produce identical archives.
func WriteBundle(w io.Writer, files map[string][]byte) error {
	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}

	tw := tar.NewWriter(xzw)

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		hdr := &tar.Header{
			Name:    name,
			Mode:    0o644,
			Size:    int64(len(files[name])),
			ModTime: time.Unix(0, 0),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("failed to write tar header for %s: %w", name, err)
		}
		if _, err := tw.Write(files[name]); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to close tar: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to close xz stream: %w", err)
	}
	return nil
}

// ReadBundle reads a .tar.xz token bundle back into a filename -> content
// map.
func ReadBundle(r io.Reader) (map[string][]byte, error) {
	xzr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xz stream: %w", err)
	}

	files := make(map[string][]byte)
	tr := tar.NewReader(xzr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar entry: %w", err)
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", hdr.Name, err)
		}
		files[hdr.Name] = data
	}
	return files, nil
}
