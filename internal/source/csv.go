package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"commerce-dashboard/internal/table"
)

// CSVSource reads tables from <dir>/<name>.csv. It is the default backend
// and the one whose failure modes (missing file, malformed content) the
// loader is designed around.
type CSVSource struct {
	dir string
}

func NewCSVSource(dir string) *CSVSource {
	return &CSVSource{dir: dir}
}

func (s *CSVSource) Fetch(_ context.Context, name string) (table.Table, error) {
	path := filepath.Join(s.dir, name+".csv")
	f, err := os.Open(path)
	if err != nil {
		return table.Empty(), fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	// Source files are not guaranteed rectangular.
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return table.Empty(), fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return table.Empty(), nil
	}
	return table.Table{Header: records[0], Records: records[1:]}, nil
}

func (s *CSVSource) Close() error { return nil }
