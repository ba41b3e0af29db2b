package process

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// importFile is the on-disk shape of a bulk import file: either a bare
// list of records or a document with a top-level "processes" key.
type importFile struct {
	Processes []Record `yaml:"processes"`
}

// ParseImportFile reads process records from a YAML file.
func ParseImportFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc importFile
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Processes) > 0 {
		return doc.Processes, nil
	}

	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

// ImportRecords inserts the given records, skipping ones without a
// name. It returns the number imported and calls progress after each
// record when non-nil.
func (s *Store) ImportRecords(ctx context.Context, records []Record, progress func(done int, name string)) (int, error) {
	imported := 0
	for i, r := range records {
		if r.Name == "" {
			continue
		}
		if _, err := s.Create(ctx, r); err != nil {
			return imported, fmt.Errorf("importing record %d (%s): %w", i+1, r.Name, err)
		}
		imported++
		if progress != nil {
			progress(i+1, r.Name)
		}
	}
	return imported, nil
}
