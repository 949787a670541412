// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/publication-engine/pkg/types"
)

// ListFile is the on-disk representation of a fetched publication list.
// Saving a fetch lets later export runs reuse it without re-querying the
// source.
type ListFile struct {
	Query        ListQuery           `yaml:"query"`
	Publications []types.Publication `yaml:"publications"`
	Summary      ListSummary         `yaml:"summary"`
}

// ListQuery stores the query that produced the list.
type ListQuery struct {
	Author string `yaml:"author"`
}

// ListSummary stores result statistics and a timestamp.
type ListSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteListFile saves the session's fetched set to a YAML file.
func (s *Session) WriteListFile(path string) error {
	lf := ListFile{
		Query:        ListQuery{Author: s.name},
		Publications: s.all,
		Summary: ListSummary{
			Total:     len(s.all),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&lf)
	if err != nil {
		return fmt.Errorf("marshaling list file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadListFile loads a previously saved publication list from disk.
func ReadListFile(path string) (*ListFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading list file: %w", err)
	}
	var lf ListFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parsing list file: %w", err)
	}
	return &lf, nil
}
