package adapter

import (
	"fmt"

	"golang.org/x/tools/cover"

	m "github.com/mouse-blink/linecov/internal/model"
)

// ProfileAdapter reads recorded execution traces.
type ProfileAdapter interface {
	// Parse reads the Go cover profile at path.
	Parse(path m.Path) ([]m.FileProfile, error)
}

// LocalProfileAdapter parses `go test -coverprofile` output with golang.org/x/tools/cover.
type LocalProfileAdapter struct{}

// NewLocalProfileAdapter constructs a LocalProfileAdapter.
func NewLocalProfileAdapter() *LocalProfileAdapter {
	return &LocalProfileAdapter{}
}

// Parse converts every profile block to a model.Block. Column information is
// dropped: regions are line spans.
func (a *LocalProfileAdapter) Parse(path m.Path) ([]m.FileProfile, error) {
	profiles, err := cover.ParseProfiles(string(path))
	if err != nil {
		return nil, fmt.Errorf("parse cover profile %s: %w", path, err)
	}

	out := make([]m.FileProfile, 0, len(profiles))

	for _, profile := range profiles {
		fp := m.FileProfile{
			FileName: profile.FileName,
			Mode:     profile.Mode,
			Blocks:   make([]m.Block, 0, len(profile.Blocks)),
		}

		for _, b := range profile.Blocks {
			fp.Blocks = append(fp.Blocks, m.Block{
				Region:     m.Region{StartLine: b.StartLine, EndLine: b.EndLine},
				Statements: b.NumStmt,
				Count:      b.Count,
			})
		}

		out = append(out, fp)
	}

	return out, nil
}
