package adapter

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/linecov/internal/model"
)

// Snapshot is the exported coverage of one run.
type Snapshot struct {
	// Session is the id of the instrument that measured the run.
	Session   string
	Generated time.Time
	Profile   m.Path
	// Files keep their Source on load as an excerpt holding the uncovered lines.
	Files []m.FileCoverage
}

// snapshotFile is the on-disk form of one file: its coverage plus the text of its
// uncovered lines.
type snapshotFile struct {
	m.FileCoverage `yaml:",inline"`

	Text map[int]string `yaml:"text,omitempty"`
}

type snapshotDocument struct {
	Session   string         `yaml:"session,omitempty"`
	Generated time.Time      `yaml:"generated"`
	Profile   m.Path         `yaml:"profile"`
	Files     []snapshotFile `yaml:"files"`
}

func toDocument(snapshot Snapshot) snapshotDocument {
	doc := snapshotDocument{
		Session:   snapshot.Session,
		Generated: snapshot.Generated,
		Profile:   snapshot.Profile,
		Files:     make([]snapshotFile, 0, len(snapshot.Files)),
	}

	for _, file := range snapshot.Files {
		var text map[int]string

		for _, n := range file.UncoveredLines {
			line := file.LineText(n)
			if line == "" {
				continue
			}

			if text == nil {
				text = make(map[int]string)
			}

			text[n] = line
		}

		file.Source = nil
		doc.Files = append(doc.Files, snapshotFile{FileCoverage: file, Text: text})
	}

	return doc
}

func fromDocument(doc snapshotDocument) Snapshot {
	snapshot := Snapshot{
		Session:   doc.Session,
		Generated: doc.Generated,
		Profile:   doc.Profile,
		Files:     make([]m.FileCoverage, 0, len(doc.Files)),
	}

	for _, file := range doc.Files {
		coverage := file.FileCoverage
		coverage.Source = m.NewExcerpt(coverage.Path, coverage.TotalLines, file.Text)
		snapshot.Files = append(snapshot.Files, coverage)
	}

	return snapshot
}

// ReportStore persists and retrieves exported coverage snapshots.
type ReportStore interface {
	SaveSnapshot(path m.Path, snapshot Snapshot) error
	LoadSnapshot(path m.Path) (Snapshot, error)
}

// LocalReportStore stores snapshots as YAML files.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveSnapshot writes snapshot to path, replacing any existing file.
func (rs *LocalReportStore) SaveSnapshot(path m.Path, snapshot Snapshot) error {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(toDocument(snapshot)); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.WriteFile(string(path), buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}

	return nil
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func (rs *LocalReportStore) LoadSnapshot(path m.Path) (Snapshot, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var doc snapshotDocument

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&doc); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	return fromDocument(doc), nil
}
