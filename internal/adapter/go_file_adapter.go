package adapter

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	m "github.com/mouse-blink/linecov/internal/model"
)

// GoFileAdapter encapsulates Go-specific parsing so the domain layer can ask
// questions about a source file without depending on go/parser.
type GoFileAdapter interface {
	// IsGenerated reports whether the file carries a "Code generated ... DO NOT EDIT."
	// header. src may be nil, in which case the file is read from disk.
	IsGenerated(path m.Path, src []byte) (bool, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// IsGenerated parses the file up to its package clause and checks the header
// comments with ast.IsGenerated.
func (a *LocalGoFileAdapter) IsGenerated(path m.Path, src []byte) (bool, error) {
	var input any
	if src != nil {
		input = src
	}

	file, err := parser.ParseFile(token.NewFileSet(), string(path), input, parser.PackageClauseOnly|parser.ParseComments)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}

	return ast.IsGenerated(file), nil
}
