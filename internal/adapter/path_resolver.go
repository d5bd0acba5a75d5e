package adapter

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	m "github.com/mouse-blink/linecov/internal/model"
)

// ErrUnresolved is returned when a trace file name cannot be mapped to a file on disk.
var ErrUnresolved = errors.New("file name not resolvable")

// Resolved is a trace file name mapped to disk.
type Resolved struct {
	Path     m.Path // absolute path on disk
	Display  m.Path // path shown in reports, relative to the project root when possible
	Internal bool   // outside the project or vendored
}

// PathResolver maps trace file names (`<import path>/<file>.go`) to files on disk.
type PathResolver interface {
	Resolve(fileName string) (Resolved, error)
}

// ModuleResolver resolves file names of a single module by replacing the module path
// prefix with the module root.
type ModuleResolver struct {
	root       string
	modulePath string
}

// NewModuleResolver creates a resolver for the module at root.
func NewModuleResolver(root m.Path, modulePath string) *ModuleResolver {
	return &ModuleResolver{
		root:       filepath.Clean(string(root)),
		modulePath: modulePath,
	}
}

// Resolve maps fileName into the module. Absolute names are taken as they are.
func (r *ModuleResolver) Resolve(fileName string) (Resolved, error) {
	switch {
	case filepath.IsAbs(fileName):
		return r.classify(filepath.Clean(fileName)), nil
	case r.modulePath != "" && strings.HasPrefix(fileName, r.modulePath+"/"):
		rel := strings.TrimPrefix(fileName, r.modulePath+"/")
		return r.classify(filepath.Join(r.root, filepath.FromSlash(rel))), nil
	default:
		return Resolved{}, fmt.Errorf("%w: %s is not part of module %s", ErrUnresolved, fileName, r.modulePath)
	}
}

func (r *ModuleResolver) classify(abs string) Resolved {
	resolved := Resolved{Path: m.Path(abs), Display: m.Path(abs), Internal: true}

	rel, err := filepath.Rel(r.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return resolved
	}

	resolved.Display = m.Path(filepath.ToSlash(rel))
	resolved.Internal = isVendored(rel)

	return resolved
}

func isVendored(rel string) bool {
	rel = filepath.ToSlash(rel)
	return strings.HasPrefix(rel, "vendor/") || strings.Contains(rel, "/vendor/")
}

// PackagesResolver resolves file names through golang.org/x/tools/go/packages, which
// also understands packages from other modules of the build. Names the loaded
// packages do not know fall back to a ModuleResolver.
type PackagesResolver struct {
	files    map[string]string
	fallback *ModuleResolver
}

// NewPackagesResolver loads patterns (usually "./...") from root.
func NewPackagesResolver(root m.Path, modulePath string, patterns ...string) (*PackagesResolver, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedFiles | packages.NeedModule,
		Dir:   string(root),
		Tests: false,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("packages.Load: %w", err)
	}

	files := make(map[string]string)

	for _, pkg := range pkgs {
		for _, file := range pkg.GoFiles {
			files[path.Join(pkg.PkgPath, filepath.Base(file))] = file
		}
	}

	return &PackagesResolver{
		files:    files,
		fallback: NewModuleResolver(root, modulePath),
	}, nil
}

// Resolve looks fileName up in the loaded packages first.
func (r *PackagesResolver) Resolve(fileName string) (Resolved, error) {
	if file, ok := r.files[fileName]; ok {
		return r.fallback.classify(filepath.Clean(file)), nil
	}

	return r.fallback.Resolve(fileName)
}
