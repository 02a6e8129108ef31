package manifest

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml"
)

const (
	ErrorLevelWarn = iota
	ErrorLevelFatal
)

type ValidationError struct {
	message string
	Path    string
	Level   int
}

func (e ValidationError) Error() string {
	return e.Path + " " + e.message
}

var (
	// ErrNameEmpty is returned when the manifest has no package name.
	ErrNameEmpty = ValidationError{
		message: "is empty",
		Path:    "package.name",
		Level:   ErrorLevelWarn,
	}
	// ErrNameInvalid is returned when the package name is not a valid crate name.
	ErrNameInvalid = ValidationError{
		message: "is not a valid crate name",
		Path:    "package.name",
		Level:   ErrorLevelWarn,
	}
	// ErrInvalidRustVersion is returned when `package.rust-version` is not a version.
	ErrInvalidRustVersion = ValidationError{
		message: "is not a valid version",
		Path:    "package.rust-version",
		Level:   ErrorLevelWarn,
	}
	// ErrNoDependencies is returned when the manifest has no `[dependencies]` table.
	ErrNoDependencies = ValidationError{
		message: "table is missing",
		Path:    "dependencies",
		Level:   ErrorLevelFatal,
	}
	// ErrDependenciesNotTable is returned when `dependencies` is a plain value.
	ErrDependenciesNotTable = ValidationError{
		message: "is not a table",
		Path:    "dependencies",
		Level:   ErrorLevelFatal,
	}
	// ErrLibNotTable is returned when `lib` is a plain value.
	ErrLibNotTable = ValidationError{
		message: "is not a table",
		Path:    "lib",
		Level:   ErrorLevelFatal,
	}
)

// helper regexes
var (
	validName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

type Problems []ValidationError

// Fatal returns the first fatal error in the list. If there are no fatal errors, it returns nil.
func (p Problems) Fatal() error {
	for _, problem := range p {
		if problem.Level == ErrorLevelFatal {
			return problem
		}
	}
	return nil
}

// Warnings returns the problems that are not fatal
func (p Problems) Warnings() Problems {
	warnings := Problems{}
	for _, problem := range p {
		if problem.Level == ErrorLevelWarn {
			warnings = append(warnings, problem)
		}
	}
	return warnings
}

// Validate checks that the manifest can be mutated. Only fatal problems stop
// Apply, the rest are reported as warnings.
func (m *Manifest) Validate() Problems {
	problems := Problems{}

	// package name
	name := m.Name()
	switch {
	case name == "":
		problems = append(problems, ErrNameEmpty)
	case !validName.MatchString(name):
		problems = append(problems, ErrNameInvalid)
	}

	if rv, ok := m.tree.GetPath([]string{"package", "rust-version"}).(string); ok {
		if _, err := semver.NewVersion(rv); err != nil {
			problems = append(problems, ErrInvalidRustVersion)
		}
	}

	switch {
	case !m.tree.Has("dependencies"):
		problems = append(problems, ErrNoDependencies)
	case !isTable(m.tree.Get("dependencies")):
		problems = append(problems, ErrDependenciesNotTable)
	}

	if m.tree.Has("lib") && !isTable(m.tree.Get("lib")) {
		problems = append(problems, ErrLibNotTable)
	}

	return problems
}

func isTable(v interface{}) bool {
	_, ok := v.(*toml.Tree)
	return ok
}
