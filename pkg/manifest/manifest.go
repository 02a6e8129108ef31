/*
Package manifest edits the "Cargo.toml" of a freshly generated plugin crate.

The crate skeleton created by cargo does not know about nih-plug. Mutate adds
the nih-plug dependency and the library crate types a plugin needs, and keeps
everything else in the file as it is.

Formatting

The document is written back by the TOML serializer. Keys and tables keep
their values and structure, but formatting and key order are normalized.
*/
package manifest

import (
	"bytes"
	"os"

	"github.com/dvub/npcli/internals/merrors"
	"github.com/dvub/npcli/internals/utils"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

const (
	// DependencyName is the key nih-plug is added as
	DependencyName = "nih_plug"
	// DependencyGit is the repository nih-plug is fetched from
	DependencyGit = "https://github.com/robbert-vdh/nih-plug.git"
	// FeatureBase is always enabled
	FeatureBase = "assert_process_allocs"
	// FeatureStandalone is enabled for projects with a standalone executable
	FeatureStandalone = "standalone"

	// CrateTypeDylib is the crate type plugin hosts load
	CrateTypeDylib = "cdylib"
	// CrateTypeLib lets the standalone executable link against the plugin library
	CrateTypeLib = "lib"
)

// Dependency is a single entry of the `[dependencies]` table
type Dependency struct {
	Version  string
	Git      string
	Features []string
}

// Manifest is a parsed Cargo.toml. Unknown content is kept untouched.
type Manifest struct {
	tree *toml.Tree
}

// Parse parses a Cargo.toml document
func Parse(src []byte) (*Manifest, error) {
	tree, err := toml.LoadBytes(src)
	if err != nil {
		return nil, merrors.Wrap(merrors.Manifest, errors.Wrap(err, "invalid Cargo.toml"), "could not parse manifest")
	}
	return &Manifest{tree: tree}, nil
}

// Read parses the Cargo.toml at path
func Read(path string) (*Manifest, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, merrors.Wrap(merrors.Manifest, err, "could not read manifest")
	}
	return Parse(src)
}

// Name returns `package.name` or an empty string
func (m *Manifest) Name() string {
	name, _ := m.tree.GetPath([]string{"package", "name"}).(string)
	return name
}

// Description returns `package.description` or an empty string
func (m *Manifest) Description() string {
	desc, _ := m.tree.GetPath([]string{"package", "description"}).(string)
	return desc
}

// Members returns `workspace.members`. Entries may contain glob patterns.
func (m *Manifest) Members() []string {
	return stringSlice(m.tree.GetPath([]string{"workspace", "members"}))
}

// Dependency returns the dependency called name. Plain version strings like
// `serde = "1.0"` are returned as a Dependency with only Version set.
func (m *Manifest) Dependency(name string) (Dependency, bool) {
	switch dep := m.tree.GetPath([]string{"dependencies", name}).(type) {
	case string:
		return Dependency{Version: dep}, true
	case *toml.Tree:
		version, _ := dep.Get("version").(string)
		git, _ := dep.Get("git").(string)
		return Dependency{
			Version:  version,
			Git:      git,
			Features: stringSlice(dep.Get("features")),
		}, true
	default:
		return Dependency{}, false
	}
}

// CrateTypes returns `lib.crate_type`
func (m *Manifest) CrateTypes() []string {
	return stringSlice(m.tree.GetPath([]string{"lib", "crate_type"}))
}

// SetNihPlug adds (or replaces) the nih-plug dependency
func (m *Manifest) SetNihPlug(standalone bool) error {
	features := []interface{}{FeatureBase}
	if standalone {
		features = append(features, FeatureStandalone)
	}

	dep, err := toml.TreeFromMap(map[string]interface{}{
		"git":      DependencyGit,
		"features": features,
	})
	if err != nil {
		return merrors.Wrap(merrors.Manifest, err, "could not build nih-plug dependency")
	}

	m.tree.SetPath([]string{"dependencies", DependencyName}, dep)
	return nil
}

// SetCrateTypes sets `lib.crate_type`. Other keys in `[lib]` are kept.
func (m *Manifest) SetCrateTypes(standalone bool) error {
	types := []interface{}{CrateTypeDylib}
	if standalone {
		types = append(types, CrateTypeLib)
	}

	if m.tree.Has("lib") {
		if _, ok := m.tree.Get("lib").(*toml.Tree); !ok {
			return merrors.New(merrors.Manifest, "`lib` in Cargo.toml is not a table")
		}
	}

	m.tree.SetPath([]string{"lib", "crate_type"}, types)
	return nil
}

// Bytes serializes the manifest. Tables are not indented, like cargo writes them.
func (m *Manifest) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := toml.NewEncoder(&buf).
		Indentation("").
		Order(toml.OrderAlphabetical).
		Encode(tableArrays(m.tree.ToMap()))
	if err != nil {
		return nil, merrors.Wrap(merrors.Manifest, err, "could not serialize manifest")
	}
	return buf.Bytes(), nil
}

// tableArrays retypes arrays of tables so the encoder writes them as
// [[name]] sections again instead of inline arrays
func tableArrays(v interface{}) interface{} {
	switch node := v.(type) {
	case map[string]interface{}:
		for k, child := range node {
			node[k] = tableArrays(child)
		}
		return node
	case []interface{}:
		if len(node) == 0 {
			return node
		}
		tables := make([]map[string]interface{}, 0, len(node))
		for _, item := range node {
			table, ok := item.(map[string]interface{})
			if !ok {
				return node
			}
			tables = append(tables, tableArrays(table).(map[string]interface{}))
		}
		return tables
	}
	return v
}

// String returns the manifest as TOML, or an empty string if it can not be serialized
func (m *Manifest) String() string {
	out, _ := m.Bytes()
	return string(bytes.TrimSpace(out))
}

// Apply adds the nih-plug dependency and crate types to src. Applying it
// again to its own output yields the same document.
// Problems that do not stop the mutation are returned as warnings.
func Apply(src []byte, standalone bool) ([]byte, Problems, error) {
	m, err := Parse(src)
	if err != nil {
		return nil, nil, err
	}
	problems := m.Validate()
	if err := problems.Fatal(); err != nil {
		return nil, nil, merrors.Wrap(merrors.Manifest, err, "unexpected Cargo.toml")
	}
	if err := m.SetNihPlug(standalone); err != nil {
		return nil, nil, err
	}
	if err := m.SetCrateTypes(standalone); err != nil {
		return nil, nil, err
	}
	out, err := m.Bytes()
	if err != nil {
		return nil, nil, err
	}
	return out, problems.Warnings(), nil
}

// Mutate applies Apply to the Cargo.toml at path and replaces it atomically.
// The file is left untouched if anything fails.
func Mutate(path string, standalone bool) (Problems, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, merrors.Wrap(merrors.Manifest, err, "could not read manifest")
	}

	out, warnings, err := Apply(src, standalone)
	if err != nil {
		return nil, err
	}

	if err := utils.WriteFileAtomic(path, out, 0o644); err != nil {
		return nil, merrors.Wrap(merrors.Manifest, errors.Wrap(err, path), "could not write manifest")
	}
	return warnings, nil
}

func stringSlice(v interface{}) []string {
	var items []string
	switch list := v.(type) {
	case []interface{}:
		for _, item := range list {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	case []string:
		items = append(items, list...)
	}
	return items
}
