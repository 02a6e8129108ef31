// Package autocomplete offers the packages of the current cargo workspace as shell completions.
package autocomplete

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dvub/npcli/pkg/manifest"
	"github.com/spf13/cobra"
)

// Package is a cargo package found in the workspace
type Package struct {
	Name        string
	Dir         string
	Description string
}

type AutoCompleter struct {
	// Dir is the workspace root
	Dir string
}

// GetPackages returns the root package and every workspace member, sorted by name.
// Members that can not be read are skipped.
func (a *AutoCompleter) GetPackages() ([]Package, error) {
	root, err := manifest.Read(filepath.Join(a.Dir, "Cargo.toml"))
	if err != nil {
		return nil, err
	}

	var packages []Package
	if name := root.Name(); name != "" {
		packages = append(packages, Package{Name: name, Dir: ".", Description: root.Description()})
	}

	for _, pattern := range root.Members() {
		dirs, err := filepath.Glob(filepath.Join(a.Dir, pattern))
		if err != nil {
			continue
		}
		for _, dir := range dirs {
			m, err := manifest.Read(filepath.Join(dir, "Cargo.toml"))
			if err != nil || m.Name() == "" {
				continue
			}
			rel, err := filepath.Rel(a.Dir, dir)
			if err != nil {
				rel = dir
			}
			packages = append(packages, Package{Name: m.Name(), Dir: rel, Description: m.Description()})
		}
	}

	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Name < packages[j].Name
	})
	return packages, nil
}

// Complete returns the packages starting with toComplete that are not in args yet
func (a *AutoCompleter) Complete(args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// error is ignored on purpose, there just is nothing to complete
	packages, _ := a.GetPackages()

	used := make(map[string]bool, len(args))
	for _, arg := range args {
		used[arg] = true
	}

	var matches []string
	for _, p := range packages {
		if used[p.Name] || !strings.HasPrefix(p.Name, toComplete) {
			continue
		}
		dir := lipgloss.NewStyle().Width(16).Render(p.Dir)
		matches = append(matches, fmt.Sprintf("%s\t%s %s", p.Name, dir, p.Description))
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
