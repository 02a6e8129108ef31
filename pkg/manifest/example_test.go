package manifest_test

import (
	"fmt"

	"github.com/dvub/npcli/pkg/manifest"
)

// Add nih-plug to a Cargo.toml generated by `cargo new --lib`
func ExampleApply() {
	raw := []byte(`
[package]
name = "gain"
version = "0.1.0"
edition = "2021"

[dependencies]
`)
	out, _, err := manifest.Apply(raw, false)
	if err != nil {
		panic(err)
	}

	m, _ := manifest.Parse(out)
	dep, _ := m.Dependency(manifest.DependencyName)
	fmt.Println(dep.Git)
	fmt.Println(dep.Features)
	fmt.Println(m.CrateTypes())
	// Output:
	// https://github.com/robbert-vdh/nih-plug.git
	// [assert_process_allocs]
	// [cdylib]
}

// Inspect an existing manifest
func ExampleManifest_Dependency() {
	m, err := manifest.Parse([]byte(`
[package]
name = "gain"

[dependencies]
serde = "1.0"
`))
	if err != nil {
		panic(err)
	}

	dep, ok := m.Dependency("serde")
	fmt.Println(m.Name(), ok, dep.Version)
	// Output:
	// gain true 1.0
}
