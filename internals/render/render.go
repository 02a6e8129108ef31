// Package render turns a project config into Rust source code.
//
// Rendering is deterministic: the same config always produces the same bytes.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/dvub/npcli/internals/project"
	"github.com/stoewer/go-strcase"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var rustEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

var funcs = template.FuncMap{
	// rust escapes s for use inside a Rust string literal
	"rust": rustEscaper.Replace,
}

var templates = template.Must(
	template.New("").
		Funcs(funcs).
		Option("missingkey=error").
		ParseFS(templateFS, "templates/*.tmpl"),
)

// Output is the generated source code
type Output struct {
	// Lib is the content of src/lib.rs
	Lib string
	// Main is the content of src/main.rs, empty if no standalone executable is exported
	Main string
}

// HasMain reports whether a src/main.rs should be written
func (o *Output) HasMain() bool {
	return o.Main != ""
}

type libData struct {
	Type   string
	Name   string
	Vendor string
	URL    string
	Email  string
	Midi   string
}

type clapData struct {
	Type        string
	ID          string
	Description string
	Features    string
}

type vst3Data struct {
	Type          string
	ID            string
	Subcategories string
}

type mainData struct {
	Type  string
	Crate string
}

// Render generates the library source and, for standalone exports, the
// executable entry point. The library starts with the plugin itself, followed
// by the CLAP export and then the VST3 export.
func Render(cfg *project.Config) (*Output, error) {
	id := cfg.Identity
	typeName := TypeName(id.PluginName)

	var lib bytes.Buffer
	err := execute(&lib, "lib.rs.tmpl", libData{
		Type:   typeName,
		Name:   id.PluginName,
		Vendor: id.Vendor,
		URL:    id.URL,
		Email:  id.Email,
		Midi:   string(cfg.Midi),
	})
	if err != nil {
		return nil, err
	}

	if clap, ok := cfg.Exports.Clap(); ok {
		err := execute(&lib, "clap.rs.tmpl", clapData{
			Type:        typeName,
			ID:          clap.ID,
			Description: clap.Description,
			Features:    clap.Features.String(),
		})
		if err != nil {
			return nil, err
		}
	}

	if vst, ok := cfg.Exports.Vst3(); ok {
		err := execute(&lib, "vst3.rs.tmpl", vst3Data{
			Type:          typeName,
			ID:            vst.ID,
			Subcategories: vst.Subcategories.String(),
		})
		if err != nil {
			return nil, err
		}
	}

	out := &Output{Lib: lib.String()}

	if standalone, ok := cfg.Exports.Standalone(); ok {
		var entry bytes.Buffer
		err := execute(&entry, "main.rs.tmpl", mainData{
			Type:  TypeName(standalone.PluginName),
			Crate: CrateName(standalone.ProjectName),
		})
		if err != nil {
			return nil, err
		}
		out.Main = entry.String()
	}

	return out, nil
}

func execute(buf *bytes.Buffer, name string, data interface{}) error {
	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}

// TypeName turns a plugin name into a Rust type name, "big reverb" becomes "BigReverb"
func TypeName(pluginName string) string {
	name := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return r
		}
		return -1
	}, strcase.UpperCamelCase(pluginName))

	if name == "" || !unicode.IsLetter(rune(name[0])) {
		return "Plugin" + name
	}
	return name
}

// CrateName returns the name the library crate of a cargo package is imported as
func CrateName(projectName string) string {
	return strings.ReplaceAll(projectName, "-", "_")
}
