// Package android generates Activity, ViewModel and layout boilerplate for Android projects.
package android

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/cockroachdb/errors"

	"github.com/xingmcp/toolservers/internal/config"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Request holds the caller's choices. Empty fields take the configured defaults.
type Request struct {
	PackageName    string
	ComponentName  string
	BindingPackage string
}

// Names are the identifiers derived from a request.
type Names struct {
	Package        string
	ActivityClass  string
	ViewModelClass string
	LayoutName     string
	BindingClass   string
	BindingImport  string
}

// Files is the generated source for one component.
type Files struct {
	Names
	Activity  string
	ViewModel string
	Layout    string
	Plan      string
}

// Generator renders the component templates.
type Generator struct {
	defaults  config.AndroidConfig
	templates *template.Template
}

// NewGenerator parses the embedded templates.
func NewGenerator(defaults config.AndroidConfig) (*Generator, error) {
	tmpl, err := template.New("android").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "parse android templates")
	}
	return &Generator{defaults: defaults, templates: tmpl}, nil
}

// Derive computes the class, layout and binding names for req.
func (g *Generator) Derive(req Request) Names {
	pkg := firstNonEmpty(req.PackageName, g.defaults.DefaultPackage)
	comp := firstNonEmpty(req.ComponentName, g.defaults.DefaultComponent)
	bindingPkg := firstNonEmpty(req.BindingPackage, g.defaults.BindingPackage)

	bindingClass := "Activity" + comp + "Binding"
	return Names{
		Package:        pkg,
		ActivityClass:  comp + "Activity",
		ViewModelClass: comp + "ViewModel",
		LayoutName:     "activity_" + strings.ToLower(comp),
		BindingClass:   bindingClass,
		BindingImport:  bindingPkg + "." + bindingClass,
	}
}

// Generate renders all files for req. Output depends only on req and the defaults.
func (g *Generator) Generate(req Request) (Files, error) {
	names := g.Derive(req)
	files := Files{Names: names}

	for _, t := range []struct {
		name string
		out  *string
	}{
		{"activity.kt.tmpl", &files.Activity},
		{"viewmodel.kt.tmpl", &files.ViewModel},
		{"layout.xml.tmpl", &files.Layout},
		{"plan.md.tmpl", &files.Plan},
	} {
		var buf bytes.Buffer
		if err := g.templates.ExecuteTemplate(&buf, t.name, names); err != nil {
			return Files{}, errors.Wrapf(err, "render %s", t.name)
		}
		*t.out = buf.String()
	}
	return files, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
