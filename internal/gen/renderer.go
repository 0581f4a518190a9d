package gen

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	lru "github.com/hashicorp/golang-lru/v2"

	"mixin-generator/internal/model"
)

// Template names.
const (
	TemplateMixin              = "mixin"
	TemplateCopyMethod         = "copy-method"
	TemplateAbstractCopyMethod = "abstract-copy-method"
	TemplateAccessors          = "accessors"
)

// ChangedPlaceholder marks the argument replaced by the new value in a copy
// invocation.
const ChangedPlaceholder = "%CHANGED%"

// DefaultCacheSize is the default number of parsed templates kept in memory.
const DefaultCacheSize = 16

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer renders named templates.
type Renderer interface {
	Render(name string, data any) (string, error)
}

// TemplateRenderer renders the embedded templates.
type TemplateRenderer struct {
	cache *lru.Cache[string, *template.Template]
	funcs template.FuncMap
}

// NewRenderer creates a TemplateRenderer caching up to size parsed templates.
func NewRenderer(size int) (*TemplateRenderer, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, *template.Template](size)
	if err != nil {
		return nil, fmt.Errorf("creating template cache: %w", err)
	}

	return &TemplateRenderer{
		cache: cache,
		funcs: template.FuncMap{
			"join": strings.Join,
			"changed": func(invocation, value string) string {
				return strings.ReplaceAll(invocation, ChangedPlaceholder, value)
			},
		},
	}, nil
}

// Render executes the named template with data.
func (r *TemplateRenderer) Render(name string, data any) (string, error) {
	tmpl, err := r.lookup(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

func (r *TemplateRenderer) lookup(name string) (*template.Template, error) {
	if tmpl, ok := r.cache.Get(name); ok {
		return tmpl, nil
	}

	src, err := templateFS.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		return nil, fmt.Errorf("unknown template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(r.funcs).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	r.cache.Add(name, tmpl)

	return tmpl, nil
}

// mixinData is the data of the mixin template.
type mixinData struct {
	Package        string
	Imports        []string
	Name           string
	TypeParameters string
	Supers         []string
	Bodies         []string
}

// RenderMixin renders the complete artifact source.
func RenderMixin(r Renderer, m *Mixin) (string, error) {
	supers := make([]string, len(m.SuperMixins))
	for i, s := range m.SuperMixins {
		supers[i] = s.Render(model.Simple)
	}

	return r.Render(TemplateMixin, mixinData{
		Package:        m.Package,
		Imports:        m.Imports,
		Name:           m.Name,
		TypeParameters: m.TypeParameters.Render(model.Simple),
		Supers:         supers,
		Bodies:         m.Bodies(),
	})
}
