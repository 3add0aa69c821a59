package render

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Engine is a small pongo2 wrapper that loads templates from an fs.FS and
// caches compiled templates by name.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	ext       string
}

// NewEngine constructs an Engine reading templates from fsys. Template names
// passed to RenderTemplate may omit the extension.
func NewEngine(fsys fs.FS, ext string) (*Engine, error) {
	if fsys == nil {
		return nil, errors.New("render: template filesystem is required")
	}
	if ext == "" {
		ext = ".tmpl"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Engine{
		set:       pongo2.NewSet("contactform", pongo2.NewFSLoader(fsys)),
		templates: make(map[string]*pongo2.Template),
		ext:       ext,
	}, nil
}

// RenderTemplate executes the named template against data.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("render: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}

	tmpl, err := e.template(path)
	if err != nil {
		return "", err
	}

	out, err := tmpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("render: execute template %q: %w", path, err)
	}
	return out, nil
}

func (e *Engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: parse template %q: %w", path, err)
	}

	e.mu.Lock()
	e.templates[path] = tmpl
	e.mu.Unlock()
	return tmpl, nil
}
