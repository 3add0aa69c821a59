// Package render produces the contact page HTML from the parsed form
// definition: the form controls with inline error text, the toast container,
// and the static map embed.
package render

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"unicode"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/notify"
	"github.com/goliatone/go-contactform/pkg/schema"
)

const (
	pageTemplateName = "page"
	// themeAssetStylesheet is the go-theme asset key resolved into the
	// page's stylesheet link.
	themeAssetStylesheet = "contactform.stylesheet"

	defaultTitle = "Contact us"
)

// RenderOptions carries per-request data: values to prefill the controls,
// field errors to surface inline, and the notification to show in the toast
// container.
type RenderOptions struct {
	Title        string
	SubmitPath   string
	MapEmbedURL  string
	Values       map[string]string
	Errors       contact.FieldErrors
	Notification *notify.Notification
	Theme        *theme.RendererConfig
}

type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// Renderer renders the contact page from a schema.Form.
type Renderer struct {
	engine *Engine
}

// New constructs the page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engine, err := NewEngine(cfg.templateFS, ".tmpl")
	if err != nil {
		return nil, fmt.Errorf("render: configure engine: %w", err)
	}
	return &Renderer{engine: engine}, nil
}

// ContentType returns the MIME type for rendered pages.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the contact page HTML.
func (r *Renderer) Render(ctx context.Context, form schema.Form, opts RenderOptions) ([]byte, error) {
	if r == nil || r.engine == nil {
		return nil, fmt.Errorf("render: renderer is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title := opts.Title
	if title == "" {
		title = defaultTitle
	}
	submitPath := opts.SubmitPath
	if submitPath == "" {
		submitPath = form.Endpoint
	}

	data := map[string]any{
		"title":         title,
		"submit_path":   submitPath,
		"map_embed_url": opts.MapEmbedURL,
		"fields":        fieldContexts(form, opts),
		"loading":       opts.Notification != nil && opts.Notification.Status == notify.StatusLoading,
	}
	if opts.Notification != nil {
		data["notification"] = map[string]any{
			"status":  string(opts.Notification.Status),
			"message": opts.Notification.Message,
		}
	}
	applyTheme(data, opts.Theme)

	out, err := r.engine.RenderTemplate(pageTemplateName, data)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

func fieldContexts(form schema.Form, opts RenderOptions) []map[string]any {
	fields := make([]map[string]any, 0, len(form.Fields))
	for _, field := range form.Fields {
		value := opts.Values[field.Name]
		if value != "" {
			value = contact.SanitizeText(value)
		}
		fields = append(fields, map[string]any{
			"name":        field.Name,
			"control":     field.Control,
			"required":    field.Required,
			"label":       fieldLabel(field),
			"placeholder": field.Placeholder,
			"value":       value,
			"error":       opts.Errors[field.Name],
		})
	}
	return fields
}

func fieldLabel(field schema.Field) string {
	if field.Label != "" {
		return field.Label
	}
	runes := []rune(field.Name)
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyTheme(data map[string]any, cfg *theme.RendererConfig) {
	if cfg == nil {
		return
	}
	if style := cssVarsStyle(cfg.CSSVars); style != "" {
		data["theme_css_vars"] = style
	}
	if cfg.AssetURL != nil {
		if url := strings.TrimSpace(cfg.AssetURL(themeAssetStylesheet)); url != "" {
			data["stylesheet_url"] = url
		}
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
