package contactform

import (
	"net/http"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contactform/pkg/intake"
	"github.com/goliatone/go-contactform/pkg/notify"
	"github.com/goliatone/go-contactform/pkg/render"
)

// GuardFunc runs before a request is handled; a non-nil error rejects it.
type GuardFunc func(r *http.Request) error

type Options struct {
	// PagePath and SubmitPath are the component route paths relative to the
	// mount base.
	PagePath   string
	SubmitPath string

	// Title is the page heading.
	Title string
	// MapEmbedURL, when set, renders the static map iframe under the form.
	MapEmbedURL string

	// Intake sends valid submissions to the contact-intake endpoint.
	Intake *intake.Client
	// Notifier observes the loading/success/error lifecycle of every
	// submission.
	Notifier notify.Notifier
	// Renderer produces the page HTML; a default renderer is built when nil.
	Renderer *render.Renderer
	// Theme is passed through to the renderer.
	Theme *theme.RendererConfig

	Guard GuardFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		PagePath:   "/contact",
		SubmitPath: "/api/contact",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.PagePath == "" {
		opts.PagePath = "/contact"
	}
	if opts.SubmitPath == "" {
		opts.SubmitPath = "/api/contact"
	}
	if opts.Intake == nil {
		opts.Intake = intake.New()
	}
	return opts
}

func WithPagePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PagePath = path
	}
}

func WithSubmitPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SubmitPath = path
	}
}

func WithTitle(title string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Title = title
	}
}

func WithMapEmbedURL(url string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MapEmbedURL = url
	}
}

func WithIntakeClient(client *intake.Client) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Intake = client
	}
}

func WithNotifier(notifier notify.Notifier) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Notifier = notifier
	}
}

func WithRenderer(renderer *render.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}

func WithTheme(cfg *theme.RendererConfig) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Theme = cfg
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}
