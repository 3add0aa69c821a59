package contactform

import "net/http"

// Component is a small wrapper around the contact form handlers, their
// configuration, and routing helpers.
type Component struct {
	opts Options
}

// New constructs a new component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// PageHandler returns a net/http handler that renders the contact page.
func (c *Component) PageHandler() http.Handler {
	if c == nil {
		return PageHandler()
	}
	return PageHandlerWithOptions(c.opts)
}

// SubmitHandler returns a net/http handler that accepts submissions.
func (c *Component) SubmitHandler() http.Handler {
	if c == nil {
		return SubmitHandler()
	}
	return SubmitHandlerWithOptions(c.opts)
}

// RegisterRoutes registers both component handlers under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (Routes, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}
