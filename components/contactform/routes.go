package contactform

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Routes holds the full mount paths the component registered.
type Routes struct {
	Page   string
	Submit string
}

// MountPaths returns the full mount paths for the component routes under
// basePath.
func MountPaths(basePath string, fns ...OptionFn) Routes {
	opts := NewOptions(fns...)
	return Routes{
		Page:   mountPath(basePath, opts.PagePath),
		Submit: mountPath(basePath, opts.SubmitPath),
	}
}

// RegisterRoutes registers the page and submit handlers under basePath.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (Routes, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions registers handlers under basePath using a
// pre-built Options value.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (Routes, error) {
	if mux == nil {
		return Routes{}, fmt.Errorf("contactform: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	routes := Routes{
		Page:   mountPath(basePath, opts.PagePath),
		Submit: mountPath(basePath, opts.SubmitPath),
	}
	mux.Handle(routes.Page, PageHandlerWithOptions(opts))
	mux.Handle(routes.Submit, SubmitHandlerWithOptions(opts))
	return routes, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
