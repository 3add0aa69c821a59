package contactform

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMountPaths_JoinsBasePath(t *testing.T) {
	routes := MountPaths("/site")
	if routes.Page != "/site/contact" {
		t.Fatalf("unexpected page path: %q", routes.Page)
	}
	if routes.Submit != "/site/api/contact" {
		t.Fatalf("unexpected submit path: %q", routes.Submit)
	}

	routes = MountPaths("site/", WithPagePath("get-in-touch"))
	if routes.Page != "/site/get-in-touch" {
		t.Fatalf("unexpected page path: %q", routes.Page)
	}
}

func TestRegisterRoutes_RegistersBothHandlers(t *testing.T) {
	mux := http.NewServeMux()
	routes, err := RegisterRoutes(mux, "/site")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if routes.Page != "/site/contact" || routes.Submit != "/site/api/contact" {
		t.Fatalf("unexpected routes: %#v", routes)
	}

	req := httptest.NewRequest(http.MethodGet, routes.Page, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 from page route, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, routes.Submit, nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405 from submit route on GET, got %d", rec.Code)
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/site"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}

func TestComponent_OptionsCopy(t *testing.T) {
	c := New(WithTitle("Hello"))
	opts := c.Options()
	if opts.Title != "Hello" {
		t.Fatalf("unexpected title: %q", opts.Title)
	}
	opts.Title = "Changed"
	if c.Options().Title != "Hello" {
		t.Fatalf("expected component options to be immutable from copies")
	}
}
