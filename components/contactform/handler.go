package contactform

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/intake"
	"github.com/goliatone/go-contactform/pkg/notify"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/schema"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

const (
	// maxSubmissionBytes caps the request body accepted by the submit
	// endpoint. Contact submissions are a handful of short text fields.
	maxSubmissionBytes = 1 << 20

	// multipartMemoryBytes bounds the in-memory portion of a multipart
	// parse; anything larger spills to disk and is rejected by the body cap.
	multipartMemoryBytes = 256 << 10
)

type submitResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// pageState lazily loads the schema and renderer shared by page requests.
type pageState struct {
	once     sync.Once
	form     schema.Form
	renderer *render.Renderer
	err      error
}

func (s *pageState) load(opts Options) (schema.Form, *render.Renderer, error) {
	s.once.Do(func() {
		s.form, s.err = schema.Load(context.Background())
		if s.err != nil {
			return
		}
		if opts.Renderer != nil {
			s.renderer = opts.Renderer
			return
		}
		s.renderer, s.err = render.New()
	})
	return s.form, s.renderer, s.err
}

// PageHandler builds a net/http handler that renders the contact page with
// default options plus any overrides.
func PageHandler(fns ...OptionFn) http.Handler {
	return PageHandlerWithOptions(NewOptions(fns...))
}

// PageHandlerWithOptions builds the page handler from a pre-constructed
// Options value. Callers are expected to pass an Options value produced by
// NewOptions so defaults apply.
func PageHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	state := &pageState{}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		form, renderer, err := state.load(opts)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		page, err := renderer.Render(r.Context(), form, render.RenderOptions{
			Title:       opts.Title,
			SubmitPath:  opts.SubmitPath,
			MapEmbedURL: opts.MapEmbedURL,
			Theme:       opts.Theme,
		})
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", renderer.ContentType())
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(page)
	})
}

// SubmitHandler builds a net/http handler that accepts contact submissions
// with default options plus any overrides.
func SubmitHandler(fns ...OptionFn) http.Handler {
	return SubmitHandlerWithOptions(NewOptions(fns...))
}

// SubmitHandlerWithOptions builds the submit handler from a pre-constructed
// Options value.
func SubmitHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxSubmissionBytes)
		sub, err := decodeSubmission(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, submitResponse{
				Success: false,
				Error:   "invalid request body",
			})
			return
		}
		sub = contact.Sanitize(sub.Normalize())

		if errs := contact.Validate(sub); len(errs) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, submitResponse{
				Success: false,
				Errors:  errs,
			})
			return
		}

		notifyStatus(opts.Notifier, notify.Loading())
		if err := opts.Intake.Submit(r.Context(), sub); err != nil {
			notifyStatus(opts.Notifier, notify.Error())
			status := http.StatusBadGateway
			var verr *intake.ValidationError
			if errors.As(err, &verr) {
				// Sanitizing can only shrink values, so this should not
				// happen after the validation above; report it field-level
				// anyway rather than as a gateway failure.
				writeJSON(w, http.StatusUnprocessableEntity, submitResponse{
					Success: false,
					Errors:  verr.Fields,
				})
				return
			}
			writeJSON(w, status, submitResponse{
				Success: false,
				Error:   notify.MessageError,
			})
			return
		}

		notifyStatus(opts.Notifier, notify.Success())
		writeJSON(w, http.StatusOK, submitResponse{
			Success: true,
			Message: notify.MessageSuccess,
		})
	})
}

func decodeSubmission(r *http.Request) (contact.Submission, error) {
	var sub contact.Submission

	contentType := r.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}

	switch {
	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
		if err := r.ParseForm(); err != nil {
			return sub, err
		}
		return formSubmission(r), nil
	case strings.HasPrefix(contentType, "multipart/form-data"):
		if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
			return sub, err
		}
		return formSubmission(r), nil
	default:
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			return sub, err
		}
		return sub, nil
	}
}

func formSubmission(r *http.Request) contact.Submission {
	return contact.Submission{
		Name:        r.PostFormValue("name"),
		Email:       r.PostFormValue("email"),
		Phone:       r.PostFormValue("phone"),
		CompanyName: r.PostFormValue("companyName"),
		Message:     r.PostFormValue("message"),
	}
}

func notifyStatus(notifier notify.Notifier, n notify.Notification) {
	if notifier == nil {
		return
	}
	notifier.Notify(n)
}

func writeJSON(w http.ResponseWriter, status int, payload submitResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
