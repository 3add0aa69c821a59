package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goliatone/go-contactform/pkg/contact"
)

// ErrSubmissionFailed is the generic failure reported for any non-2xx
// response or transport error. Callers surface it as a single error
// notification; the network and server failure cases are not distinguished.
var ErrSubmissionFailed = errors.New("intake: submission failed")

// ValidationError is returned when Submit is handed a submission that does
// not satisfy the field rules. No request is made in that case.
type ValidationError struct {
	Fields contact.FieldErrors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

// Client sends validated contact submissions to the intake endpoint.
type Client struct {
	opts Options
}

// New constructs a Client with default options plus any overrides.
func New(fns ...OptionFn) *Client {
	return &Client{opts: NewOptions(fns...)}
}

// Options returns a copy of the client configuration.
func (c *Client) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Submit validates the submission, serializes it to JSON, and POSTs it to
// the intake endpoint exactly once. Any 2xx response is success; anything
// else, including a transport error, collapses into ErrSubmissionFailed.
func (c *Client) Submit(ctx context.Context, sub contact.Submission) error {
	if c == nil {
		return errors.New("intake: client is nil")
	}
	normalized := sub.Normalize()
	if errs := contact.Validate(normalized); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	payload, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("intake: encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("intake: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}
	for name, value := range c.opts.Headers {
		req.Header.Set(name, value)
	}

	res, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: endpoint returned %s", ErrSubmissionFailed, res.Status)
	}
	return nil
}
