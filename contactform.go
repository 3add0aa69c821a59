// Package contactform implements a marketing-site contact form end to end:
// declarative field validation, a single-attempt JSON submission to the
// contact-intake endpoint, toast-style notifications, and an embeddable HTTP
// component that renders the page and accepts submissions.
package contactform

import (
	"context"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/intake"
	"github.com/goliatone/go-contactform/pkg/notify"
	"github.com/goliatone/go-contactform/pkg/schema"
)

// Submission is one user-initiated attempt to send the contact form.
type Submission = contact.Submission

// FieldErrors maps field names to human-readable validation messages.
type FieldErrors = contact.FieldErrors

// Notification is the transient feedback around a submission's lifecycle.
type Notification = notify.Notification

// Validate evaluates the contact form rules against the normalized
// submission. An empty result means the submission may be transmitted.
func Validate(sub Submission) FieldErrors {
	return contact.Validate(sub)
}

// NewIntakeClient constructs a submission client with default options plus
// any overrides.
func NewIntakeClient(fns ...intake.OptionFn) *intake.Client {
	return intake.New(fns...)
}

// LoadForm parses the embedded OpenAPI document and returns the contact form
// definition.
func LoadForm(ctx context.Context) (schema.Form, error) {
	return schema.Load(ctx)
}
