// Package contactform provides a self-contained, extraction-friendly contact
// form component: a page handler that renders the form (with inline errors
// and the static map embed) and a submit handler that validates submissions
// and forwards valid ones to the contact-intake endpoint.
//
// The submit handler accepts JSON and form-encoded bodies. Invalid
// submissions never reach the intake endpoint; they come back as a JSON
// payload mapping field names to messages.
package contactform
