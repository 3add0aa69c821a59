package contact

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips any HTML markup from user-supplied free text. Values
// are sanitized before they are echoed back into a page or forwarded to the
// intake endpoint.
func SanitizeText(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(sanitizer().Sanitize(raw))
}

// Sanitize returns a copy of the submission with every free-text field run
// through SanitizeText.
func Sanitize(sub Submission) Submission {
	return Submission{
		Name:        SanitizeText(sub.Name),
		Email:       SanitizeText(sub.Email),
		Phone:       SanitizeText(sub.Phone),
		CompanyName: SanitizeText(sub.CompanyName),
		Message:     SanitizeText(sub.Message),
	}
}

func sanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
