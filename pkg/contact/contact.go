package contact

import (
	"fmt"
	"sort"
	"strings"
)

// Submission is a single contact-form submission. Field names follow the
// intake endpoint's JSON contract; Phone and CompanyName are optional.
type Submission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Message     string `json:"message"`
}

// Normalize returns a copy of the submission with surrounding whitespace
// trimmed from every field and the email address lowercased. Validation
// always runs against the normalized value.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:        strings.TrimSpace(s.Name),
		Email:       strings.ToLower(strings.TrimSpace(s.Email)),
		Phone:       strings.TrimSpace(s.Phone),
		CompanyName: strings.TrimSpace(s.CompanyName),
		Message:     strings.TrimSpace(s.Message),
	}
}

func (s Submission) String() string {
	return fmt.Sprintf("contact submission from %s <%s>", s.Name, s.Email)
}

// FieldErrors maps a field name (JSON form) to a human-readable message.
// An empty map means the submission passed every rule.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "contact: no field errors"
	}
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("contact: invalid fields: %s", strings.Join(names, ", "))
}

// Has reports whether the named field failed validation.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}
