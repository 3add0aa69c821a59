package contact

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func validSubmission() Submission {
	return Submission{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Message: "I would like to know more about your services.",
	}
}

func TestNormalize_TrimsAndLowercasesEmail(t *testing.T) {
	sub := Submission{
		Name:        "  Asha Rao ",
		Email:       " Asha@Example.COM ",
		Phone:       " 9876543210 ",
		CompanyName: " Acme ",
		Message:     "  hello there, team  ",
	}

	got := sub.Normalize()
	want := Submission{
		Name:        "Asha Rao",
		Email:       "asha@example.com",
		Phone:       "9876543210",
		CompanyName: "Acme",
		Message:     "hello there, team",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_ValidSubmissionHasNoErrors(t *testing.T) {
	errs := Validate(validSubmission())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %#v", errs)
	}
}

func TestValidate_OptionalFieldsMayBeEmpty(t *testing.T) {
	sub := validSubmission()
	sub.Phone = ""
	sub.CompanyName = ""

	if errs := Validate(sub); len(errs) != 0 {
		t.Fatalf("expected no errors, got %#v", errs)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*Submission)
	}{
		{"name", func(s *Submission) { s.Name = "" }},
		{"name", func(s *Submission) { s.Name = "   " }},
		{"email", func(s *Submission) { s.Email = "" }},
		{"message", func(s *Submission) { s.Message = "" }},
	}

	for _, tc := range cases {
		sub := validSubmission()
		tc.mutate(&sub)
		errs := Validate(sub)
		if !errs.Has(tc.field) {
			t.Fatalf("expected error on %q, got %#v", tc.field, errs)
		}
	}
}

func TestValidate_EmailSyntax(t *testing.T) {
	valid := []string{"asha@example.com", "a.b+tag@sub.example.co"}
	invalid := []string{"asha", "asha@", "asha@example", "@example.com", "a b@example.com"}

	for _, email := range valid {
		sub := validSubmission()
		sub.Email = email
		if errs := Validate(sub); errs.Has("email") {
			t.Fatalf("expected %q to be accepted, got %#v", email, errs)
		}
	}
	for _, email := range invalid {
		sub := validSubmission()
		sub.Email = email
		if errs := Validate(sub); !errs.Has("email") {
			t.Fatalf("expected %q to be rejected", email)
		}
	}
}

func TestValidate_PhonePattern(t *testing.T) {
	accepted := []string{"9876543210", "+919876543210", "09876543210"}
	rejected := []string{"12345", "+91987654321", "98765abcde", "5876543210", "98765432101"}

	for _, phone := range accepted {
		sub := validSubmission()
		sub.Phone = phone
		if errs := Validate(sub); errs.Has("phone") {
			t.Fatalf("expected phone %q to be accepted, got %#v", phone, errs)
		}
	}
	for _, phone := range rejected {
		sub := validSubmission()
		sub.Phone = phone
		if errs := Validate(sub); !errs.Has("phone") {
			t.Fatalf("expected phone %q to be rejected", phone)
		}
	}
}

func TestValidate_MessageMinLength(t *testing.T) {
	sub := validSubmission()
	sub.Message = "too short"
	errs := Validate(sub)
	if !errs.Has("message") {
		t.Fatalf("expected 9-character message to be rejected, got %#v", errs)
	}

	sub.Message = "palindrome"
	if errs := Validate(sub); errs.Has("message") {
		t.Fatalf("expected 10-character message to be accepted, got %#v", errs)
	}
}

func TestValidate_MessageLengthCountsRunes(t *testing.T) {
	sub := validSubmission()
	sub.Message = "héllo wörld" // 11 runes
	if errs := Validate(sub); errs.Has("message") {
		t.Fatalf("expected multi-byte message to be accepted, got %#v", errs)
	}
}

func TestFieldErrors_ErrorListsFieldsSorted(t *testing.T) {
	errs := FieldErrors{"message": "too short", "email": "invalid"}
	want := "contact: invalid fields: email, message"
	if got := errs.Error(); got != want {
		t.Fatalf("unexpected error string: %q", got)
	}
}
