package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-contactform/pkg/contact"
)

var errAborted = errors.New("prompt aborted")

// promptSubmission collects the contact fields interactively. Required
// fields and formats are checked inline so the user can correct a value
// before moving on; the full rule set still runs before anything is sent.
func promptSubmission() (contact.Submission, error) {
	var sub contact.Submission

	if err := ask(&survey.Input{Message: "Name:"}, &sub.Name, survey.Required); err != nil {
		return sub, err
	}
	if err := ask(&survey.Input{Message: "Email:"}, &sub.Email, survey.Required, fieldValidator("email")); err != nil {
		return sub, err
	}
	if err := ask(&survey.Input{
		Message: "Phone (optional):",
		Help:    "Indian mobile number, e.g. 9876543210 or +919876543210",
	}, &sub.Phone, fieldValidator("phone")); err != nil {
		return sub, err
	}
	if err := ask(&survey.Input{Message: "Company name (optional):"}, &sub.CompanyName); err != nil {
		return sub, err
	}
	if err := ask(&survey.Multiline{Message: "Message:"}, &sub.Message, survey.Required, minLengthValidator(contact.MinMessageLength)); err != nil {
		return sub, err
	}

	return sub.Normalize(), nil
}

func ask(prompt survey.Prompt, out *string, validators ...survey.Validator) error {
	var opts []survey.AskOpt
	for _, v := range validators {
		opts = append(opts, survey.WithValidator(v))
	}
	if err := survey.AskOne(prompt, out, opts...); err != nil {
		return translateSurveyErr(err)
	}
	return nil
}

// fieldValidator runs the named field's rules against a single answer.
func fieldValidator(field string) survey.Validator {
	return func(ans interface{}) error {
		value, _ := ans.(string)
		sub := contact.Submission{
			// Satisfy unrelated required rules so only the target field can
			// fail.
			Name:    "x",
			Email:   "x@example.com",
			Message: strings.Repeat("x", contact.MinMessageLength),
		}
		switch field {
		case "email":
			sub.Email = value
		case "phone":
			sub.Phone = value
		}
		if errs := contact.Validate(sub); errs.Has(field) {
			return errors.New(errs[field])
		}
		return nil
	}
}

func minLengthValidator(min int) survey.Validator {
	return func(ans interface{}) error {
		value, _ := ans.(string)
		if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
			return fmt.Errorf("must be at least %d characters", min)
		}
		return nil
	}
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}
