package contact

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

// Rule kinds understood by the validator. They mirror the constraint
// vocabulary used in the embedded form schema so the two stay comparable.
const (
	RuleRequired  = "required"
	RuleEmail     = "email"
	RulePattern   = "pattern"
	RuleMinLength = "minLength"
)

// Rule is a single declarative constraint applied to one field.
type Rule struct {
	Kind    string
	Params  map[string]string
	Message string
}

// FieldRules binds an ordered rule list to a field name. Rules are evaluated
// in order and the first failure wins, so "required" style rules come first.
type FieldRules struct {
	Field    string
	Optional bool
	Rules    []Rule
}

const (
	// MinMessageLength is the minimum number of characters (runes) accepted
	// for the message field.
	MinMessageLength = 10

	emailPattern = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	// phonePattern accepts Indian mobile numbers: an optional +91 or leading
	// zero, then a digit 6-9 followed by exactly nine more digits.
	phonePattern = `^(\+91|0)?[6-9][0-9]{9}$`
)

var (
	emailRegexp = regexp.MustCompile(emailPattern)
	phoneRegexp = regexp.MustCompile(phonePattern)

	patternRegexps = map[string]*regexp.Regexp{
		emailPattern: emailRegexp,
		phonePattern: phoneRegexp,
	}
)

// DefaultRules returns the rule set for the contact form, one entry per
// field in display order.
func DefaultRules() []FieldRules {
	return []FieldRules{
		{
			Field: "name",
			Rules: []Rule{
				{Kind: RuleRequired, Message: "Name is required"},
			},
		},
		{
			Field: "email",
			Rules: []Rule{
				{Kind: RuleRequired, Message: "Email is required"},
				{Kind: RuleEmail, Message: "Please enter a valid email address"},
			},
		},
		{
			Field:    "phone",
			Optional: true,
			Rules: []Rule{
				{
					Kind:    RulePattern,
					Params:  map[string]string{"pattern": phonePattern},
					Message: "Please enter a valid mobile number",
				},
			},
		},
		{
			Field:    "companyName",
			Optional: true,
		},
		{
			Field: "message",
			Rules: []Rule{
				{Kind: RuleRequired, Message: "Message is required"},
				{
					Kind:    RuleMinLength,
					Params:  map[string]string{"value": "10"},
					Message: "Message must be at least 10 characters",
				},
			},
		},
	}
}

// Validate normalizes the submission and evaluates the default rule set.
// The returned map is empty when every constraint holds.
func Validate(sub Submission) FieldErrors {
	return ValidateWith(sub, DefaultRules())
}

// ValidateWith evaluates the given rule set against the normalized
// submission. Optional fields skip their rules when the value is empty.
func ValidateWith(sub Submission, ruleSet []FieldRules) FieldErrors {
	normalized := sub.Normalize()
	errs := make(FieldErrors)
	for _, fr := range ruleSet {
		value := fieldValue(normalized, fr.Field)
		if fr.Optional && value == "" {
			continue
		}
		for _, rule := range fr.Rules {
			if ok := evaluate(rule, value); !ok {
				errs[fr.Field] = rule.Message
				break
			}
		}
	}
	return errs
}

func evaluate(rule Rule, value string) bool {
	switch rule.Kind {
	case RuleRequired:
		return value != ""
	case RuleEmail:
		return emailRegexp.MatchString(value)
	case RulePattern:
		re := compiledPattern(rule.Params["pattern"])
		if re == nil {
			return false
		}
		return re.MatchString(value)
	case RuleMinLength:
		return utf8.RuneCountInString(value) >= minLengthParam(rule.Params)
	default:
		return true
	}
}

func compiledPattern(pattern string) *regexp.Regexp {
	if pattern == "" {
		return nil
	}
	if re, ok := patternRegexps[pattern]; ok {
		return re
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	return re
}

func minLengthParam(params map[string]string) int {
	value, err := strconv.Atoi(params["value"])
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func fieldValue(sub Submission, field string) string {
	switch field {
	case "name":
		return sub.Name
	case "email":
		return sub.Email
	case "phone":
		return sub.Phone
	case "companyName":
		return sub.CompanyName
	case "message":
		return sub.Message
	default:
		return ""
	}
}
