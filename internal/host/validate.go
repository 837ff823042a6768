package host

import (
	"fmt"

	"github.com/alexisbeaulieu97/fieldkit/internal/config"
)

var ruleMessages = map[string]string{
	"required": "This field is required.",
	"email":    "Enter a valid email address.",
	"url":      "Enter a valid URL.",
	"min":      "This value is too short.",
	"max":      "This value is too long.",
	"numeric":  "Only digits are allowed.",
	"alpha":    "Only letters are allowed.",
}

// check runs the rules of e against its buffer. It returns the message to
// show, or an empty string when the value is acceptable.
func check(e *entry) (string, error) {
	failed, err := config.CheckValue(e.value, e.spec.Rules)
	if err != nil {
		return "", err
	}
	if failed == "" {
		return "", nil
	}
	if e.spec.ErrorText != "" {
		return e.spec.ErrorText, nil
	}
	if msg, ok := ruleMessages[failed]; ok {
		return msg, nil
	}
	return fmt.Sprintf("Value fails the %q rule.", failed), nil
}
