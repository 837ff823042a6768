package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/fieldkit/internal/field"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	fieldIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// validatorInstance configures and returns the shared validator used by the
// config package and by form hosts checking field rules.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("field_id", func(fl validator.FieldLevel) bool {
			return fieldIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("field_state", func(fl validator.FieldLevel) bool {
			return field.State(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("rule", func(fl validator.FieldLevel) bool {
			return ValidRules(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidRules reports whether rules is a tag list the validator understands.
// Unknown tags make validator panic, so the probe recovers.
func ValidRules(rules string) (ok bool) {
	if strings.TrimSpace(rules) == "" {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = validatorInstance().Var("", rules)
	return true
}

// CheckValue runs rules against value and returns the first failing tag, or
// an empty string when the value passes.
func CheckValue(value, rules string) (string, error) {
	if rules == "" {
		return "", nil
	}
	if !ValidRules(rules) {
		return "", invalidRulesError(rules)
	}
	err := validatorInstance().Var(value, rules)
	if err == nil {
		return "", nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		return ves[0].Tag(), nil
	}
	return "", err
}
