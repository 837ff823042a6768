package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/fieldkit/internal/field"
	fkerrors "github.com/alexisbeaulieu97/fieldkit/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on a document.
// Every problem is reported, not only the first.
func ValidateConfig(doc *Document) error {
	if doc == nil {
		return fkerrors.NewValidationError("document", "document is nil", nil)
	}

	var errs fkerrors.ValidationErrors
	if err := validatorInstance().Struct(doc); err != nil {
		errs = append(errs, convertValidationErrors(err)...)
	}

	seen := make(map[string]int, len(doc.Fields))
	for i, spec := range doc.Fields {
		if spec.ID != "" {
			if first, dup := seen[spec.ID]; dup {
				errs = append(errs, &fkerrors.ValidationError{
					Field:   fieldPath(i, "id"),
					Message: fmt.Sprintf("duplicate field id %q (first used by %s)", spec.ID, fieldPath(first, "id")),
				})
			} else {
				seen[spec.ID] = i
			}
		}

		if spec.Action() == ActionReveal && !spec.Masked {
			errs = append(errs, &fkerrors.ValidationError{
				Field:   fieldPath(i, "trailing_action"),
				Message: "reveal requires masked: true",
			})
		}
		if spec.Action() != ActionNone && spec.TrailingIcon == "" {
			errs = append(errs, &fkerrors.ValidationError{
				Field:   fieldPath(i, "trailing_icon"),
				Message: fmt.Sprintf("trailing action %q needs a trailing icon", spec.Action()),
			})
		}
		if spec.State == field.StateError && spec.ErrorText == "" {
			errs = append(errs, &fkerrors.ValidationError{
				Field:   fieldPath(i, "error_text"),
				Message: "error state needs error text to show",
			})
		}
	}

	return errs.ErrOrNil()
}

func convertValidationErrors(err error) fkerrors.ValidationErrors {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fkerrors.ValidationErrors{{Field: "document", Message: err.Error(), Err: err}}
	}

	out := make(fkerrors.ValidationErrors, 0, len(ves))
	for _, fe := range ves {
		path := yamlPath(fe)
		msg := fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed validation for tag '%s=%s'", fe.Tag(), fe.Param())
		}
		out = append(out, &fkerrors.ValidationError{Field: path, Message: msg, Err: fe})
	}
	return out
}

// yamlPath turns "Document.fields[0].id" into "fields[0].id".
func yamlPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldPath(index int, key string) string {
	return fmt.Sprintf("fields[%d].%s", index, key)
}

func invalidRulesError(rules string) error {
	return fkerrors.NewValidationError("rules", fmt.Sprintf("unknown validation rules %q", rules), nil)
}
