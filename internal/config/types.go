package config

import (
	"github.com/alexisbeaulieu97/fieldkit/internal/field"
)

// Document is a form definition loaded from YAML.
type Document struct {
	Version string      `yaml:"version" validate:"required,semver"`
	Title   string      `yaml:"title" validate:"required,min=1,max=100"`
	Theme   string      `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	Fields  []FieldSpec `yaml:"fields" validate:"required,min=1,dive"`
}

// TrailingAction is what pressing a field's trailing icon does in a form.
type TrailingAction string

const (
	ActionNone   TrailingAction = "none"
	ActionClear  TrailingAction = "clear"
	ActionReveal TrailingAction = "reveal"
)

// FieldSpec describes one field of a form.
type FieldSpec struct {
	ID          string      `yaml:"id" validate:"required,field_id"`
	Label       string      `yaml:"label,omitempty" validate:"max=80"`
	Placeholder string      `yaml:"placeholder,omitempty" validate:"max=80"`
	State       field.State `yaml:"state,omitempty" validate:"omitempty,field_state"`

	LeadingIcon    string         `yaml:"leading_icon,omitempty" validate:"max=2"`
	TrailingIcon   string         `yaml:"trailing_icon,omitempty" validate:"max=2"`
	TrailingAction TrailingAction `yaml:"trailing_action,omitempty" validate:"omitempty,oneof=clear reveal none"`

	// Rules are validator tags checked against the value on submit.
	Rules     string `yaml:"rules,omitempty" validate:"omitempty,rule"`
	ErrorText string `yaml:"error_text,omitempty"`

	Value  string `yaml:"value,omitempty"`
	Masked bool   `yaml:"masked,omitempty"`
	Width  int    `yaml:"width,omitempty" validate:"omitempty,min=4,max=120"`
}

// FieldConfig converts the spec into the render configuration of a field.
// Callbacks are left for the host to attach.
func (f FieldSpec) FieldConfig() field.Config {
	state := f.State
	if state == "" {
		state = field.StateDefault
	}
	return field.Config{
		Placeholder:  f.Placeholder,
		State:        state,
		ErrorText:    f.ErrorText,
		Label:        f.Label,
		LeadingIcon:  f.LeadingIcon,
		TrailingIcon: f.TrailingIcon,
		Width:        f.Width,
		Masked:       f.Masked,
	}
}

// Action returns the trailing action, defaulting to none.
func (f FieldSpec) Action() TrailingAction {
	if f.TrailingAction == "" {
		return ActionNone
	}
	return f.TrailingAction
}
