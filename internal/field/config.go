package field

// DefaultPlaceholder is shown when a Config leaves Placeholder empty.
const DefaultPlaceholder = "Value"

// ErrorGlyph prefixes the error text row.
const ErrorGlyph = "⚠"

// Config describes one render of a text field. The host builds a fresh
// Config for every cycle; the field never mutates it.
//
// Optional values are expressed by their zero value: an empty Label or
// ErrorText is absent, an empty icon draws no button and a nil callback
// makes its button inert.
type Config struct {
	Placeholder string
	State       State
	ErrorText   string
	Label       string

	LeadingIcon  string
	TrailingIcon string

	OnLeadingTap  func()
	OnTrailingTap func()

	// Width is the editable area in cells; zero uses the theme default.
	Width int
	// Masked hides the text behind bullet characters.
	Masked bool
}

func (c Config) placeholder() string {
	if c.Placeholder == "" {
		return DefaultPlaceholder
	}
	return c.Placeholder
}

func (c Config) state() State {
	if c.State == "" {
		return StateDefault
	}
	return c.State
}

func (c Config) showsError() bool {
	return c.ErrorText != "" && c.state() == StateError
}
