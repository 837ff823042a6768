package field

// Token is a semantic colour name. Tokens are mapped to concrete terminal
// colours by the active theme at render time.
type Token int

const (
	TokenTransparent Token = iota
	TokenNeutralGray
	TokenAccentBlue
	TokenDangerRed
	TokenTranslucentGray
)

// String returns the token name used in logs and test failures.
func (t Token) String() string {
	switch t {
	case TokenNeutralGray:
		return "neutral-gray"
	case TokenAccentBlue:
		return "accent-blue"
	case TokenDangerRed:
		return "danger-red"
	case TokenTranslucentGray:
		return "translucent-gray"
	default:
		return "transparent"
	}
}

// TranslucentAlpha is the opacity of the gray fill painted behind the input.
const TranslucentAlpha = 0.1

// Attributes are the five visual tokens derived from a State.
type Attributes struct {
	IconTint       Token
	TextTint       Token
	LabelTint      Token
	BackgroundFill Token
	BorderStroke   Token
}

// Slot names one of the Attributes fields, or SlotFixed for paints that do
// not follow the state.
type Slot int

const (
	SlotFixed Slot = iota
	SlotIcon
	SlotText
	SlotLabel
	SlotBackground
	SlotBorder
)

// Token returns the token stored in the given slot. SlotFixed has no
// state-derived token and reports false.
func (a Attributes) Token(slot Slot) (Token, bool) {
	switch slot {
	case SlotIcon:
		return a.IconTint, true
	case SlotText:
		return a.TextTint, true
	case SlotLabel:
		return a.LabelTint, true
	case SlotBackground:
		return a.BackgroundFill, true
	case SlotBorder:
		return a.BorderStroke, true
	default:
		return TokenTransparent, false
	}
}

// Resolve maps a state to its style attributes. Every state has an entry;
// anything unrecognised is styled like StateDefault.
//
// The error border resolves to accent-blue, matching focused and typing,
// rather than danger-red.
func Resolve(state State) Attributes {
	base := Attributes{
		IconTint:       TokenNeutralGray,
		TextTint:       TokenAccentBlue,
		LabelTint:      TokenNeutralGray,
		BackgroundFill: TokenTranslucentGray,
		BorderStroke:   TokenTransparent,
	}

	switch state {
	case StateDefault:
		return base
	case StateDisabled, StateFilled:
		base.TextTint = TokenNeutralGray
		return base
	case StateFocused, StateTyping:
		base.BorderStroke = TokenAccentBlue
		return base
	case StateError:
		base.IconTint = TokenDangerRed
		base.TextTint = TokenDangerRed
		base.BorderStroke = TokenAccentBlue
		return base
	default:
		return base
	}
}
