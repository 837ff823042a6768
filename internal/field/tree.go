package field

import "strings"

// NodeKind identifies the role of a node in a rendered field.
type NodeKind int

const (
	KindField NodeKind = iota
	KindLabel
	KindContainer
	KindLeadingIcon
	KindInput
	KindTrailingIcon
	KindErrorRow
	KindErrorIcon
	KindErrorText
)

var kindNames = map[NodeKind]string{
	KindField:        "field",
	KindLabel:        "label",
	KindContainer:    "container",
	KindLeadingIcon:  "leading-icon",
	KindInput:        "input",
	KindTrailingIcon: "trailing-icon",
	KindErrorRow:     "error-row",
	KindErrorIcon:    "error-icon",
	KindErrorText:    "error-text",
}

func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Paint is a colour reference. Slot records which attribute the token came
// from so that a transition can interpolate from the previous state's value;
// SlotFixed paints never animate.
type Paint struct {
	Slot  Slot
	Token Token
}

// IsZero reports whether nothing is painted.
func (p Paint) IsZero() bool {
	return p == Paint{}
}

func fixed(token Token) Paint {
	return Paint{Slot: SlotFixed, Token: token}
}

func from(attrs Attributes, slot Slot) Paint {
	token, _ := attrs.Token(slot)
	return Paint{Slot: slot, Token: token}
}

// Node is one element of a rendered field.
type Node struct {
	Kind NodeKind
	// Text is the label, glyph, input value or error message.
	Text string
	// Placeholder is shown by input nodes whose Text is empty.
	Placeholder string
	Masked      bool
	// Width of an input node in cells; zero uses the theme default.
	Width int

	Foreground Paint
	Background Paint
	Border     Paint

	// Interactive is false for an input that rejects keystrokes.
	Interactive bool
	// OnPress is the icon callback; nil makes the button inert.
	OnPress func()

	Children []*Node
}

// Press invokes the node's callback if it has one and reports whether it ran.
func (n *Node) Press() bool {
	if n == nil || n.OnPress == nil {
		return false
	}
	n.OnPress()
	return true
}

// Tree is the output of one render: the resolved attributes plus the node
// hierarchy derived from them.
type Tree struct {
	State      State
	Attributes Attributes
	Root       *Node
}

// Walk visits every node depth first. Returning false from fn stops the walk.
func (t Tree) Walk(fn func(*Node) bool) {
	walk(t.Root, fn)
}

func walk(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node of the given kind, or nil.
func (t Tree) Find(kind NodeKind) *Node {
	var found *Node
	t.Walk(func(n *Node) bool {
		if n.Kind == kind {
			found = n
			return false
		}
		return true
	})
	return found
}

// Has reports whether the tree contains a node of the given kind.
func (t Tree) Has(kind NodeKind) bool {
	return t.Find(kind) != nil
}

// String renders an indented outline of the tree, used in test failures and
// the --tree flag of the CLI.
func (t Tree) String() string {
	var b strings.Builder
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		if n == nil {
			return
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.Kind.String())
		if n.Text != "" {
			b.WriteString(" ")
			b.WriteString(quote(n.Text, n.Masked))
		}
		if !n.Foreground.IsZero() {
			b.WriteString(" fg=" + n.Foreground.Token.String())
		}
		if n.Kind == KindContainer {
			b.WriteString(" bg=" + n.Background.Token.String())
			b.WriteString(" border=" + n.Border.Token.String())
		}
		if n.Kind == KindInput && !n.Interactive {
			b.WriteString(" disabled")
		}
		b.WriteString("\n")
		for _, child := range n.Children {
			visit(child, depth+1)
		}
	}
	visit(t.Root, 0)
	return b.String()
}

func quote(text string, masked bool) string {
	if masked {
		return `"` + strings.Repeat("•", len([]rune(text))) + `"`
	}
	return `"` + text + `"`
}

// Build derives the render tree for cfg and the current buffer value. It is
// pure: the same inputs always give the same tree.
func Build(cfg Config, text string) Tree {
	state := cfg.state()
	attrs := Resolve(state)

	root := &Node{Kind: KindField}

	if cfg.Label != "" {
		root.Children = append(root.Children, &Node{
			Kind:       KindLabel,
			Text:       cfg.Label,
			Foreground: from(attrs, SlotLabel),
		})
	}

	container := &Node{
		Kind:       KindContainer,
		Background: from(attrs, SlotBackground),
		Border:     from(attrs, SlotBorder),
	}

	if cfg.LeadingIcon != "" {
		container.Children = append(container.Children, &Node{
			Kind:        KindLeadingIcon,
			Text:        cfg.LeadingIcon,
			Foreground:  from(attrs, SlotIcon),
			Interactive: true,
			OnPress:     cfg.OnLeadingTap,
		})
	}

	container.Children = append(container.Children, &Node{
		Kind:        KindInput,
		Text:        text,
		Placeholder: cfg.placeholder(),
		Masked:      cfg.Masked,
		Width:       cfg.Width,
		Foreground:  from(attrs, SlotText),
		Interactive: state != StateDisabled,
	})

	if cfg.TrailingIcon != "" {
		container.Children = append(container.Children, &Node{
			Kind:        KindTrailingIcon,
			Text:        cfg.TrailingIcon,
			Foreground:  from(attrs, SlotIcon),
			Interactive: true,
			OnPress:     cfg.OnTrailingTap,
		})
	}

	root.Children = append(root.Children, container)

	if cfg.showsError() {
		root.Children = append(root.Children, &Node{
			Kind: KindErrorRow,
			Children: []*Node{
				{Kind: KindErrorIcon, Text: ErrorGlyph, Foreground: fixed(TokenDangerRed)},
				{Kind: KindErrorText, Text: cfg.ErrorText, Foreground: fixed(TokenDangerRed)},
			},
		})
	}

	return Tree{State: state, Attributes: attrs, Root: root}
}
