package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fieldkit/internal/field"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
	"github.com/alexisbeaulieu97/fieldkit/pkg/diff"
)

type renderOptions struct {
	State        string
	Label        string
	Placeholder  string
	ErrorText    string
	Value        string
	LeadingIcon  string
	TrailingIcon string
	Masked       bool
	Width        int

	Tree   bool
	Golden string
	Update bool
}

var errGoldenMismatch = errors.New("rendered field differs from golden file")

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single field once and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := field.ParseState(opts.State)
			if err != nil {
				return err
			}
			theme, err := root.resolveTheme("")
			if err != nil {
				return err
			}

			cfg := field.Config{
				Placeholder:  opts.Placeholder,
				State:        state,
				ErrorText:    opts.ErrorText,
				Label:        opts.Label,
				LeadingIcon:  opts.LeadingIcon,
				TrailingIcon: opts.TrailingIcon,
				Width:        opts.Width,
				Masked:       opts.Masked,
			}
			tree := field.Build(cfg, opts.Value)
			root.log.WithFields(map[string]any{"state": state.String()}).Debug("rendering field")

			out := cmd.OutOrStdout()
			if opts.Tree {
				fmt.Fprint(out, tree.String())
				return nil
			}

			frame := field.Render(tree, components.DefaultContext().WithTheme(theme))
			if opts.Golden != "" {
				return compareGolden(out, opts.Golden, ansi.Strip(frame)+"\n", opts.Update)
			}

			fmt.Fprintln(out, plain(frame))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.State, "state", "default", "Field state: default, disabled, focused, typing, filled or error")
	f.StringVar(&opts.Label, "label", "", "Label shown above the field")
	f.StringVar(&opts.Placeholder, "placeholder", "", "Placeholder shown while the value is empty")
	f.StringVar(&opts.ErrorText, "error-text", "", "Message shown below the field in the error state")
	f.StringVar(&opts.Value, "value", "", "Current text of the field")
	f.StringVar(&opts.LeadingIcon, "leading-icon", "", "Glyph drawn before the text")
	f.StringVar(&opts.TrailingIcon, "trailing-icon", "", "Glyph drawn after the text")
	f.BoolVar(&opts.Masked, "masked", false, "Hide the value behind bullets")
	f.IntVar(&opts.Width, "width", 0, "Width of the editable area in cells")
	f.BoolVar(&opts.Tree, "tree", false, "Print the render tree instead of the frame")
	f.StringVar(&opts.Golden, "golden", "", "Compare the plain frame with this file")
	f.BoolVar(&opts.Update, "update", false, "With --golden, rewrite the file instead of comparing")

	return cmd
}

func compareGolden(out io.Writer, path, frame string, update bool) error {
	if update {
		if err := os.WriteFile(path, []byte(frame), 0o644); err != nil {
			return fmt.Errorf("write golden file: %w", err)
		}
		fmt.Fprintf(out, "updated %s\n", path)
		return nil
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read golden file: %w", err)
	}
	if d := diff.Lines(expected, []byte(frame), path, "rendered"); d != "" {
		fmt.Fprint(out, d)
		removed, added := diff.Changed(expected, []byte(frame))
		return fmt.Errorf("%w: %d removed, %d added", errGoldenMismatch, removed, added)
	}
	return nil
}

// plain strips styling when stdout is not a terminal so redirected output
// stays readable.
func plain(frame string) string {
	if stdoutIsTerminal() {
		return frame
	}
	return ansi.Strip(frame)
}
