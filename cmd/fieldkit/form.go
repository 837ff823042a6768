package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/fieldkit/internal/config"
	"github.com/alexisbeaulieu97/fieldkit/internal/host"
)

type formOptions struct {
	ConfigPath string
	Check      bool
}

var errNotTerminal = errors.New("form needs an interactive terminal; use --check to only validate the document")

func newFormCmd(root *rootFlags) *cobra.Command {
	opts := formOptions{}

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Run a form described by a YAML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}

			doc, err := config.ParseConfig(opts.ConfigPath)
			if err != nil {
				return err
			}
			theme, err := root.resolveTheme(doc.Theme)
			if err != nil {
				return err
			}

			if opts.Check {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d fields OK\n", opts.ConfigPath, len(doc.Fields))
				return nil
			}
			if !stdoutIsTerminal() {
				return errNotTerminal
			}

			root.log.WithFields(map[string]any{"path": opts.ConfigPath, "fields": len(doc.Fields)}).Info("starting form")

			model := host.New(doc, host.WithTheme(theme), host.WithLogger(root.log))
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return fmt.Errorf("failed to run form: %w", err)
			}

			result, ok := final.(host.Model)
			if !ok || !result.Submitted() {
				return nil
			}
			return writeValues(cmd.OutOrStdout(), doc, result.Values())
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the form document")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Validate the document and exit")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}
	return nil
}

// writeValues prints the submitted values as YAML in document order.
// Masked fields are left out.
func writeValues(w io.Writer, doc *config.Document, values map[string]string) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, spec := range doc.Fields {
		if spec.Masked {
			continue
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: spec.ID},
			&yaml.Node{Kind: yaml.ScalarNode, Value: values[spec.ID], Style: yaml.DoubleQuotedStyle},
		)
	}

	out, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("encode values: %w", err)
	}
	_, err = w.Write(out)
	return err
}
