package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	fkerrors "github.com/alexisbeaulieu97/fieldkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a form document from disk, validates it, and returns it.
func ParseConfig(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fkerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a form document. Path only labels errors.
func Parse(path string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fkerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
