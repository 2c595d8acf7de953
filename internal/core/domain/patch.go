package domain

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed patch.yaml
var dashboardMappingPatch []byte

var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

// Patch is a literal text substitution applied to a single file.
type Patch struct {
	Name            string `yaml:"name"`
	TargetPath      string `yaml:"targetPath"`
	Search          string `yaml:"search"`
	Replacement     string `yaml:"replacement"`
	FoundMessage    string `yaml:"foundMessage"`
	NotFoundMessage string `yaml:"notFoundMessage"`
}

// LoadDashboardMappingPatch returns the patch that adds route, cargo type and
// amount to the active order mapping of the bot dashboard.
func LoadDashboardMappingPatch() (Patch, error) {
	return ParsePatch(dashboardMappingPatch)
}

func ParsePatch(data []byte) (Patch, error) {
	var patch Patch
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&patch); err != nil {
		return Patch{}, fmt.Errorf("failed to decode patch: %w", err)
	}
	if err := patch.validate(); err != nil {
		return Patch{}, err
	}

	return patch, nil
}

func (p Patch) validate() error {
	switch {
	case p.TargetPath == "":
		return fmt.Errorf("patch %q has no target path", p.Name)
	case p.Search == "":
		return fmt.Errorf("patch %q has no search text", p.Name)
	case !strings.HasPrefix(p.Replacement, p.Search):
		return fmt.Errorf("patch %q replacement must start with the search text", p.Name)
	case p.FoundMessage == "" || p.NotFoundMessage == "":
		return fmt.Errorf("patch %q is missing a status message", p.Name)
	}

	return nil
}

// Apply replaces every occurrence of the search text. The second result
// reports whether the search text was present.
func (p Patch) Apply(content string) (string, bool) {
	if !strings.Contains(content, p.Search) {
		return content, false
	}

	return strings.ReplaceAll(content, p.Search, p.Replacement), true
}

// StatusMessage is the line reported after Apply.
func (p Patch) StatusMessage(found bool) string {
	if found {
		return p.FoundMessage
	}
	return p.NotFoundMessage
}
