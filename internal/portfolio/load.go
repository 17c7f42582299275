package portfolio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidContent is returned when content breaks one of the collection
// invariants.
var ErrInvalidContent = errors.New("invalid content")

// Load reads a YAML content file, validates it and fills in defaults.
// An empty path returns the built-in content.
func Load(path string) (Content, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("failed to read content: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Content{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML content. Unknown keys are rejected.
func Parse(data []byte) (Content, error) {
	var c Content
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Content{}, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Content{}, err
	}
	return c.WithDefaults(), nil
}

// Validate checks the collection invariants and reports every violation at once.
func (c Content) Validate() error {
	var problems []string

	ids := make(map[string]int, len(c.Projects))
	for i, p := range c.Projects {
		if strings.TrimSpace(p.ID) == "" {
			problems = append(problems, fmt.Sprintf("projects[%d]: missing id", i))
		} else if j, dup := ids[p.ID]; dup {
			problems = append(problems, fmt.Sprintf("projects[%d]: duplicate id %q (also projects[%d])", i, p.ID, j))
		} else {
			ids[p.ID] = i
		}
		if strings.TrimSpace(p.Title) == "" {
			problems = append(problems, fmt.Sprintf("projects[%d]: missing title", i))
		}
		for k, tech := range p.Technologies {
			if tech == "" || strings.TrimSpace(tech) != tech {
				problems = append(problems, fmt.Sprintf("projects[%d]: technologies[%d] %q is blank or padded", i, k, tech))
			}
		}
	}

	names := make(map[string]int, len(c.Skills))
	for i, s := range c.Skills {
		if strings.TrimSpace(s.Name) == "" {
			problems = append(problems, fmt.Sprintf("skills[%d]: missing name", i))
		} else if j, dup := names[s.Name]; dup {
			problems = append(problems, fmt.Sprintf("skills[%d]: duplicate name %q (also skills[%d])", i, s.Name, j))
		} else {
			names[s.Name] = i
		}
		if s.Proficiency < 0 || s.Proficiency > 100 {
			problems = append(problems, fmt.Sprintf("skills[%d]: proficiency %d out of range 0-100", i, s.Proficiency))
		}
		if !s.Category.Valid() {
			problems = append(problems, fmt.Sprintf("skills[%d]: unknown category %q", i, s.Category))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(problems, "; "))
	}
	return nil
}
