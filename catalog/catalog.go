// Package catalog holds the named instructions users pick from when
// transforming text.
package catalog

import (
	"io"
	"os"
	"path/filepath"

	llmrouter "github.com/checkmarble/llmrouter"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const RawPromptId = "raw"

type Prompt struct {
	Id           string `yaml:"id" json:"id"`
	Name         string `yaml:"name" json:"name"`
	Description  string `yaml:"description" json:"description"`
	SystemPrompt string `yaml:"system_prompt" json:"system_prompt"`
	Icon         string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// Request builds the request transforming content with this prompt.
func (p Prompt) Request(content string) llmrouter.Request {
	return llmrouter.Request{Instruction: p.SystemPrompt, Content: content}
}

type Catalog struct {
	prompts []Prompt
}

type file struct {
	Prompts []Prompt `yaml:"prompts"`
}

// Default returns the built-in prompts.
func Default() *Catalog {
	return &Catalog{prompts: append([]Prompt{}, defaultPrompts...)}
}

func (c *Catalog) All() []Prompt {
	return append([]Prompt{}, c.prompts...)
}

func (c *Catalog) Get(id string) (Prompt, error) {
	prompt, ok := lo.Find(c.prompts, func(p Prompt) bool {
		return p.Id == id
	})
	if !ok {
		return Prompt{}, errors.Newf("prompt not found: %s", id)
	}

	return prompt, nil
}

// Merge adds prompts to the catalog. A prompt with the id of an existing one
// replaces it in place.
func (c *Catalog) Merge(prompts ...Prompt) {
	for _, prompt := range prompts {
		_, idx, ok := lo.FindIndexOf(c.prompts, func(p Prompt) bool {
			return p.Id == prompt.Id
		})

		if ok {
			c.prompts[idx] = prompt
			continue
		}

		c.prompts = append(c.prompts, prompt)
	}
}

// Load reads a YAML prompt file and merges it over the built-in prompts.
func Load(r io.Reader) (*Catalog, error) {
	var f file

	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "could not decode prompt file")
	}

	for idx, prompt := range f.Prompts {
		if prompt.Id == "" {
			return nil, errors.Newf("prompt #%d has no id", idx+1)
		}
	}

	catalog := Default()
	catalog.Merge(f.Prompts...)

	return catalog, nil
}

// LoadFile reads a prompt file, falling back to the built-in prompts if it
// does not exist or no path is given.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, errors.Wrapf(err, "could not open prompt file '%s'", path)
	}
	defer f.Close()

	return Load(f)
}

// EnsureUserFile writes the built-in prompts to path, so users have a file to
// edit, unless it already exists. It reports whether the file was created.
func EnsureUserFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, errors.Wrap(err, "could not create prompt directory")
	}

	out, err := yaml.Marshal(file{Prompts: lo.Filter(defaultPrompts, func(p Prompt, _ int) bool {
		return p.Id != RawPromptId
	})})
	if err != nil {
		return false, errors.Wrap(err, "could not encode prompts")
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return false, errors.Wrapf(err, "could not write prompt file '%s'", path)
	}

	return true, nil
}
