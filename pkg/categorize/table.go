package categorize

import (
	_ "embed"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/voidshard/wrapped/pkg/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default_categories.yaml
var defaultTable []byte

// Category is a named set of note keywords.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Table is the categorization configuration. Order of Categories is significant.
type Table struct {
	Categories        []Category `yaml:"categories"`
	LateNightKeywords []string   `yaml:"late_night_keywords"`
}

// DefaultTable returns the built-in table of twelve spending categories.
func DefaultTable() *Table {
	t, err := ParseTable(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("embedded category table is invalid: %v", err))
	}
	return t
}

// LoadTable reads a YAML table from disk. An empty path means the built-in table.
func LoadTable(path string) (*Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read category table %s: %w", path, err)
	}

	return ParseTable(data)
}

// ParseTable decodes and validates a YAML table. Keywords are lower-cased.
func ParseTable(data []byte) (*Table, error) {
	t := &Table{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("could not parse category table: %w", err)
	}

	for i := range t.Categories {
		t.Categories[i].Name = strings.TrimSpace(t.Categories[i].Name)
		t.Categories[i].Keywords = normalize(t.Categories[i].Keywords)
	}
	t.LateNightKeywords = normalize(t.LateNightKeywords)

	return t, t.Validate()
}

// Validate checks the table can categorize anything at all.
func (t *Table) Validate() error {
	if len(t.Categories) == 0 {
		return fmt.Errorf("category table has no categories")
	}

	seen := map[string]bool{}
	for i, c := range t.Categories {
		switch {
		case c.Name == "":
			return fmt.Errorf("category %d has no name", i)
		case c.Name == domain.CategoryIncoming || c.Name == domain.CategoryMiscellaneous:
			return fmt.Errorf("category name %q is reserved", c.Name)
		case seen[c.Name]:
			return fmt.Errorf("category %q is listed twice", c.Name)
		case len(c.Keywords) == 0:
			return fmt.Errorf("category %q has no keywords", c.Name)
		}
		seen[c.Name] = true
	}

	return nil
}

func normalize(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
