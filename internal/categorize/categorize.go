// Package categorize assigns spending categories to transactions by ordered
// pattern matching over the merchant description. The taxonomy is data, not
// code: it can be swapped out via a YAML file without touching the matcher.
package categorize

import (
	"fmt"
	"regexp"

	"github.com/spendview-dev/spendview/internal/model"
)

type compiledCategory struct {
	name     string
	patterns []*regexp.Regexp
}

// Matcher applies a compiled taxonomy to transaction tables.
type Matcher struct {
	categories []compiledCategory
}

// NewMatcher compiles every pattern case-insensitively, preserving taxonomy
// order.
func NewMatcher(tax Taxonomy) (*Matcher, error) {
	m := &Matcher{categories: make([]compiledCategory, 0, len(tax))}
	for _, c := range tax {
		cc := compiledCategory{name: c.Name, patterns: make([]*regexp.Regexp, 0, len(c.Patterns))}
		for _, p := range c.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("category %q: pattern %q: %w", c.Name, p, err)
			}
			cc.patterns = append(cc.patterns, re)
		}
		m.categories = append(m.categories, cc)
	}
	return m, nil
}

// Categorize returns the first category in taxonomy order with any pattern
// matching the description, or Uncategorized.
func (m *Matcher) Categorize(description string) string {
	for _, c := range m.categories {
		for _, re := range c.patterns {
			if re.MatchString(description) {
				return c.name
			}
		}
	}
	return model.Uncategorized
}

// Apply recomputes every row's category from its description and returns a
// new table plus the distinct labels present afterwards, in row order.
// Idempotent: the first-match rule is stable under repetition. There is no
// error path; an unmatched description simply stays Uncategorized.
func (m *Matcher) Apply(t model.Table) (model.Table, []string) {
	out := make(model.Table, len(t))
	copy(out, t)
	for i := range out {
		out[i].Category = m.Categorize(out[i].Description)
	}
	return out, out.Categories()
}
