package categorize

import (
	"strings"

	"github.com/voidshard/wrapped/pkg/domain"
)

// Categorizer assigns spending categories from note keywords.
type Categorizer struct {
	table *Table
}

func NewCategorizer(table *Table) *Categorizer {
	return &Categorizer{table: table}
}

// Categorize returns the category for a single transaction. Anything that is not money
// sent is "incoming"; a note matching no keyword is "miscellaneous".
func (c *Categorizer) Categorize(tx *domain.Transaction) string {
	if !tx.IsOutgoing() {
		return domain.CategoryIncoming
	}

	note := strings.ToLower(tx.Note)
	for _, cat := range c.table.Categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(note, kw) {
				return cat.Name
			}
		}
	}

	return domain.CategoryMiscellaneous
}

// Apply sets Category on every transaction. It is the last write a transaction sees.
func (c *Categorizer) Apply(txns []*domain.Transaction) {
	for _, tx := range txns {
		tx.Category = c.Categorize(tx)
	}
}

// LateNightKeywords is the ordered keyword list used to label late night spending.
func (c *Categorizer) LateNightKeywords() []string {
	return c.table.LateNightKeywords
}
