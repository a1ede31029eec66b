package provider

import (
	"strings"
)

// Column names in a payment history export.
const (
	colID       = "ID"
	colDatetime = "Datetime"
	colType     = "Type"
	colAmount   = "Amount (total)"
	colNote     = "Note"
	colFrom     = "From"
	colTo       = "To"
)

var requiredColumns = []string{colID, colDatetime, colType, colAmount, colNote}

// headerSkips are the number of preamble lines tried, in order, before the header row.
// Official exports carry a two line account banner.
var headerSkips = []int{2, 0}

// header maps column names to their index in a record.
type header map[string]int

func newHeader(record []string) header {
	h := header{}
	for i, name := range record {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))
		if _, ok := h[name]; !ok {
			h[name] = i
		}
	}
	return h
}

func (h header) missing() []string {
	missing := []string{}
	for _, col := range requiredColumns {
		if _, ok := h[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// field returns the trimmed cell for a column, or "" if the column or cell is absent.
func (h header) field(record []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// rawRow is one export row before normalization.
type rawRow struct {
	line     int
	id       string
	datetime string
	kind     string
	amount   string
	note     string
	from     string
	to       string
}

func (h header) row(line int, record []string) *rawRow {
	return &rawRow{
		line:     line,
		id:       h.field(record, colID),
		datetime: h.field(record, colDatetime),
		kind:     h.field(record, colType),
		amount:   h.field(record, colAmount),
		note:     h.field(record, colNote),
		from:     h.field(record, colFrom),
		to:       h.field(record, colTo),
	}
}
