package provider

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/voidshard/wrapped/pkg/domain"
)

// check it meets the interface
var _ Provider = &CSVExport{}

// timestampLayouts are tried in order. Single digit month/day layouts also accept
// zero padded input.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 3:04 PM",
	"1/2/2006",
}

// CSVExport reads a payment history export held in memory.
type CSVExport struct {
	data []byte
	log  zerolog.Logger
}

func NewCSVExport(data []byte, log zerolog.Logger) *CSVExport {
	return &CSVExport{data: data, log: log}
}

// Transactions parses the export and returns its Payment rows. The whole load fails on
// missing columns, no usable rows or an unparsable timestamp.
func (c *CSVExport) Transactions() ([]*domain.Transaction, error) {
	rows, err := c.rows()
	if err != nil {
		return nil, err
	}

	total := len(rows)
	valid := rows[:0]
	for _, r := range rows {
		if r.id != "" {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: no valid transactions found in CSV", domain.ErrEmptyData)
	}

	all := make([]*domain.Transaction, 0, len(valid))
	for _, r := range valid {
		ts, err := ParseTimestamp(r.datetime)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrParsing, r.line, err)
		}
		all = append(all, &domain.Transaction{
			ID:        r.id,
			Timestamp: ts,
			Type:      r.kind,
			Amount:    ParseAmount(r.amount),
			To:        r.to,
			From:      r.from,
			Note:      r.note,
		})
	}

	payments := make([]*domain.Transaction, 0, len(all))
	for _, tx := range all {
		if tx.Type == domain.TypePayment {
			payments = append(payments, tx)
		}
	}
	if len(payments) == 0 {
		return nil, fmt.Errorf("%w: no payment transactions found in CSV", domain.ErrEmptyData)
	}

	c.log.Info().
		Int("rows", total).
		Int("without_id", total-len(valid)).
		Int("payments", len(payments)).
		Msg("loaded export")

	return payments, nil
}

// rows locates the header row, trying each preamble convention in turn.
func (c *CSVExport) rows() ([]*rawRow, error) {
	var missing []string

	for _, skip := range headerSkips {
		records, err := readRecords(skipLines(c.data, skip))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read CSV: %v", domain.ErrParsing, err)
		}
		if len(records) == 0 {
			missing = append([]string{}, requiredColumns...)
			continue
		}

		h := newHeader(records[0])
		missing = h.missing()
		if len(missing) > 0 {
			c.log.Debug().Int("skip", skip).Strs("missing", missing).Msg("header not found")
			continue
		}

		c.log.Debug().Int("skip", skip).Msg("header found")
		rows := make([]*rawRow, 0, len(records)-1)
		for i, rec := range records[1:] {
			// +2: one for the header, one for 1-based line numbers
			rows = append(rows, h.row(skip+i+2, rec))
		}
		return rows, nil
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrSchema, strings.Join(missing, ", "))
}

func readRecords(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records := [][]string{}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		if blank(rec) {
			continue
		}
		records = append(records, rec)
	}
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// skipLines drops the first n physical lines.
func skipLines(data []byte, n int) []byte {
	for i := 0; i < n; i++ {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			return nil
		}
		data = data[idx+1:]
	}
	return data
}

// ParseAmount turns an export amount such as "- $1,200.50" or "+$5" into a signed decimal.
// Currency symbols and grouping separators are dropped. Only an explicit leading sign is
// trusted: unsigned or non-numeric input is zero rather than an error.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	sign := s[0]
	if sign != '+' && sign != '-' {
		return decimal.Zero
	}

	rest := strings.TrimSpace(s[1:])
	if rest == "" || rest[0] == '+' || rest[0] == '-' {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(rest)
	if err != nil {
		return decimal.Zero
	}
	if sign == '-' {
		return d.Neg()
	}
	return d
}

// ParseTimestamp accepts the date formats seen in payment exports.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", raw)
}
