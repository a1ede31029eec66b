package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// TypePayment is the only transaction type that reaches analysis.
	TypePayment = "Payment"

	CategoryIncoming      = "incoming"
	CategoryMiscellaneous = "miscellaneous"
)

// Transaction is one normalized payment record. Once loaded it is treated as read-only;
// Category is filled in exactly once by the categorizer before any insight runs.
type Transaction struct {
	ID string `json:"id"`

	Timestamp time.Time       `json:"timestamp"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"` // negative = sent, positive = received

	// free text, empty when the export left the cell blank
	To   string `json:"to"`
	From string `json:"from"`
	Note string `json:"note"`

	Category string `json:"category"`
}

// IsOutgoing reports money sent.
func (t *Transaction) IsOutgoing() bool {
	return t.Amount.IsNegative()
}

// IsIncoming reports money received.
func (t *Transaction) IsIncoming() bool {
	return t.Amount.IsPositive()
}

// Counterparty is the other side of the payment: To for money sent, From otherwise.
func (t *Transaction) Counterparty() string {
	if t.IsOutgoing() {
		return t.To
	}
	return t.From
}

// Month is the calendar month, 1-12.
func (t *Transaction) Month() int {
	return int(t.Timestamp.Month())
}

// Hour is the hour of day, 0-23.
func (t *Transaction) Hour() int {
	return t.Timestamp.Hour()
}

// Weekday is the English day name, eg. "Saturday".
func (t *Transaction) Weekday() string {
	return t.Timestamp.Weekday().String()
}

// IsWeekend is true for Saturday and Sunday.
func (t *Transaction) IsWeekend() bool {
	wd := t.Timestamp.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
