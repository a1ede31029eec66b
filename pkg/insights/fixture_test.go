package insights

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/voidshard/wrapped/pkg/categorize"
	"github.com/voidshard/wrapped/pkg/domain"
)

const me = "Me"

// on is a 2023 date at the given hour, UTC. 2023-01-01 is a Sunday.
func on(month time.Month, day, hour int) time.Time {
	return time.Date(2023, month, day, hour, 0, 0, 0, time.UTC)
}

func payment(amount string, when time.Time, to, from, note string) *domain.Transaction {
	return &domain.Transaction{
		Timestamp: when,
		Type:      domain.TypePayment,
		Amount:    decimal.RequireFromString(amount),
		To:        to,
		From:      from,
		Note:      note,
	}
}

func sent(amount string, when time.Time, to, note string) *domain.Transaction {
	return payment("-"+amount, when, to, me, note)
}

func got(amount string, when time.Time, from, note string) *domain.Transaction {
	return payment(amount, when, me, from, note)
}

func categorized(txns ...*domain.Transaction) []*domain.Transaction {
	categorize.NewCategorizer(categorize.DefaultTable()).Apply(txns)
	return txns
}
