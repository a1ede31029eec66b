package insights

import (
	"github.com/shopspring/decimal"
	"github.com/voidshard/wrapped/pkg/domain"
)

type categoryTotal struct {
	count int
	total decimal.Decimal
	top   *domain.Transaction
}

// TransactionCategories breaks outgoing spend down by category. Transactions must already
// carry a Category. Ties between categories go to the lexically first name.
func TransactionCategories(txns []*domain.Transaction) domain.TransactionCategories {
	byName := map[string]*categoryTotal{}
	var (
		spent   decimal.Decimal
		splurge *domain.Transaction
	)

	for _, tx := range outgoing(txns) {
		c, ok := byName[tx.Category]
		if !ok {
			c = &categoryTotal{}
			byName[tx.Category] = c
		}
		c.count++
		c.total = c.total.Add(tx.Amount.Abs())
		if c.top == nil || tx.Amount.LessThan(c.top.Amount) {
			c.top = tx
		}

		spent = spent.Add(tx.Amount.Abs())
		if splurge == nil || tx.Amount.LessThan(splurge.Amount) {
			splurge = tx
		}
	}

	out := domain.TransactionCategories{
		CategoryBreakdown:       map[string]domain.CategoryStats{},
		MostFrequentCategory:    domain.NamedCount{Name: domain.None},
		HighestSpendingCategory: domain.NamedAmount{Name: domain.None},
		BiggestSplurge: domain.Splurge{
			Category: domain.None,
			Note:     domain.Text(domain.None),
			To:       domain.Text(domain.None),
		},
	}

	var frequent, highest *categoryTotal
	for _, name := range sortedKeys(byName) {
		c := byName[name]

		stats := domain.CategoryStats{
			Count: c.count,
			Total: float(c.total),
			TopTransaction: &domain.TopTransaction{
				Amount: float(c.top.Amount.Abs()),
				Note:   domain.Text(c.top.Note),
				To:     domain.Text(c.top.To),
			},
		}
		if spent.IsPositive() {
			stats.Percentage = float(c.total) / float(spent) * 100
		}
		out.CategoryBreakdown[name] = stats

		if frequent == nil || c.count > frequent.count {
			frequent = c
			out.MostFrequentCategory = domain.NamedCount{Name: name, Count: c.count}
		}
		if highest == nil || c.total.GreaterThan(highest.total) {
			highest = c
			out.HighestSpendingCategory = domain.NamedAmount{Name: name, Amount: float(c.total)}
		}
	}

	if splurge != nil {
		out.BiggestSplurge = domain.Splurge{
			Amount:   float(splurge.Amount.Abs()),
			Category: splurge.Category,
			Note:     domain.Text(splurge.Note),
			To:       domain.Text(splurge.To),
		}
	}

	return out
}
