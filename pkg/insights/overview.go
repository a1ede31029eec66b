package insights

import (
	"github.com/shopspring/decimal"
	"github.com/voidshard/wrapped/pkg/domain"
)

var twelve = decimal.NewFromInt(12)

// SpendingOverview totals money in and out and finds the most and least expensive months.
// Average monthly spend always divides by twelve, regardless of how many months have data.
func SpendingOverview(txns []*domain.Transaction) domain.SpendingOverview {
	var (
		spent, received, magnitude decimal.Decimal
		monthly                    [13]decimal.Decimal
		active                     [13]bool
	)

	for _, tx := range txns {
		magnitude = magnitude.Add(tx.Amount.Abs())
		switch {
		case tx.IsOutgoing():
			spent = spent.Add(tx.Amount.Abs())
			m := tx.Month()
			monthly[m] = monthly[m].Add(tx.Amount.Abs())
			active[m] = true
		case tx.IsIncoming():
			received = received.Add(tx.Amount)
		}
	}

	out := domain.SpendingOverview{
		TotalSpent:        float(spent),
		TotalReceived:     float(received),
		NetBalance:        float(received.Sub(spent)),
		AvgMonthlySpend:   float(spent.Div(twelve)),
		TotalTransactions: len(txns),
	}
	if len(txns) > 0 {
		out.AvgPaymentSize = float(magnitude.Div(decimal.NewFromInt(int64(len(txns)))))
	}

	most, least := 0, 0
	for m := 1; m <= 12; m++ {
		if !active[m] {
			continue
		}
		if most == 0 || monthly[m].GreaterThan(monthly[most]) {
			most = m
		}
		if least == 0 || monthly[m].LessThan(monthly[least]) {
			least = m
		}
	}
	if most != 0 {
		out.MostExpensiveMonth = &most
		out.MostExpensiveMonthAmount = float(monthly[most])
		out.CheapestMonth = &least
		out.CheapestMonthAmount = float(monthly[least])
	}

	return out
}
