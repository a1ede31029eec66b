package insights

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/voidshard/wrapped/pkg/domain"
)

var (
	minCycleTransactions = 3
	cycleBalance         = decimal.NewFromFloat(0.3)
)

// EternalDebtCycles finds people money keeps flowing back and forth with: at least three
// payments across both directions with a net flow under 30% of the total. Largest total
// flow first, ties by name.
func EternalDebtCycles(txns []*domain.Transaction) []domain.DebtCycle {
	sent, received := flows(txns)
	lastSent := latest(outgoing(txns), func(tx *domain.Transaction) string { return tx.To })
	lastReceived := latest(incoming(txns), func(tx *domain.Transaction) string { return tx.From })

	cycles := []domain.DebtCycle{}
	for _, name := range sortedKeys(sent) {
		in, ok := received[name]
		if !ok {
			continue
		}
		out := sent[name]
		if out.count+in.count < minCycleTransactions {
			continue
		}

		total := out.sum.Add(in.sum)
		net := out.sum.Sub(in.sum).Abs()
		if !net.LessThan(total.Mul(cycleBalance)) {
			continue
		}

		s, r := lastSent[name], lastReceived[name]
		cycles = append(cycles, domain.DebtCycle{
			Person: name,
			Stats: domain.DebtCycleStats{
				YouSent:          float(out.sum),
				YouReceived:      float(in.sum),
				OutCount:         out.count,
				InCount:          in.count,
				LastSent:         float(s.Amount.Abs()),
				LastReceived:     float(r.Amount),
				LastSentNote:     domain.Text(s.Note),
				LastReceivedNote: domain.Text(r.Note),
				TotalFlow:        float(total),
				NetFlow:          float(net),
			},
		})
	}

	sort.SliceStable(cycles, func(i, j int) bool {
		return cycles[i].Stats.TotalFlow > cycles[j].Stats.TotalFlow
	})
	return cycles
}

// latest keeps the most recent transaction per person. On equal timestamps the later row wins.
func latest(txns []*domain.Transaction, person func(*domain.Transaction) string) map[string]*domain.Transaction {
	out := map[string]*domain.Transaction{}
	for _, tx := range txns {
		name := person(tx)
		if name == "" {
			continue
		}
		if prev, ok := out[name]; !ok || !tx.Timestamp.Before(prev.Timestamp) {
			out[name] = tx
		}
	}
	return out
}
