package insights

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/voidshard/wrapped/pkg/domain"
)

// tally counts keys and remembers the order each key was first seen in.
type tally[K comparable] struct {
	order  []K
	counts map[K]int
}

func newTally[K comparable]() *tally[K] {
	return &tally[K]{counts: map[K]int{}}
}

func (t *tally[K]) add(k K) {
	if _, ok := t.counts[k]; !ok {
		t.order = append(t.order, k)
	}
	t.counts[k]++
}

// top returns the highest count, walking keys in the given order so the earliest key
// wins a tie. With keys == nil the first-seen order is used.
func (t *tally[K]) top(keys []K) (K, int, bool) {
	if keys == nil {
		keys = t.order
	}

	var best K
	bestCount, found := 0, false
	for _, k := range keys {
		n, ok := t.counts[k]
		if !ok {
			continue
		}
		if !found || n > bestCount {
			best, bestCount, found = k, n, true
		}
	}
	return best, bestCount, found
}

// flow is the money and transaction count exchanged with one counterparty in one direction.
type flow struct {
	sum   decimal.Decimal
	count int
}

// flows groups money sent by recipient and money received by sender.
// Rows with a blank counterparty are left out.
func flows(txns []*domain.Transaction) (sent, received map[string]*flow) {
	sent = map[string]*flow{}
	received = map[string]*flow{}

	for _, tx := range txns {
		name := tx.Counterparty()
		if name == "" {
			continue
		}

		var m map[string]*flow
		switch {
		case tx.IsOutgoing():
			m = sent
		case tx.IsIncoming():
			m = received
		default:
			continue
		}

		f, ok := m[name]
		if !ok {
			f = &flow{}
			m[name] = f
		}
		f.sum = f.sum.Add(tx.Amount.Abs())
		f.count++
	}

	return sent, received
}

// partnerCounts merges sent and received counts into one count per counterparty.
func partnerCounts(sent, received map[string]*flow) map[string]int {
	counts := map[string]int{}
	for name, f := range sent {
		counts[name] += f.count
	}
	for name, f := range received {
		counts[name] += f.count
	}
	return counts
}

// topBySum is the lexically first name holding the largest sum.
func topBySum(m map[string]*flow) (string, *flow) {
	var (
		bestName string
		best     *flow
	)
	for _, name := range sortedKeys(m) {
		if best == nil || m[name].sum.GreaterThan(best.sum) {
			bestName, best = name, m[name]
		}
	}
	return bestName, best
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func float(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func outgoing(txns []*domain.Transaction) []*domain.Transaction {
	out := make([]*domain.Transaction, 0, len(txns))
	for _, tx := range txns {
		if tx.IsOutgoing() {
			out = append(out, tx)
		}
	}
	return out
}

func incoming(txns []*domain.Transaction) []*domain.Transaction {
	in := make([]*domain.Transaction, 0, len(txns))
	for _, tx := range txns {
		if tx.IsIncoming() {
			in = append(in, tx)
		}
	}
	return in
}

func flowSum(f *flow) decimal.Decimal {
	if f == nil {
		return decimal.Zero
	}
	return f.sum
}
