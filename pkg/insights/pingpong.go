package insights

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/voidshard/wrapped/pkg/domain"
)

var (
	pingPongTolerance = decimal.NewFromInt(1)
	pingPongWindow    = 7
)

// MoneyPingpong pairs each outgoing payment with the first incoming payment from the same
// person for about the same amount within a week. Each outgoing payment matches at most once.
// Rows with a blank person or note are ignored.
func MoneyPingpong(txns []*domain.Transaction) []domain.PingPong {
	replies := map[string][]*domain.Transaction{}
	for _, tx := range incoming(txns) {
		if tx.From == "" || tx.Note == "" {
			continue
		}
		replies[tx.From] = append(replies[tx.From], tx)
	}

	found := []domain.PingPong{}
	for _, out := range outgoing(txns) {
		if out.From == "" || out.To == "" || out.Note == "" {
			continue
		}

		for _, in := range replies[out.To] {
			if in.Amount.Sub(out.Amount.Abs()).Abs().GreaterThan(pingPongTolerance) {
				continue
			}
			diff := absInt(floorDays(in.Timestamp.Sub(out.Timestamp)))
			if diff > pingPongWindow {
				continue
			}

			found = append(found, domain.PingPong{
				Person:   out.To,
				Amount:   float(out.Amount.Abs()),
				Note1:    out.Note,
				Note2:    in.Note,
				TimeDiff: diff,
			})
			break
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].Amount > found[j].Amount })
	return found
}

func absInt(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
