package insights

import (
	"github.com/voidshard/wrapped/pkg/domain"
)

// PeopleInsights ranks counterparties. Someone who both sent and received money is one
// person; ties go to the lexically first name.
func PeopleInsights(txns []*domain.Transaction) domain.PeopleInsights {
	sent, received := flows(txns)

	out := domain.PeopleInsights{
		VenmoSoulmate:      domain.Soulmate{Name: domain.None},
		MostGenerousFriend: domain.Friend{Name: domain.None},
		MostThankfulFriend: domain.Friend{Name: domain.None},
		BiggestPaymentSent: domain.PaymentSent{
			To:   domain.Text(domain.None),
			Note: domain.Text(domain.None),
		},
		BiggestPaymentReceived: domain.PaymentReceived{
			From: domain.Text(domain.None),
			Note: domain.Text(domain.None),
		},
	}

	counts := partnerCounts(sent, received)
	best := 0
	for _, name := range sortedKeys(counts) {
		if counts[name] > best {
			best = counts[name]
			total := float(flowSum(sent[name]).Add(flowSum(received[name])))
			out.VenmoSoulmate = domain.Soulmate{Name: name, Count: best, TotalAmount: total}
		}
	}

	if name, f := topBySum(received); f != nil {
		out.MostGenerousFriend = domain.Friend{Name: name, Amount: float(f.sum), Count: f.count}
	}
	if name, f := topBySum(sent); f != nil {
		out.MostThankfulFriend = domain.Friend{Name: name, Amount: float(f.sum), Count: f.count}
	}

	var biggestSent, biggestReceived *domain.Transaction
	for _, tx := range txns {
		switch {
		case tx.IsOutgoing():
			if biggestSent == nil || tx.Amount.LessThan(biggestSent.Amount) {
				biggestSent = tx
			}
		case tx.IsIncoming():
			if biggestReceived == nil || tx.Amount.GreaterThan(biggestReceived.Amount) {
				biggestReceived = tx
			}
		}
	}
	if biggestSent != nil {
		out.BiggestPaymentSent = domain.PaymentSent{
			Amount: float(biggestSent.Amount.Abs()),
			To:     domain.Text(biggestSent.To),
			Note:   domain.Text(biggestSent.Note),
		}
	}
	if biggestReceived != nil {
		out.BiggestPaymentReceived = domain.PaymentReceived{
			Amount: float(biggestReceived.Amount),
			From:   domain.Text(biggestReceived.From),
			Note:   domain.Text(biggestReceived.Note),
		}
	}

	return out
}
