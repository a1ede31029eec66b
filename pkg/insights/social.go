package insights

import (
	"math"
	"time"

	"github.com/voidshard/wrapped/pkg/domain"
)

// SocialInsights scores how wide and how busy the payment network is.
func SocialInsights(txns []*domain.Transaction) domain.SocialInsights {
	people := map[string]bool{}
	months := newTally[int]()
	for _, tx := range txns {
		if tx.To != "" {
			people[tx.To] = true
		}
		if tx.From != "" {
			people[tx.From] = true
		}
		months.add(tx.Month())
	}

	month := time.January
	if m, _, ok := months.top(span(1, 12)); ok {
		month = time.Month(m)
	}

	network := 0
	for _, n := range partnerCounts(flows(txns)) {
		if n > 1 {
			network++
		}
	}

	return domain.SocialInsights{
		TotalUniquePeople:  len(people),
		MostActiveMonth:    month.String(),
		SocialScore:        SocialScore(len(people), len(txns)),
		PaymentNetworkSize: network,
	}
}

// SocialScore averages a people ratio (100 people caps it) and a daily rate ratio
// (3 payments a day caps it) and scales to 0-100, rounded to one decimal.
func SocialScore(people, payments int) float64 {
	connections := math.Min(1, float64(people)/100)
	frequency := math.Min(1, float64(payments)/365/3)
	return math.Round((connections+frequency)/2*100*10) / 10
}
