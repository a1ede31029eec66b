package insights

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/voidshard/wrapped/pkg/domain"
)

const (
	DailySpender       = "Daily Spender"
	WeeklyRegular      = "Weekly Regular"
	MonthlyPlanner     = "Monthly Planner"
	OccasionalSplurger = "Occasional Splurger"
)

const day = 24 * time.Hour

// ClassifyFrequency names the payment cadence for a mean gap in days. Bounds are inclusive.
func ClassifyFrequency(meanGap float64) string {
	switch {
	case meanGap <= 2:
		return DailySpender
	case meanGap <= 7:
		return WeeklyRegular
	case meanGap <= 30:
		return MonthlyPlanner
	default:
		return OccasionalSplurger
	}
}

// FinancialHabits looks at the whole-day gaps between consecutive payments.
func FinancialHabits(txns []*domain.Transaction) domain.FinancialHabits {
	out := domain.FinancialHabits{
		PaymentFrequency:   OccasionalSplurger,
		PaymentConsistency: 0.5,
	}
	if len(txns) == 0 {
		return out
	}

	var total decimal.Decimal
	times := make([]time.Time, 0, len(txns))
	for _, tx := range txns {
		total = total.Add(tx.Amount)
		times = append(times, tx.Timestamp)
	}
	out.AvgTransactionAmount = float(total.Div(decimal.NewFromInt(int64(len(txns)))).Abs())

	gaps := dayGaps(times)
	if len(gaps) == 0 {
		return out
	}

	mean, largest := 0.0, 0
	for _, g := range gaps {
		mean += float64(g)
		if g > largest {
			largest = g
		}
	}
	mean /= float64(len(gaps))

	out.PaymentFrequency = ClassifyFrequency(mean)
	out.LargestPaymentGap = largest
	if len(gaps) > 1 {
		out.PaymentConsistency = consistency(gaps, mean)
	}

	return out
}

// dayGaps sorts times and returns the floored day count between neighbours.
func dayGaps(times []time.Time) []int {
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	gaps := make([]int, 0, len(times))
	for i := 1; i < len(times); i++ {
		gaps = append(gaps, floorDays(times[i].Sub(times[i-1])))
	}
	return gaps
}

// consistency is 1/(1+stddev/30) over the sample standard deviation of the gaps.
func consistency(gaps []int, mean float64) float64 {
	var sq float64
	for _, g := range gaps {
		d := float64(g) - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(len(gaps)-1))

	return math.Max(0, math.Min(1, 1/(1+std/30)))
}

// floorDays rounds a duration down to whole days, so -12h is -1.
func floorDays(d time.Duration) int {
	days := d / day
	if d%day < 0 {
		days--
	}
	return int(days)
}
