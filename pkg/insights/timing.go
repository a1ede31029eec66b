package insights

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/voidshard/wrapped/pkg/domain"
)

// Other labels late night spending that matched no keyword.
const Other = "other"

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func isLateNight(hour int) bool {
	return hour >= 22 || hour <= 5
}

// TimeInsights finds when payments happen. Busiest day ties go to the earlier weekday
// (Monday first); month and hour ties go to the lower number.
func TimeInsights(txns []*domain.Transaction, lateNightKeywords []string) domain.TimeInsights {
	days := newTally[string]()
	months := newTally[int]()
	hours := newTally[int]()

	var (
		weekend, late int
		lateSpent     decimal.Decimal
		lateNotes     []string
	)
	for _, tx := range txns {
		days.add(tx.Weekday())
		months.add(tx.Month())
		hours.add(tx.Hour())

		if tx.IsWeekend() {
			weekend++
		}
		if isLateNight(tx.Hour()) {
			late++
			lateNotes = append(lateNotes, strings.ToLower(tx.Note))
			if tx.IsOutgoing() {
				lateSpent = lateSpent.Add(tx.Amount)
			}
		}
	}

	out := domain.TimeInsights{
		MostActiveDay: domain.ActiveDay{Day: domain.None},
		WeekendVsWeekday: domain.WeekendVsWeekday{
			WeekendCount:      weekend,
			WeekdayCount:      len(txns) - weekend,
			WeekendPercentage: percent(weekend, len(txns)),
		},
		LateNight: domain.LateNight{
			Count:              late,
			Percentage:         percent(late, len(txns)),
			TotalAmount:        float(lateSpent.Abs()),
			MostCommonCategory: lateNightCategory(lateNotes, lateNightKeywords),
		},
	}

	if day, n, ok := days.top(weekdays); ok {
		out.MostActiveDay = domain.ActiveDay{Day: day, Count: n, Percentage: percent(n, len(txns))}
	}
	if m, n, ok := months.top(span(1, 12)); ok {
		out.MostActiveMonth = domain.ActiveMonth{Month: m, Count: n}
	}
	if h, n, ok := hours.top(span(0, 23)); ok {
		out.MostActiveHour = domain.ActiveHour{Hour: h, Count: n}
	}

	return out
}

// lateNightCategory counts keyword occurrences over all notes joined together.
func lateNightCategory(notes, keywords []string) string {
	if len(notes) == 0 {
		return domain.None
	}

	text := strings.Join(notes, " ")
	best, bestCount := Other, 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if n := strings.Count(text, kw); n > bestCount {
			best, bestCount = kw, n
		}
	}
	return best
}

func span(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
