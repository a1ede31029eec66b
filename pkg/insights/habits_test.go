package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/voidshard/wrapped/pkg/domain"
)

func TestClassifyFrequency(t *testing.T) {
	cases := []struct {
		gap  float64
		want string
	}{
		{0, DailySpender},
		{2, DailySpender},
		{2.01, WeeklyRegular},
		{7, WeeklyRegular},
		{7.01, MonthlyPlanner},
		{30, MonthlyPlanner},
		{30.5, OccasionalSplurger},
		{365, OccasionalSplurger},
	}

	for _, tt := range cases {
		assert.Equal(t, tt.want, ClassifyFrequency(tt.gap), "gap %v", tt.gap)
	}
}

func TestFinancialHabits(t *testing.T) {
	txns := []*domain.Transaction{
		got("12", on(1, 15, 9), "A", "x"),
		sent("10", on(1, 1, 9), "A", "x"),
		sent("20", on(1, 8, 9), "A", "x"),
	}

	h := FinancialHabits(txns)

	assert.InDelta(t, 6.0, h.AvgTransactionAmount, 1e-9)
	assert.Equal(t, WeeklyRegular, h.PaymentFrequency)
	assert.Equal(t, 7, h.LargestPaymentGap)
	assert.InDelta(t, 1.0, h.PaymentConsistency, 1e-9)
}

func TestFinancialHabitsUneven(t *testing.T) {
	txns := []*domain.Transaction{
		sent("1", on(1, 1, 9), "A", "x"),
		sent("1", on(1, 2, 9), "A", "x"),
		sent("1", on(2, 1, 9), "A", "x"),
	}

	h := FinancialHabits(txns)

	assert.Equal(t, MonthlyPlanner, h.PaymentFrequency)
	assert.Equal(t, 30, h.LargestPaymentGap)
	assert.InDelta(t, 0.593988, h.PaymentConsistency, 1e-5)
}

func TestFinancialHabitsSparse(t *testing.T) {
	one := FinancialHabits([]*domain.Transaction{sent("4", on(1, 1, 9), "A", "x")})
	assert.Equal(t, domain.FinancialHabits{
		AvgTransactionAmount: 4,
		PaymentFrequency:     OccasionalSplurger,
		PaymentConsistency:   0.5,
	}, one)

	two := FinancialHabits([]*domain.Transaction{
		sent("4", on(1, 1, 9), "A", "x"),
		sent("4", on(1, 3, 9), "A", "x"),
	})
	assert.Equal(t, DailySpender, two.PaymentFrequency)
	assert.Equal(t, 0.5, two.PaymentConsistency)

	none := FinancialHabits(nil)
	assert.Equal(t, OccasionalSplurger, none.PaymentFrequency)
	assert.Equal(t, 0.5, none.PaymentConsistency)
}

func TestFloorDays(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want int
	}{
		{0, 0},
		{23 * time.Hour, 0},
		{24 * time.Hour, 1},
		{71 * time.Hour, 2},
		{-time.Hour, -1},
		{-24 * time.Hour, -1},
		{-25 * time.Hour, -2},
	}

	for _, tt := range cases {
		assert.Equal(t, tt.want, floorDays(tt.d), "%v", tt.d)
	}
}
