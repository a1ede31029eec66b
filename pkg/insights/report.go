package insights

import (
	"github.com/rs/zerolog"
	"github.com/voidshard/wrapped/pkg/categorize"
	"github.com/voidshard/wrapped/pkg/domain"
)

// Analyzer turns a loaded set of payments into a Report.
type Analyzer struct {
	categorizer *categorize.Categorizer
	log         zerolog.Logger
}

func NewAnalyzer(c *categorize.Categorizer, log zerolog.Logger) *Analyzer {
	return &Analyzer{categorizer: c, log: log}
}

// Build categorizes txns and runs every insight over them. Sections are independent of each
// other and never fail; sparse input yields zero or "none" values.
func (a *Analyzer) Build(txns []*domain.Transaction) *domain.Report {
	a.categorizer.Apply(txns)

	r := &domain.Report{
		SpendingOverview:      SpendingOverview(txns),
		TransactionCategories: TransactionCategories(txns),
		PeopleInsights:        PeopleInsights(txns),
		TimeInsights:          TimeInsights(txns, a.categorizer.LateNightKeywords()),
		FunInsights:           FunInsights(txns),
		FinancialHabits:       FinancialHabits(txns),
		SocialInsights:        SocialInsights(txns),
		MoneyPingpong:         MoneyPingpong(txns),
		EternalDebtCycles:     EternalDebtCycles(txns),
	}

	a.log.Debug().
		Int("transactions", len(txns)).
		Int("categories", len(r.TransactionCategories.CategoryBreakdown)).
		Int("pingpong", len(r.MoneyPingpong)).
		Int("debt_cycles", len(r.EternalDebtCycles)).
		Str("frequency", r.FinancialHabits.PaymentFrequency).
		Msg("built report")

	return r
}
