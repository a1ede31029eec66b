package domain

import (
	"encoding/json"
)

// None stands in for a name or note when there is no transaction to take it from.
const None = "none"

// Report is the assembled set of insight sections. It is an output artifact only.
type Report struct {
	SpendingOverview      SpendingOverview      `json:"spending_overview"`
	TransactionCategories TransactionCategories `json:"transaction_categories"`
	PeopleInsights        PeopleInsights        `json:"people_insights"`
	TimeInsights          TimeInsights          `json:"time_insights"`
	FunInsights           FunInsights           `json:"fun_insights"`
	FinancialHabits       FinancialHabits       `json:"financial_habits"`
	SocialInsights        SocialInsights        `json:"social_insights"`
	MoneyPingpong         []PingPong            `json:"money_pingpong"`
	EternalDebtCycles     []DebtCycle           `json:"eternal_debt_cycles"`
}

// Section is one named top level entry of a Report.
type Section struct {
	Name string
	Body interface{}
}

// Sections lists the report sections in their serialized order.
func (r *Report) Sections() []Section {
	return []Section{
		{Name: "spending_overview", Body: r.SpendingOverview},
		{Name: "transaction_categories", Body: r.TransactionCategories},
		{Name: "people_insights", Body: r.PeopleInsights},
		{Name: "time_insights", Body: r.TimeInsights},
		{Name: "fun_insights", Body: r.FunInsights},
		{Name: "financial_habits", Body: r.FinancialHabits},
		{Name: "social_insights", Body: r.SocialInsights},
		{Name: "money_pingpong", Body: r.MoneyPingpong},
		{Name: "eternal_debt_cycles", Body: r.EternalDebtCycles},
	}
}

func (r *Report) JSON() ([]byte, error) {
	return json.Marshal(r)
}

// Text maps a blank cell to a JSON null.
func Text(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type SpendingOverview struct {
	TotalSpent               float64 `json:"total_spent"`
	TotalReceived            float64 `json:"total_received"`
	NetBalance               float64 `json:"net_balance"`
	AvgMonthlySpend          float64 `json:"avg_monthly_spend"`
	MostExpensiveMonth       *int    `json:"most_expensive_month"`
	MostExpensiveMonthAmount float64 `json:"most_expensive_month_amount"`
	CheapestMonth            *int    `json:"cheapest_month"`
	CheapestMonthAmount      float64 `json:"cheapest_month_amount"`
	AvgPaymentSize           float64 `json:"avg_payment_size"`
	TotalTransactions        int     `json:"total_transactions"`
}

type TransactionCategories struct {
	CategoryBreakdown       map[string]CategoryStats `json:"category_breakdown"`
	MostFrequentCategory    NamedCount               `json:"most_frequent_category"`
	HighestSpendingCategory NamedAmount              `json:"highest_spending_category"`
	BiggestSplurge          Splurge                  `json:"biggest_splurge"`
}

type CategoryStats struct {
	Count          int             `json:"count"`
	Total          float64         `json:"total"`
	Percentage     float64         `json:"percentage"`
	TopTransaction *TopTransaction `json:"top_transaction"`
}

type TopTransaction struct {
	Amount float64 `json:"amount"`
	Note   *string `json:"note"`
	To     *string `json:"to"`
}

type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type NamedAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type Splurge struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     *string `json:"note"`
	To       *string `json:"to"`
}

type PeopleInsights struct {
	VenmoSoulmate          Soulmate        `json:"venmo_soulmate"`
	MostGenerousFriend     Friend          `json:"most_generous_friend"`
	MostThankfulFriend     Friend          `json:"most_thankful_friend"`
	BiggestPaymentSent     PaymentSent     `json:"biggest_payment_sent"`
	BiggestPaymentReceived PaymentReceived `json:"biggest_payment_received"`
}

type Soulmate struct {
	Name        string  `json:"name"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type Friend struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

type PaymentSent struct {
	Amount float64 `json:"amount"`
	To     *string `json:"to"`
	Note   *string `json:"note"`
}

type PaymentReceived struct {
	Amount float64 `json:"amount"`
	From   *string `json:"from"`
	Note   *string `json:"note"`
}

type TimeInsights struct {
	MostActiveDay    ActiveDay        `json:"most_active_day"`
	MostActiveMonth  ActiveMonth      `json:"most_active_month"`
	MostActiveHour   ActiveHour       `json:"most_active_hour"`
	WeekendVsWeekday WeekendVsWeekday `json:"weekend_vs_weekday"`
	LateNight        LateNight        `json:"late_night"`
}

type ActiveDay struct {
	Day        string  `json:"day"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ActiveMonth struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

type ActiveHour struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type WeekendVsWeekday struct {
	WeekendCount      int     `json:"weekend_count"`
	WeekdayCount      int     `json:"weekday_count"`
	WeekendPercentage float64 `json:"weekend_percentage"`
}

type LateNight struct {
	Count              int     `json:"count"`
	Percentage         float64 `json:"percentage"`
	TotalAmount        float64 `json:"total_amount"`
	MostCommonCategory string  `json:"most_common_category"`
}

type FunInsights struct {
	MostUsedEmoji      EmojiCount        `json:"most_used_emoji"`
	FavoriteEmojiCombo EmojiCombo        `json:"favorite_emoji_combo"`
	CreativeNotes      []CreativeNote    `json:"creative_notes"`
	NoteStats          NoteStats         `json:"note_stats"`
	LateNightActivity  LateNightActivity `json:"late_night_activity"`
	CheapskateAward    CheapskateAward   `json:"cheapskate_award"`
}

type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

type EmojiCombo struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Count  int    `json:"count"`
}

type CreativeNote struct {
	Note   string  `json:"note"`
	Amount float64 `json:"amount"`
	With   *string `json:"with"`
}

type NoteStats struct {
	Shortest        string       `json:"shortest"`
	Longest         string       `json:"longest"`
	MostRepeated    RepeatedNote `json:"most_repeated"`
	EmojiPercentage float64      `json:"emoji_percentage"`
}

type RepeatedNote struct {
	Note  string `json:"note"`
	Count int    `json:"count"`
}

type LateNightActivity struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type CheapskateAward struct {
	SmallestAmount float64 `json:"smallest_amount"`
}

type FinancialHabits struct {
	AvgTransactionAmount float64 `json:"avg_transaction_amount"`
	PaymentFrequency     string  `json:"payment_frequency"`
	LargestPaymentGap    int     `json:"largest_payment_gap"`
	PaymentConsistency   float64 `json:"payment_consistency"`
}

type SocialInsights struct {
	TotalUniquePeople  int     `json:"total_unique_people"`
	MostActiveMonth    string  `json:"most_active_month"`
	SocialScore        float64 `json:"social_score"`
	PaymentNetworkSize int     `json:"payment_network_size"`
}

// PingPong is an outgoing payment answered by a similar incoming one from the same person.
type PingPong struct {
	Person   string  `json:"person"`
	Amount   float64 `json:"amount"`
	Note1    string  `json:"note1"`
	Note2    string  `json:"note2"`
	TimeDiff int     `json:"time_diff"`
}

// DebtCycle is a counterparty with balanced money flowing both ways.
type DebtCycle struct {
	Person string         `json:"person"`
	Stats  DebtCycleStats `json:"stats"`
}

type DebtCycleStats struct {
	YouSent          float64 `json:"you_sent"`
	YouReceived      float64 `json:"you_received"`
	OutCount         int     `json:"out_count"`
	InCount          int     `json:"in_count"`
	LastSent         float64 `json:"last_sent"`
	LastReceived     float64 `json:"last_received"`
	LastSentNote     *string `json:"last_sent_note"`
	LastReceivedNote *string `json:"last_received_note"`
	TotalFlow        float64 `json:"total_flow"`
	NetFlow          float64 `json:"net_flow"`
}
