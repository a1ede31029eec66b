package insights

import (
	"sort"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
	"github.com/shopspring/decimal"
	"github.com/voidshard/wrapped/pkg/domain"
)

// Unknown stands in for an emoji when no note has one.
const Unknown = "❓"

const (
	creativeNoteMinLength = 5
	creativeNoteCount     = 3
)

var one = decimal.NewFromInt(1)

// variationSelector asks for emoji presentation. Text style symbols such as © are only
// listed by gomoji in their emoji presentation form.
const variationSelector = "\ufe0f"

func isEmoji(r rune) bool {
	if _, err := gomoji.GetInfo(string(r)); err == nil {
		return true
	}
	_, err := gomoji.GetInfo(string(r) + variationSelector)
	return err == nil
}

// Emoji returns the emoji code points of s in order. Joiners, variation selectors and
// plain text are skipped.
func Emoji(s string) []string {
	var out []string
	for _, r := range s {
		if isEmoji(r) {
			out = append(out, string(r))
		}
	}
	return out
}

// FunInsights collects note and emoji trivia. Ties go to whatever was seen first.
func FunInsights(txns []*domain.Transaction) domain.FunInsights {
	singles := newTally[string]()
	pairs := newTally[[2]string]()
	repeats := newTally[string]()

	var (
		all               []string
		shortest, longest string
		withEmoji         int
		notes             []*domain.Transaction
	)

	for _, tx := range txns {
		if tx.Note == "" {
			continue
		}
		notes = append(notes, tx)
		repeats.add(tx.Note)

		n := utf8.RuneCountInString(tx.Note)
		if shortest == "" || n < utf8.RuneCountInString(shortest) {
			shortest = tx.Note
		}
		if longest == "" || n > utf8.RuneCountInString(longest) {
			longest = tx.Note
		}

		found := Emoji(tx.Note)
		if len(found) > 0 {
			withEmoji++
		}
		all = append(all, found...)
	}

	for i, e := range all {
		singles.add(e)
		if i > 0 {
			pairs.add([2]string{all[i-1], e})
		}
	}

	out := domain.FunInsights{
		MostUsedEmoji:      domain.EmojiCount{Emoji: Unknown},
		FavoriteEmojiCombo: domain.EmojiCombo{First: Unknown, Second: Unknown},
		CreativeNotes:      creativeNotes(notes),
		NoteStats: domain.NoteStats{
			Shortest:        shortest,
			Longest:         longest,
			EmojiPercentage: percent(withEmoji, len(txns)),
		},
		LateNightActivity: smallHours(txns),
		CheapskateAward:   cheapskate(txns),
	}

	if e, n, ok := singles.top(nil); ok {
		out.MostUsedEmoji = domain.EmojiCount{Emoji: e, Count: n}
	}
	if p, n, ok := pairs.top(nil); ok {
		out.FavoriteEmojiCombo = domain.EmojiCombo{First: p[0], Second: p[1], Count: n}
	}
	if note, n, ok := repeats.top(nil); ok {
		out.NoteStats.MostRepeated = domain.RepeatedNote{Note: note, Count: n}
	}

	return out
}

// creativeNotes returns the longest notes over the minimum length, longest first.
func creativeNotes(notes []*domain.Transaction) []domain.CreativeNote {
	long := []*domain.Transaction{}
	for _, tx := range notes {
		if utf8.RuneCountInString(tx.Note) > creativeNoteMinLength {
			long = append(long, tx)
		}
	}
	sort.SliceStable(long, func(i, j int) bool {
		return utf8.RuneCountInString(long[i].Note) > utf8.RuneCountInString(long[j].Note)
	})
	if len(long) > creativeNoteCount {
		long = long[:creativeNoteCount]
	}

	out := make([]domain.CreativeNote, 0, len(long))
	for _, tx := range long {
		out = append(out, domain.CreativeNote{
			Note:   tx.Note,
			Amount: float(tx.Amount.Abs()),
			With:   domain.Text(tx.Counterparty()),
		})
	}
	return out
}

// smallHours covers midnight to 4am, a narrower window than the late night time insight.
func smallHours(txns []*domain.Transaction) domain.LateNightActivity {
	var (
		count int
		total decimal.Decimal
	)
	for _, tx := range txns {
		if tx.Hour() <= 4 {
			count++
			total = total.Add(tx.Amount)
		}
	}
	return domain.LateNightActivity{Count: count, TotalAmount: float(total.Abs())}
}

// cheapskate is the smallest payment under a dollar, zero if there is none.
func cheapskate(txns []*domain.Transaction) domain.CheapskateAward {
	var smallest *decimal.Decimal
	for _, tx := range txns {
		a := tx.Amount.Abs()
		if !a.LessThan(one) {
			continue
		}
		if smallest == nil || a.LessThan(*smallest) {
			smallest = &a
		}
	}
	if smallest == nil {
		return domain.CheapskateAward{}
	}
	return domain.CheapskateAward{SmallestAmount: float(*smallest)}
}
