package insights

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidshard/wrapped/pkg/domain"
)

func TestMoneyPingpongWindow(t *testing.T) {
	cases := []struct {
		name  string
		reply *domain.Transaction
		want  int
	}{
		{"five days later", got("20.50", on(1, 6, 12), "Alice", "my share"), 1},
		{"eight days later", got("20.50", on(1, 9, 12), "Alice", "my share"), 0},
		{"exactly a week", got("20", on(1, 8, 12), "Alice", "my share"), 1},
		{"a dollar over", got("21.00", on(1, 2, 12), "Alice", "my share"), 1},
		{"more than a dollar over", got("21.01", on(1, 2, 12), "Alice", "my share"), 0},
		{"a dollar under", got("19.00", on(1, 2, 12), "Alice", "my share"), 1},
		{"before the payment", got("20", on(1, 1, 6), "Alice", "my share"), 1},
		{"someone else", got("20", on(1, 2, 12), "Bob", "my share"), 0},
		{"blank reply note", got("20", on(1, 2, 12), "Alice", ""), 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			txns := []*domain.Transaction{
				sent("20.00", on(1, 1, 12), "Alice", "dinner"),
				tt.reply,
			}
			assert.Len(t, MoneyPingpong(txns), tt.want)
		})
	}
}

func TestMoneyPingpong(t *testing.T) {
	txns := []*domain.Transaction{
		sent("20.00", on(1, 1, 12), "Alice", "dinner"),
		got("20.50", on(1, 6, 12), "Alice", "my share"),
	}

	found := MoneyPingpong(txns)

	require.Len(t, found, 1)
	assert.Equal(t, domain.PingPong{
		Person:   "Alice",
		Amount:   20,
		Note1:    "dinner",
		Note2:    "my share",
		TimeDiff: 5,
	}, found[0])
}

func TestMoneyPingpongFirstMatchWins(t *testing.T) {
	txns := []*domain.Transaction{
		sent("10", on(1, 1, 12), "Alice", "tickets"),
		got("10", on(1, 4, 12), "Alice", "first"),
		got("10", on(1, 2, 12), "Alice", "second"),
	}

	found := MoneyPingpong(txns)

	require.Len(t, found, 1)
	assert.Equal(t, "first", found[0].Note2)
	assert.Equal(t, 3, found[0].TimeDiff)
}

func TestMoneyPingpongSorted(t *testing.T) {
	txns := []*domain.Transaction{
		sent("20", on(1, 1, 12), "Alice", "dinner"),
		sent("50", on(1, 1, 12), "Bob", "concert"),
		sent("20", on(1, 3, 12), "Carol", "cab"),
		got("20", on(1, 2, 12), "Alice", "back"),
		got("50", on(1, 2, 12), "Bob", "back"),
		got("20", on(1, 4, 12), "Carol", "back"),
	}

	found := MoneyPingpong(txns)

	require.Len(t, found, 3)
	assert.Equal(t, "Bob", found[0].Person)
	assert.Equal(t, "Alice", found[1].Person)
	assert.Equal(t, "Carol", found[2].Person)
}

func TestMoneyPingpongSkipsBlanks(t *testing.T) {
	txns := []*domain.Transaction{
		sent("20", on(1, 1, 12), "Alice", ""),
		payment("-20", on(1, 1, 12), "Alice", "", "dinner"),
		got("20", on(1, 2, 12), "Alice", "back"),
	}

	assert.Empty(t, MoneyPingpong(txns))
}

func TestMoneyPingpongEmpty(t *testing.T) {
	found := MoneyPingpong(nil)

	require.NotNil(t, found)
	data, err := json.Marshal(found)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
