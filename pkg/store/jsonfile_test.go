package store

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidshard/wrapped/pkg/crypto"
	"github.com/voidshard/wrapped/pkg/domain"
)

func report() *domain.Report {
	month := 3
	return &domain.Report{
		SpendingOverview: domain.SpendingOverview{
			TotalSpent:         12.5,
			MostExpensiveMonth: &month,
			TotalTransactions:  2,
		},
		TransactionCategories: domain.TransactionCategories{
			CategoryBreakdown: map[string]domain.CategoryStats{"food": {Count: 1, Total: 12.5, Percentage: 100}},
		},
		FinancialHabits:   domain.FinancialHabits{PaymentFrequency: "Weekly Regular"},
		MoneyPingpong:     []domain.PingPong{},
		EternalDebtCycles: []domain.DebtCycle{},
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	jf := NewJSONFile(path)

	err := jf.Write(report())
	require.NoError(t, err)

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)

	decoded := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 9)
	assert.JSONEq(t, `[]`, string(decoded["money_pingpong"]))
}

func TestSealedWrite(t *testing.T) {
	key, sig := strings.Repeat("k", 32), strings.Repeat("s", 32)
	sealer, err := crypto.NewSealer(key, sig)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.blob")
	require.NoError(t, NewSealedFile(path, sealer).Write(report()))

	blob, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(blob), "spending_overview")

	plain, err := sealer.Open(blob)
	require.NoError(t, err)

	want, err := report().JSON()
	require.NoError(t, err)
	assert.Equal(t, want, plain)
}

func TestNew(t *testing.T) {
	opts := Options{
		SealKey: strings.Repeat("k", 32),
		SignKey: strings.Repeat("s", 32),
		Log:     zerolog.Nop(),
	}

	cases := []struct {
		out  string
		want Store
	}{
		{"", Nop{}},
		{"jsonfile:/tmp/out.json", &JSONFile{}},
		{"es8:http://localhost:9200", &ElasticsearchV8{}},
		{"es8:", &ElasticsearchV8{}},
		{"sealed:/tmp/out.blob", &SealedFile{}},
	}

	for _, tt := range cases {
		t.Run(tt.out, func(t *testing.T) {
			s, err := New(tt.out, opts)
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
		})
	}
}

func TestNewRejects(t *testing.T) {
	for _, out := range []string{"nocolon", "jsonfile:", "ftp:/tmp/x"} {
		_, err := New(out, Options{})
		assert.Error(t, err, out)
	}

	_, err := New("sealed:/tmp/out.blob", Options{SealKey: "short"})
	assert.ErrorIs(t, err, crypto.ErrKeyTooShort)
}

func TestNewElasticsearchAddress(t *testing.T) {
	t.Setenv(envEsAddr, "search.internal")
	t.Setenv(envEsPort, "9201")

	es := NewElasticsearchV8(zerolog.Nop()).(*ElasticsearchV8)
	assert.Equal(t, []string{"http://search.internal:9201"}, es.addresses)

	es = NewElasticsearchV8(zerolog.Nop(), "http://other:9200").(*ElasticsearchV8)
	assert.Equal(t, []string{"http://other:9200"}, es.addresses)
}

func TestDocuments(t *testing.T) {
	docs, err := documents(report())
	require.NoError(t, err)
	require.Len(t, docs, 9)

	again, err := documents(report())
	require.NoError(t, err)

	id := docs[0].ReportID
	assert.Equal(t, again[0].ReportID, id)
	for _, d := range docs {
		assert.Equal(t, id, d.ReportID)
		assert.Equal(t, id+"-"+d.Section, d.id())
	}
	assert.Equal(t, "spending_overview", docs[0].Section)
	assert.Equal(t, "eternal_debt_cycles", docs[8].Section)

	other := report()
	other.SpendingOverview.TotalSpent = 99
	otherID, err := ReportID(other)
	require.NoError(t, err)
	assert.NotEqual(t, id, otherID)
}
