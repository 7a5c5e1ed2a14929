package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentquant/analytics/internal/series"
)

func entry(id string, vol float64) Entry {
	return Entry{
		Identity: Identity{
			ID:             id,
			Name:           id,
			Status:         StatusLive,
			MaxDrawdownPct: -5,
		},
		Behavior: series.Behavior{Drift: 0.001, Volatility: vol},
	}
}

func TestDefault(t *testing.T) {
	c := Default()

	require.Equal(t, 6, c.Len())
	assert.Equal(t,
		[]string{"sentquant", "systemic_hyper", "jlp_neutral", "guineapool", "edgehedge", "systemicls"},
		c.IDs(),
	)

	e, ok := c.Lookup("systemic_hyper")
	require.True(t, ok)
	assert.Equal(t, 1.44, e.Identity.Sharpe)
	assert.Equal(t, c.Len(), len(c.Behaviors()))

	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestEntriesIsCopy(t *testing.T) {
	c := Default()
	entries := c.Entries()
	entries[0].Identity.ID = "mutated"

	assert.Equal(t, "sentquant", c.IDs()[0])
}

func TestValidate(t *testing.T) {
	withStatus := entry("x", 0.01)
	withStatus.Identity.Status = "Paused"

	positiveDD := entry("x", 0.01)
	positiveDD.Identity.MaxDrawdownPct = 3

	negCapital := entry("x", 0.01)
	negCapital.Identity.TrackedCapital = decimal.NewFromInt(-1)

	tests := []struct {
		name    string
		entries []Entry
		wantErr error
		field   string
	}{
		{"empty", nil, ErrEmptyCatalog, "strategies"},
		{"missing id", []Entry{entry(" ", 0.01)}, ErrMissingID, "strategies[0].id"},
		{"duplicate id", []Entry{entry("a", 0.01), entry("a", 0.02)}, ErrDuplicateID, "strategies[1].id"},
		{"negative volatility", []Entry{entry("a", -0.01)}, ErrNegativeVolatility, "strategies[0].volatility"},
		{"negative capital", []Entry{negCapital}, ErrNegativeCapital, "strategies[0].tracked_capital"},
		{"unknown status", []Entry{withStatus}, ErrInvalidIdentity, "strategies[0].identity.status"},
		{"positive max drawdown", []Entry{positiveDD}, ErrInvalidIdentity, "strategies[0].identity.maxdrawdownpct"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var cfgErr ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestValidate_OK(t *testing.T) {
	c, err := New(entry("a", 0), entry("b", 0.3))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, c.IDs())
}

func TestHash(t *testing.T) {
	h1, err := Default().Hash()
	require.NoError(t, err)
	h2, err := Default().Hash()
	require.NoError(t, err)

	assert.Len(t, h1, 64)
	assert.Equal(t, h1, h2, "hash must be deterministic")

	other, err := New(entry("a", 0.01))
	require.NoError(t, err)
	h3, err := other.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestLoad(t *testing.T) {
	c, raw, err := Load("testdata/catalog.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	require.Equal(t, []string{"alpha", "beta"}, c.IDs())

	alpha, _ := c.Lookup("alpha")
	assert.Equal(t, "Alpha Basis", alpha.Identity.Name)
	assert.Equal(t, 1.44, alpha.Identity.Sharpe)
	assert.True(t, decimal.RequireFromString("15000.5").Equal(alpha.Identity.TrackedCapital))
	assert.Equal(t, series.Behavior{Drift: 0.001, Volatility: 0.02}, alpha.Behavior)

	beta, _ := c.Lookup("beta")
	assert.Equal(t, StatusOffline, beta.Identity.Status)
	assert.Equal(t, 120.0, beta.Identity.AprPct)
	assert.True(t, beta.Identity.TrackedCapital.IsZero())
}

func TestLoad_Rejects(t *testing.T) {
	_, _, err := Load("testdata/unknown_field.yaml")
	assert.Error(t, err, "unknown fields must fail")

	_, _, err = Load("testdata/duplicate.yaml")
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, _, err = Load("testdata/does_not_exist.yaml")
	assert.Error(t, err)
}

func TestParse_BadCapital(t *testing.T) {
	_, err := Parse([]byte("strategies:\n  - id: a\n    name: A\n    tracked_capital: lots\n"))
	assert.ErrorIs(t, err, ErrInvalidIdentity)
}
