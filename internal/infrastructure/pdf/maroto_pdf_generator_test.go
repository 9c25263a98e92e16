package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/attire-api/internal/application/seed"
)

func TestGenerateSalePDF(t *testing.T) {
	g := NewMarotoPDFGenerator("Attire Store")
	sale := seed.Sales()[0]

	out, err := g.GenerateSalePDF(context.Background(), &sale)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateSalePDF_Nil(t *testing.T) {
	_, err := NewMarotoPDFGenerator("Attire Store").GenerateSalePDF(context.Background(), nil)
	assert.Error(t, err)
}

func TestMoney(t *testing.T) {
	g := NewMarotoPDFGenerator("x")
	assert.Equal(t, "Rs. 1,250.50", g.money(decimal.RequireFromString("1250.5")))
	assert.Equal(t, "Rs. 70.00", g.money(decimal.NewFromInt(70)))
}
