package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputePayout(t *testing.T) {
	tests := []struct {
		name           string
		gross          string
		wantGross      string
		wantCommission string
		wantGST        string
		wantNet        string
	}{
		{
			name:           "valores exatos",
			gross:          "1000",
			wantGross:      "1000.00",
			wantCommission: "200.00",
			wantGST:        "36.00",
			wantNet:        "764.00",
		},
		{
			name:           "meio centavo arredonda para cima",
			gross:          "0.125",
			wantGross:      "0.13",
			wantCommission: "0.03",
			wantGST:        "0.00",
			wantNet:        "0.10",
		},
		{
			name:           "arredonda só no resultado",
			gross:          "1000.005",
			wantGross:      "1000.01",
			wantCommission: "200.00",
			wantGST:        "36.00",
			wantNet:        "764.00",
		},
		{
			name:           "comissão com três casas",
			gross:          "33.33",
			wantGross:      "33.33",
			wantCommission: "6.67",
			wantGST:        "1.20",
			wantNet:        "25.46",
		},
		{
			name:           "zero",
			gross:          "0",
			wantGross:      "0.00",
			wantCommission: "0.00",
			wantGST:        "0.00",
			wantNet:        "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payout := ComputePayout(decimal.RequireFromString(tt.gross))

			assert.Equal(t, tt.wantGross, payout.GrossRevenue.StringFixed(2))
			assert.Equal(t, tt.wantCommission, payout.CommissionExGST.StringFixed(2))
			assert.Equal(t, tt.wantGST, payout.GSTOnCommission.StringFixed(2))
			assert.Equal(t, tt.wantNet, payout.NetPayout.StringFixed(2))
		})
	}
}

func TestComputePayout_NetIsGrossMinusDeductions(t *testing.T) {
	for _, raw := range []string{"0.01", "0.125", "7.77", "33.33", "1000.005", "123456.789"} {
		gross := decimal.RequireFromString(raw)
		commission := gross.Mul(CommissionRate)
		gst := commission.Mul(GSTRate)

		payout := ComputePayout(gross)

		assert.True(t, payout.NetPayout.Equal(gross.Sub(commission).Sub(gst).Round(2)), "gross %s", raw)
		assert.True(t, payout.NetPayout.Equal(gross.Mul(decimal.RequireFromString("0.764")).Round(2)), "gross %s", raw)
	}
}
