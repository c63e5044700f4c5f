package domain

import "github.com/shopspring/decimal"

var (
	CommissionRate = decimal.RequireFromString("0.20")
	GSTRate        = decimal.RequireFromString("0.18")
)

func init() {
	// valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true
}

type Payout struct {
	GrossRevenue    decimal.Decimal `json:"gross_revenue"`
	CommissionExGST decimal.Decimal `json:"commission_ex_gst"`
	GSTOnCommission decimal.Decimal `json:"gst_on_commission"`
	NetPayout       decimal.Decimal `json:"net_payout"`
}

// ComputePayout calcula comissão, GST sobre a comissão e o líquido do publisher.
// Os cálculos intermediários são exatos; o arredondamento (half-up, 2 casas) acontece
// apenas no resultado final.
func ComputePayout(gross decimal.Decimal) Payout {
	commission := gross.Mul(CommissionRate)
	gst := commission.Mul(GSTRate)
	net := gross.Sub(commission).Sub(gst)

	return Payout{
		GrossRevenue:    gross.Round(2),
		CommissionExGST: commission.Round(2),
		GSTOnCommission: gst.Round(2),
		NetPayout:       net.Round(2),
	}
}

type PublisherPayout struct {
	PublisherID   int64     `json:"publisher_id"`
	PublisherName string    `json:"publisher_name"`
	Range         DateRange `json:"range"`
	Payout
}
