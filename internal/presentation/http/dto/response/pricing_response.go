package response

import (
	"fmt"
)

// PriceQuoteResponse is the outcome of a price resolution. Price is omitted
// and Display is "N/A" when the job metrics exceed the tier's maxima.
type PriceQuoteResponse struct {
	TierName string   `json:"tier_name"`
	Eligible bool     `json:"eligible"`
	Price    *float64 `json:"price,omitempty"`
	Display  string   `json:"display"`
}

// NewPriceQuoteResponse builds a price quote response from a resolved price.
func NewPriceQuoteResponse(tierName string, eligible bool, price *float64) *PriceQuoteResponse {
	resp := &PriceQuoteResponse{
		TierName: tierName,
		Eligible: eligible,
		Price:    price,
		Display:  "N/A",
	}
	if eligible && price != nil {
		resp.Display = fmt.Sprintf("%.2f", *price)
	}
	return resp
}
