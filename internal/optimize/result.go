package optimize

import (
	"github.com/pricelab/pricelab/internal/demand"
)

// Bracket is the price interval the optimum is assumed to lie in.
type Bracket struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Result is the terminal output of one optimization run.
type Result struct {
	OptimumPrice    float64           `json:"optimum_price"`
	MaximumProfit   float64           `json:"maximum_profit"`
	EstimatedDemand float64           `json:"estimated_demand"`
	Iterations      int               `json:"iterations"`
	Parameters      demand.Parameters `json:"demand_parameters"`
	PriceRange      Bracket           `json:"price_range"`
	Cost            float64           `json:"cost"`
}
