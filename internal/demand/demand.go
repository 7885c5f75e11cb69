package demand

// Parameters describe a linear demand curve Q(p) = a - b*p.
// A is the theoretical maximum demand at price zero,
// B the decrease in demand per unit price increase.
type Parameters struct {
	A         float64 `json:"a_d"`
	B         float64 `json:"b_d"`
	R2        float64 `json:"r2"`
	Intercept float64 `json:"intercept"`
}

// Quantity returns the estimated demand at the given price.
// Demand is floored at zero, it can never turn negative.
func (p Parameters) Quantity(price float64) float64 {
	q := p.A - p.B*price
	if q < 0 {
		return 0
	}
	return q
}

// Profit builds the profit function K(p) = (p - cost) * Q(p)
// for the given unit cost.
func (p Parameters) Profit(cost float64) func(price float64) float64 {
	return func(price float64) float64 {
		return (price - cost) * p.Quantity(price)
	}
}
