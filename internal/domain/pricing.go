package domain

// PricingBreakdown is the derived price/duration decomposition shown to the user.
// It is recomputed from its inputs on every relevant mutation and never persisted.
// No rounding is applied here; display formatting is the widget's concern.
type PricingBreakdown struct {
	BasePrice            float64
	SquareMeterPrice     float64
	ExtrasPrice          float64
	ZipSurcharge         float64
	TotalPrice           float64
	OriginalPrice        *float64 // present only when a promo multiplier < 1.0 applies
	TotalDurationMinutes int
}

// Discounted reports whether a promo discount is reflected in the total.
func (p *PricingBreakdown) Discounted() bool {
	return p.OriginalPrice != nil
}

// Subtotal returns the pre-promo sum of all price components.
func (p *PricingBreakdown) Subtotal() float64 {
	return p.BasePrice + p.SquareMeterPrice + p.ExtrasPrice + p.ZipSurcharge
}
