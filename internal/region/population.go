// Population model — satisfaction from need fulfillment, feedback into
// labor growth/decline and capital reinvestment.
package region

import "math"

// MinLabor is the floor applied when dissatisfaction shrinks the labor pool.
const MinLabor = 50

// UpdateSatisfaction recomputes satisfaction as the arithmetic mean of the
// per-resource fulfillment ratios. Each ratio is clamped to [0, 1] before
// averaging. An empty map leaves satisfaction unchanged.
func (r *Region) UpdateSatisfaction(ratios map[string]float64) {
	if len(ratios) == 0 {
		return
	}

	total := 0.0
	for _, ratio := range ratios {
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		total += ratio
	}
	r.Satisfaction = total / float64(len(ratios))
}

// UpdatePopulation applies satisfaction feedback to the labor pool.
// Low satisfaction shrinks labor (floored at MinLabor); high satisfaction
// grows labor and reinvests capital.
func (r *Region) UpdatePopulation() {
	switch {
	case r.Satisfaction < 0.5:
		r.Labor -= int(math.Round((0.5 - r.Satisfaction) * 10))
		if r.Labor < MinLabor {
			r.Labor = MinLabor
		}
	case r.Satisfaction > 0.8:
		r.Labor += int(math.Round((r.Satisfaction - 0.8) * 15))
		r.Accounts.AdjustCapitalInvestment((r.Satisfaction - 0.8) * 0.5)
	}
}
