package internal

// SuggestionPolicy holds the tunable constants of the suggestion
// pipeline. The defaults are operating policy, not derived values -
// bounds chosen to avoid over-trusting thin historical signal.
type SuggestionPolicy struct {
	// trailing window feeding the day-of-week trend
	TrendWindowDays int `json:"trendWindowDays"`
	// bounds on any single day-of-week trend multiplier
	TrendClampMin float64 `json:"trendClampMin"`
	TrendClampMax float64 `json:"trendClampMax"`
	// max fraction a day may deviate from the daily average
	GuardrailVariance float64 `json:"guardrailVariance"`
	// suggested-total padding corridor over the raw target
	PadDefault float64 `json:"padDefault"`
	PadMin     float64 `json:"padMin"`
	PadMax     float64 `json:"padMax"`
}

func DefaultSuggestionPolicy() SuggestionPolicy {
	return SuggestionPolicy{
		TrendWindowDays:   70,
		TrendClampMin:     0.7,
		TrendClampMax:     1.35,
		GuardrailVariance: 0.35,
		PadDefault:        1.02,
		PadMin:            1.0,
		PadMax:            1.035,
	}
}
