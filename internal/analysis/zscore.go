package analysis

// Altman Z-Score weights for the four-ratio private-firm model used by the
// source application.
const (
	zWeightWorkingCapital   = 6.56
	zWeightRetainedEarnings = 3.26
	zWeightEBIT             = 6.72
	zWeightEquity           = 1.05
)

// ZScoreBreakdown holds the Altman Z-Score and its four component ratios,
// all computed on end-of-period values.
type ZScoreBreakdown struct {
	WorkingCapitalToAssets   Scalar `json:"working_capital_to_assets"`
	RetainedEarningsToAssets Scalar `json:"retained_earnings_to_assets"`
	EBITToAssets             Scalar `json:"ebit_to_assets"`
	EquityToLiabilities      Scalar `json:"equity_to_liabilities"`
	Score                    Scalar `json:"score"`
}

// AltmanZScore computes the Z-Score from end-of-period fundamentals. A
// missing component propagates through the weighted sum, so the score is
// missing whenever any term is.
func AltmanZScore(f Fundamentals) ZScoreBreakdown {
	wc := f.WorkingCapital().End
	assets := f.TotalAssets.End

	b := ZScoreBreakdown{
		WorkingCapitalToAssets:   Div(wc, assets),
		RetainedEarningsToAssets: Div(f.RetainedEarnings.End, assets),
		EBITToAssets:             Div(f.EBIT.End, assets),
		EquityToLiabilities:      Div(f.TotalEquity.End, f.TotalLiabilities().End),
	}
	b.Score = zWeightWorkingCapital*b.WorkingCapitalToAssets +
		zWeightRetainedEarnings*b.RetainedEarningsToAssets +
		zWeightEBIT*b.EBITToAssets +
		zWeightEquity*b.EquityToLiabilities
	return b
}
