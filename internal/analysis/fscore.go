package analysis

// FScoreSignals holds the nine Piotroski financial-improvement signals.
// The source evaluated these in two divergent copy-pasted blocks; this is
// the single canonical evaluation.
type FScoreSignals struct {
	PositiveNetIncome         bool `json:"positive_net_income"`
	ImprovingROA              bool `json:"improving_roa"`
	PositiveOperatingCashFlow bool `json:"positive_operating_cash_flow"`
	CashFlowExceedsNetIncome  bool `json:"cash_flow_exceeds_net_income"`
	DecliningLeverage         bool `json:"declining_leverage"`
	ImprovingCurrentRatio     bool `json:"improving_current_ratio"`
	NoShareDilution           bool `json:"no_share_dilution"`
	ImprovingGrossMargin      bool `json:"improving_gross_margin"`
	ImprovingAssetTurnover    bool `json:"improving_asset_turnover"`
}

// Score counts the true signals, 0 through 9.
func (s FScoreSignals) Score() int {
	n := 0
	for _, sig := range []bool{
		s.PositiveNetIncome,
		s.ImprovingROA,
		s.PositiveOperatingCashFlow,
		s.CashFlowExceedsNetIncome,
		s.DecliningLeverage,
		s.ImprovingCurrentRatio,
		s.NoShareDilution,
		s.ImprovingGrossMargin,
		s.ImprovingAssetTurnover,
	} {
		if sig {
			n++
		}
	}
	return n
}

// PiotroskiSignals evaluates the nine signals from the fundamentals. Every
// comparison involving a missing operand is false, so a sparse statement
// reduces the score rather than failing the run. Missing is NaN underneath
// and NaN compares false against everything, which gives exactly that
// behavior without special cases.
func PiotroskiSignals(f Fundamentals) FScoreSignals {
	roa := func(at period) Scalar { return Div(at(f.NetIncome), at(f.TotalAssets)) }
	leverage := func(at period) Scalar { return Div(at(f.LongTermLoans), at(f.TotalAssets)) }
	currentRatio := func(at period) Scalar { return Div(at(f.CurrentAssets), at(f.CurrentLiabilities)) }
	grossMargin := func(at period) Scalar { return Div(at(f.GrossProfit), at(f.Revenue)) }
	assetTurnover := func(at period) Scalar { return Div(at(f.Revenue), at(f.TotalAssets)) }

	ocf := f.OperatingCashFlow.End

	return FScoreSignals{
		PositiveNetIncome:         f.NetIncome.End > 0,
		ImprovingROA:              roa(end) > roa(beginning),
		PositiveOperatingCashFlow: ocf > 0,
		CashFlowExceedsNetIncome:  ocf > f.NetIncome.End,
		DecliningLeverage:         leverage(end) < leverage(beginning),
		ImprovingCurrentRatio:     currentRatio(end) > currentRatio(beginning),
		NoShareDilution:           f.SharesOutstanding.End <= f.SharesOutstanding.Beginning,
		ImprovingGrossMargin:      grossMargin(end) > grossMargin(beginning),
		ImprovingAssetTurnover:    assetTurnover(end) > assetTurnover(beginning),
	}
}
