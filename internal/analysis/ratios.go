package analysis

// Ratio display names. The names double as lookup keys in the aggregated
// result, so they are declared once here.
const (
	RatioInventoryTurnover      = "Inventory Turnover"
	RatioDaysOfInventory        = "Days of Inventory"
	RatioReceivablesTurnover    = "Receivables Turnover"
	RatioDaysSalesOutstanding   = "Days of Sales Outstanding"
	RatioPayablesTurnover       = "Payables Turnover"
	RatioDaysOfPayables         = "Days of Payables"
	RatioWorkingCapitalTurnover = "Working Capital Turnover"
	RatioFixedAssetTurnover     = "Fixed Asset Turnover"
	RatioTotalAssetTurnover     = "Total Asset Turnover"

	RatioCurrentRatio = "Current Ratio"
	RatioQuickRatio   = "Quick Ratio"
	RatioCashRatio    = "Cash Ratio"

	RatioDebtToEquity     = "Debt-to-Equity Ratio"
	RatioDebtRatio        = "Debt Ratio"
	RatioEquityRatio      = "Equity Ratio"
	RatioInterestCoverage = "Interest Coverage Ratio"

	RatioGrossProfitMargin = "Gross Profit Margin"
	RatioNetProfitMargin   = "Net Profit Margin"
	RatioReturnOnAssets    = "Return on Assets (ROA)"
	RatioReturnOnEquity    = "Return on Equity (ROE)"
)

const daysPerYear = 365

// period selects one side of a Pair so each formula is written once and
// evaluated independently for beginning and end.
type period func(Pair) Scalar

func beginning(p Pair) Scalar { return p.Beginning }
func end(p Pair) Scalar       { return p.End }

type formula func(f Fundamentals, at period) Scalar

func evaluate(f Fundamentals, name string, fn formula) Ratio {
	return Ratio{
		Name:      name,
		Beginning: fn(f, beginning),
		End:       fn(f, end),
	}
}

// ComputeRatioGroups derives the four ratio categories from the extracted
// fundamentals. Every division goes through Div, so a missing or zero
// denominator degrades to the missing sentinel instead of failing the run.
func ComputeRatioGroups(f Fundamentals) []RatioGroup {
	return []RatioGroup{
		{Name: GroupActivity, Ratios: activityRatios(f)},
		{Name: GroupLiquidity, Ratios: liquidityRatios(f)},
		{Name: GroupSolvency, Ratios: solvencyRatios(f)},
		{Name: GroupProfitability, Ratios: profitabilityRatios(f)},
	}
}

func activityRatios(f Fundamentals) []Ratio {
	inventoryTurnover := func(f Fundamentals, at period) Scalar {
		return Div(at(f.COGS), at(f.Inventory))
	}
	receivablesTurnover := func(f Fundamentals, at period) Scalar {
		return Div(at(f.Revenue), at(f.AccountsReceivable))
	}
	payablesTurnover := func(f Fundamentals, at period) Scalar {
		return Div(at(f.COGS), at(f.AccountsPayable))
	}

	return []Ratio{
		evaluate(f, RatioInventoryTurnover, inventoryTurnover),
		evaluate(f, RatioDaysOfInventory, func(f Fundamentals, at period) Scalar {
			return Div(daysPerYear, inventoryTurnover(f, at))
		}),
		evaluate(f, RatioReceivablesTurnover, receivablesTurnover),
		evaluate(f, RatioDaysSalesOutstanding, func(f Fundamentals, at period) Scalar {
			return Div(daysPerYear, receivablesTurnover(f, at))
		}),
		evaluate(f, RatioPayablesTurnover, payablesTurnover),
		evaluate(f, RatioDaysOfPayables, func(f Fundamentals, at period) Scalar {
			return Div(daysPerYear, payablesTurnover(f, at))
		}),
		// The source left this division unguarded; here a zero working
		// capital yields missing like every other denominator. See
		// DESIGN.md.
		evaluate(f, RatioWorkingCapitalTurnover, func(f Fundamentals, at period) Scalar {
			return Div(at(f.Revenue), at(f.WorkingCapital()))
		}),
		evaluate(f, RatioFixedAssetTurnover, func(f Fundamentals, at period) Scalar {
			return Div(at(f.Revenue), at(f.FixedAssets))
		}),
		evaluate(f, RatioTotalAssetTurnover, func(f Fundamentals, at period) Scalar {
			return Div(at(f.Revenue), at(f.TotalAssets))
		}),
	}
}

func liquidityRatios(f Fundamentals) []Ratio {
	return []Ratio{
		evaluate(f, RatioCurrentRatio, func(f Fundamentals, at period) Scalar {
			return Div(at(f.CurrentAssets), at(f.CurrentLiabilities))
		}),
		evaluate(f, RatioQuickRatio, func(f Fundamentals, at period) Scalar {
			return Div(at(f.Cash)+at(f.ShortTermInvestments)+at(f.AccountsReceivable), at(f.CurrentLiabilities))
		}),
		evaluate(f, RatioCashRatio, func(f Fundamentals, at period) Scalar {
			return Div(at(f.Cash)+at(f.ShortTermInvestments), at(f.CurrentLiabilities))
		}),
	}
}

func solvencyRatios(f Fundamentals) []Ratio {
	return []Ratio{
		evaluate(f, RatioDebtToEquity, func(f Fundamentals, at period) Scalar {
			return Div(at(f.TotalLiabilities()), at(f.TotalEquity))
		}),
		evaluate(f, RatioDebtRatio, func(f Fundamentals, at period) Scalar {
			return Div(at(f.TotalLiabilities()), at(f.TotalAssets))
		}),
		evaluate(f, RatioEquityRatio, func(f Fundamentals, at period) Scalar {
			return Div(at(f.TotalEquity), at(f.TotalAssets))
		}),
		evaluate(f, RatioInterestCoverage, func(f Fundamentals, at period) Scalar {
			return Div(at(f.NetIncome), at(f.InterestExpense))
		}),
	}
}

func profitabilityRatios(f Fundamentals) []Ratio {
	// Profitability ratios are expressed as percentages.
	return []Ratio{
		evaluate(f, RatioGrossProfitMargin, func(f Fundamentals, at period) Scalar {
			return Div(at(f.GrossProfit), at(f.Revenue)) * 100
		}),
		evaluate(f, RatioNetProfitMargin, func(f Fundamentals, at period) Scalar {
			return Div(at(f.NetIncome), at(f.Revenue)) * 100
		}),
		evaluate(f, RatioReturnOnAssets, func(f Fundamentals, at period) Scalar {
			return Div(at(f.NetIncome), at(f.TotalAssets)) * 100
		}),
		evaluate(f, RatioReturnOnEquity, func(f Fundamentals, at period) Scalar {
			return Div(at(f.NetIncome), at(f.TotalEquity)) * 100
		}),
	}
}
