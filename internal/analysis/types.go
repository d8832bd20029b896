package analysis

// Fundamentals is the complete set of line items the engine derives ratios
// from, each with beginning and end period values. It is produced by the
// statements extractor; a label that could not be found or parsed arrives
// here as the missing sentinel and degrades only the ratios that depend
// on it.
type Fundamentals struct {
	// Balance sheet
	Cash                 Pair
	ShortTermInvestments Pair
	AccountsReceivable   Pair
	Inventory            Pair
	CurrentAssets        Pair
	FixedAssets          Pair
	TotalAssets          Pair
	CurrentLiabilities   Pair
	AccountsPayable      Pair
	ShortTermLoans       Pair
	LongTermLoans        Pair
	TotalEquity          Pair
	RetainedEarnings     Pair

	// Income statement
	Revenue         Pair
	COGS            Pair
	GrossProfit     Pair
	EBIT            Pair
	NetIncome       Pair
	InterestExpense Pair

	// Cash flow statement
	OperatingCashFlow Pair

	// Statement of changes in equity
	SharesOutstanding Pair
}

// TotalLiabilities is defined as short-term plus long-term loans, matching
// the source statements where no total-liabilities line is reported.
func (f Fundamentals) TotalLiabilities() Pair {
	return Pair{
		Beginning: f.ShortTermLoans.Beginning + f.LongTermLoans.Beginning,
		End:       f.ShortTermLoans.End + f.LongTermLoans.End,
	}
}

// WorkingCapital is current assets minus current liabilities.
func (f Fundamentals) WorkingCapital() Pair {
	return Pair{
		Beginning: f.CurrentAssets.Beginning - f.CurrentLiabilities.Beginning,
		End:       f.CurrentAssets.End - f.CurrentLiabilities.End,
	}
}

// Ratio is a single named ratio with values for both periods.
type Ratio struct {
	Name      string `json:"name"`
	Beginning Scalar `json:"beginning"`
	End       Scalar `json:"end"`
}

// RatioGroup is an ordered category of ratios. Slices keep the display
// order stable; JSON objects would not.
type RatioGroup struct {
	Name   string  `json:"name"`
	Ratios []Ratio `json:"ratios"`
}

// Ratio group names, in display order.
const (
	GroupActivity      = "Activity"
	GroupLiquidity     = "Liquidity"
	GroupSolvency      = "Solvency"
	GroupProfitability = "Profitability"
)

// CompositeScore is a named composite score with its classification band.
type CompositeScore struct {
	Name           string `json:"name"`
	Value          Scalar `json:"value"`
	Classification string `json:"classification"`
}

// AnalysisResult is the aggregate output of one analysis run: all ratio
// groups plus both composite scores. It is immutable once produced; a new
// upload produces a new result.
type AnalysisResult struct {
	Groups     []RatioGroup   `json:"groups"`
	ZScore     CompositeScore `json:"z_score"`
	FScore     CompositeScore `json:"f_score"`
	Advisories []string       `json:"advisories,omitempty"`
}

// Group returns the named ratio group, or nil if absent.
func (r *AnalysisResult) Group(name string) *RatioGroup {
	for i := range r.Groups {
		if r.Groups[i].Name == name {
			return &r.Groups[i]
		}
	}
	return nil
}

// Ratio returns the named ratio from the named group, or nil.
func (r *AnalysisResult) Ratio(group, name string) *Ratio {
	g := r.Group(group)
	if g == nil {
		return nil
	}
	for i := range g.Ratios {
		if g.Ratios[i].Name == name {
			return &g.Ratios[i]
		}
	}
	return nil
}
