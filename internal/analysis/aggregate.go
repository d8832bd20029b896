package analysis

import "fmt"

// Composite score display names.
const (
	ScoreAltmanZ    = "Altman Z-Score"
	ScorePiotroskiF = "Piotroski F-Score"
)

// Leverage above this end-of-period Debt-to-Equity triggers an advisory,
// mirroring the warning the source application showed.
const highLeverageThreshold = 2.0

// Analyze runs the full engine pass: ratios, both composite scores, and
// their classifications, assembled into one immutable result.
func Analyze(f Fundamentals) *AnalysisResult {
	groups := ComputeRatioGroups(f)
	z := AltmanZScore(f)
	signals := PiotroskiSignals(f)
	return Aggregate(groups, z, signals)
}

// Aggregate assembles already-computed ratio groups and scores into an
// AnalysisResult. Pure assembly, no arithmetic.
func Aggregate(groups []RatioGroup, z ZScoreBreakdown, signals FScoreSignals) *AnalysisResult {
	fScore := signals.Score()

	result := &AnalysisResult{
		Groups: groups,
		ZScore: CompositeScore{
			Name:           ScoreAltmanZ,
			Value:          z.Score,
			Classification: string(ClassifyZScore(z.Score)),
		},
		FScore: CompositeScore{
			Name:           ScorePiotroskiF,
			Value:          Of(float64(fScore)),
			Classification: string(ClassifyFScore(fScore)),
		},
	}

	if dte := result.Ratio(GroupSolvency, RatioDebtToEquity); dte != nil && dte.End > highLeverageThreshold {
		result.Advisories = append(result.Advisories,
			fmt.Sprintf("Debt-to-Equity Ratio at end of period is %s, indicating high leverage", dte.End.Format(2)))
	}

	return result
}
