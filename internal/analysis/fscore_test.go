package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// improvingFundamentals is crafted so every one of the nine signals fires.
func improvingFundamentals() Fundamentals {
	return Fundamentals{
		NetIncome:          Pair{Beginning: Of(100), End: Of(120)},
		TotalAssets:        Pair{Beginning: Of(1000), End: Of(1000)},
		OperatingCashFlow:  Pair{Beginning: Of(90), End: Of(150)},
		LongTermLoans:      Pair{Beginning: Of(300), End: Of(200)},
		CurrentAssets:      Pair{Beginning: Of(150), End: Of(200)},
		CurrentLiabilities: Pair{Beginning: Of(100), End: Of(80)},
		SharesOutstanding:  Pair{Beginning: Of(1000), End: Of(1000)},
		Revenue:            Pair{Beginning: Of(900), End: Of(1000)},
		GrossProfit:        Pair{Beginning: Of(360), End: Of(500)},
	}
}

func TestPiotroskiSignalsAllTrue(t *testing.T) {
	signals := PiotroskiSignals(improvingFundamentals())

	assert.True(t, signals.PositiveNetIncome)
	assert.True(t, signals.ImprovingROA)
	assert.True(t, signals.PositiveOperatingCashFlow)
	assert.True(t, signals.CashFlowExceedsNetIncome)
	assert.True(t, signals.DecliningLeverage)
	assert.True(t, signals.ImprovingCurrentRatio)
	assert.True(t, signals.NoShareDilution)
	assert.True(t, signals.ImprovingGrossMargin)
	assert.True(t, signals.ImprovingAssetTurnover)
	assert.Equal(t, 9, signals.Score())
}

func TestPiotroskiSignalsEmptyFundamentals(t *testing.T) {
	// Every operand missing: every comparison is false, score is zero.
	signals := PiotroskiSignals(Fundamentals{})
	assert.Equal(t, 0, signals.Score())
}

func TestPiotroskiSignalsMissingOperandIsFalse(t *testing.T) {
	f := improvingFundamentals()
	f.GrossProfit = MissingPair()

	signals := PiotroskiSignals(f)
	assert.False(t, signals.ImprovingGrossMargin)
	assert.Equal(t, 8, signals.Score())
}

func TestPiotroskiSignalCases(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Fundamentals)
		check  func(t *testing.T, s FScoreSignals)
	}{
		{
			"negative net income",
			func(f *Fundamentals) { f.NetIncome = Pair{Beginning: Of(-20), End: Of(-10)} },
			func(t *testing.T, s FScoreSignals) {
				assert.False(t, s.PositiveNetIncome)
				// ROA improved even though both years are losses.
				assert.True(t, s.ImprovingROA)
			},
		},
		{
			"zero net income is not positive",
			func(f *Fundamentals) { f.NetIncome = Pair{Beginning: Of(0), End: Of(0)} },
			func(t *testing.T, s FScoreSignals) {
				assert.False(t, s.PositiveNetIncome)
				assert.False(t, s.ImprovingROA)
			},
		},
		{
			"share dilution",
			func(f *Fundamentals) { f.SharesOutstanding = Pair{Beginning: Of(1000), End: Of(1200)} },
			func(t *testing.T, s FScoreSignals) { assert.False(t, s.NoShareDilution) },
		},
		{
			"equal shares count as no dilution",
			func(f *Fundamentals) { f.SharesOutstanding = Pair{Beginning: Of(500), End: Of(500)} },
			func(t *testing.T, s FScoreSignals) { assert.True(t, s.NoShareDilution) },
		},
		{
			"rising leverage",
			func(f *Fundamentals) { f.LongTermLoans = Pair{Beginning: Of(200), End: Of(300)} },
			func(t *testing.T, s FScoreSignals) { assert.False(t, s.DecliningLeverage) },
		},
		{
			"cash flow below net income",
			func(f *Fundamentals) { f.OperatingCashFlow = Pair{Beginning: Of(90), End: Of(100)} },
			func(t *testing.T, s FScoreSignals) {
				assert.True(t, s.PositiveOperatingCashFlow)
				assert.False(t, s.CashFlowExceedsNetIncome)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := improvingFundamentals()
			tt.mutate(&f)
			tt.check(t, PiotroskiSignals(f))
		})
	}
}
