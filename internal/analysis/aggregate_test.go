package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeAssemblesFullResult(t *testing.T) {
	result := Analyze(healthyFundamentals())
	require.NotNil(t, result)

	require.Len(t, result.Groups, 4)
	assert.Equal(t, GroupActivity, result.Groups[0].Name)
	assert.Equal(t, GroupProfitability, result.Groups[3].Name)

	assert.Equal(t, ScoreAltmanZ, result.ZScore.Name)
	assert.Equal(t, ScorePiotroskiF, result.FScore.Name)

	// End-of-period inputs: WC=50, TA=1000, RE=200, EBIT=80, TE=400, TL=600.
	assert.InDelta(t, 2.2176, result.ZScore.Value.Float(), 1e-9)
	assert.Equal(t, string(ZoneGray), result.ZScore.Classification)
}

func TestAnalyzeFScoreClassification(t *testing.T) {
	result := Analyze(improvingFundamentals())
	assert.InDelta(t, 9, result.FScore.Value.Float(), 1e-9)
	assert.Equal(t, string(BandStrong), result.FScore.Classification)
}

func TestAggregateHighLeverageAdvisory(t *testing.T) {
	t.Run("triggered above threshold", func(t *testing.T) {
		f := healthyFundamentals()
		f.LongTermLoans = Pair{Beginning: Of(300), End: Of(900)} // TL=1000, D/E=2.5
		result := Analyze(f)

		require.Len(t, result.Advisories, 1)
		assert.Contains(t, result.Advisories[0], "Debt-to-Equity")
		assert.Contains(t, result.Advisories[0], "2.50")
	})

	t.Run("not triggered at threshold", func(t *testing.T) {
		f := healthyFundamentals()
		f.LongTermLoans = Pair{Beginning: Of(300), End: Of(700)} // TL=800, D/E=2.0
		result := Analyze(f)
		assert.Empty(t, result.Advisories)
	})

	t.Run("not triggered when ratio missing", func(t *testing.T) {
		f := healthyFundamentals()
		f.TotalEquity = MissingPair()
		result := Analyze(f)
		assert.Empty(t, result.Advisories)
	})
}

func TestResultLookups(t *testing.T) {
	result := Analyze(healthyFundamentals())

	g := result.Group(GroupLiquidity)
	require.NotNil(t, g)
	assert.Equal(t, GroupLiquidity, g.Name)

	r := result.Ratio(GroupLiquidity, RatioCurrentRatio)
	require.NotNil(t, r)
	assert.InDelta(t, 2.0, r.End.Float(), 1e-9)

	assert.Nil(t, result.Group("No Such Group"))
	assert.Nil(t, result.Ratio(GroupLiquidity, "No Such Ratio"))
}
