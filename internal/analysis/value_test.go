package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarMissing(t *testing.T) {
	assert.True(t, Missing().IsMissing())
	assert.False(t, Of(0).IsMissing())
	assert.False(t, Of(-1.5).IsMissing())
}

func TestDiv(t *testing.T) {
	tests := []struct {
		name    string
		num     Scalar
		den     Scalar
		want    float64
		missing bool
	}{
		{"simple division", Of(10), Of(4), 2.5, false},
		{"negative numerator", Of(-10), Of(4), -2.5, false},
		{"zero numerator", Of(0), Of(4), 0, false},
		{"zero denominator", Of(10), Of(0), 0, true},
		{"missing denominator", Of(10), Missing(), 0, true},
		{"missing numerator", Missing(), Of(4), 0, true},
		{"both missing", Missing(), Missing(), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Div(tt.num, tt.den)
			if tt.missing {
				assert.True(t, got.IsMissing(), "expected missing, got %v", got)
			} else {
				assert.InDelta(t, tt.want, got.Float(), 1e-9)
			}
		})
	}
}

func TestMissingPropagatesThroughArithmetic(t *testing.T) {
	// A missing operand must never collapse to zero in a sum.
	sum := Of(100) + Missing() + Of(50)
	assert.True(t, sum.IsMissing())

	product := 6.56 * Missing()
	assert.True(t, product.IsMissing())
}

func TestScalarFormat(t *testing.T) {
	assert.Equal(t, "2.50", Of(2.5).Format(2))
	assert.Equal(t, "N/A", Missing().Format(2))
	assert.Equal(t, "0.00", Of(0).Format(2))
}

func TestScalarJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(Pair{Beginning: Of(1.5), End: Missing()})
		require.NoError(t, err)
		assert.JSONEq(t, `{"beginning":1.5,"end":null}`, string(data))
	})

	t.Run("unmarshal null as missing", func(t *testing.T) {
		var p Pair
		require.NoError(t, json.Unmarshal([]byte(`{"beginning":2,"end":null}`), &p))
		assert.InDelta(t, 2.0, p.Beginning.Float(), 1e-9)
		assert.True(t, p.End.IsMissing())
	})
}
