package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCompanies(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want []Company
	}{
		{
			"well-formed rows",
			[][]string{
				{"APU", "APU Company"},
				{"GOV", "Govi"},
			},
			[]Company{
				{Symbol: "APU", Name: "APU Company"},
				{Symbol: "GOV", Name: "Govi"},
			},
		},
		{
			"whitespace is trimmed",
			[][]string{{"  TTL  ", " Tavantolgoi "}},
			[]Company{{Symbol: "TTL", Name: "Tavantolgoi"}},
		},
		{
			"short rows are skipped",
			[][]string{
				{"APU"},
				{},
				{"GOV", "Govi"},
			},
			[]Company{{Symbol: "GOV", Name: "Govi"}},
		},
		{
			"blank cells are skipped",
			[][]string{
				{"", "No Symbol Inc"},
				{"NSY", ""},
				{"   ", "   "},
			},
			nil,
		},
		{
			"no rows",
			nil,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCompanies(tt.rows))
		})
	}
}
