package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/jrabrowser/roster"
)

func TestParseYearRange(t *testing.T) {
	tests := []struct {
		in       string
		from, to int
		wantErr  bool
	}{
		{"", 0, 0, false},
		{"1990-1999", 1990, 1999, false},
		{" 2000 - 2009 ", 2000, 2009, false},
		{"1999", 0, 0, true},
		{"1999-199x", 0, 0, true},
		{"2010-2000", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			from, to, err := ParseYearRange(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadYearRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestFilter(t *testing.T) {
	snap := roster.Fallback()

	assert.Len(t, Filter(snap, Grid{}), 51)
	assert.Len(t, Filter(snap, Grid{FromYear: 1990, ToYear: 1999}), 22)
	assert.Len(t, Filter(snap, Grid{FromYear: 2000, ToYear: 2009}), 9)
	assert.Len(t, Filter(snap, Grid{Breed: "纯血马"}), 51)
	assert.Empty(t, Filter(snap, Grid{Breed: "アラブ"}))

	for _, h := range Filter(snap, Grid{FromYear: 1990, ToYear: 1999}) {
		assert.GreaterOrEqual(t, h.BirthYear, 1990)
		assert.LessOrEqual(t, h.BirthYear, 1999)
	}
}

func TestBreeds(t *testing.T) {
	assert.Equal(t, []string{"纯血马"}, Breeds(roster.Fallback()))
}
