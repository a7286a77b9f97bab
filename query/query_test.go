package query

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/jrabrowser/models"
	"github.com/padraicbc/jrabrowser/roster"
)

func snapshotOf(t *testing.T, raw ...roster.Raw) *roster.Snapshot {
	t.Helper()
	snap := roster.New(nil, roster.WithEmbedded(raw)).Load(context.Background())
	require.Equal(t, roster.SourceEmbedded, snap.Source())
	return snap
}

func ids(records []models.HorseRecord) []string {
	out := make([]string, len(records))
	for i, h := range records {
		out[i] = h.ID
	}
	return out
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	snap := roster.Fallback()
	assert.Len(t, SearchByJockey(snap, ""), snap.Len())
	assert.Len(t, SearchByHorse(snap, ""), snap.Len())
	assert.Len(t, SearchByBoth(snap, "", ""), snap.Len())
}

func TestSearchNoMatch(t *testing.T) {
	got := SearchByJockey(roster.Fallback(), "zz-no-such-substring")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchIgnoresCase(t *testing.T) {
	snap := snapshotOf(t,
		roster.Raw{"name": "Abcxyz", "jockey": "Take"},
		roster.Raw{"name": "Other", "jockey": "TAKESHI"},
		roster.Raw{"name": "ＯＧＵＲＩ", "jockey": "Oka"},
	)

	upper := SearchByHorse(snap, "ABC")
	lower := SearchByHorse(snap, "abc")
	require.Len(t, upper, 1)
	assert.Equal(t, upper, lower)
	assert.Equal(t, "Abcxyz", upper[0].Name)

	assert.Equal(t, []string{"H0000", "H0001"}, ids(SearchByJockey(snap, "take")))
	assert.Equal(t, []string{"H0002"}, ids(SearchByHorse(snap, "ｏｇｕｒｉ")))
}

func TestSearchSubstringInLoadOrder(t *testing.T) {
	got := SearchByJockey(roster.Fallback(), "武豊")
	assert.Len(t, got, 21)
	assert.True(t, slices.IsSortedFunc(got, func(a, b models.HorseRecord) int { return a.Rank - b.Rank }))
}

func TestSearchByBothIsConjunctive(t *testing.T) {
	snap := roster.Fallback()

	assert.Equal(t, []string{"H0010"}, ids(SearchByBoth(snap, "内田", "ゴールド")))
	assert.Empty(t, SearchByBoth(snap, "武豊", "ゴールド"))
	assert.Len(t, SearchByHorse(snap, "ゴールド"), 2)
}

func TestRankByWinRateIsStable(t *testing.T) {
	got := RankByWinRate(roster.Fallback())

	require.Len(t, got, 51)
	// フジキセキ (H0009) and アグネスタキオン (H0027) both sit at 100%.
	assert.Equal(t, []string{"H0009", "H0027", "H0020"}, ids(got[:3]))
	assert.True(t, slices.IsSortedFunc(got, func(a, b models.HorseRecord) int {
		switch {
		case a.WinRate > b.WinRate:
			return -1
		case a.WinRate < b.WinRate:
			return 1
		}
		return a.Rank - b.Rank
	}))
}

func TestRankByEarnings(t *testing.T) {
	snap := roster.Fallback()
	first := RankByEarnings(snap)
	second := RankByEarnings(snap)

	assert.Equal(t, "H0018", first[0].ID)
	assert.Equal(t, ids(first), ids(second))

	reversed := slices.Clone(first)
	slices.Reverse(reversed)
	resorted := RankByEarnings(snapshotOfRecords(t, reversed))
	assert.Equal(t, earningsOf(first), earningsOf(resorted))
}

func TestRankByRaceCount(t *testing.T) {
	got := RankByRaceCount(roster.Fallback())
	assert.Equal(t, "ハルウララ（春乌拉拉）", got[0].Name)
	assert.Equal(t, 113, got[0].Races)
	assert.Len(t, got, 51)
}

func TestRankingDoesNotMutateSnapshot(t *testing.T) {
	snap := roster.Fallback()
	before := ids(snap.Records())

	RankByWinRate(snap)
	RankByEarnings(snap)
	RankByRaceCount(snap)

	assert.Equal(t, before, ids(snap.Records()))
}

func TestRankBy(t *testing.T) {
	snap := roster.Fallback()
	for _, r := range Rankings {
		got, err := RankBy(snap, r)
		require.NoError(t, err, r)
		assert.Len(t, got, snap.Len())
	}

	_, err := RankBy(snap, "speed")
	assert.ErrorIs(t, err, ErrUnknownRanking)
}

// snapshotOfRecords feeds already normalized records back through the store.
func snapshotOfRecords(t *testing.T, records []models.HorseRecord) *roster.Snapshot {
	t.Helper()
	b, err := json.Marshal(records)
	require.NoError(t, err)

	var raw []roster.Raw
	require.NoError(t, json.Unmarshal(b, &raw))
	return snapshotOf(t, raw...)
}

func earningsOf(records []models.HorseRecord) []int64 {
	out := make([]int64, len(records))
	for i, h := range records {
		out[i] = h.Earnings
	}
	return out
}
