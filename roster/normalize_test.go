package roster

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	h := Normalize(0, Raw{})

	assert.Equal(t, "H0000", h.ID)
	assert.Equal(t, 1, h.Rank)
	assert.Equal(t, Unknown, h.Name)
	assert.Equal(t, Unknown, h.Jockey)
	assert.Equal(t, Unknown, h.Breed)
	assert.Equal(t, Unknown, h.Color)
	assert.Equal(t, Unknown, h.Trainer)
	assert.Equal(t, Unknown, h.Height)
	assert.Equal(t, Unknown, h.Weight)
	assert.Zero(t, h.BirthYear)
	assert.Zero(t, h.Wins)
	assert.Zero(t, h.Races)
	assert.Zero(t, h.WinRate)
	assert.Zero(t, h.Earnings)
	assert.Zero(t, h.CareerLength)
}

func TestNormalizeIDAndRankFromIndex(t *testing.T) {
	h := Normalize(42, Raw{"id": "X9", "rank": json.Number("3")})
	assert.Equal(t, "H0042", h.ID)
	assert.Equal(t, 43, h.Rank)
}

func TestNormalizeEarningsPriority(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want int64
	}{
		{"all keys", Raw{"奖金": json.Number("100"), "总奖金": json.Number("200"), "奖金(円)": json.Number("300")}, 100},
		{"second and third", Raw{"总奖金": json.Number("200"), "奖金(円)": json.Number("300")}, 200},
		{"third only", Raw{"奖金(円)": json.Number("300")}, 300},
		{"english key", Raw{"earnings": json.Number("993255000")}, 993255000},
		{"chinese beats english", Raw{"奖金(円)": json.Number("7"), "earnings": json.Number("9")}, 7},
		{"zero is accepted", Raw{"奖金": json.Number("0"), "总奖金": json.Number("200")}, 0},
		{"null is skipped", Raw{"奖金": nil, "总奖金": json.Number("200")}, 200},
		{"none", Raw{"name": "x"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(0, tt.raw).Earnings)
		})
	}
}

func TestNormalizeChineseKeysWin(t *testing.T) {
	h := Normalize(0, Raw{
		"马匹名称（日文名）": "オグリキャップ",
		"name":      "Oguri Cap",
		"骑师姓名":      "武豊",
		"jockey":    "Yutaka Take",
		"出生年份":      json.Number("1985"),
		"birthYear": json.Number("1986"),
		"胜场数":       json.Number("22"),
		"参赛数":       json.Number("32"),
		"胜率":        json.Number("68.75"),
		"训练师":       "瀬戸口勉",
		"生涯年数":      json.Number("4"),
	})

	assert.Equal(t, "オグリキャップ", h.Name)
	assert.Equal(t, "武豊", h.Jockey)
	assert.Equal(t, 1985, h.BirthYear)
	assert.Equal(t, 22, h.Wins)
	assert.Equal(t, 32, h.Races)
	assert.InDelta(t, 68.75, h.WinRate, 1e-9)
	assert.Equal(t, "瀬戸口勉", h.Trainer)
	assert.Equal(t, 4, h.CareerLength)
}

func TestNormalizeYearAlias(t *testing.T) {
	assert.Equal(t, 1994, Normalize(0, Raw{"year": json.Number("1994")}).BirthYear)
}

func TestNormalizeMeasurements(t *testing.T) {
	tests := []struct {
		name       string
		raw        Raw
		wantHeight string
		wantWeight string
	}{
		{"numeric", Raw{"身高": json.Number("165"), "体重": json.Number("480")}, "165cm", "480kg"},
		{"fractional", Raw{"身高": json.Number("162.5")}, "162.5cm", Unknown},
		{"numeric beats text", Raw{"身高": json.Number("165"), "height": "170cm"}, "165cm", Unknown},
		{"text fallback", Raw{"height": "160cm", "weight": "455kg"}, "160cm", "455kg"},
		{"zero is present", Raw{"身高": json.Number("0")}, "0cm", Unknown},
		{"absent", Raw{}, Unknown, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Normalize(0, tt.raw)
			assert.Equal(t, tt.wantHeight, h.Height)
			assert.Equal(t, tt.wantWeight, h.Weight)
		})
	}
}

func TestNormalizeUnusableValuesFallThrough(t *testing.T) {
	h := Normalize(0, Raw{
		"胜场数":  "many",
		"wins": json.Number("5"),
		"参赛数":  json.Number("-3"),
		"骑师姓名": "   ",
		"jockey": "岩田康誠",
	})
	assert.Equal(t, 5, h.Wins)
	assert.Zero(t, h.Races)
	assert.Equal(t, "岩田康誠", h.Jockey)
}

func TestNormalizeOutOfRangeNumbersFallThrough(t *testing.T) {
	h := Normalize(0, Raw{
		"参赛数":       1e19,
		"races":     json.Number("12"),
		"胜场数":       9.3e18,
		"奖金":        1e19,
		"总奖金":       json.Number("9223372036854775808"),
		"奖金(円)":     json.Number("450000000"),
		"生涯年数":      json.Number("1e300"),
		"birthYear": "1e20",
	})
	assert.Equal(t, 12, h.Races)
	assert.Zero(t, h.Wins)
	assert.Equal(t, int64(450_000_000), h.Earnings)
	assert.Zero(t, h.CareerLength)
	assert.Zero(t, h.BirthYear)
}

func TestNormalizeNumericStrings(t *testing.T) {
	h := Normalize(0, Raw{"wins": "7", "winRate": "43.48", "earnings": "1121440000"})
	assert.Equal(t, 7, h.Wins)
	assert.InDelta(t, 43.48, h.WinRate, 1e-9)
	assert.EqualValues(t, 1121440000, h.Earnings)
}

func TestDistinctJockeysKeepsFirstAppearance(t *testing.T) {
	records, err := normalizeAll([]Raw{
		{"jockey": "武豊"},
		{"jockey": "岩田康誠"},
		{"jockey": "武豊"},
		{"jockey": "武豊、杜满莱"},
		{"jockey": "岩田康誠"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"武豊", "岩田康誠", "武豊、杜满莱"}, distinctJockeys(records))
}
