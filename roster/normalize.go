package roster

import (
	"fmt"

	"github.com/padraicbc/jrabrowser/models"
)

// Normalize converts one raw record at position i into a HorseRecord.
// The ID and rank come from i, never from the input.
func Normalize(i int, r Raw) models.HorseRecord {
	winRate, _ := resolve(r, fieldWinRate, asFloat)
	earnings, _ := resolve(r, fieldEarnings, asYen)

	return models.HorseRecord{
		ID:           fmt.Sprintf("H%04d", i),
		Name:         stringOr(r, fieldName, Unknown),
		Jockey:       stringOr(r, fieldJockey, Unknown),
		BirthYear:    countOr(r, fieldBirthYear),
		Wins:         countOr(r, fieldWins),
		Races:        countOr(r, fieldRaces),
		WinRate:      winRate,
		Breed:        stringOr(r, fieldBreed, Unknown),
		Color:        stringOr(r, fieldColor, Unknown),
		Height:       measure(r, fieldHeightNum, fieldHeightText, "cm"),
		Weight:       measure(r, fieldWeightNum, fieldWeightText, "kg"),
		Trainer:      stringOr(r, fieldTrainer, Unknown),
		Earnings:     earnings,
		Rank:         i + 1,
		CareerLength: countOr(r, fieldCareerLength),
	}
}

// normalize is what normalizeAll applies to live sources; tests swap it.
var normalize = Normalize

// normalizeAll converts a whole payload. A panic while normalizing is
// turned into an error so Load can fall back.
func normalizeAll(raw []Raw) (out []models.HorseRecord, err error) {
	defer func() {
		if p := recover(); p != nil {
			out, err = nil, fmt.Errorf("normalize: %v", p)
		}
	}()

	out = make([]models.HorseRecord, len(raw))
	for i, r := range raw {
		out[i] = normalize(i, r)
	}
	return out, nil
}

// distinctJockeys returns jockey names in order of first appearance.
func distinctJockeys(records []models.HorseRecord) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for _, h := range records {
		if _, ok := seen[h.Jockey]; ok {
			continue
		}
		seen[h.Jockey] = struct{}{}
		out = append(out, h.Jockey)
	}
	return out
}
