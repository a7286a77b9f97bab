package roster

import (
	_ "embed"

	"github.com/padraicbc/jrabrowser/models"
)

//go:embed fallback.json
var fallbackJSON []byte

// fallbackRecords normalizes the built-in dataset. It is shipped with the
// binary, so a failure here is a build defect.
func fallbackRecords() []models.HorseRecord {
	raw, err := decode(fallbackJSON)
	if err != nil {
		panic("roster: built-in dataset: " + err.Error())
	}
	records := make([]models.HorseRecord, len(raw))
	for i, r := range raw {
		records[i] = Normalize(i, r)
	}
	return records
}

// Fallback returns the built-in dataset as a snapshot.
func Fallback() *Snapshot {
	return newSnapshot(fallbackRecords(), SourceFallback)
}
