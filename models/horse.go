package models

// HorseRecord is one horse's normalized career profile.
// Every field is populated once normalization has run.
type HorseRecord struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Jockey       string  `json:"jockey"`
	BirthYear    int     `json:"birthYear"`
	Wins         int     `json:"wins"`
	Races        int     `json:"races"`
	WinRate      float64 `json:"winRate"`
	Breed        string  `json:"breed"`
	Color        string  `json:"color"`
	Height       string  `json:"height"`
	Weight       string  `json:"weight"`
	Trainer      string  `json:"trainer"`
	Earnings     int64   `json:"earnings"`
	Rank         int     `json:"rank"`
	CareerLength int     `json:"careerLength"`
}
