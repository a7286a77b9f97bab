package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/padraicbc/jrabrowser/display"
	"github.com/padraicbc/jrabrowser/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d6dae0"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
)

// printer handles table or JSON output.
type printer struct {
	format string
	w      io.Writer
}

func newPrinter(format string, w io.Writer) *printer {
	return &printer{format: format, w: w}
}

func (p *printer) isJSON() bool { return p.format == "json" }

// json marshals v as indented JSON.
func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table renders rows under header as a bordered table.
func (p *printer) table(header []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(header...).
		Rows(rows...)
	_, _ = fmt.Fprintln(p.w, t.Render())
}

// kv prints a key-value detail view.
func (p *printer) kv(pairs [][2]string) {
	for _, pair := range pairs {
		_, _ = fmt.Fprintf(p.w, "%s  %s\n", labelStyle.Render(pair[0]+":"), pair[1])
	}
}

// horses prints records as JSON or as the roster table.
func (p *printer) horses(records []models.HorseRecord) error {
	if p.isJSON() {
		return p.json(records)
	}
	if len(records) == 0 {
		_, _ = fmt.Fprintln(p.w, "没有找到匹配的马匹")
		return nil
	}
	p.table(horseHeader, horseRows(records))
	return nil
}

var horseHeader = []string{"#", "ID", "马名", "骑手", "出生", "胜场/出赛", "胜率", "奖金", "生涯", "练马师"}

func horseRows(records []models.HorseRecord) [][]string {
	rows := make([][]string, len(records))
	for i, h := range records {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			h.ID,
			h.Name,
			h.Jockey,
			strconv.Itoa(h.BirthYear),
			fmt.Sprintf("%d/%d", h.Wins, h.Races),
			display.WinRate(h.WinRate),
			display.Earnings(h.Earnings),
			display.Career(h.CareerLength),
			h.Trainer,
		}
	}
	return rows
}
