package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/padraicbc/jrabrowser/query"
)

func newSearchCmd(a *app) *cobra.Command {
	var jockey, horse string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find horses by jockey and/or horse name",
		RunE: func(cmd *cobra.Command, args []string) error {
			jockey, horse = strings.TrimSpace(jockey), strings.TrimSpace(horse)
			if jockey == "" && horse == "" {
				return fmt.Errorf("set --jockey, --horse or both")
			}
			return a.printer(cmd).horses(query.SearchByBoth(a.snap, jockey, horse))
		},
	}
	cmd.Flags().StringVar(&jockey, "jockey", "", "jockey name substring")
	cmd.Flags().StringVar(&horse, "horse", "", "horse name substring")
	return cmd
}

func newRankCmd(a *app) *cobra.Command {
	var top int
	names := make([]string, len(query.Rankings))
	for i, r := range query.Rankings {
		names[i] = string(r)
	}

	cmd := &cobra.Command{
		Use:       "rank <" + strings.Join(names, "|") + ">",
		Short:     "Rank horses by win rate, earnings or races run",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			ranked, err := query.RankBy(a.snap, query.Ranking(args[0]))
			if err != nil {
				return err
			}
			if top > 0 && top < len(ranked) {
				ranked = ranked[:top]
			}
			return a.printer(cmd).horses(ranked)
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 10, "rows to show, 0 for all")
	return cmd
}

func newGridCmd(a *app) *cobra.Command {
	var years, breed string
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "List horses filtered by birth years and breed",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := query.ParseYearRange(years)
			if err != nil {
				return err
			}
			grid := query.Grid{FromYear: from, ToYear: to, Breed: strings.TrimSpace(breed)}
			return a.printer(cmd).horses(query.Filter(a.snap, grid))
		},
	}
	cmd.Flags().StringVar(&years, "years", "", "inclusive birth-year range, e.g. 1990-1999")
	cmd.Flags().StringVar(&breed, "breed", "", "exact breed")
	return cmd
}

func newJockeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "jockeys",
		Short: "List distinct jockeys in roster order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer(cmd)
			jockeys := a.snap.Jockeys()
			if p.isJSON() {
				return p.json(jockeys)
			}
			rows := make([][]string, len(jockeys))
			for i, j := range jockeys {
				rows[i] = []string{strconv.Itoa(i + 1), j}
			}
			p.table([]string{"#", "骑手"}, rows)
			return nil
		},
	}
}

func newBreedsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "breeds",
		Short: "List the breeds accepted by grid --breed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer(cmd)
			breeds := query.Breeds(a.snap)
			if p.isJSON() {
				return p.json(breeds)
			}
			rows := make([][]string, len(breeds))
			for i, b := range breeds {
				rows[i] = []string{strconv.Itoa(i + 1), b}
			}
			p.table([]string{"#", "品种"}, rows)
			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show roster totals and where the roster came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer(cmd)
			st := a.snap.Stats()
			if p.isJSON() {
				return p.json(map[string]any{
					"totalHorses":  st.TotalHorses,
					"totalJockeys": st.TotalJockeys,
					"totalRaces":   st.TotalRaces,
					"source":       a.snap.Source(),
					"loadedAt":     a.snap.LoadedAt(),
				})
			}
			p.kv([][2]string{
				{"马匹总数", strconv.Itoa(st.TotalHorses)},
				{"骑手总数", strconv.Itoa(st.TotalJockeys)},
				{"出赛总数", strconv.Itoa(st.TotalRaces)},
				{"数据来源", string(a.snap.Source())},
				{"加载时间", a.snap.LoadedAt().Format(time.DateTime)},
			})
			return nil
		},
	}
}
