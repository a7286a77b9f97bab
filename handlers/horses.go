package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/jrabrowser/middleware"
	"github.com/padraicbc/jrabrowser/query"
	"github.com/padraicbc/jrabrowser/roster"
)

type statsData struct {
	roster.Stats
	Source   roster.Source `json:"source"`
	LoadedAt time.Time     `json:"loadedAt"`
}

func newStatsData(snap *roster.Snapshot) statsData {
	return statsData{Stats: snap.Stats(), Source: snap.Source(), LoadedAt: snap.LoadedAt()}
}

func snapshot(c echo.Context) (*roster.Snapshot, error) {
	snap, ok := middleware.SnapshotFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "no roster snapshot on request")
	}
	return snap, nil
}

// Horses returns the data grid, optionally filtered by birth years and breed.
func (h *Handler) Horses(c echo.Context) error {
	snap, err := snapshot(c)
	if err != nil {
		return err
	}

	from, to, err := query.ParseYearRange(c.QueryParam("years"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	grid := query.Grid{FromYear: from, ToYear: to, Breed: strings.TrimSpace(c.QueryParam("breed"))}
	return c.JSON(http.StatusOK, query.Filter(snap, grid))
}

// Search finds horses by jockey and/or horse name.
func (h *Handler) Search(c echo.Context) error {
	snap, err := snapshot(c)
	if err != nil {
		return err
	}

	jockey := strings.TrimSpace(c.QueryParam("jockey"))
	horse := strings.TrimSpace(c.QueryParam("horse"))

	switch {
	case jockey == "" && horse == "":
		return echo.NewHTTPError(http.StatusBadRequest, "jockey or horse param not set")
	case horse == "":
		return c.JSON(http.StatusOK, query.SearchByJockey(snap, jockey))
	case jockey == "":
		return c.JSON(http.StatusOK, query.SearchByHorse(snap, horse))
	default:
		return c.JSON(http.StatusOK, query.SearchByBoth(snap, jockey, horse))
	}
}

// Rankings returns one ranking view, truncated when limit is positive.
func (h *Handler) Rankings(c echo.Context) error {
	snap, err := snapshot(c)
	if err != nil {
		return err
	}

	limit := 0
	if l := c.QueryParam("limit"); l != "" {
		if limit, err = strconv.Atoi(l); err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
	}

	ranked, err := query.RankBy(snap, query.Ranking(c.Param("kind")))
	if err != nil {
		if errors.Is(err, query.ErrUnknownRanking) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return c.JSON(http.StatusOK, ranked)
}

// Jockeys returns the distinct jockeys in first-appearance order.
func (h *Handler) Jockeys(c echo.Context) error {
	snap, err := snapshot(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap.Jockeys())
}

// Breeds returns the distinct breeds for the grid's breed filter.
func (h *Handler) Breeds(c echo.Context) error {
	snap, err := snapshot(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, query.Breeds(snap))
}

// Stats returns roster totals and where the roster came from.
func (h *Handler) Stats(c echo.Context) error {
	snap, err := snapshot(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newStatsData(snap))
}

// Reload re-reads the roster sources and returns the new totals.
func (h *Handler) Reload(c echo.Context) error {
	snap := h.roster.Load(c.Request().Context())
	return c.JSON(http.StatusOK, newStatsData(snap))
}
