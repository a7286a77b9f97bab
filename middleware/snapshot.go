package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/jrabrowser/roster"
)

const snapshotKey = "snapshot"

// Snapshot returns an Echo middleware that pins the store's current roster
// snapshot to the request, so a reload mid-request cannot mix two rosters.
func Snapshot(store *roster.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !store.Loaded() {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "roster not loaded")
			}
			c.Set(snapshotKey, store.Snapshot())
			return next(c)
		}
	}
}

// SnapshotFrom returns the snapshot pinned by Snapshot.
func SnapshotFrom(c echo.Context) (*roster.Snapshot, bool) {
	snap, ok := c.Get(snapshotKey).(*roster.Snapshot)
	return snap, ok
}
