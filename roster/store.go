// Package roster loads the horse roster from the first available source and
// normalizes it into canonical records.
//
// Sources are tried in a fixed order: records handed to the store at
// construction, the primary path, the secondary path and finally the
// built-in fallback dataset. A source that answers with something other than
// a JSON array of records ends the chain early. Load never fails; callers that care where the
// data came from inspect Snapshot.Source.
package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/padraicbc/jrabrowser/models"
)

// Source records which ingress produced a snapshot.
type Source string

const (
	SourceNone      Source = ""
	SourceEmbedded  Source = "embedded"
	SourcePrimary   Source = "primary"
	SourceSecondary Source = "secondary"
	SourceFallback  Source = "fallback"
)

var (
	errNoEmbedded  = errors.New("no embedded records")
	errNoPath      = errors.New("path not configured")
	errEmptySource = errors.New("source holds no records")
	errMalformed   = errors.New("malformed roster document")
)

// Stats summarises a snapshot.
type Stats struct {
	TotalHorses  int `json:"totalHorses"`
	TotalJockeys int `json:"totalJockeys"`
	TotalRaces   int `json:"totalRaces"`
}

// Snapshot is an immutable, fully normalized roster.
type Snapshot struct {
	records  []models.HorseRecord
	jockeys  []string
	source   Source
	loadedAt time.Time
}

func newSnapshot(records []models.HorseRecord, src Source) *Snapshot {
	return &Snapshot{
		records:  records,
		jockeys:  distinctJockeys(records),
		source:   src,
		loadedAt: time.Now().UTC(),
	}
}

// Records returns a copy of the records in load order.
func (s *Snapshot) Records() []models.HorseRecord { return slices.Clone(s.records) }

// Len returns the number of records.
func (s *Snapshot) Len() int { return len(s.records) }

// Jockeys returns the distinct jockey names in order of first appearance.
func (s *Snapshot) Jockeys() []string { return slices.Clone(s.jockeys) }

// Source reports which ingress produced the snapshot.
func (s *Snapshot) Source() Source { return s.source }

// LoadedAt is when the snapshot was installed. Zero before the first load.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Stats returns the horse, jockey and race totals.
func (s *Snapshot) Stats() Stats {
	st := Stats{TotalHorses: len(s.records), TotalJockeys: len(s.jockeys)}
	for _, h := range s.records {
		st.TotalRaces += h.Races
	}
	return st
}

// Option configures a Store.
type Option func(*Store)

// WithEmbedded supplies in-process records. When non-empty they are used
// as-is and no fetch happens.
func WithEmbedded(raw []Raw) Option {
	return func(s *Store) { s.embedded = raw }
}

// WithPaths sets the primary and secondary document locations.
func WithPaths(primary, secondary string) Option {
	return func(s *Store) { s.primary, s.secondary = primary, secondary }
}

// WithFetcher replaces the default file/HTTP fetcher.
func WithFetcher(f Fetcher) Option {
	return func(s *Store) { s.fetcher = f }
}

// Store owns the current snapshot.
type Store struct {
	log       *zap.Logger
	embedded  []Raw
	primary   string
	secondary string
	fetcher   Fetcher

	mu   sync.RWMutex
	snap *Snapshot
}

// New creates an unloaded Store.
func New(log *zap.Logger, opts ...Option) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		log:     log.Named("roster"),
		fetcher: DefaultFetcher{},
		snap:    &Snapshot{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

type attempt struct {
	source Source
	fetch  func(context.Context) ([]Raw, error)
}

// Load installs a new snapshot from the first source that yields records,
// or from the fallback dataset. It always leaves the store loaded.
func (s *Store) Load(ctx context.Context) *Snapshot {
	start := time.Now()

	snap, err := s.loadLive(ctx)
	if err != nil {
		s.log.Warn("live roster unavailable, using fallback dataset", zap.Error(err))
		snap = Fallback()
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	s.log.Info("roster loaded",
		zap.String("source", string(snap.source)),
		zap.Int("horses", len(snap.records)),
		zap.Int("jockeys", len(snap.jockeys)),
		zap.Duration("took", time.Since(start)),
	)
	return snap
}

func (s *Store) loadLive(ctx context.Context) (*Snapshot, error) {
	attempts := []attempt{
		{SourceEmbedded, func(context.Context) ([]Raw, error) {
			if len(s.embedded) == 0 {
				return nil, errNoEmbedded
			}
			return s.embedded, nil
		}},
		{SourcePrimary, s.fetchFrom(s.primary)},
		{SourceSecondary, s.fetchFrom(s.secondary)},
	}

	var errs []error
	for _, a := range attempts {
		raw, err := a.fetch(ctx)
		if errors.Is(err, errMalformed) {
			// A source that answered with garbage ends the chain.
			return nil, fmt.Errorf("%s: %w", a.source, err)
		}
		if err != nil {
			s.log.Debug("roster source skipped", zap.String("source", string(a.source)), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", a.source, err))
			continue
		}

		records, err := normalizeAll(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.source, err)
		}
		return newSnapshot(records, a.source), nil
	}
	return nil, errors.Join(errs...)
}

func (s *Store) fetchFrom(path string) func(context.Context) ([]Raw, error) {
	return func(ctx context.Context) ([]Raw, error) {
		if path == "" {
			return nil, errNoPath
		}
		b, err := s.fetcher.Fetch(ctx, path)
		if err != nil {
			return nil, err
		}
		return decode(b)
	}
}

// decode parses a JSON array of records, keeping numbers exact.
func decode(b []byte) ([]Raw, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw []Raw
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformed, err)
	}
	if len(raw) == 0 {
		return nil, errEmptySource
	}
	return raw, nil
}

// Snapshot returns the installed snapshot. Before the first Load it is empty
// with SourceNone.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Loaded reports whether Load has completed at least once.
func (s *Store) Loaded() bool {
	return s.Snapshot().source != SourceNone
}

// Jockeys returns the distinct jockeys of the installed snapshot.
func (s *Store) Jockeys() []string { return s.Snapshot().Jockeys() }

// Stats returns the totals of the installed snapshot.
func (s *Store) Stats() Stats { return s.Snapshot().Stats() }
