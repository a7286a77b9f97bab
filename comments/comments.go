// Package comments stores the guestbook: top-level comments with nested
// replies, keeping only the most recent threads.
package comments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/padraicbc/jrabrowser/models"
)

// DefaultLimit is how many top-level threads are kept.
const DefaultLimit = 50

const batchSize = 500

// chronological orders by comment date, breaking ties by insertion order,
// so imported history sorts among newer local comments.
const chronological = "created_at ASC, seq ASC"

var (
	ErrNotFound       = errors.New("comment not found")
	ErrInvalidComment = errors.New("name and text are required")
)

// Thread is a comment together with its replies.
type Thread struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Text    string    `json:"text"`
	Date    time.Time `json:"date"`
	Replies []Thread  `json:"replies"`
}

// Store reads and writes comments through bun.
type Store struct {
	db    bun.IDB
	limit int
	now   func() time.Time
	newID func() string
}

// NewStore returns a Store keeping at most limit threads.
// A non-positive limit means DefaultLimit.
func NewStore(db bun.IDB, limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{
		db:    db,
		limit: limit,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// List returns every thread, oldest first, with replies nested in date order.
func (s *Store) List(ctx context.Context) ([]Thread, error) {
	var rows []models.Comment
	if err := s.db.NewSelect().Model(&rows).OrderExpr(chronological).Scan(ctx); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return buildThreads(rows), nil
}

// Add starts a new thread and drops the oldest threads beyond the limit.
func (s *Store) Add(ctx context.Context, name, text string) (Thread, error) {
	c, err := s.newComment(nil, name, text)
	if err != nil {
		return Thread{}, err
	}

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(c).Exec(ctx); err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}
		return s.trim(ctx, tx)
	})
	if err != nil {
		return Thread{}, err
	}
	return toThread(*c), nil
}

// Reply answers a comment or another reply.
func (s *Store) Reply(ctx context.Context, parentID, name, text string) (Thread, error) {
	c, err := s.newComment(&parentID, name, text)
	if err != nil {
		return Thread{}, err
	}

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().Model((*models.Comment)(nil)).
			Where("id = ?", parentID).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("find parent: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrNotFound, parentID)
		}
		if _, err := tx.NewInsert().Model(c).Exec(ctx); err != nil {
			return fmt.Errorf("insert reply: %w", err)
		}
		return nil
	})
	if err != nil {
		return Thread{}, err
	}
	return toThread(*c), nil
}

// Import writes exported threads, skipping IDs already stored, then applies
// the limit by comment date, so importing an old export never evicts newer
// threads. It returns the number of rows written, including any the limit
// dropped straight away.
func (s *Store) Import(ctx context.Context, threads []Thread) (int, error) {
	var rows []models.Comment
	for _, t := range threads {
		rows = s.flatten(rows, nil, t)
	}

	total := 0
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for start := 0; start < len(rows); start += batchSize {
			batch := rows[start:min(start+batchSize, len(rows))]
			res, err := tx.NewInsert().Model(&batch).Ignore().Exec(ctx)
			if err != nil {
				return fmt.Errorf("import comments: %w", err)
			}
			if n, err := res.RowsAffected(); err == nil {
				total += int(n)
			}
		}
		return s.trim(ctx, tx)
	})
	return total, err
}

func (s *Store) flatten(out []models.Comment, parent *string, t Thread) []models.Comment {
	c := models.Comment{
		ID:        t.ID,
		ParentID:  parent,
		Name:      strings.TrimSpace(t.Name),
		Text:      strings.TrimSpace(t.Text),
		CreatedAt: t.Date.UTC(),
	}
	if c.ID == "" {
		c.ID = s.newID()
	}
	if t.Date.IsZero() {
		c.CreatedAt = s.now()
	}
	out = append(out, c)

	id := c.ID
	for _, r := range t.Replies {
		out = s.flatten(out, &id, r)
	}
	return out
}

func (s *Store) newComment(parent *string, name, text string) (*models.Comment, error) {
	name, text = strings.TrimSpace(name), strings.TrimSpace(text)
	if name == "" || text == "" {
		return nil, ErrInvalidComment
	}
	return &models.Comment{
		ID:        s.newID(),
		ParentID:  parent,
		Name:      name,
		Text:      text,
		CreatedAt: s.now(),
	}, nil
}

// trim deletes threads older than the newest s.limit by date, replies included.
func (s *Store) trim(ctx context.Context, db bun.IDB) error {
	var all []models.Comment
	if err := db.NewSelect().Model(&all).Column("id", "parent_id").OrderExpr(chronological).Scan(ctx); err != nil {
		return fmt.Errorf("trim comments: %w", err)
	}

	var roots []string
	children := map[string][]string{}
	for _, c := range all {
		if c.ParentID == nil {
			roots = append(roots, c.ID)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], c.ID)
	}
	if len(roots) <= s.limit {
		return nil
	}

	doomed := roots[:len(roots)-s.limit]
	for i := 0; i < len(doomed); i++ {
		doomed = append(doomed, children[doomed[i]]...)
	}

	_, err := db.NewDelete().Model((*models.Comment)(nil)).
		Where("id IN (?)", bun.In(doomed)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("trim comments: %w", err)
	}
	return nil
}

func toThread(c models.Comment) Thread {
	return Thread{ID: c.ID, Name: c.Name, Text: c.Text, Date: c.CreatedAt, Replies: []Thread{}}
}

func buildThreads(rows []models.Comment) []Thread {
	children := map[string][]models.Comment{}
	var roots []models.Comment
	for _, c := range rows {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], c)
	}

	var build func(models.Comment) Thread
	build = func(c models.Comment) Thread {
		t := toThread(c)
		for _, r := range children[c.ID] {
			t.Replies = append(t.Replies, build(r))
		}
		return t
	}

	out := make([]Thread, 0, len(roots))
	for _, c := range roots {
		out = append(out, build(c))
	}
	return out
}
