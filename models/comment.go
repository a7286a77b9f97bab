package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Comment is a guestbook entry. Replies carry the ID of the comment or
// reply they answer in ParentID.
type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:cm"`

	Seq       int64     `bun:"seq,pk,autoincrement" json:"-"`
	ID        string    `bun:"id,notnull,unique" json:"id"`
	ParentID  *string   `bun:"parent_id" json:"parentID,omitempty"`
	Name      string    `bun:"name,notnull" json:"name"`
	Text      string    `bun:"text,notnull,type:text" json:"text"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"date"`
}
