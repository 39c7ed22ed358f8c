package domain

import "time"

// Comment belongs to exactly one ad. AdID, AuthorID and CreatedAt are
// immutable; only Text may change after creation.
type Comment struct {
	ID        int64     `json:"id"`
	AdID      int64     `json:"ad_id"`
	AuthorID  int64     `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
