package domain

// Ad is a classified listing. AuthorID is set once at creation and never
// reassigned; ImageID references the single image owned by this ad (0 = none).
type Ad struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	AuthorID    int64  `json:"author_id"`
	ImageID     int64  `json:"image_id,omitempty"`
}
