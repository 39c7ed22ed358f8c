package handler

type createOrUpdateCommentRequest struct {
	Text string `json:"text" validate:"required,min=8,max=64"`
}

// commentResponse carries the comment plus enough author context to render it
// without a second request. CreatedAt is unix milliseconds.
type commentResponse struct {
	Pk              int64  `json:"pk"`
	Author          int64  `json:"author"`
	AuthorFirstName string `json:"authorFirstName"`
	CreatedAt       int64  `json:"createdAt"`
	Text            string `json:"text"`
}

type commentsResponse struct {
	Count   int               `json:"count"`
	Results []commentResponse `json:"results"`
}
