package handler

// createOrUpdateAdRequest is the JSON body (or the "properties" multipart
// part on create) shared by ad creation and ad update.
type createOrUpdateAdRequest struct {
	Title       string `json:"title"       validate:"required,min=4,max=32"`
	Description string `json:"description" validate:"required,min=8,max=64"`
	Price       int    `json:"price"       validate:"gte=0,lte=10000000"`
}

// adResponse is the lightweight list/create projection. Author carries the
// author's user id; Image is a relative URL, empty when the ad has no picture.
type adResponse struct {
	Pk     int64  `json:"pk"`
	Author int64  `json:"author"`
	Image  string `json:"image,omitempty"`
	Price  int    `json:"price"`
	Title  string `json:"title"`
}

type adsResponse struct {
	Count   int          `json:"count"`
	Results []adResponse `json:"results"`
}

// extendedAdResponse is the author-enriched single-ad projection. Email is the
// author's username.
type extendedAdResponse struct {
	Pk              int64  `json:"pk"`
	AuthorFirstName string `json:"authorFirstName"`
	AuthorLastName  string `json:"authorLastName"`
	Description     string `json:"description"`
	Email           string `json:"email"`
	Image           string `json:"image,omitempty"`
	Phone           string `json:"phone"`
	Price           int    `json:"price"`
	Title           string `json:"title"`
}
