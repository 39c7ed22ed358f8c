package handler

import (
	"fmt"

	"github.com/skymarket/classifieds-api/internal/core/ports"
)

// imageURL renders the relative streaming URL for an image id; 0 means the
// parent has no image and renders as "" (omitted from JSON).
func imageURL(imageID int64) string {
	if imageID == 0 {
		return ""
	}
	return fmt.Sprintf("/images/%d", imageID)
}

func toUserResponse(p *ports.UserProfile) userResponse {
	return userResponse{
		ID:        p.ID,
		Email:     p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Role:      string(p.Role),
		Image:     imageURL(p.AvatarID),
	}
}

func toAdResponse(a *ports.AdSummary) adResponse {
	return adResponse{
		Pk:     a.ID,
		Author: a.AuthorID,
		Image:  imageURL(a.ImageID),
		Price:  a.Price,
		Title:  a.Title,
	}
}

func toAdsResponse(ads []ports.AdSummary) adsResponse {
	results := make([]adResponse, 0, len(ads))
	for i := range ads {
		results = append(results, toAdResponse(&ads[i]))
	}
	return adsResponse{Count: len(results), Results: results}
}

func toExtendedAdResponse(d *ports.AdDetail) extendedAdResponse {
	return extendedAdResponse{
		Pk:              d.ID,
		AuthorFirstName: d.AuthorFirstName,
		AuthorLastName:  d.AuthorLastName,
		Description:     d.Description,
		Email:           d.Email,
		Image:           imageURL(d.ImageID),
		Phone:           d.AuthorPhone,
		Price:           d.Price,
		Title:           d.Title,
	}
}

func toCommentResponse(v *ports.CommentView) commentResponse {
	return commentResponse{
		Pk:              v.ID,
		Author:          v.AuthorID,
		AuthorFirstName: v.AuthorFirstName,
		CreatedAt:       v.CreatedAt.UnixMilli(),
		Text:            v.Text,
	}
}

func toCommentsResponse(views []ports.CommentView) commentsResponse {
	results := make([]commentResponse, 0, len(views))
	for i := range views {
		results = append(results, toCommentResponse(&views[i]))
	}
	return commentsResponse{Count: len(results), Results: results}
}
