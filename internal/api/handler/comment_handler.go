package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skymarket/classifieds-api/internal/api/metrics"
	"github.com/skymarket/classifieds-api/internal/core/ports"
)

// CommentHandler handles comment endpoints, always nested under an ad.
type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func commentIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}
	return id, nil
}

// List returns the ad's comments in creation order.
//
// @Summary      List an ad's comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Ad id"
// @Success      200  {object}  commentsResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /ads/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	adID, err := adIDParam(c)
	if err != nil {
		return err
	}

	views, err := h.commentService.List(c.Request().Context(), adID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentsResponse(views))
}

// Add creates a comment under the ad, authored by the caller.
//
// @Summary      Add a comment to an ad
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                           true  "Ad id"
// @Param        body  body      createOrUpdateCommentRequest  true  "Comment text"
// @Success      200   {object}  commentResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /ads/{id}/comments [post]
func (h *CommentHandler) Add(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	adID, err := adIDParam(c)
	if err != nil {
		return err
	}

	var req createOrUpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.commentService.Add(c.Request().Context(), identity, adID, req.Text)
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, toCommentResponse(view))
}

// Update changes the comment's text. Owner or admin only.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      int                           true  "Ad id"
// @Param        commentId  path      int                           true  "Comment id"
// @Param        body       body      createOrUpdateCommentRequest  true  "Comment text"
// @Success      200        {object}  commentResponse
// @Failure      400        {object}  map[string]string
// @Failure      401        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /ads/{id}/comments/{commentId} [patch]
func (h *CommentHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	adID, err := adIDParam(c)
	if err != nil {
		return err
	}
	commentID, err := commentIDParam(c)
	if err != nil {
		return err
	}

	var req createOrUpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.commentService.Update(c.Request().Context(), identity, adID, commentID, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(view))
}

// Delete removes the comment. Owner or admin only.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id         path  int  true  "Ad id"
// @Param        commentId  path  int  true  "Comment id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /ads/{id}/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	adID, err := adIDParam(c)
	if err != nil {
		return err
	}
	commentID, err := commentIDParam(c)
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), identity, adID, commentID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
