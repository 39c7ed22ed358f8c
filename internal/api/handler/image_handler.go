package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skymarket/classifieds-api/internal/core/ports"
)

// ImageHandler streams stored image blobs.
type ImageHandler struct {
	imageService ports.ImageService
}

func NewImageHandler(imageService ports.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Get streams the raw image bytes with their stored media type.
//
// @Summary      Get an image
// @Tags         images
// @Produce      octet-stream
// @Param        id  path  int  true  "Image id"
// @Success      200  {file}    file
// @Failure      404  {object}  map[string]string
// @Router       /images/{id} [get]
func (h *ImageHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image id")
	}

	img, err := h.imageService.Fetch(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, img.MediaType, img.Data)
}
