package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skymarket/classifieds-api/internal/api/metrics"
	"github.com/skymarket/classifieds-api/internal/core/ports"
)

// AdHandler handles the ad lifecycle endpoints.
type AdHandler struct {
	adService ports.AdService
}

func NewAdHandler(adService ports.AdService) *AdHandler {
	return &AdHandler{adService: adService}
}

func adIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid ad id")
	}
	return id, nil
}

// List returns every published ad. Public, no auth required.
//
// @Summary      List all ads
// @Tags         ads
// @Produce      json
// @Success      200  {object}  adsResponse
// @Router       /ads [get]
func (h *AdHandler) List(c echo.Context) error {
	ads, err := h.adService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdsResponse(ads))
}

// Create publishes a new ad. The request is multipart: a "properties" part
// holding the JSON body and an "image" file part with the picture.
//
// @Summary      Create an ad
// @Tags         ads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        properties  formData  string  true  "Ad fields as JSON (title, description, price)"
// @Param        image       formData  file    true  "Ad picture"
// @Success      201  {object}  adResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /ads [post]
func (h *AdHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	properties := c.FormValue("properties")
	if properties == "" {
		return echo.NewHTTPError(http.StatusBadRequest, `missing "properties" part`)
	}

	var req createOrUpdateAdRequest
	if err := json.Unmarshal([]byte(properties), &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid properties payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	data, mediaType, err := readImagePart(c, "image")
	if err != nil {
		return err
	}

	ad, err := h.adService.Create(c.Request().Context(), identity, ports.CreateAdInput{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		ImageData:      data,
		ImageMediaType: mediaType,
	})
	if err != nil {
		return err
	}

	metrics.AdsCreatedTotal.Inc()
	metrics.ImageUploadBytes.WithLabelValues("ad").Observe(float64(len(data)))
	return c.JSON(http.StatusCreated, toAdResponse(ad))
}

// ListMine returns the caller's own ads.
//
// @Summary      List the current user's ads
// @Tags         ads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adsResponse
// @Failure      401  {object}  map[string]string
// @Router       /ads/me [get]
func (h *AdHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ads, err := h.adService.ListMine(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdsResponse(ads))
}

// Get returns a single ad enriched with its author's contact details.
//
// @Summary      Get an ad by id
// @Tags         ads
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Ad id"
// @Success      200  {object}  extendedAdResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /ads/{id} [get]
func (h *AdHandler) Get(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	adID, err := adIDParam(c)
	if err != nil {
		return err
	}

	detail, err := h.adService.GetFull(c.Request().Context(), adID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toExtendedAdResponse(detail))
}

// Update changes the ad's title, description and price. Owner or admin only.
//
// @Summary      Update an ad
// @Tags         ads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Ad id"
// @Param        body  body      createOrUpdateAdRequest  true  "Ad fields"
// @Success      200   {object}  adResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /ads/{id} [patch]
func (h *AdHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	adID, err := adIDParam(c)
	if err != nil {
		return err
	}

	var req createOrUpdateAdRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ad, err := h.adService.Update(c.Request().Context(), identity, adID, ports.UpdateAdInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdResponse(ad))
}

// UpdateImage replaces the ad's picture with the uploaded "image" part.
//
// @Summary      Update an ad's picture
// @Tags         ads
// @Accept       multipart/form-data
// @Security     BearerAuth
// @Param        id     path      int   true  "Ad id"
// @Param        image  formData  file  true  "Ad picture"
// @Success      200
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /ads/{id}/image [patch]
func (h *AdHandler) UpdateImage(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	adID, err := adIDParam(c)
	if err != nil {
		return err
	}

	data, mediaType, err := readImagePart(c, "image")
	if err != nil {
		return err
	}

	if err := h.adService.UpdateImage(c.Request().Context(), identity, adID, data, mediaType); err != nil {
		return err
	}

	metrics.ImageUploadBytes.WithLabelValues("ad").Observe(float64(len(data)))
	return c.NoContent(http.StatusOK)
}

// Delete removes the ad together with its comments and picture.
//
// @Summary      Delete an ad
// @Tags         ads
// @Security     BearerAuth
// @Param        id  path  int  true  "Ad id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /ads/{id} [delete]
func (h *AdHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	adID, err := adIDParam(c)
	if err != nil {
		return err
	}

	if err := h.adService.Delete(c.Request().Context(), identity, adID); err != nil {
		return err
	}

	metrics.AdsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
