package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skymarket/classifieds-api/internal/api/metrics"
	"github.com/skymarket/classifieds-api/internal/core/ports"
)

// UserHandler handles profile reads and self-scoped profile mutations.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the caller's own profile.
//
// @Summary      Get the current user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.GetProfile(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(profile))
}

// UpdateMe updates the caller's mutable profile fields. The username is
// immutable and not part of the payload.
//
// @Summary      Update the current user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Profile fields"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/me [patch]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.userService.UpdateProfile(c.Request().Context(), identity, ports.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(profile))
}

// UpdateAvatar replaces the caller's avatar with the uploaded "image" part.
//
// @Summary      Update the current user's avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Avatar image"
// @Success      200    {object}  userResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /users/me/image [patch]
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	data, mediaType, err := readImagePart(c, "image")
	if err != nil {
		return err
	}

	profile, err := h.userService.UpdateAvatar(c.Request().Context(), identity, data, mediaType)
	if err != nil {
		return err
	}

	metrics.ImageUploadBytes.WithLabelValues("avatar").Observe(float64(len(data)))
	return c.JSON(http.StatusOK, toUserResponse(profile))
}

// List returns every registered account. Admin only, enforced by route
// middleware.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	profiles, err := h.userService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	results := make([]userResponse, 0, len(profiles))
	for i := range profiles {
		results = append(results, toUserResponse(&profiles[i]))
	}
	return c.JSON(http.StatusOK, usersResponse{Count: len(results), Results: results})
}

// Get returns a single user's public profile by id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	profile, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(profile))
}
