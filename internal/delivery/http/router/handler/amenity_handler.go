package handler

import (
	"log/slog"
	"net/http"

	"homestay/internal/delivery/http/middleware"
	"homestay/internal/delivery/http/response"
	"homestay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AmenityHandler holds dependencies for amenity-related handlers.
type AmenityHandler struct {
	uc     usecase.AmenityUsecase
	logger *slog.Logger
}

// NewAmenityHandler is the constructor for AmenityHandler, injected by Fx.
func NewAmenityHandler(uc usecase.AmenityUsecase, logger *slog.Logger) *AmenityHandler {
	return &AmenityHandler{uc: uc, logger: logger}
}

// Create adds an amenity to the catalog. Admin only.
func (h *AmenityHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user identity in token")
	}

	var input *usecase.CreateAmenityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid amenity input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	amenity, err := h.uc.CreateAmenity(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAmenityResponse(amenity), "Amenity created successfully")
}

// Get retrieves one amenity by id.
func (h *AmenityHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid amenity id")
	}

	amenity, err := h.uc.GetAmenity(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAmenityResponse(amenity), "")
}

// List retrieves the amenity catalog.
func (h *AmenityHandler) List(c echo.Context) error {
	amenities, err := h.uc.ListAmenities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAmenityResponses(amenities), "")
}

// Update renames an amenity. Admin only.
func (h *AmenityHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user identity in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid amenity id")
	}

	var input *usecase.UpdateAmenityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid amenity update input")
	}

	amenity, err := h.uc.UpdateAmenity(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAmenityResponse(amenity), "Amenity updated successfully")
}

// Delete removes an amenity, detaching it from every place. Admin only.
func (h *AmenityHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user identity in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid amenity id")
	}

	if err := h.uc.DeleteAmenity(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Amenity deleted"}, "Amenity deleted successfully")
}
