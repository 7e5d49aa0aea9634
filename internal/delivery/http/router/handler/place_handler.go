package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"homestay/internal/delivery/http/middleware"
	"homestay/internal/delivery/http/response"
	"homestay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlaceHandler holds dependencies for place-related handlers.
type PlaceHandler struct {
	uc     usecase.PlaceUsecase
	logger *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler, injected by Fx.
func NewPlaceHandler(uc usecase.PlaceUsecase, logger *slog.Logger) *PlaceHandler {
	return &PlaceHandler{uc: uc, logger: logger}
}

// Create adds a new place listing owned by the authenticated user.
func (h *PlaceHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user identity in token")
	}

	var input *usecase.CreatePlaceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid place input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	place, err := h.uc.CreatePlace(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPlaceResponse(place), "Place created successfully")
}

// Get retrieves one place by id.
func (h *PlaceHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid place id")
	}

	place, err := h.uc.GetPlace(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponse(place), "")
}

// List retrieves all places.
func (h *PlaceHandler) List(c echo.Context) error {
	places, err := h.uc.ListPlaces(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponses(places), "")
}

// SearchNearby returns places within a radius of a point, closest first.
// Latitude, longitude and radius_km arrive as query parameters.
func (h *PlaceHandler) SearchNearby(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "latitude must be a number")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "longitude must be a number")
	}

	var radiusKm float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "radius_km must be a number")
		}
	}

	matches, err := h.uc.SearchNearby(c.Request().Context(), &usecase.NearbySearchInput{
		Latitude:  latitude,
		Longitude: longitude,
		RadiusKm:  radiusKm,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNearbyPlaceResponses(matches), "")
}

// Update applies a partial update to a place. Owner or admin only.
func (h *PlaceHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user identity in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid place id")
	}

	var input *usecase.UpdatePlaceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid place update input")
	}

	place, err := h.uc.UpdatePlace(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponse(place), "Place updated successfully")
}

// Delete removes a place and its reviews. Owner or admin only.
func (h *PlaceHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user identity in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid place id")
	}

	if err := h.uc.DeletePlace(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Place deleted"}, "Place deleted successfully")
}

// AttachAmenity links an amenity to a place. Owner or admin only.
func (h *PlaceHandler) AttachAmenity(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user identity in token")
	}

	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid place id")
	}
	amenityID, err := uuid.Parse(c.Param("amenity_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid amenity id")
	}

	place, err := h.uc.AttachAmenity(c.Request().Context(), actor, placeID, amenityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponse(place), "Amenity attached successfully")
}

// DetachAmenity unlinks an amenity from a place. Owner or admin only.
func (h *PlaceHandler) DetachAmenity(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user identity in token")
	}

	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid place id")
	}
	amenityID, err := uuid.Parse(c.Param("amenity_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid amenity id")
	}

	place, err := h.uc.DetachAmenity(c.Request().Context(), actor, placeID, amenityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponse(place), "Amenity detached successfully")
}

// QRCode streams a PNG QR code linking to the place's public listing.
func (h *PlaceHandler) QRCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid place id")
	}

	png, err := h.uc.PlaceQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
