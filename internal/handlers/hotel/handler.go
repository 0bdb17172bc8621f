package hotel

import (
	"fmt"
	"hotel/infras/otel"
	availabilityDto "hotel/internal/domains/availability/model/dto"
	availabilityService "hotel/internal/domains/availability/service"
	bookingService "hotel/internal/domains/booking/service"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Hotel
	availability availabilityService.Availability
	booking      bookingService.Booking
	otel         otel.Otel
}

func New(service service.Hotel, availability availabilityService.Availability, booking bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		booking:      booking,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/hotels/nearby", handler.Nearby)
	router.Get("/hotels/{hotelID}/rooms", handler.Rooms)
	router.Get("/hotels/{hotelID}/regular-customers", handler.RegularCustomers)
}

func parseFloat(r *http.Request, name string, required bool) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		if required {
			return 0, failure.BadRequestFromString(fmt.Sprintf("%s is required", name))
		}

		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%s must be a number", name))
	}

	return value, nil
}

// Nearby lists hotels around a coordinate
// @Summary Hotels within a radius
// @Description Hotels whose flat distance to the given coordinate is within the radius. The configured radius is used when none is given.
// @Tags Hotel
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius query number false "Radius"
// @Success 200 {object} response.Data[dto.NearbyHotelsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/nearby [get]
func (handler *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Nearby")
	defer scope.End()

	var (
		req dto.NearbyRequest
		err error
	)

	if req.Latitude, err = parseFloat(r, constant.RequestParamLatitude, true); err == nil {
		if req.Longitude, err = parseFloat(r, constant.RequestParamLongitude, true); err == nil {
			req.Radius, err = parseFloat(r, constant.RequestParamRadius, false)
		}
	}

	if err == nil {
		err = validator.ValidateStruct(&req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request query")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Nearby(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Rooms lists the available and booked rooms of a hotel on a date
// @Summary Room availability
// @Tags Hotel
// @Produce json
// @Param hotelID path int true "Hotel ID"
// @Param date query string true "Date, YYYY-MM-DD or MM/DD/YYYY"
// @Success 200 {object} response.Data[availabilityDto.RoomsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms [get]
func (handler *Handler) Rooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Rooms")
	defer scope.End()

	hotelID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamHotelID), "hotel id")
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := availabilityDto.RoomsRequest{
		HotelID: hotelID,
		Date:    r.URL.Query().Get(constant.RequestParamDate),
	}

	res, err := handler.availability.Rooms(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RegularCustomers lists the customers with the most bookings at a hotel
// @Summary Regular customers
// @Tags Hotel
// @Produce json
// @Param hotelID path int true "Hotel ID"
// @Success 200 {object} response.Data[[]bookingDto.RegularCustomerResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/regular-customers [get]
// @Security BearerAuth
func (handler *Handler) RegularCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegularCustomers")
	defer scope.End()

	hotelID, err := shared.ParseID(chi.URLParam(r, constant.RequestParamHotelID), "hotel id")
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.booking.RegularCustomers(ctx, hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get regular customers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
