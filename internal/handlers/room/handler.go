package room

import (
	"hotel/infras/otel"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Patch("/hotels/{hotelID}/rooms/{roomNumber}", handler.UpdateRoom)
	router.Get("/rooms/updates", handler.RecentUpdates)
}

// UpdateRoom changes the price and image of a room.
// @Summary Update a room
// @Description Set a new price and image for a room of a hotel the caller manages. The change is logged.
// @Tags Room
// @Accept json
// @Produce json
// @Param hotelID path int true "Hotel ID"
// @Param roomNumber path int true "Room number"
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelID}/rooms/{roomNumber} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	req := dto.UpdateRoomRequest{}

	var err error

	if req.HotelID, err = shared.ParseID(chi.URLParam(request, constant.RequestParamHotelID), "hotel id"); err == nil {
		req.RoomNumber, err = shared.ParseID(chi.URLParam(request, constant.RequestParamRoomNumber), "room number")
	}

	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	// the guard runs before field validation, so the body is only decoded here
	if err = validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	if err = handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithMessage(writer, http.StatusOK, "Room updated successfully")
}

// RecentUpdates lists the latest room changes made by the caller.
// @Summary Recent room updates
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[[]dto.UpdateLogResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/rooms/updates [get]
// @Security BearerAuth
func (handler *Handler) RecentUpdates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecentUpdates")
	defer scope.End()

	res, err := handler.service.RecentUpdates(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent room updates")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
