package repair

import (
	"hotel/infras/otel"
	"hotel/internal/domains/repair/model/dto"
	"hotel/internal/domains/repair/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Repair
	otel    otel.Otel
}

func New(service service.Repair, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/repairs", handler.RequestRepair)
	router.Get("/repairs", handler.History)
}

// RequestRepair schedules a repair of a room for today.
// @Summary Request a room repair
// @Description Record a repair with a maintenance company and a request owned by the caller. The company is notified asynchronously.
// @Tags Repair
// @Accept json
// @Produce json
// @Param request body dto.RepairRequest true "Repair Request"
// @Success 201 {object} response.Data[dto.RepairRequestResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/repairs [post]
// @Security BearerAuth
func (handler *Handler) RequestRepair(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestRepair")
	defer scope.End()

	req := dto.RepairRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RequestRepair(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request repair")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Repair requested successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// History lists the caller's repair requests.
// @Summary Repair history
// @Tags Repair
// @Produce json
// @Success 200 {object} response.Data[[]dto.HistoryResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/repairs [get]
// @Security BearerAuth
func (handler *Handler) History(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RepairHistory")
	defer scope.End()

	res, err := handler.service.History(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get repair history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
