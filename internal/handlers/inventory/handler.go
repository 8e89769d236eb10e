package inventory

import (
	"hotel/infras/otel"
	"hotel/internal/domains/inventory/model/dto"
	"hotel/internal/domains/inventory/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory", func(routerGroup chi.Router) {
		routerGroup.Post("/check-availability", handler.CheckAvailability)
		routerGroup.Post("/holds", handler.CreateHold)
		routerGroup.Post("/holds/release", handler.ReleaseHold)
		routerGroup.Get("/holds/{id}", handler.GetHold)
		routerGroup.Get("/calendar/{roomTypeId}", handler.Calendar)
	})
}

// CheckAvailability reports whether a room type or a single room is free for a stay.
// @Summary Check availability
// @Description Counts bookings and live holds overlapping the stay. Send either room_type_id or room_id.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CheckAvailabilityRequest true "Stay"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/check-availability [post]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.CheckAvailabilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateHold reserves rooms of a type for a short time.
// @Summary Create a hold
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateHoldRequest true "Hold"
// @Success 201 {object} response.Data[dto.HoldResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/holds [post]
// @Security BearerAuth
func (handler *Handler) CreateHold(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHold")
	defer scope.End()

	req := dto.CreateHoldRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	hold, err := handler.service.CreateHold(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hold")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hold " + hold.HoldID + " created")

	response.WithJSON(w, http.StatusCreated, hold)
}

// ReleaseHold frees a hold before it expires.
// @Summary Release a hold
// @Description Releasing an unknown or already released hold reports released=false.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.ReleaseHoldRequest true "Hold"
// @Success 200 {object} response.Data[dto.ReleaseHoldResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/holds/release [post]
// @Security BearerAuth
func (handler *Handler) ReleaseHold(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseHold")
	defer scope.End()

	req := dto.ReleaseHoldRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ReleaseHold(ctx, req.HoldID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to release hold")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetHold returns a live hold.
// @Summary Get a hold
// @Tags Inventory
// @Produce json
// @Param id path string true "Hold ID"
// @Success 200 {object} response.Data[dto.HoldResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/holds/{id} [get]
func (handler *Handler) GetHold(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHold")
	defer scope.End()

	hold, err := handler.service.GetHold(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hold")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hold)
}

// Calendar returns per-day availability of a room type.
// @Summary Availability calendar
// @Tags Inventory
// @Produce json
// @Param roomTypeId path string true "Room type ID"
// @Param start query string true "First day (YYYY-MM-DD)"
// @Param end query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.CalendarResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/calendar/{roomTypeId} [get]
func (handler *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Calendar")
	defer scope.End()

	query := r.URL.Query()

	res, err := handler.service.Calendar(ctx, chi.URLParam(r, constant.RequestParamRoomTypeID),
		query.Get(constant.RequestParamStart), query.Get(constant.RequestParamEnd))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
