package sync

import (
	"hotel/infras/otel"
	"hotel/internal/domains/sync/model/dto"
	"hotel/internal/domains/sync/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Service
	otel    otel.Otel
}

func New(service service.Service, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sync", func(routerGroup chi.Router) {
		routerGroup.Post("/hotels", handler.SyncHotels)
		routerGroup.Get("/hotels/{id}/status", handler.SyncStatus)
		routerGroup.Post("/incoming", handler.Incoming)
	})
}

// SyncHotels snapshots availability and pricing of several hotels at once.
// @Summary Sync multiple hotels
// @Description Every hotel gets its own result. A failing hotel does not fail the others.
// @Tags Sync
// @Accept json
// @Produce json
// @Param request body dto.SyncHotelsRequest true "Hotels and window"
// @Success 200 {object} response.Data[[]dto.HotelSyncResult]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sync/hotels [post]
// @Security BearerAuth
func (handler *Handler) SyncHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncHotels")
	defer scope.End()

	req := dto.SyncHotelsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SyncMultipleHotels(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sync hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SyncStatus reports whether a hotel is ready to be synced.
// @Summary Sync status of a hotel
// @Tags Sync
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[dto.SyncStatusResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sync/hotels/{id}/status [get]
// @Security BearerAuth
func (handler *Handler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncStatus")
	defer scope.End()

	res, err := handler.service.SyncStatus(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sync status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Incoming applies an update pushed by a channel manager.
// @Summary Apply an incoming sync
// @Description Pricing and room status updates are applied in one transaction.
// @Tags Sync
// @Accept json
// @Produce json
// @Param request body dto.IncomingSyncRequest true "Update"
// @Success 200 {object} response.Data[dto.IncomingSyncResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sync/incoming [post]
// @Security ApiKeyAuth
func (handler *Handler) Incoming(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Incoming")
	defer scope.End()

	req := dto.IncomingSyncRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ApplyIncoming(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to apply incoming sync")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
