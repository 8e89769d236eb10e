package pricing

import (
	"hotel/infras/otel"
	"hotel/internal/domains/pricing/model/dto"
	"hotel/internal/domains/pricing/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pricing", func(routerGroup chi.Router) {
		routerGroup.Post("/calculate", handler.CalculatePrice)
		routerGroup.Post("/checkout-total", handler.CheckoutTotal)
		routerGroup.Patch("/prices/{id}", handler.UpdatePrice)
		routerGroup.Get("/{roomTypeId}", handler.GetPriceForDate)
		routerGroup.Get("/{roomTypeId}/range", handler.GetPriceRange)
		routerGroup.Get("/{roomTypeId}/prices", handler.ListPrices)
		routerGroup.Post("/{roomTypeId}/prices", handler.CreatePrice)
	})
}

// CalculatePrice prices a stay night by night and applies an optional promo code.
// @Summary Calculate the price of a stay
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.CalculatePriceRequest true "Stay"
// @Success 200 {object} response.Data[dto.CalculatePriceResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/calculate [post]
func (handler *Handler) CalculatePrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CalculatePrice")
	defer scope.End()

	req := dto.CalculatePriceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CalculatePrice(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to calculate price")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CheckoutTotal returns subtotal, tax and total of a stay.
// @Summary Checkout total
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.CalculatePriceRequest true "Stay"
// @Success 200 {object} response.Data[dto.CheckoutTotalResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/checkout-total [post]
func (handler *Handler) CheckoutTotal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutTotal")
	defer scope.End()

	req := dto.CalculatePriceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckoutTotal(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute checkout total")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPriceForDate returns the effective nightly price of a room type.
// @Summary Price for a date
// @Tags Pricing
// @Produce json
// @Param roomTypeId path string true "Room type ID"
// @Param date query string true "Night (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.PriceForDateResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/{roomTypeId} [get]
func (handler *Handler) GetPriceForDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPriceForDate")
	defer scope.End()

	res, err := handler.service.GetPriceForDate(ctx, chi.URLParam(r, constant.RequestParamRoomTypeID),
		r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get price for date")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPriceRange returns daily prices between two dates, both inclusive.
// @Summary Price range
// @Tags Pricing
// @Produce json
// @Param roomTypeId path string true "Room type ID"
// @Param start query string true "First day (YYYY-MM-DD)"
// @Param end query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.PriceRangeResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/{roomTypeId}/range [get]
func (handler *Handler) GetPriceRange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPriceRange")
	defer scope.End()

	query := r.URL.Query()

	res, err := handler.service.GetPriceRange(ctx, chi.URLParam(r, constant.RequestParamRoomTypeID),
		query.Get(constant.RequestParamStart), query.Get(constant.RequestParamEnd))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get price range")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListPrices returns the default row and every override of a room type.
// @Summary List price rows
// @Tags Pricing
// @Produce json
// @Param roomTypeId path string true "Room type ID"
// @Success 200 {object} response.Data[dto.ListPricesResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/{roomTypeId}/prices [get]
// @Security BearerAuth
func (handler *Handler) ListPrices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListPrices")
	defer scope.End()

	res, err := handler.service.ListPrices(ctx, chi.URLParam(r, constant.RequestParamRoomTypeID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list prices")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreatePrice adds the default row or a dated override.
// @Summary Create a price row
// @Description Overrides of one room type must not overlap.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param roomTypeId path string true "Room type ID"
// @Param request body dto.CreatePriceRequest true "Price"
// @Success 201 {object} response.Data[dto.RoomPriceResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/{roomTypeId}/prices [post]
// @Security BearerAuth
func (handler *Handler) CreatePrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePrice")
	defer scope.End()

	req := dto.CreatePriceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreatePrice(ctx, chi.URLParam(r, constant.RequestParamRoomTypeID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create price")

		response.WithError(w, err)

		return
	}

	user, _ := shared.Actor(ctx)
	scope.AddEvent("Price created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdatePrice changes a price row.
// @Summary Update a price row
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Price ID"
// @Param request body dto.UpdatePriceRequest true "Price"
// @Success 200 {object} response.Data[dto.RoomPriceResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/prices/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePrice")
	defer scope.End()

	req := dto.UpdatePriceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdatePrice(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update price")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
