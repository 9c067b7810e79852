package availability

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"intervuex/infras/otel"
	"intervuex/internal/domains/availability/model/dto"
	"intervuex/internal/domains/availability/service"
	"intervuex/shared/constant"
	"intervuex/shared/failure"
	"intervuex/shared/validator"
	"intervuex/transport/http/response"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability/{providerId}", func(routerGroup chi.Router) {
		routerGroup.Get("/rules", handler.GetRules)
		routerGroup.Put("/rules", handler.SaveRules)
		routerGroup.Get("/slots", handler.GetSlots)
	})
}

// GetRules retrieves a provider's weekly availability template.
// @Summary Get availability rules
// @Description Retrieve the 7-day availability template and blocked dates for a provider.
// @Tags Availability
// @Accept json
// @Produce json
// @Param providerId path string true "Provider ID"
// @Success 200 {object} response.Data[dto.RulesResponse] "Availability rules"
// @Failure 500 {object} response.Error
// @Router /v1/availability/{providerId}/rules [get]
// @Security BearerAuth
func (handler *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRules")
	defer scope.End()

	providerID := chi.URLParam(r, constant.RequestParamProviderID)

	rules, err := handler.service.GetRules(ctx, providerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability rules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability rules retrieved successfully")

	response.WithJSON(w, http.StatusOK, rules)
}

// SaveRules replaces a provider's weekly availability template.
// @Summary Save availability rules
// @Description Replace the full 7-day availability template and blocked dates. The replace is all-or-nothing.
// @Tags Availability
// @Accept json
// @Produce json
// @Param providerId path string true "Provider ID"
// @Param request body dto.SaveRulesRequest true "Availability rules"
// @Success 200 {object} response.Message "Availability rules saved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/{providerId}/rules [put]
// @Security BearerAuth
func (handler *Handler) SaveRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveRules")
	defer scope.End()

	providerID := chi.URLParam(r, constant.RequestParamProviderID)

	var req dto.SaveRulesRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SaveRules(ctx, providerID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save availability rules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability rules saved successfully")

	response.WithMessage(w, http.StatusOK, "Availability rules saved successfully")
}

// GetSlots retrieves the bookable slots for a provider on one date.
// @Summary Get available slots
// @Description Retrieve the generated slots for a provider and date, each flagged as available or not.
// @Tags Availability
// @Accept json
// @Produce json
// @Param providerId path string true "Provider ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SlotsResponse] "Available slots"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/{providerId}/slots [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	providerID := chi.URLParam(r, constant.RequestParamProviderID)

	date := r.URL.Query().Get(constant.RequestParamDate)
	if date == "" {
		err := failure.BadRequestFromString("date query parameter is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	slots, err := handler.service.GetAvailableSlots(ctx, providerID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available slots retrieved successfully")

	response.WithJSON(w, http.StatusOK, slots)
}
