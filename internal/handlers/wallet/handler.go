package wallet

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"intervuex/infras/otel"
	"intervuex/internal/domains/ledger/service"
	"intervuex/shared/constant"
	gDto "intervuex/shared/dto"
	"intervuex/transport/http/response"
)

type Handler struct {
	service service.Wallet
	otel    otel.Otel
}

func New(service service.Wallet, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/wallet", func(routerGroup chi.Router) {
		routerGroup.Get("/balance", handler.GetBalance)
		routerGroup.Get("/transactions", handler.GetTransactions)
	})
}

// GetBalance retrieves the authenticated user's wallet balance.
// @Summary Get wallet balance
// @Description Retrieve the wallet balance derived from the ledger.
// @Tags Wallet
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.BalanceResponse] "Wallet balance"
// @Failure 500 {object} response.Error
// @Router /v1/wallet/balance [get]
// @Security BearerAuth
func (handler *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBalance")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	balance, err := handler.service.GetBalance(ctx, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wallet balance")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wallet balance retrieved successfully")

	response.WithJSON(w, http.StatusOK, balance)
}

// GetTransactions retrieves the authenticated user's ledger history.
// @Summary Get wallet transactions
// @Description Retrieve the user's ledger entries, newest first, paginated.
// @Tags Wallet
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetTransactionsResponse] "Wallet transactions"
// @Failure 500 {object} response.Error
// @Router /v1/wallet/transactions [get]
// @Security BearerAuth
func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	transactions, err := handler.service.ListTransactions(ctx, user, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wallet transactions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wallet transactions retrieved successfully")

	response.WithJSON(w, http.StatusOK, transactions)
}
