package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"intervuex/infras/otel"
	"intervuex/internal/domains/ledger/model"
	"intervuex/internal/domains/ledger/model/dto"
	"intervuex/internal/domains/ledger/repository"
	"intervuex/shared/constant"
	gDto "intervuex/shared/dto"
	"intervuex/shared/timezone"
)

var errNonPositiveAmount = errors.New("ledger entry amount must be positive")

// Entry describes one wallet movement to record. The direction comes from
// the Credit/Debit method used, never from the caller's data.
type Entry struct {
	AccountID string
	Amount    int64
	Reason    string
	BookingID string
	Actor     string
}

type Wallet interface {
	Credit(ctx context.Context, entry Entry) error
	Debit(ctx context.Context, entry Entry) error
	CreditTx(ctx context.Context, sqltx *sqlx.Tx, entry Entry) error
	DebitTx(ctx context.Context, sqltx *sqlx.Tx, entry Entry) error
	GetBalance(ctx context.Context, accountID string) (dto.BalanceResponse, error)
	ListTransactions(ctx context.Context, accountID string, params gDto.QueryParams) (dto.GetTransactionsResponse, error)
}

type serviceImpl struct {
	repo repository.Ledger
	otel otel.Otel
}

func New(repo repository.Ledger, otel otel.Otel) Wallet {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Credit(ctx context.Context, entry Entry) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Credit")
	defer scope.End()
	defer scope.TraceIfError(err)

	mod, err := buildEntry(model.TypeCredit, entry)
	if err != nil {
		return err
	}

	if err := s.repo.Insert(ctx, mod); err != nil {
		log.Error().Err(err).Msg("failed to insert credit entry")

		return fmt.Errorf("failed to insert credit entry: %w", err)
	}

	return nil
}

func (s *serviceImpl) Debit(ctx context.Context, entry Entry) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Debit")
	defer scope.End()
	defer scope.TraceIfError(err)

	mod, err := buildEntry(model.TypeDebit, entry)
	if err != nil {
		return err
	}

	if err := s.repo.Insert(ctx, mod); err != nil {
		log.Error().Err(err).Msg("failed to insert debit entry")

		return fmt.Errorf("failed to insert debit entry: %w", err)
	}

	return nil
}

func (s *serviceImpl) CreditTx(ctx context.Context, sqltx *sqlx.Tx, entry Entry) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreditTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	mod, err := buildEntry(model.TypeCredit, entry)
	if err != nil {
		return err
	}

	if err := s.repo.InsertTx(ctx, sqltx, mod); err != nil {
		log.Error().Err(err).Msg("failed to insert credit entry")

		return fmt.Errorf("failed to insert credit entry: %w", err)
	}

	return nil
}

func (s *serviceImpl) DebitTx(ctx context.Context, sqltx *sqlx.Tx, entry Entry) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DebitTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	mod, err := buildEntry(model.TypeDebit, entry)
	if err != nil {
		return err
	}

	if err := s.repo.InsertTx(ctx, sqltx, mod); err != nil {
		log.Error().Err(err).Msg("failed to insert debit entry")

		return fmt.Errorf("failed to insert debit entry: %w", err)
	}

	return nil
}

// GetBalance is never cached. Booking creation checks it synchronously and a
// stale read could admit an overdraft.
func (s *serviceImpl) GetBalance(ctx context.Context, accountID string) (res dto.BalanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBalance")
	defer scope.End()
	defer scope.TraceIfError(err)

	balance, err := s.repo.Balance(ctx, accountID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get balance")

		return res, fmt.Errorf("failed to get balance: %w", err)
	}

	return dto.BalanceResponse{
		AccountID: accountID,
		Balance:   balance,
	}, nil
}

func (s *serviceImpl) ListTransactions(ctx context.Context, accountID string, params gDto.QueryParams) (res dto.GetTransactionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListTransactions")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAccountID,
				Operator: gDto.FilterOperatorEq,
				Value:    accountID,
				Table:    model.TableName,
			},
		},
	}

	if params.SortBy == "" {
		params.SortBy = model.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	entries, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list transactions")

		return res, fmt.Errorf("failed to list transactions: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	res.FromModels(entries, total, params.Limit)

	return res, nil
}

func buildEntry(entryType string, entry Entry) (model.LedgerEntry, error) {
	if entry.Amount <= 0 {
		return model.LedgerEntry{}, errNonPositiveAmount
	}

	return model.LedgerEntry{
		ID:               uuid.NewString(),
		AccountID:        entry.AccountID,
		Type:             entryType,
		Amount:           entry.Amount,
		Reason:           entry.Reason,
		RelatedBookingID: entry.BookingID,
		CreatedAt:        timezone.Now(),
		CreatedBy:        entry.Actor,
	}, nil
}
