package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"intervuex/infras/otel"
	"intervuex/infras/postgres"
	"intervuex/internal/domains/ledger/model"
	"intervuex/shared/constant"
	gDto "intervuex/shared/dto"
	"intervuex/shared/logger"
	gRepo "intervuex/shared/repository"
)

// Ledger is append-only: the interface deliberately exposes no update or
// delete operations.
type Ledger interface {
	Insert(ctx context.Context, model model.LedgerEntry) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.LedgerEntry) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.LedgerEntry) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.LedgerEntry, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Balance(ctx context.Context, accountID string) (int64, error)
}

type ledgerRepositoryImpl struct {
	gRepo.Repository[model.LedgerEntry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Ledger {
	return &ledgerRepositoryImpl{
		Repository: gRepo.NewRepository[model.LedgerEntry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Balance derives the account balance as the signed sum of its entries.
// There is no stored balance column anywhere.
func (repo *ledgerRepositoryImpl) Balance(ctx context.Context, accountID string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Balance")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(CASE WHEN %s = '%s' THEN %s ELSE -%s END), 0) FROM %s WHERE %s = :account_id",
		model.FieldEntryType, model.TypeCredit, model.FieldAmount, model.FieldAmount, model.TableName, model.FieldAccountID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare balance query (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	var balance int64

	err = prepare.GetContext(ctx, &balance, map[string]any{"account_id": accountID})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to get balance (%s): %w", model.EntityName, err)
	}

	return balance, nil
}
