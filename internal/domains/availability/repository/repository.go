package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"intervuex/infras/otel"
	"intervuex/infras/postgres"
	"intervuex/internal/domains/availability/model"
	gDto "intervuex/shared/dto"
	gRepo "intervuex/shared/repository"
)

type Rule interface {
	Insert(ctx context.Context, model model.DayRule) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.DayRule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DayRule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DayRule, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type BlockedDate interface {
	Insert(ctx context.Context, model model.BlockedDate) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.BlockedDate) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BlockedDate, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type ruleRepositoryImpl struct {
	gRepo.Repository[model.DayRule]
	db   *postgres.Connection
	otel otel.Otel
}

func NewRule(db *postgres.Connection, otel otel.Otel) Rule {
	return &ruleRepositoryImpl{
		Repository: gRepo.NewRepository[model.DayRule](model.RuleEntityName, model.RuleTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type blockedDateRepositoryImpl struct {
	gRepo.Repository[model.BlockedDate]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBlockedDate(db *postgres.Connection, otel otel.Otel) BlockedDate {
	return &blockedDateRepositoryImpl{
		Repository: gRepo.NewRepository[model.BlockedDate](model.BlockedEntityName, model.BlockedTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
