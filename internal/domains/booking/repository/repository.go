package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"intervuex/infras/otel"
	"intervuex/infras/postgres"
	"intervuex/internal/domains/booking/model"
	"intervuex/shared/constant"
	gDto "intervuex/shared/dto"
	"intervuex/shared/logger"
	gRepo "intervuex/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Transition(ctx context.Context, bookingID string, fromStatuses []string, req map[string]any) (bool, error)
	TransitionTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, fromStatuses []string, req map[string]any) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type namedExecer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// transition applies the update only while the booking still sits in one of
// the expected source statuses. The status check and the write are one
// statement, so a concurrent transition loses by affecting zero rows.
func (repo *repositoryImpl) transition(ctx context.Context, exec namedExecer, bookingID string, fromStatuses []string, mod map[string]any) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".transition")
	defer scope.End()

	updateField := make([]string, 0, len(mod))
	args := map[string]any{"transition_id": bookingID}

	for col, val := range mod {
		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
		args[col] = val
	}

	fromNamed := make([]string, len(fromStatuses))
	for i, status := range fromStatuses {
		argName := fmt.Sprintf("from_status_%d", i)
		fromNamed[i] = ":" + argName
		args[argName] = status
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = :transition_id AND %s IN (%s)",
		model.TableName, strings.Join(updateField, ", "), model.FieldID, model.FieldStatus, strings.Join(fromNamed, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := exec.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to transition booking (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read transition result (%s): %w", model.EntityName, err)
	}

	return affected > 0, nil
}

func (repo *repositoryImpl) Transition(ctx context.Context, bookingID string, fromStatuses []string, req map[string]any) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Transition")
	defer scope.End()

	return repo.transition(ctx, repo.db.Write, bookingID, fromStatuses, req)
}

func (repo *repositoryImpl) TransitionTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, fromStatuses []string, req map[string]any) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".TransitionTx")
	defer scope.End()

	return repo.transition(ctx, sqltx, bookingID, fromStatuses, req)
}
