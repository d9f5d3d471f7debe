package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arthive/infras/otel"
	"arthive/infras/postgres"
	"arthive/internal/domains/user/model"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	"arthive/shared/logger"
	gRepo "arthive/shared/repository"
	"arthive/shared/timezone"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	AddFavorite(ctx context.Context, userID, exhibitionID string) error
	RemoveFavorite(ctx context.Context, userID, exhibitionID string) error
	UpdateLastLogin(ctx context.Context, userID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// AddFavorite appends the exhibition to the user's favorites in a single
// statement. The guard keeps the column duplicate-free without a read first.
func (repo *repositoryImpl) AddFavorite(ctx context.Context, userID, exhibitionID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.AddFavorite")
	defer scope.End()

	query := `UPDATE users
		SET favorite_exhibitions = array_append(favorite_exhibitions, $2::uuid), modified_at = $3
		WHERE id = $1 AND NOT ($2::uuid = ANY(favorite_exhibitions))`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.ExecContext(ctx, query, userID, exhibitionID, timezone.Now()); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

// RemoveFavorite drops the exhibition from the user's favorites; removing an
// absent id is a no-op.
func (repo *repositoryImpl) RemoveFavorite(ctx context.Context, userID, exhibitionID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.RemoveFavorite")
	defer scope.End()

	query := `UPDATE users
		SET favorite_exhibitions = array_remove(favorite_exhibitions, $2::uuid), modified_at = $3
		WHERE id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.ExecContext(ctx, query, userID, exhibitionID, timezone.Now()); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) UpdateLastLogin(ctx context.Context, userID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.UpdateLastLogin")
	defer scope.End()

	query := "UPDATE users SET last_login = $2 WHERE id = $1"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.ExecContext(ctx, query, userID, timezone.Now()); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}
