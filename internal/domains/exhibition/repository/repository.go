package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arthive/infras/otel"
	"arthive/infras/postgres"
	"arthive/internal/domains/exhibition/model"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	"arthive/shared/logger"
	gRepo "arthive/shared/repository"
)

type Exhibition interface {
	Insert(ctx context.Context, model model.Exhibition) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Exhibition, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Exhibition, error)
	GetAllRanked(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, search string) ([]model.Exhibition, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FilterOptions(ctx context.Context) (cities, countries, categories []string, err error)
	IncrementPopularity(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Exhibition]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Exhibition {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Exhibition](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAllRanked runs a filtered listing ordered by text-search relevance first,
// with the requested sort column as tiebreak.
func (repo *repositoryImpl) GetAllRanked(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, search string) ([]model.Exhibition, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".exhibition.GetAllRanked")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	args[constant.RequestParamSearch] = search
	args["limit"] = params.Limit
	args["skip"] = params.Skip

	query := fmt.Sprintf(
		"SELECT %s FROM %s %s %s ORDER BY ts_rank(%s.%s, plainto_tsquery('simple', :%s)) DESC, %s %s LIMIT :limit OFFSET :skip",
		repo.SelectColumns(ctx),
		model.TableName,
		repo.JoinClause(),
		where,
		model.TableName, model.FieldSearchVector, constant.RequestParamSearch,
		params.SortBy, params.SortDir,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []model.Exhibition

	prepare, err := repo.Reader().PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (exhibition ranked): %w", err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get ranked exhibitions: %w", err)
	}

	return models, nil
}

// FilterOptions aggregates the distinct cities, countries, and flattened
// categories of active exhibitions.
func (repo *repositoryImpl) FilterOptions(ctx context.Context) (cities, countries, categories []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".exhibition.FilterOptions")
	defer scope.End()

	queries := []struct {
		query string
		dest  *[]string
	}{
		{
			query: "SELECT DISTINCT city FROM exhibitions WHERE active = TRUE AND city <> '' ORDER BY city",
			dest:  &cities,
		},
		{
			query: "SELECT DISTINCT country FROM exhibitions WHERE active = TRUE AND country <> '' ORDER BY country",
			dest:  &countries,
		},
		{
			query: "SELECT DISTINCT entry FROM exhibitions, unnest(categories) AS entry WHERE active = TRUE ORDER BY entry",
			dest:  &categories,
		},
	}

	for _, q := range queries {
		scope.SetAttribute(constant.OtelQueryAttributeKey, q.query)

		if err = repo.db.Read.SelectContext(ctx, q.dest, q.query); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return nil, nil, nil, fmt.Errorf("failed to get filter options: %w", err)
		}
	}

	return cities, countries, categories, nil
}

// IncrementPopularity bumps the popularity counter of a viewed exhibition.
func (repo *repositoryImpl) IncrementPopularity(ctx context.Context, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".exhibition.IncrementPopularity")
	defer scope.End()

	query := "UPDATE exhibitions SET popularity = popularity + 1 WHERE id = $1"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.ExecContext(ctx, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to increment popularity: %w", err)
	}

	return nil
}
