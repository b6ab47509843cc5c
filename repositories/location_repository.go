package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories/dbmodels"
)

func pointExpr(point orb.Point) squirrel.Sqlizer {
	return squirrel.Expr("ST_GeomFromText(?)", wkt.MarshalString(point))
}

func (repo *DbRepository) ListLocations(ctx context.Context, exec Executor, filters models.LocationFilters) ([]models.Location, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectLocationColumn...).
		From(dbmodels.TABLE_LOCATIONS).
		OrderBy("building", "id")

	if filters.CampusRegion != "" {
		query = query.Where(squirrel.Eq{"campus_region": filters.CampusRegion})
	}
	if filters.OnCampus != nil {
		query = query.Where(squirrel.Eq{"on_campus": *filters.OnCampus})
	}
	if filters.Building != "" {
		query = query.Where(squirrel.Eq{"building": filters.Building})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptLocation)
}

func (repo *DbRepository) GetLocationById(ctx context.Context, exec Executor, id int64) (models.Location, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectLocationColumn...).
			From(dbmodels.TABLE_LOCATIONS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptLocation,
	)
}

func (repo *DbRepository) CreateLocation(ctx context.Context, exec Executor, input models.CreateLocationInput) (int64, error) {
	return ExecBuilderReturningId(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_LOCATIONS).
			Columns(
				"building",
				"friendly_building",
				"address",
				"campus_region",
				"on_campus",
				"coordinate_location",
			).
			Values(
				input.Building,
				input.FriendlyBuilding,
				input.Address,
				input.CampusRegion,
				input.OnCampus,
				pointExpr(input.Coordinate),
			),
	)
}

func (repo *DbRepository) UpdateLocation(ctx context.Context, exec Executor, input models.UpdateLocationInput) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_LOCATIONS).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP(6)")).
		Where(squirrel.Eq{"id": input.Id})

	if input.Building != nil {
		query = query.Set("building", *input.Building)
	}
	if input.FriendlyBuilding != nil {
		query = query.Set("friendly_building", *input.FriendlyBuilding)
	}
	if input.Address != nil {
		query = query.Set("address", *input.Address)
	}
	if input.CampusRegion != nil {
		query = query.Set("campus_region", *input.CampusRegion)
	}
	if input.OnCampus != nil {
		query = query.Set("on_campus", *input.OnCampus)
	}
	if input.Coordinate != nil {
		query = query.Set("coordinate_location", pointExpr(*input.Coordinate))
	}

	return ExecBuilderAffectingRow(ctx, exec, query)
}

func (repo *DbRepository) DeleteLocation(ctx context.Context, exec Executor, id int64) error {
	return ExecBuilderAffectingRow(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_LOCATIONS).
			Where(squirrel.Eq{"id": id}),
	)
}
