package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories/dbmodels"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func selectFacilities() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(columnsNames("f", dbmodels.SelectFacilityColumn)...).
		From(fmt.Sprintf("%s AS f", dbmodels.TABLE_FACILITIES))
}

// ListFacilities applies every filter that can be answered by the database. Whether a
// facility is open is computed afterwards.
func (repo *DbRepository) ListFacilities(ctx context.Context, exec Executor, filters models.FacilityFilters) ([]models.Facility, error) {
	query := selectFacilities().OrderBy("f.facility_name", "f.id")

	if filters.CategoryId != 0 {
		query = query.Where(squirrel.Eq{"f.facility_category_id": filters.CategoryId})
	}
	if filters.Classifier != nil {
		query = query.Where(squirrel.Eq{"f.facility_classifier": *filters.Classifier})
	}
	if filters.OnCampus != nil || filters.CampusRegion != "" {
		query = query.Join(fmt.Sprintf("%s AS l ON l.id = f.facility_location_id", dbmodels.TABLE_LOCATIONS))
		if filters.OnCampus != nil {
			query = query.Where(squirrel.Eq{"l.on_campus": *filters.OnCampus})
		}
		if filters.CampusRegion != "" {
			query = query.Where(squirrel.Eq{"l.campus_region": filters.CampusRegion})
		}
	}
	if filters.Search != "" {
		pattern := containsPattern(filters.Search)
		query = query.Where(squirrel.Or{
			squirrel.Expr("f.facility_name LIKE ?", pattern),
			squirrel.Expr(fmt.Sprintf(
				"EXISTS (SELECT 1 FROM %s AS ft JOIN %s AS t ON t.id = ft.tag_id WHERE ft.facility_id = f.id AND t.name LIKE ?)",
				dbmodels.TABLE_FACILITY_PRODUCT_TAGS, dbmodels.TABLE_TAGS), pattern),
		})
	}
	for _, tag := range filters.Tags {
		query = query.Where(squirrel.Expr(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s AS ft JOIN %s AS t ON t.id = ft.tag_id WHERE ft.facility_id = f.id AND t.name = ?)",
			dbmodels.TABLE_FACILITY_PRODUCT_TAGS, dbmodels.TABLE_TAGS), tag))
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptFacility)
}

func (repo *DbRepository) GetFacilityBySlug(ctx context.Context, exec Executor, slug string) (models.Facility, error) {
	return SqlToModel(ctx, exec, selectFacilities().Where(squirrel.Eq{"f.slug": slug}), dbmodels.AdaptFacility)
}

// ListSlugsLike returns the slugs equal to base or derived from it with a numeric suffix.
func (repo *DbRepository) ListSlugsLike(ctx context.Context, exec Executor, base string) ([]string, error) {
	query := NewQueryBuilder().
		Select("slug").
		From(dbmodels.TABLE_FACILITIES).
		Where(squirrel.Or{
			squirrel.Eq{"slug": base},
			squirrel.Expr("slug LIKE ?", likeEscaper.Replace(base)+"-%"),
		})
	return SqlToListOfRow(ctx, exec, query, func(row RowScanner) (string, error) {
		var slug string
		err := row.Scan(&slug)
		return slug, err
	})
}

func (repo *DbRepository) CreateFacility(ctx context.Context, exec Executor, slug string, input models.CreateFacilityInput) (int64, error) {
	return ExecBuilderReturningId(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_FACILITIES).
			Columns(
				"facility_name",
				"slug",
				"facility_category_id",
				"facility_location_id",
				"main_schedule_id",
				"note",
				"logo",
				"tapingo_url",
				"phone_number",
				"facility_classifier",
			).
			Values(
				input.Name,
				slug,
				input.CategoryId,
				input.LocationId,
				input.MainScheduleId,
				input.Note,
				input.Logo,
				input.TapingoUrl,
				input.PhoneNumber,
				input.Classifier,
			),
	)
}

func (repo *DbRepository) UpdateFacility(ctx context.Context, exec Executor, id int64, input models.UpdateFacilityInput) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_FACILITIES).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP(6)")).
		Where(squirrel.Eq{"id": id})

	if input.Name != nil {
		query = query.Set("facility_name", *input.Name)
	}
	if input.CategoryId != nil {
		query = query.Set("facility_category_id", *input.CategoryId)
	}
	if input.LocationId != nil {
		query = query.Set("facility_location_id", *input.LocationId)
	}
	if input.MainScheduleId != nil {
		query = query.Set("main_schedule_id", *input.MainScheduleId)
	}
	if input.Note != nil {
		query = query.Set("note", *input.Note)
	}
	if input.Logo != nil {
		query = query.Set("logo", *input.Logo)
	}
	if input.TapingoUrl != nil {
		query = query.Set("tapingo_url", *input.TapingoUrl)
	}
	if input.PhoneNumber != nil {
		query = query.Set("phone_number", *input.PhoneNumber)
	}
	if input.Classifier != nil {
		query = query.Set("facility_classifier", *input.Classifier)
	}

	return ExecBuilderAffectingRow(ctx, exec, query)
}

func (repo *DbRepository) DeleteFacility(ctx context.Context, exec Executor, id int64) error {
	return ExecBuilderAffectingRow(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_FACILITIES).
			Where(squirrel.Eq{"id": id}),
	)
}

// ListFacilitySpecialSchedules maps each facility id to its special schedule ids, in display order.
func (repo *DbRepository) ListFacilitySpecialSchedules(ctx context.Context, exec Executor, facilityIds ...int64) (map[int64][]int64, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectFacilitySpecialScheduleColumn...).
		From(dbmodels.TABLE_FACILITY_SPECIAL_SCHEDULES).
		OrderBy("facility_id", "position", "schedule_id")
	if len(facilityIds) > 0 {
		query = query.Where(squirrel.Eq{"facility_id": facilityIds})
	}

	links, err := SqlToListOfModels(ctx, exec, query, func(db dbmodels.DBFacilitySpecialSchedule) (dbmodels.DBFacilitySpecialSchedule, error) {
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	result := make(map[int64][]int64)
	for _, link := range links {
		result[link.FacilityId] = append(result[link.FacilityId], link.ScheduleId)
	}
	return result, nil
}

func (repo *DbRepository) ListFacilityOwners(ctx context.Context, exec Executor, facilityIds ...int64) (map[int64][]int64, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectFacilityOwnerColumn...).
		From(dbmodels.TABLE_FACILITY_OWNERS).
		OrderBy("facility_id", "user_id")
	if len(facilityIds) > 0 {
		query = query.Where(squirrel.Eq{"facility_id": facilityIds})
	}

	links, err := SqlToListOfModels(ctx, exec, query, func(db dbmodels.DBFacilityOwner) (dbmodels.DBFacilityOwner, error) {
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	result := make(map[int64][]int64)
	for _, link := range links {
		result[link.FacilityId] = append(result[link.FacilityId], link.UserId)
	}
	return result, nil
}

func (repo *DbRepository) ListFacilityProductTags(ctx context.Context, exec Executor, facilityIds ...int64) (map[int64][]string, error) {
	query := NewQueryBuilder().
		Select("ft.facility_id", "t.name").
		From(fmt.Sprintf("%s AS ft", dbmodels.TABLE_FACILITY_PRODUCT_TAGS)).
		Join(fmt.Sprintf("%s AS t ON t.id = ft.tag_id", dbmodels.TABLE_TAGS)).
		OrderBy("ft.facility_id", "t.name")
	if len(facilityIds) > 0 {
		query = query.Where(squirrel.Eq{"ft.facility_id": facilityIds})
	}

	links, err := SqlToListOfModels(ctx, exec, query, func(db dbmodels.DBFacilityTag) (dbmodels.DBFacilityTag, error) {
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	result := make(map[int64][]string)
	for _, link := range links {
		result[link.FacilityId] = append(result[link.FacilityId], link.Name)
	}
	return result, nil
}

func (repo *DbRepository) ReplaceFacilitySpecialSchedules(ctx context.Context, exec Transaction, facilityId int64, scheduleIds []int64) error {
	err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Delete(dbmodels.TABLE_FACILITY_SPECIAL_SCHEDULES).
		Where(squirrel.Eq{"facility_id": facilityId}))
	if err != nil || len(scheduleIds) == 0 {
		return err
	}

	insert := NewQueryBuilder().
		Insert(dbmodels.TABLE_FACILITY_SPECIAL_SCHEDULES).
		Columns("facility_id", "schedule_id", "position")
	for position, scheduleId := range scheduleIds {
		insert = insert.Values(facilityId, scheduleId, position)
	}
	return ExecBuilder(ctx, exec, insert)
}

func (repo *DbRepository) ReplaceFacilityOwners(ctx context.Context, exec Transaction, facilityId int64, userIds []int64) error {
	err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Delete(dbmodels.TABLE_FACILITY_OWNERS).
		Where(squirrel.Eq{"facility_id": facilityId}))
	if err != nil || len(userIds) == 0 {
		return err
	}

	insert := NewQueryBuilder().
		Insert(dbmodels.TABLE_FACILITY_OWNERS).
		Columns("facility_id", "user_id")
	for _, userId := range userIds {
		insert = insert.Values(facilityId, userId)
	}
	return ExecBuilder(ctx, exec, insert)
}

// ReplaceFacilityProductTags creates the missing tags and links exactly the given ones.
func (repo *DbRepository) ReplaceFacilityProductTags(ctx context.Context, exec Transaction, facilityId int64, tags []models.Tag) error {
	err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Delete(dbmodels.TABLE_FACILITY_PRODUCT_TAGS).
		Where(squirrel.Eq{"facility_id": facilityId}))
	if err != nil || len(tags) == 0 {
		return err
	}

	if err := repo.EnsureTags(ctx, exec, tags); err != nil {
		return err
	}

	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	link := NewQueryBuilder().
		Insert(dbmodels.TABLE_FACILITY_PRODUCT_TAGS).
		Columns("facility_id", "tag_id").
		Select(NewQueryBuilder().
			Select().
			Column("?", facilityId).
			Column("id").
			From(dbmodels.TABLE_TAGS).
			Where(squirrel.Eq{"name": names}))
	result, err := execBuilder(ctx, exec, link)
	if err != nil {
		return err
	}
	linked, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "can't read affected rows")
	}
	if linked != int64(len(tags)) {
		return errors.Wrapf(models.BadParameterError,
			"%d of %d product tags could be linked, some names designate the same tag", linked, len(tags))
	}
	return nil
}
