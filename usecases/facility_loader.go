package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/pure_utils"
	"github.com/srct/whats-open/repositories"
)

type facilityLoaderRepository interface {
	ListCategories(ctx context.Context, exec repositories.Executor, filters models.CategoryFilters) ([]models.Category, error)
	ListLocations(ctx context.Context, exec repositories.Executor, filters models.LocationFilters) ([]models.Location, error)
	ListSchedules(ctx context.Context, exec repositories.Executor, ids ...int64) ([]models.Schedule, error)
	ListOpenTimes(ctx context.Context, exec repositories.Executor, scheduleIds ...int64) ([]models.OpenTime, error)
	ListFacilitySpecialSchedules(ctx context.Context, exec repositories.Executor, facilityIds ...int64) (map[int64][]int64, error)
	ListFacilityOwners(ctx context.Context, exec repositories.Executor, facilityIds ...int64) (map[int64][]int64, error)
	ListFacilityProductTags(ctx context.Context, exec repositories.Executor, facilityIds ...int64) (map[int64][]string, error)
}

// facilityLoader fills the relations of a list of facilities: category, location, schedules
// with their open times, owners and product tags.
type facilityLoader struct {
	repository facilityLoaderRepository
}

func (loader facilityLoader) hydrate(
	ctx context.Context,
	exec repositories.Executor,
	facilities []models.Facility,
) ([]models.Facility, error) {
	if len(facilities) == 0 {
		return facilities, nil
	}
	facilityIds := pure_utils.Map(facilities, func(f models.Facility) int64 { return f.Id })

	var (
		categories       []models.Category
		locations        []models.Location
		specialSchedules map[int64][]int64
		owners           map[int64][]int64
		productTags      map[int64][]string
	)

	group, groupCtx := loader.newGroup(ctx, exec)
	group.Go(func() (err error) {
		categories, err = loader.repository.ListCategories(groupCtx, exec, models.CategoryFilters{})
		return
	})
	group.Go(func() (err error) {
		locations, err = loader.repository.ListLocations(groupCtx, exec, models.LocationFilters{})
		return
	})
	group.Go(func() (err error) {
		specialSchedules, err = loader.repository.ListFacilitySpecialSchedules(groupCtx, exec, facilityIds...)
		return
	})
	group.Go(func() (err error) {
		owners, err = loader.repository.ListFacilityOwners(groupCtx, exec, facilityIds...)
		return
	})
	group.Go(func() (err error) {
		productTags, err = loader.repository.ListFacilityProductTags(groupCtx, exec, facilityIds...)
		return
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	scheduleIds := make([]int64, 0, len(facilities))
	for _, f := range facilities {
		scheduleIds = append(scheduleIds, f.MainScheduleId)
		scheduleIds = append(scheduleIds, specialSchedules[f.Id]...)
	}
	scheduleIds = pure_utils.Uniq(scheduleIds)

	var (
		schedules []models.Schedule
		openTimes []models.OpenTime
	)
	group, groupCtx = loader.newGroup(ctx, exec)
	group.Go(func() (err error) {
		schedules, err = loader.repository.ListSchedules(groupCtx, exec, scheduleIds...)
		return
	})
	group.Go(func() (err error) {
		openTimes, err = loader.repository.ListOpenTimes(groupCtx, exec, scheduleIds...)
		return
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	categoriesById := pure_utils.KeyBy(categories, func(c models.Category) int64 { return c.Id })
	locationsById := pure_utils.KeyBy(locations, func(l models.Location) int64 { return l.Id })
	schedulesById := pure_utils.KeyBy(
		attachOpenTimes(schedules, openTimes),
		func(s models.Schedule) int64 { return s.Id },
	)

	for i := range facilities {
		f := &facilities[i]
		f.Category = categoriesById[f.CategoryId]
		f.Location = locationsById[f.LocationId]
		f.MainSchedule = schedulesById[f.MainScheduleId]
		f.SpecialScheduleIds = specialSchedules[f.Id]
		f.SpecialSchedules = make([]models.Schedule, 0, len(f.SpecialScheduleIds))
		for _, id := range f.SpecialScheduleIds {
			if s, ok := schedulesById[id]; ok {
				f.SpecialSchedules = append(f.SpecialSchedules, s)
			}
		}
		f.OwnerIds = owners[f.Id]
		f.ProductTags = productTags[f.Id]
	}
	return facilities, nil
}

// newGroup runs the queries one at a time inside a transaction, since a transaction holds a
// single connection.
func (loader facilityLoader) newGroup(ctx context.Context, exec repositories.Executor) (*errgroup.Group, context.Context) {
	group, groupCtx := errgroup.WithContext(ctx)
	if _, inTransaction := exec.(repositories.Transaction); inTransaction {
		group.SetLimit(1)
	}
	return group, groupCtx
}
