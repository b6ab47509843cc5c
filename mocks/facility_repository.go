package mocks

import (
	"context"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
)

func (r *DbRepository) ListFacilities(ctx context.Context, exec repositories.Executor, filters models.FacilityFilters) ([]models.Facility, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Facility), args.Error(1)
}

func (r *DbRepository) GetFacilityBySlug(ctx context.Context, exec repositories.Executor, slug string) (models.Facility, error) {
	args := r.Called(ctx, exec, slug)
	return args.Get(0).(models.Facility), args.Error(1)
}

func (r *DbRepository) ListSlugsLike(ctx context.Context, exec repositories.Executor, base string) ([]string, error) {
	args := r.Called(ctx, exec, base)
	return args.Get(0).([]string), args.Error(1)
}

func (r *DbRepository) CreateFacility(ctx context.Context, exec repositories.Executor, slug string, input models.CreateFacilityInput) (int64, error) {
	args := r.Called(ctx, exec, slug, input)
	return args.Get(0).(int64), args.Error(1)
}

func (r *DbRepository) UpdateFacility(ctx context.Context, exec repositories.Executor, id int64, input models.UpdateFacilityInput) error {
	args := r.Called(ctx, exec, id, input)
	return args.Error(0)
}

func (r *DbRepository) DeleteFacility(ctx context.Context, exec repositories.Executor, id int64) error {
	args := r.Called(ctx, exec, id)
	return args.Error(0)
}

func (r *DbRepository) ListFacilitySpecialSchedules(ctx context.Context, exec repositories.Executor, facilityIds ...int64) (map[int64][]int64, error) {
	args := r.Called(ctx, exec, facilityIds)
	return args.Get(0).(map[int64][]int64), args.Error(1)
}

func (r *DbRepository) ListFacilityOwners(ctx context.Context, exec repositories.Executor, facilityIds ...int64) (map[int64][]int64, error) {
	args := r.Called(ctx, exec, facilityIds)
	return args.Get(0).(map[int64][]int64), args.Error(1)
}

func (r *DbRepository) ListFacilityProductTags(ctx context.Context, exec repositories.Executor, facilityIds ...int64) (map[int64][]string, error) {
	args := r.Called(ctx, exec, facilityIds)
	return args.Get(0).(map[int64][]string), args.Error(1)
}

func (r *DbRepository) ReplaceFacilitySpecialSchedules(ctx context.Context, exec repositories.Transaction, facilityId int64, scheduleIds []int64) error {
	args := r.Called(ctx, exec, facilityId, scheduleIds)
	return args.Error(0)
}

func (r *DbRepository) ReplaceFacilityOwners(ctx context.Context, exec repositories.Transaction, facilityId int64, userIds []int64) error {
	args := r.Called(ctx, exec, facilityId, userIds)
	return args.Error(0)
}

func (r *DbRepository) ReplaceFacilityProductTags(ctx context.Context, exec repositories.Transaction, facilityId int64, tags []models.Tag) error {
	args := r.Called(ctx, exec, facilityId, tags)
	return args.Error(0)
}
