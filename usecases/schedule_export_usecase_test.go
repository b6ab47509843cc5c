package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srct/whats-open/mocks"
	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/usecases/executor_factory"
)

func TestGetScheduleExport(t *testing.T) {
	ctx := context.Background()
	modified := time.Date(2024, 9, 2, 14, 0, 0, 0, time.UTC)
	repository := new(mocks.DbRepository)
	usecase := ScheduleExportUsecase{
		facilityLoader:  facilityLoader{repository: repository},
		executorFactory: executor_factory.NewExecutorFactoryStub(),
		repository:      repository,
		cache:           expirable.NewLRU[string, models.ScheduleExport](1, nil, time.Minute),
	}

	repository.On("ListFacilities", ctx, mock.Anything, models.FacilityFilters{}).
		Return([]models.Facility{{Id: 1, MainScheduleId: 4, UpdatedAt: modified.Add(-time.Hour)}}, nil).Once()
	repository.On("ListCategories", mock.Anything, mock.Anything, mock.Anything).Return([]models.Category{}, nil)
	repository.On("ListLocations", mock.Anything, mock.Anything, mock.Anything).Return([]models.Location{}, nil)
	repository.On("ListFacilitySpecialSchedules", mock.Anything, mock.Anything, []int64{1}).Return(map[int64][]int64{}, nil)
	repository.On("ListFacilityOwners", mock.Anything, mock.Anything, []int64{1}).Return(map[int64][]int64{}, nil)
	repository.On("ListFacilityProductTags", mock.Anything, mock.Anything, []int64{1}).Return(map[int64][]string{}, nil)
	repository.On("ListSchedules", mock.Anything, mock.Anything, []int64{4}).
		Return([]models.Schedule{{Id: 4, UpdatedAt: modified}}, nil)
	repository.On("ListOpenTimes", mock.Anything, mock.Anything, []int64{4}).
		Return([]models.OpenTime{{Id: 1, ScheduleId: 4, EndDay: models.Friday, EndTime: models.NewTimeOfDay(17, 0, 0)}}, nil)

	export, err := usecase.GetScheduleExport(ctx)
	require.NoError(t, err)
	assert.Equal(t, modified, export.LastModified)
	assert.Len(t, export.ETag, 40)
	assert.Len(t, export.Facilities, 1)

	cached, err := usecase.GetScheduleExport(ctx)
	require.NoError(t, err)
	assert.Equal(t, export.ETag, cached.ETag)
	repository.AssertNumberOfCalls(t, "ListFacilities", 1)
}

func TestScheduleETag(t *testing.T) {
	modified := time.Date(2024, 9, 2, 14, 0, 0, 0, time.UTC)
	facilities := []models.Facility{{
		MainSchedule: models.Schedule{OpenTimes: []models.OpenTime{
			{Id: 2, StartTime: models.NewTimeOfDay(8, 0, 0)},
			{Id: 1, StartTime: models.NewTimeOfDay(7, 0, 0)},
		}},
	}}
	tag := scheduleETag(facilities, modified)

	assert.Equal(t, tag, scheduleETag(facilities, modified), "stable")
	assert.NotEqual(t, tag, scheduleETag(facilities, modified.Add(time.Second)))

	facilities[0].MainSchedule.OpenTimes[0].EndTime = models.NewTimeOfDay(20, 0, 0)
	assert.NotEqual(t, tag, scheduleETag(facilities, modified))
}
