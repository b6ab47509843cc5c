package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/guregu/null/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/srct/whats-open/mocks"
	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories/clock"
	"github.com/srct/whats-open/usecases/executor_factory"
	"github.com/srct/whats-open/usecases/security"
)

type DirectoryUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.DbRepository
	executorFactory    executor_factory.ExecutorFactoryStub
	transactionFactory executor_factory.TransactionFactoryStub
	cache              *expirable.LRU[string, models.ScheduleExport]
	ctx                context.Context

	superuser models.Credentials
	user      models.Credentials
}

func (suite *DirectoryUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.DbRepository)
	suite.executorFactory = executor_factory.NewExecutorFactoryStub()
	suite.transactionFactory = executor_factory.NewTransactionFactoryStub(suite.executorFactory)
	suite.cache = expirable.NewLRU[string, models.ScheduleExport](1, nil, time.Minute)
	suite.cache.Add(scheduleExportCacheKey, models.ScheduleExport{ETag: "stale"})
	suite.ctx = context.Background()

	suite.superuser = models.Credentials{UserId: 1, Username: "admin", IsSuperuser: true}
	suite.user = models.Credentials{UserId: 2, Username: "gmason"}
}

func (suite *DirectoryUsecaseTestSuite) enforceSecurity(creds models.Credentials) security.EnforceSecurityDirectory {
	return &security.EnforceSecurityDirectoryImpl{
		EnforceSecurity: &security.EnforceSecurityImpl{Credentials: creds},
	}
}

func (suite *DirectoryUsecaseTestSuite) makeCategoryUsecase(creds models.Credentials) *CategoryUsecase {
	return &CategoryUsecase{
		enforceSecurity:    suite.enforceSecurity(creds),
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		exportCache:        suite.cache,
	}
}

func (suite *DirectoryUsecaseTestSuite) makeScheduleUsecase(creds models.Credentials) *ScheduleUsecase {
	return &ScheduleUsecase{
		enforceSecurity:    suite.enforceSecurity(creds),
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		exportCache:        suite.cache,
	}
}

func (suite *DirectoryUsecaseTestSuite) makeOpenTimeUsecase(creds models.Credentials) *OpenTimeUsecase {
	return &OpenTimeUsecase{
		enforceSecurity:    suite.enforceSecurity(creds),
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		exportCache:        suite.cache,
	}
}

func (suite *DirectoryUsecaseTestSuite) makeAlertUsecase(creds models.Credentials, now time.Time) *AlertUsecase {
	return &AlertUsecase{
		enforceSecurity:    suite.enforceSecurity(creds),
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
		clock:              clock.NewMock(now),
	}
}

func (suite *DirectoryUsecaseTestSuite) TestCreateCategory() {
	input := models.CreateCategoryInput{Name: "Dining"}
	suite.repository.On("CreateCategory", suite.ctx, mock.Anything, input).Return(int64(4), nil)
	suite.repository.On("GetCategoryById", suite.ctx, mock.Anything, int64(4)).
		Return(models.Category{Id: 4, Name: "Dining"}, nil)

	category, err := suite.makeCategoryUsecase(suite.superuser).CreateCategory(suite.ctx, input)

	suite.Require().NoError(err)
	suite.Equal(int64(4), category.Id)
	suite.repository.AssertExpectations(suite.T())
}

func (suite *DirectoryUsecaseTestSuite) TestCreateCategory_requiresSuperuser() {
	_, err := suite.makeCategoryUsecase(suite.user).CreateCategory(suite.ctx, models.CreateCategoryInput{Name: "Dining"})

	suite.ErrorIs(err, models.ForbiddenError)
	suite.repository.AssertNotCalled(suite.T(), "CreateCategory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DirectoryUsecaseTestSuite) TestDeleteCategory_purgesExport() {
	suite.repository.On("DeleteCategory", suite.ctx, mock.Anything, int64(4)).Return(nil)

	err := suite.makeCategoryUsecase(suite.superuser).DeleteCategory(suite.ctx, 4)

	suite.Require().NoError(err)
	suite.Equal(0, suite.cache.Len())
}

func (suite *DirectoryUsecaseTestSuite) TestListSchedules_attachesOpenTimes() {
	suite.repository.On("ListSchedules", suite.ctx, mock.Anything, []int64(nil)).
		Return([]models.Schedule{{Id: 1, Name: "A"}, {Id: 2, Name: "B"}}, nil)
	suite.repository.On("ListOpenTimes", suite.ctx, mock.Anything, []int64(nil)).
		Return([]models.OpenTime{{Id: 10, ScheduleId: 2}, {Id: 11, ScheduleId: 2}}, nil)

	schedules, err := suite.makeScheduleUsecase(models.Credentials{}).ListSchedules(suite.ctx)

	suite.Require().NoError(err)
	suite.Empty(schedules[0].OpenTimes)
	suite.Len(schedules[1].OpenTimes, 2)
}

func (suite *DirectoryUsecaseTestSuite) TestUpdateSchedule_rejectsInvertedPeriod() {
	start := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)
	current := models.Schedule{Id: 1, ValidStart: null.TimeFrom(start)}
	end := null.TimeFrom(start.Add(-time.Hour))
	input := models.UpdateScheduleInput{Id: 1, ValidEnd: &end}
	suite.repository.On("GetScheduleById", suite.ctx, mock.Anything, int64(1)).Return(current, nil)

	_, err := suite.makeScheduleUsecase(suite.superuser).UpdateSchedule(suite.ctx, input)

	suite.ErrorIs(err, models.ErrInvalidSchedulePeriod)
	suite.ErrorIs(err, models.BadParameterError)
	suite.repository.AssertNotCalled(suite.T(), "UpdateSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DirectoryUsecaseTestSuite) TestCreateOpenTime_touchesSchedule() {
	input := models.CreateOpenTimeInput{
		ScheduleId: 3,
		StartDay:   models.Monday,
		StartTime:  models.NewTimeOfDay(8, 0, 0),
		EndDay:     models.Monday,
		EndTime:    models.NewTimeOfDay(17, 0, 0),
	}
	suite.repository.On("CreateOpenTime", suite.ctx, mock.Anything, input).Return(int64(9), nil)
	suite.repository.On("TouchSchedule", suite.ctx, mock.Anything, int64(3)).Return(nil)
	suite.repository.On("GetOpenTimeById", suite.ctx, mock.Anything, int64(9)).
		Return(models.OpenTime{Id: 9, ScheduleId: 3}, nil)

	openTime, err := suite.makeOpenTimeUsecase(suite.superuser).CreateOpenTime(suite.ctx, input)

	suite.Require().NoError(err)
	suite.Equal(int64(9), openTime.Id)
	suite.Equal(0, suite.cache.Len())
	suite.repository.AssertExpectations(suite.T())
}

func (suite *DirectoryUsecaseTestSuite) TestCreateOpenTime_invalidDay() {
	input := models.CreateOpenTimeInput{ScheduleId: 3, StartDay: 7, EndDay: models.Monday}

	_, err := suite.makeOpenTimeUsecase(suite.superuser).CreateOpenTime(suite.ctx, input)

	suite.ErrorIs(err, models.ErrInvalidWeekday)
}

func (suite *DirectoryUsecaseTestSuite) TestDeleteOpenTime_touchesSchedule() {
	suite.repository.On("GetOpenTimeById", suite.ctx, mock.Anything, int64(9)).
		Return(models.OpenTime{Id: 9, ScheduleId: 3}, nil)
	suite.repository.On("DeleteOpenTime", suite.ctx, mock.Anything, int64(9)).Return(nil)
	suite.repository.On("TouchSchedule", suite.ctx, mock.Anything, int64(3)).Return(nil)

	err := suite.makeOpenTimeUsecase(suite.superuser).DeleteOpenTime(suite.ctx, 9)

	suite.Require().NoError(err)
	suite.repository.AssertExpectations(suite.T())
}

func (suite *DirectoryUsecaseTestSuite) TestListOpenTimes_bySchedule() {
	suite.repository.On("ListOpenTimes", suite.ctx, mock.Anything, []int64{3}).Return([]models.OpenTime{}, nil)

	_, err := suite.makeOpenTimeUsecase(models.Credentials{}).
		ListOpenTimes(suite.ctx, models.OpenTimeFilters{ScheduleId: 3})

	suite.Require().NoError(err)
	suite.repository.AssertExpectations(suite.T())
}

func (suite *DirectoryUsecaseTestSuite) TestListAlerts_usesClock() {
	now := time.Date(2024, 9, 2, 14, 0, 0, 0, time.UTC)
	suite.repository.On("ListAlerts", suite.ctx, mock.Anything, models.AlertFilters{}, now).
		Return([]models.Alert{{Id: 1}}, nil)

	alerts, err := suite.makeAlertUsecase(models.Credentials{}, now).ListAlerts(suite.ctx, models.AlertFilters{})

	suite.Require().NoError(err)
	suite.Len(alerts, 1)
}

func (suite *DirectoryUsecaseTestSuite) TestCreateAlert_endBeforeStart() {
	start := time.Date(2024, 9, 2, 14, 0, 0, 0, time.UTC)
	input := models.CreateAlertInput{
		UrgencyTag:    models.UrgencyMajor,
		Subject:       "Power outage",
		StartDatetime: start,
		EndDatetime:   start,
	}

	_, err := suite.makeAlertUsecase(suite.superuser, start).CreateAlert(suite.ctx, input)

	suite.ErrorIs(err, models.ErrInvalidAlertPeriod)
	suite.repository.AssertNotCalled(suite.T(), "CreateAlert", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DirectoryUsecaseTestSuite) TestUpdateAlert_mergesWithStoredPeriod() {
	start := time.Date(2024, 9, 2, 14, 0, 0, 0, time.UTC)
	current := models.Alert{Id: 5, UrgencyTag: models.UrgencyInfo, StartDatetime: start, EndDatetime: start.Add(time.Hour)}
	newEnd := start.Add(2 * time.Hour)
	input := models.UpdateAlertInput{Id: 5, EndDatetime: &newEnd}
	updated := current
	updated.EndDatetime = newEnd

	suite.repository.On("GetAlertById", suite.ctx, mock.Anything, int64(5)).Return(current, nil).Once()
	suite.repository.On("UpdateAlert", suite.ctx, mock.Anything, input).Return(nil)
	suite.repository.On("GetAlertById", suite.ctx, mock.Anything, int64(5)).Return(updated, nil).Once()

	alert, err := suite.makeAlertUsecase(suite.superuser, start).UpdateAlert(suite.ctx, input)

	suite.Require().NoError(err)
	suite.Equal(newEnd, alert.EndDatetime)
	suite.repository.AssertExpectations(suite.T())
}

func TestDirectoryUsecases(t *testing.T) {
	suite.Run(t, new(DirectoryUsecaseTestSuite))
}
