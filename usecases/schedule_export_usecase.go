package usecases

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/usecases/executor_factory"
	"github.com/srct/whats-open/utils"
)

const scheduleExportCacheKey = "schedule"

type scheduleExportRepository interface {
	ListFacilities(ctx context.Context, exec repositories.Executor, filters models.FacilityFilters) ([]models.Facility, error)
}

// ScheduleExportUsecase serves the legacy export of every facility with its schedules. The
// export is cached until a write purges it or its TTL runs out.
type ScheduleExportUsecase struct {
	facilityLoader  facilityLoader
	executorFactory executor_factory.ExecutorFactory
	repository      scheduleExportRepository
	cache           *expirable.LRU[string, models.ScheduleExport]
}

func (usecase *ScheduleExportUsecase) GetScheduleExport(ctx context.Context) (models.ScheduleExport, error) {
	if export, ok := usecase.cache.Get(scheduleExportCacheKey); ok {
		utils.MetricScheduleExportCache.With(prometheus.Labels{"result": "hit"}).Inc()
		return export, nil
	}
	utils.MetricScheduleExportCache.With(prometheus.Labels{"result": "miss"}).Inc()

	exec := usecase.executorFactory.NewExecutor()
	facilities, err := usecase.repository.ListFacilities(ctx, exec, models.FacilityFilters{})
	if err != nil {
		return models.ScheduleExport{}, err
	}
	facilities, err = usecase.facilityLoader.hydrate(ctx, exec, facilities)
	if err != nil {
		return models.ScheduleExport{}, err
	}

	export := models.ScheduleExport{Facilities: facilities}
	export.LastModified = lastModified(facilities)
	export.ETag = scheduleETag(facilities, export.LastModified)

	usecase.cache.Add(scheduleExportCacheKey, export)
	return export, nil
}

func lastModified(facilities []models.Facility) time.Time {
	var last time.Time
	for _, f := range facilities {
		if m := f.LastModified(); m.After(last) {
			last = m
		}
	}
	return last
}

// scheduleETag hashes every open time shown in the export, plus the last modification so
// that renames and schedule moves also change the tag.
func scheduleETag(facilities []models.Facility, lastModified time.Time) string {
	openTimes := make(map[int64]models.OpenTime)
	for _, f := range facilities {
		for _, s := range append([]models.Schedule{f.MainSchedule}, f.SpecialSchedules...) {
			for _, ot := range s.OpenTimes {
				openTimes[ot.Id] = ot
			}
		}
	}
	ids := make([]int64, 0, len(openTimes))
	for id := range openTimes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	h := sha1.New()
	for _, id := range ids {
		h.Write([]byte(openTimes[id].String()))
		h.Write([]byte{'\n'})
	}
	h.Write([]byte(lastModified.UTC().Format(time.RFC3339Nano)))
	return hex.EncodeToString(h.Sum(nil))
}
