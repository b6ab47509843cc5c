package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-set/v2"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/pure_utils"
	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/usecases/executor_factory"
	"github.com/srct/whats-open/usecases/security"
)

type FacilityUsecaseRepository interface {
	ListFacilities(ctx context.Context, exec repositories.Executor, filters models.FacilityFilters) ([]models.Facility, error)
	GetFacilityBySlug(ctx context.Context, exec repositories.Executor, slug string) (models.Facility, error)
	ListSlugsLike(ctx context.Context, exec repositories.Executor, base string) ([]string, error)
	CreateFacility(ctx context.Context, exec repositories.Executor, slug string, input models.CreateFacilityInput) (int64, error)
	UpdateFacility(ctx context.Context, exec repositories.Executor, id int64, input models.UpdateFacilityInput) error
	DeleteFacility(ctx context.Context, exec repositories.Executor, id int64) error
	ListFacilityOwners(ctx context.Context, exec repositories.Executor, facilityIds ...int64) (map[int64][]int64, error)
	ReplaceFacilitySpecialSchedules(ctx context.Context, exec repositories.Transaction, facilityId int64, scheduleIds []int64) error
	ReplaceFacilityOwners(ctx context.Context, exec repositories.Transaction, facilityId int64, userIds []int64) error
	ReplaceFacilityProductTags(ctx context.Context, exec repositories.Transaction, facilityId int64, tags []models.Tag) error
}

type FacilityUsecase struct {
	enforceSecurity    security.EnforceSecurityFacility
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         FacilityUsecaseRepository
	loader             facilityLoader
	exportCache        exportCache
	now                func() time.Time
}

func (usecase *FacilityUsecase) ListFacilities(ctx context.Context, filters models.FacilityFilters) ([]models.Facility, error) {
	exec := usecase.executorFactory.NewExecutor()
	facilities, err := usecase.repository.ListFacilities(ctx, exec, filters)
	if err != nil {
		return nil, err
	}
	facilities, err = usecase.loader.hydrate(ctx, exec, facilities)
	if err != nil {
		return nil, err
	}

	if filters.OpenNow != nil {
		now := usecase.now()
		facilities = pure_utils.Filter(facilities, func(f models.Facility) bool {
			return f.IsOpenAt(now) == *filters.OpenNow
		})
	}
	return facilities, nil
}

func (usecase *FacilityUsecase) GetFacility(ctx context.Context, slug string) (models.Facility, error) {
	exec := usecase.executorFactory.NewExecutor()
	facility, err := usecase.repository.GetFacilityBySlug(ctx, exec, slug)
	if err != nil {
		return models.Facility{}, err
	}
	facilities, err := usecase.loader.hydrate(ctx, exec, []models.Facility{facility})
	if err != nil {
		return models.Facility{}, err
	}
	return facilities[0], nil
}

// Now is the instant against which the is_open flags of the facilities are computed.
func (usecase *FacilityUsecase) Now() time.Time {
	return usecase.now()
}

func (usecase *FacilityUsecase) CreateFacility(ctx context.Context, input models.CreateFacilityInput) (models.Facility, error) {
	if err := usecase.enforceSecurity.CreateFacility(); err != nil {
		return models.Facility{}, err
	}
	if err := input.Validate(); err != nil {
		return models.Facility{}, err
	}

	slug, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Transaction,
	) (string, error) {
		slug, err := usecase.uniqueSlug(ctx, tx, input.Name)
		if err != nil {
			return "", err
		}
		id, err := usecase.repository.CreateFacility(ctx, tx, slug, input)
		if err != nil {
			return "", err
		}

		if err := usecase.repository.ReplaceFacilitySpecialSchedules(ctx, tx, id, input.SpecialScheduleIds); err != nil {
			return "", err
		}
		if err := usecase.repository.ReplaceFacilityOwners(ctx, tx, id, input.OwnerIds); err != nil {
			return "", err
		}
		if err := usecase.repository.ReplaceFacilityProductTags(ctx, tx, id, productTags(input.ProductTags)); err != nil {
			return "", err
		}
		return slug, nil
	})
	if err != nil {
		return models.Facility{}, err
	}

	usecase.exportCache.Purge()
	return usecase.GetFacility(ctx, slug)
}

func (usecase *FacilityUsecase) UpdateFacility(ctx context.Context, input models.UpdateFacilityInput) (models.Facility, error) {
	if err := input.Validate(); err != nil {
		return models.Facility{}, err
	}

	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		facility, err := usecase.getFacilityWithOwners(ctx, tx, input.Slug)
		if err != nil {
			return err
		}
		if err := usecase.enforceSecurity.UpdateFacility(facility, input); err != nil {
			return err
		}

		if err := usecase.repository.UpdateFacility(ctx, tx, facility.Id, input); err != nil {
			return err
		}
		if input.SpecialScheduleIds != nil {
			err := usecase.repository.ReplaceFacilitySpecialSchedules(ctx, tx, facility.Id, *input.SpecialScheduleIds)
			if err != nil {
				return err
			}
		}
		if input.OwnerIds != nil {
			if err := usecase.repository.ReplaceFacilityOwners(ctx, tx, facility.Id, *input.OwnerIds); err != nil {
				return err
			}
		}
		if input.ProductTags != nil {
			err := usecase.repository.ReplaceFacilityProductTags(ctx, tx, facility.Id, productTags(*input.ProductTags))
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Facility{}, err
	}

	usecase.exportCache.Purge()
	return usecase.GetFacility(ctx, input.Slug)
}

func (usecase *FacilityUsecase) DeleteFacility(ctx context.Context, slug string) error {
	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		facility, err := usecase.repository.GetFacilityBySlug(ctx, tx, slug)
		if err != nil {
			return err
		}
		if err := usecase.enforceSecurity.DeleteFacility(facility); err != nil {
			return err
		}
		return usecase.repository.DeleteFacility(ctx, tx, facility.Id)
	})
	if err != nil {
		return err
	}

	usecase.exportCache.Purge()
	return nil
}

func (usecase *FacilityUsecase) getFacilityWithOwners(ctx context.Context, exec repositories.Executor, slug string) (models.Facility, error) {
	facility, err := usecase.repository.GetFacilityBySlug(ctx, exec, slug)
	if err != nil {
		return models.Facility{}, err
	}
	owners, err := usecase.repository.ListFacilityOwners(ctx, exec, facility.Id)
	if err != nil {
		return models.Facility{}, err
	}
	facility.OwnerIds = owners[facility.Id]
	return facility, nil
}

func (usecase *FacilityUsecase) uniqueSlug(ctx context.Context, exec repositories.Executor, name string) (string, error) {
	base := pure_utils.Slugify(name)
	if base == "" {
		return "", errors.Wrapf(models.BadParameterError, "cannot derive a slug from facility name %q", name)
	}
	taken, err := usecase.repository.ListSlugsLike(ctx, exec, base)
	if err != nil {
		return "", err
	}
	return nextFreeSlug(base, taken), nil
}

// nextFreeSlug returns base if it is free, else the first of base-2, base-3, ... that is.
func nextFreeSlug(base string, taken []string) string {
	takenSet := set.From(taken)
	if !takenSet.Contains(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !takenSet.Contains(candidate) {
			return candidate
		}
	}
}

// productTags trims and drops blank names. Names differing only by case designate the
// same tag.
func productTags(names []string) []models.Tag {
	seen := set.New[string](len(names))
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || !seen.Insert(strings.ToLower(name)) {
			continue
		}
		tags = append(tags, models.Tag{Name: name, Slug: pure_utils.Slugify(name)})
	}
	return tags
}
