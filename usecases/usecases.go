package usecases

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories"
	"github.com/srct/whats-open/usecases/executor_factory"
)

const (
	defaultTokenLifetime  = 120 * time.Minute
	defaultExportCacheTTL = 30 * time.Second
)

type Usecases struct {
	Repositories  repositories.Repositories
	emailDomain   string
	tokenLifetime time.Duration
	exportCache   *expirable.LRU[string, models.ScheduleExport]
}

type options struct {
	emailDomain    string
	tokenLifetime  time.Duration
	exportCacheTTL time.Duration
}

type Option func(*options)

func WithEmailDomain(domain string) Option {
	return func(o *options) {
		o.emailDomain = domain
	}
}

func WithTokenLifetime(lifetime time.Duration) Option {
	return func(o *options) {
		if lifetime > 0 {
			o.tokenLifetime = lifetime
		}
	}
}

func WithExportCacheTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.exportCacheTTL = ttl
		}
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := options{
		tokenLifetime:  defaultTokenLifetime,
		exportCacheTTL: defaultExportCacheTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return Usecases{
		Repositories:  repositories,
		emailDomain:   o.emailDomain,
		tokenLifetime: o.tokenLifetime,
		exportCache:   expirable.NewLRU[string, models.ScheduleExport](1, nil, o.exportCacheTTL),
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

// Now is the current instant in the campus time zone, where opening hours are evaluated.
func (usecases *Usecases) Now() time.Time {
	return usecases.Repositories.Clock.Now()
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.DbRepository,
	}
}

func (usecases *Usecases) NewHealthUsecase() HealthUsecase {
	return HealthUsecase{
		executorFactory:  usecases.NewExecutorFactory(),
		healthRepository: usecases.Repositories.DbRepository,
	}
}

func (usecases *Usecases) NewAuthUsecase() AuthUsecase {
	return AuthUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		casRepository:   usecases.Repositories.CasRepository,
		tokenRepository: usecases.Repositories.JwtRepository,
		userRepository:  usecases.Repositories.DbRepository,
		clock:           usecases.Repositories.Clock,
		emailDomain:     usecases.emailDomain,
		tokenLifetime:   usecases.tokenLifetime,
	}
}

func (usecases *Usecases) NewSeedUsecase() SeedUsecase {
	return SeedUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		userRepository:  usecases.Repositories.DbRepository,
		emailDomain:     usecases.emailDomain,
	}
}

func (usecases *Usecases) NewScheduleExportUsecase() ScheduleExportUsecase {
	return ScheduleExportUsecase{
		facilityLoader:  usecases.newFacilityLoader(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.DbRepository,
		cache:           usecases.exportCache,
	}
}

func (usecases *Usecases) newFacilityLoader() facilityLoader {
	return facilityLoader{
		repository: usecases.Repositories.DbRepository,
	}
}
