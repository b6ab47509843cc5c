package usecases

import (
	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/usecases/security"
)

// UsecasesWithCreds builds the usecases that depend on who is calling. Anonymous
// callers get empty credentials: reads go through, writes are rejected.
type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceDirectorySecurity() security.EnforceSecurityDirectory {
	return &security.EnforceSecurityDirectoryImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
	}
}

func (usecases *UsecasesWithCreds) NewEnforceFacilitySecurity() security.EnforceSecurityFacility {
	return &security.EnforceSecurityFacilityImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
	}
}

func (usecases *UsecasesWithCreds) NewCategoryUsecase() CategoryUsecase {
	return CategoryUsecase{
		enforceSecurity:    usecases.NewEnforceDirectorySecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.DbRepository,
		exportCache:        usecases.exportCache,
	}
}

func (usecases *UsecasesWithCreds) NewLocationUsecase() LocationUsecase {
	return LocationUsecase{
		enforceSecurity:    usecases.NewEnforceDirectorySecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.DbRepository,
		exportCache:        usecases.exportCache,
	}
}

func (usecases *UsecasesWithCreds) NewScheduleUsecase() ScheduleUsecase {
	return ScheduleUsecase{
		enforceSecurity:    usecases.NewEnforceDirectorySecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.DbRepository,
		exportCache:        usecases.exportCache,
	}
}

func (usecases *UsecasesWithCreds) NewOpenTimeUsecase() OpenTimeUsecase {
	return OpenTimeUsecase{
		enforceSecurity:    usecases.NewEnforceDirectorySecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.DbRepository,
		exportCache:        usecases.exportCache,
	}
}

func (usecases *UsecasesWithCreds) NewFacilityUsecase() FacilityUsecase {
	return FacilityUsecase{
		enforceSecurity:    usecases.NewEnforceFacilitySecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.DbRepository,
		loader:             usecases.newFacilityLoader(),
		exportCache:        usecases.exportCache,
		now:                usecases.Now,
	}
}

func (usecases *UsecasesWithCreds) NewAlertUsecase() AlertUsecase {
	return AlertUsecase{
		enforceSecurity:    usecases.NewEnforceDirectorySecurity(),
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.DbRepository,
		clock:              usecases.Repositories.Clock,
	}
}

func (usecases *UsecasesWithCreds) NewUserUsecase() UserUsecase {
	return UserUsecase{
		enforceSecurity: usecases.NewEnforceSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.DbRepository,
	}
}
