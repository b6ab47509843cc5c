package repositories

import (
	"database/sql"

	"github.com/srct/whats-open/repositories/clock"
)

type options struct {
	clock clock.Clock
}

type Option func(*options)

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

type Repositories struct {
	ExecutorGetter ExecutorGetter
	DbRepository   *DbRepository
	JwtRepository  *JwtRepository
	CasRepository  *CasRepository
	Clock          clock.Clock
}

func NewRepositories(
	db *sql.DB,
	jwtRepository *JwtRepository,
	casRepository *CasRepository,
	opts ...Option,
) Repositories {
	o := options{clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}

	return Repositories{
		ExecutorGetter: NewExecutorGetter(db),
		DbRepository:   NewDbRepository(),
		JwtRepository:  jwtRepository,
		CasRepository:  casRepository,
		Clock:          o.clock,
	}
}
