package repositories

// DbRepository holds every query against the whats-open MySQL database.
// Methods take the executor explicitly, so they can run inside or outside a transaction.
type DbRepository struct{}

func NewDbRepository() *DbRepository {
	return &DbRepository{}
}
