package dbmodels

import (
	"time"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/utils"
)

type DBCategory struct {
	Id        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const TABLE_CATEGORIES = "categories"

var SelectCategoryColumn = utils.ColumnList[DBCategory]()

func AdaptCategory(db DBCategory) (models.Category, error) {
	return models.Category{
		Id:        db.Id,
		Name:      db.Name,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}, nil
}
