package dbmodels

import (
	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/utils"
)

type DBTag struct {
	Id   int64  `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

const TABLE_TAGS = "tags"

var SelectTagColumn = utils.ColumnList[DBTag]()

func AdaptTag(db DBTag) (models.Tag, error) {
	return models.Tag{
		Id:   db.Id,
		Name: db.Name,
		Slug: db.Slug,
	}, nil
}
