package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type dbThing struct {
	Id      int64  `db:"id"`
	Name    string `db:"name"`
	Ignored string
	Skipped string `db:"-"`
}

type dbThingWithCount struct {
	dbThing
	Count int `db:"count"`
}

func TestColumnList(t *testing.T) {
	assert.Equal(t, []string{"id", "name"}, ColumnList[dbThing]())
	assert.Equal(t, []string{"t.id", "t.name"}, ColumnList[dbThing]("t"))
	assert.Equal(t, []string{"id", "name", "count"}, ColumnList[dbThingWithCount]())
}
