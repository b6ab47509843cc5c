package models

// Tag is a product tag attached to facilities. Tags are only used for search.
type Tag struct {
	Id   int64
	Name string
	Slug string
}
