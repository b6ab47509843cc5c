package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/hashicorp/go-set/v2"

	"github.com/srct/whats-open/models"
	"github.com/srct/whats-open/repositories/dbmodels"
)

// tags.slug is VARCHAR(100); keep room for a "_<n>" suffix
const maxTagSlugBase = 90

// ListTags returns the tags with the given names, or every tag when no name is given.
func (repo *DbRepository) ListTags(ctx context.Context, exec Executor, names ...string) ([]models.Tag, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectTagColumn...).
		From(dbmodels.TABLE_TAGS).
		OrderBy("name")
	if len(names) > 0 {
		query = query.Where(squirrel.Eq{"name": names})
	}
	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptTag)
}

func (repo *DbRepository) ListTagSlugsLike(ctx context.Context, exec Executor, base string) ([]string, error) {
	query := NewQueryBuilder().
		Select("slug").
		From(dbmodels.TABLE_TAGS).
		Where(squirrel.Or{
			squirrel.Eq{"slug": base},
			squirrel.Expr("slug LIKE ?", likeEscaper.Replace(base+"_")+"%"),
		})
	return SqlToListOfRow(ctx, exec, query, func(row RowScanner) (string, error) {
		var slug string
		err := row.Scan(&slug)
		return slug, err
	})
}

// EnsureTags inserts the tags that do not exist yet, matched on name. A new tag whose slug
// is already used gets the first free "_<n>" suffix.
func (repo *DbRepository) EnsureTags(ctx context.Context, exec Executor, tags []models.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	existing, err := repo.ListTags(ctx, exec, names...)
	if err != nil {
		return err
	}
	known := set.New[string](len(existing))
	for _, tag := range existing {
		known.Insert(strings.ToLower(tag.Name))
	}

	assigned := set.New[string](len(tags))
	insert := NewQueryBuilder().
		Insert(dbmodels.TABLE_TAGS).
		Columns("name", "slug").
		Suffix("ON DUPLICATE KEY UPDATE id = id")
	missing := 0
	for _, tag := range tags {
		if known.Contains(strings.ToLower(tag.Name)) {
			continue
		}
		base := tagSlugBase(tag.Slug)
		taken, err := repo.ListTagSlugsLike(ctx, exec, base)
		if err != nil {
			return err
		}
		slug := nextFreeTagSlug(base, set.From(taken).Union(assigned))
		assigned.Insert(slug)
		insert = insert.Values(tag.Name, slug)
		missing++
	}
	if missing == 0 {
		return nil
	}
	return ExecBuilder(ctx, exec, insert)
}

func tagSlugBase(slug string) string {
	if slug == "" {
		return "tag"
	}
	if len(slug) > maxTagSlugBase {
		slug = strings.TrimRight(slug[:maxTagSlugBase], "-")
	}
	return slug
}

func nextFreeTagSlug(base string, taken set.Collection[string]) string {
	if !taken.Contains(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if !taken.Contains(candidate) {
			return candidate
		}
	}
}
