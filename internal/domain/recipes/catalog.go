package recipes

import (
	"strconv"
	"strings"
)

// CatalogFilter is the raw public listing query. Values come straight from
// the URL and are never rejected.
type CatalogFilter struct {
	Category     string
	Search       string
	MaxTotalTime string
}

// CatalogQuery is the normalized form consumed by a Repository. Zero values
// mean "no narrowing".
type CatalogQuery struct {
	Status       Status
	Category     Category
	Search       string
	MaxTotalTime int
}

func BuildCatalogQuery(filter CatalogFilter) CatalogQuery {
	query := CatalogQuery{Status: StatusApproved}

	if category, ok := ParseCategory(filter.Category); ok {
		query.Category = category
	}

	query.Search = strings.TrimSpace(filter.Search)

	if minutes, err := strconv.Atoi(strings.TrimSpace(filter.MaxTotalTime)); err == nil && minutes > 0 {
		query.MaxTotalTime = minutes
	}

	return query
}

// SearchPattern returns a LIKE pattern for Search with wildcards escaped
// using a backslash. Case is kept so the store lowers both sides of the
// comparison with the same function.
func (q CatalogQuery) SearchPattern() string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(q.Search) + "%"
}
