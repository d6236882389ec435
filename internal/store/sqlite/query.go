package sqlite

import (
	"fmt"
	"strings"

	"marketplace/internal/domain"
)

const productColumns = "id, title, price, description, category, image, rating_rate, rating_count"

// sortColumns maps sort keys to columns. Only these strings ever reach ORDER BY.
var sortColumns = map[domain.SortKey]string{
	domain.SortByName:   "title",
	domain.SortByPrice:  "price",
	domain.SortByRating: "rating_rate",
}

// BuildProductQuery returns the SELECT statement and positional arguments
// for filter. The search text is always the first argument, followed by the
// categories in filter order.
func BuildProductQuery(filter domain.ProductFilter) (string, []any, error) {
	var b strings.Builder
	b.WriteString("SELECT " + productColumns + " FROM products WHERE title LIKE '%' || ? || '%'")
	args := []any{filter.Query}

	if len(filter.Categories) > 0 {
		b.WriteString(" AND category IN (")
		for i, c := range filter.Categories {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("?")
			args = append(args, c)
		}
		b.WriteString(")")
	}

	if filter.Sort != nil {
		col, ok := sortColumns[filter.Sort.Key]
		if !ok {
			return "", nil, fmt.Errorf("unknown sort key %q", filter.Sort.Key)
		}
		dir := "DESC"
		if filter.Sort.Ascending {
			dir = "ASC"
		}
		b.WriteString(" ORDER BY " + col + " " + dir)
	}
	return b.String(), args, nil
}
