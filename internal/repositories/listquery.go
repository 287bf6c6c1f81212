package repositories

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"maintenance-system/pkg/types"
)

// applyListParams накладывает фильтры, сортировку и пагинацию на запрос.
// allowedMap ограничивает, какие поля из query string можно использовать
// и на какие колонки они отображаются.
func applyListParams(builder sq.SelectBuilder, filter types.Filter, allowedMap map[string]string) sq.SelectBuilder {
	for jsonField, val := range filter.Filter {
		dbCol, ok := allowedMap[jsonField]
		if !ok {
			continue
		}

		if s, ok := val.(string); ok && strings.Contains(s, ",") {
			builder = builder.Where(sq.Eq{dbCol: strings.Split(s, ",")})
		} else {
			builder = builder.Where(sq.Eq{dbCol: val})
		}
	}

	for jsonField, dir := range filter.Sort {
		dbCol, ok := allowedMap[jsonField]
		if !ok {
			continue
		}
		sqlDir := "ASC"
		if strings.ToLower(dir) == "desc" {
			sqlDir = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", dbCol, sqlDir))
	}

	if filter.WithPagination {
		if filter.Limit > 0 {
			builder = builder.Limit(uint64(filter.Limit))
		}
		if filter.Offset > 0 {
			builder = builder.Offset(uint64(filter.Offset))
		}
	}

	return builder
}

// applySearch добавляет ILIKE-поиск по перечисленным колонкам.
func applySearch(builder sq.SelectBuilder, search string, columns []string) sq.SelectBuilder {
	if search == "" || len(columns) == 0 {
		return builder
	}
	var conditions []sq.Sqlizer
	pattern := fmt.Sprintf("%%%s%%", search)
	for _, col := range columns {
		conditions = append(conditions, sq.Expr(fmt.Sprintf("%s ILIKE ?", col), pattern))
	}
	return builder.Where(sq.Or(conditions))
}
