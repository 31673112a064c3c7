package postgres

import "langportal/internal/repository"

// orderClause resolves a Sort through an allow-list of column
// identifiers. Unknown sort keys fall back to the default column and
// anything but "desc" orders ascending, so no request input can ever
// reach the generated SQL.
func orderClause(columns map[string]string, sort repository.Sort, defaultColumn string) string {
	column, ok := columns[sort.By]
	if !ok {
		column = defaultColumn
	}

	direction := "ASC"
	if sort.Order == "desc" {
		direction = "DESC"
	}

	return column + " " + direction
}
