package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adanyl0v/go-todo-catalog/internal/models"
)

const (
	DefaultListLimit  int64 = 10
	DefaultListOffset int64 = 0
)

type SortField string

const (
	SortByID           SortField = "id"
	SortByTitle        SortField = "title"
	SortByCompleted    SortField = "completed"
	SortByUserID       SortField = "user_id"
	SortByCategoryID   SortField = "category_id"
	SortByUsername     SortField = "username"
	SortByCategoryName SortField = "category_name"
)

const DefaultSortField = SortByID

// todoSortColumns is the allow-list of sort fields. The values are the only
// strings ever written into the ORDER BY clause.
var todoSortColumns = map[SortField]string{
	SortByID:           "todos.id",
	SortByTitle:        "todos.title",
	SortByCompleted:    "todos.completed",
	SortByUserID:       "todos.user_id",
	SortByCategoryID:   "todos.category_id",
	SortByUsername:     "users.username",
	SortByCategoryName: "categories.name",
}

type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

const DefaultSortOrder = SortAsc

func (o SortOrder) valid() bool {
	return o == SortAsc || o == SortDesc
}

const selectTodosQuery = `
SELECT todos.id,
       todos.title,
       todos.completed,
       todos.user_id,
       todos.category_id,
       users.username,
       categories.name AS category_name
FROM todos
LEFT JOIN users ON todos.user_id = users.id
LEFT JOIN categories ON todos.category_id = categories.id
`

// buildListTodosQuery validates the params and renders the list statement.
// Keyword, limit and offset are bound as $1..$3.
func buildListTodosQuery(params ListTodosParams) (string, []any, error) {
	column, ok := todoSortColumns[params.SortField]
	if !ok {
		return "", nil, fmt.Errorf("%w: sort field %q is not allowed", ErrInvalidQuery, params.SortField)
	}
	if !params.SortOrder.valid() {
		return "", nil, fmt.Errorf("%w: sort order %q is not allowed", ErrInvalidQuery, params.SortOrder)
	}
	if params.Limit <= 0 {
		return "", nil, fmt.Errorf("%w: limit must be positive", ErrInvalidQuery)
	}
	if params.Offset < 0 {
		return "", nil, fmt.Errorf("%w: offset must not be negative", ErrInvalidQuery)
	}

	var b strings.Builder
	b.WriteString(selectTodosQuery)
	b.WriteString("WHERE todos.title ILIKE $1\n")
	b.WriteString("ORDER BY ")
	b.WriteString(column)
	b.WriteString(" ")
	b.WriteString(string(params.SortOrder))
	b.WriteString("\nLIMIT $2 OFFSET $3\n")

	args := []any{likeSubstring(params.Keyword), params.Limit, params.Offset}
	return b.String(), args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeSubstring turns s into a LIKE pattern matching s literally anywhere.
func likeSubstring(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

type column struct {
	name  string
	value any
}

func appendColumn[T any](cols []column, name string, field models.Optional[T]) []column {
	if !field.Set {
		return cols
	}
	return append(cols, column{name: name, value: field.Arg()})
}

// buildInsertQuery renders an insert of exactly cols into table. With no
// columns the row gets the schema defaults.
func buildInsertQuery(table string, cols []column) (string, []any) {
	if len(cols) == 0 {
		return "INSERT INTO " + table + " DEFAULT VALUES RETURNING id", nil
	}

	names := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		names[i] = col.name
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = col.value
	}

	query := "INSERT INTO " + table +
		" (" + strings.Join(names, ", ") + ")" +
		" VALUES (" + strings.Join(placeholders, ", ") + ")" +
		" RETURNING id"
	return query, args
}

// buildUpdateQuery renders an update of cols on the row with the given id.
// It returns ErrNoFieldsToUpdate when cols is empty.
func buildUpdateQuery(table string, id int64, cols []column) (string, []any, error) {
	if len(cols) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		sets[i] = col.name + " = $" + strconv.Itoa(i+1)
		args = append(args, col.value)
	}
	args = append(args, id)

	query := "UPDATE " + table +
		" SET " + strings.Join(sets, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args))
	return query, args, nil
}
