package db

import (
	"fmt"
	"strings"
)

// Update collects the columns of a partial update. Only fields that were
// supplied are written; updated_at is always refreshed.
type Update struct {
	sets []string
	args []interface{}
}

func NewUpdate() *Update {
	return &Update{}
}

func (u *Update) Set(column string, value interface{}) *Update {
	u.args = append(u.args, value)
	u.sets = append(u.sets, fmt.Sprintf("%s = $%d", column, len(u.args)))
	return u
}

// SetIfNotNil adds column only when v is non-nil.
func SetIfNotNil[T any](u *Update, column string, v *T) {
	if v != nil {
		u.Set(column, *v)
	}
}

func (u *Update) Empty() bool {
	return len(u.sets) == 0
}

// Build renders "UPDATE table SET ... WHERE id = $n RETURNING returning".
func (u *Update) Build(table string, id int, returning string) (string, []interface{}) {
	sets := append(append([]string{}, u.sets...), "updated_at = NOW()")
	args := append(append([]interface{}{}, u.args...), id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(sets, ", "), len(args), returning,
	)
	return query, args
}
