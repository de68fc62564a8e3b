package model

import "database/sql"

// Task represents a single item owned by exactly one user.
type Task struct {
	ID          int64          `db:"id"`
	UserID      int64          `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	IsDone      bool           `db:"is_done"`
}

// DescriptionText returns the description or empty string when unset.
func (t Task) DescriptionText() string {
	if t.Description.Valid {
		return t.Description.String
	}
	return ""
}
