package model

// User stores a registered person identified by their Telegram id.
// Login is a user-chosen unique handle, distinct from the display name.
type User struct {
	ID         int64  `db:"id"`
	TelegramID int64  `db:"telegram_id"`
	Username   string `db:"username"`
	Login      string `db:"login"`
}
