package models

// User represents a registered player.
// It maps to the `users` table in SQLite. The UUID is immutable once
// assigned; username and password hash may change, but only via the owner.
type User struct {
	UUID         string `db:"uuid" json:"uuid"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
}
