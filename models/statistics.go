package models

// Statistics holds per-user counters. A row is created lazily with zero
// values the first time a user's statistics are read.
type Statistics struct {
	UserUUID string `db:"user_uuid" json:"user_uuid"`
	XP       int64  `db:"xp" json:"xp"`
	Wins     int64  `db:"wins" json:"wins"`
	Losses   int64  `db:"losses" json:"losses"`
}
