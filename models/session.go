package models

// Session is a live authentication grant binding one user to one bearer
// token. The sessions table keys on user_uuid, so a user holds at most one
// session at any time; creating a new one replaces the token in place.
//
// CreatedAt is recorded but never checked against a TTL: a session lives
// until it is deleted or replaced.
type Session struct {
	UserUUID  string `db:"user_uuid" json:"user_uuid"`
	Token     string `db:"token" json:"token"`
	CreatedAt string `db:"created_at" json:"created_at"`
}
