package models

import "time"

// Post is a single published message. Author references a username by
// value; the posts table carries no foreign key.
type Post struct {
	Author        string    `json:"author"`
	PostContent   string    `json:"postContent"`
	PostTimestamp time.Time `json:"postTimestamp"`
}
