package models

// FollowEdge is a directed follow relationship: Username's home
// timeline includes posts authored by FollowerUsername. Column naming
// follows the persisted schema. Duplicate edges are possible; the
// table enforces no uniqueness.
type FollowEdge struct {
	Username         string `json:"username"`
	FollowerUsername string `json:"followerUsername"`
}
