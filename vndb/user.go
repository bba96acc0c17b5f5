package vndb

import "github.com/samber/lo"

// User is a record returned by the user endpoint.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	LengthVotes    *int   `json:"lengthvotes,omitempty" jsonschema:"description=Number of play time votes submitted."`
	LengthVotesSum *int   `json:"lengthvotes_sum,omitempty" jsonschema:"description=Sum of play time votes in minutes."`
}

// UserSearch maps each requested name or id to the matching user.
// Unknown users map to nil.
type UserSearch map[string]*User

// Permission is an access right granted to an API token.
type Permission string

const (
	PermissionListRead  Permission = "listread"
	PermissionListWrite Permission = "listwrite"
)

// AuthInfo describes the user an API token belongs to.
type AuthInfo struct {
	ID          string       `json:"id"`
	Username    string       `json:"username"`
	Permissions []Permission `json:"permissions"`
}

// Can reports whether the token was granted p.
func (a AuthInfo) Can(p Permission) bool {
	return lo.Contains(a.Permissions, p)
}

// Stats holds the number of entries in the database.
type Stats struct {
	Chars     int `json:"chars"`
	Producers int `json:"producers"`
	Releases  int `json:"releases"`
	Staff     int `json:"staff"`
	Tags      int `json:"tags"`
	Traits    int `json:"traits"`
	VN        int `json:"vn"`
}
