package api

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
)

// User is the account returned by the verify endpoint.
type User struct {
	// Wwuid is the identifying field; a user without it is not logged in.
	Wwuid string `json:"wwuid"`
	// Username is the account name.
	Username string `json:"username"`
	// FullName is the display name.
	FullName string `json:"full_name"`
	// Photo is the profile photo path.
	Photo string `json:"photo"`
	// Status is the account status.
	Status string `json:"status"`
	// Roles lists the roles granted to the user.
	Roles []string `json:"roles"`
	// Raw is the object the user was built from.
	Raw json.RawMessage `json:"-"`
}

// NewUser builds a User from a server-returned JSON object.
// It returns nil when raw is not an object.
func NewUser(raw gjson.Result) *User {
	if !raw.IsObject() {
		return nil
	}

	return &User{
		Wwuid:    raw.Get("wwuid").String(),
		Username: raw.Get("username").String(),
		FullName: raw.Get("full_name").String(),
		Photo:    raw.Get("photo").String(),
		Status:   raw.Get("status").String(),
		Roles:    parseRoles(raw.Get("roles")),
		Raw:      json.RawMessage(raw.Raw),
	}
}

// IsIdentified reports whether the user carries a non-empty wwuid.
func (u *User) IsIdentified() bool {
	return u != nil && u.Wwuid != ""
}

// HasRole reports whether the user was granted role.
func (u *User) HasRole(role string) bool {
	return u != nil && slices.Contains(u.Roles, role)
}

// parseRoles accepts either a JSON array or a comma-separated string.
func parseRoles(raw gjson.Result) []string {
	var candidates []string

	switch {
	case raw.IsArray():
		for _, item := range raw.Array() {
			candidates = append(candidates, item.String())
		}
	case raw.Type == gjson.String:
		candidates = strings.Split(raw.Str, ",")
	default:
		return nil
	}

	roles := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		if role := strings.TrimSpace(candidate); role != "" {
			roles = append(roles, role)
		}
	}

	return roles
}
