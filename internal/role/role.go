// Package role maps between stored user roles, JWT role claims and the
// ordering the authorization middleware compares against.
package role

import (
	"math"

	"github.com/plateful/plateful/internal/database"
)

// Role values are ordered so a higher role satisfies a lower
// requirement.
type Role int

const (
	RoleUnknown Role = math.MinInt
	RoleUser    Role = 100
	RoleAdmin   Role = 200
)

var roleNames = map[Role]string{
	RoleAdmin: "admin",
	RoleUser:  "user",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

func DBToRole(role database.Role) Role {
	switch role {
	case database.RoleAdmin:
		return RoleAdmin
	case database.RoleUser:
		return RoleUser
	default:
		return RoleUnknown
	}
}

func ToRole(role string) Role {
	for r, name := range roleNames {
		if name == role {
			return r
		}
	}
	return RoleUnknown
}
