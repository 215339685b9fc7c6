package models

import (
	"fmt"
	"strings"
	"time"
)

// User is an API operator allowed to dispatch alerts and manage profiles.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Role decides which alert routes a token may use.
type Role string

const (
	// RoleViewer reads limits, classifications, profiles and the alert history.
	RoleViewer Role = "viewer"
	// RoleOperator additionally dispatches alerts and registers profiles.
	RoleOperator Role = "operator"
)

var roleRank = map[Role]int{RoleViewer: 1, RoleOperator: 2}

func (r Role) Valid() bool { _, ok := roleRank[r]; return ok }

// Allows reports whether r grants everything required grants.
func (r Role) Allows(required Role) bool {
	have, ok := roleRank[r]
	return ok && have >= roleRank[required]
}

// ParseRole accepts "viewer" or "operator" in any case; empty means viewer.
func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RoleViewer, nil
	}
	if r := Role(s); r.Valid() {
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
