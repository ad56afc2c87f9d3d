package security

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequire(t *testing.T) {
	tests := []struct {
		name     string
		actor    Actor
		required []Role
		allowed  bool
	}{
		{"matching role", Actor{Roles: []Role{RoleGuardian}}, []Role{RoleGuardian}, true},
		{"one of many", Actor{Roles: []Role{RoleUnitAdmin}}, AnyStaff, true},
		{"missing role", Actor{Roles: []Role{RoleGuardian}}, []Role{RoleUnitAdmin}, false},
		{"no roles", Actor{}, []Role{RoleCouncilEmployee}, false},
		{"council admin overrides", Actor{Roles: []Role{RoleCouncilAdmin}}, []Role{RoleGuardian}, true},
		{"nothing required", Actor{}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Require(tt.actor, "op", tt.required...)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInsufficientPermission))
		})
	}
}

func TestParseRoles(t *testing.T) {
	got := ParseRoles([]string{"Guardian", "Bogus", "Unit.Admin"})
	assert.Equal(t, []Role{RoleGuardian, RoleUnitAdmin}, got)
}
