package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserRole(t *testing.T) {
	tests := []struct {
		in      string
		want    UserRole
		isStaff bool
	}{
		{"admin", RoleAdmin, true},
		{"moderator", RoleModerator, true},
		{"user", RoleUser, false},
		{"root", RoleUser, false},
		{"", RoleUser, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseUserRole(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.isStaff, got.IsStaff())
		})
	}
}
