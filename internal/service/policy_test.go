package service

import (
	"StockKeeper/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	const owner, stranger, admin = int64(1), int64(2), int64(3)

	tests := []struct {
		name    string
		actorID int64
		role    model.Role
		op      Operation
		want    bool
	}{
		{"staff can create", stranger, model.RoleStaff, OpCreate, true},
		{"admin can create", admin, model.RoleAdmin, OpCreate, true},
		{"unknown role cannot create", stranger, model.Role("guest"), OpCreate, false},

		{"any authenticated role can read", stranger, model.RoleStaff, OpRead, true},
		{"unknown role cannot read", stranger, model.Role(""), OpRead, false},

		{"owner can update", owner, model.RoleStaff, OpUpdate, true},
		{"non-owner staff cannot update", stranger, model.RoleStaff, OpUpdate, false},
		{"admin can update regardless of ownership", admin, model.RoleAdmin, OpUpdate, true},

		{"owner can delete", owner, model.RoleStaff, OpDelete, true},
		{"non-owner staff cannot delete", stranger, model.RoleStaff, OpDelete, false},
		{"admin can delete regardless of ownership", admin, model.RoleAdmin, OpDelete, true},

		{"unknown operation is denied", admin, model.RoleAdmin, Operation("purge"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutate(tt.actorID, tt.role, owner, tt.op))
		})
	}
}
