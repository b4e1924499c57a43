package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/distribuidora-backend/internal/domain/user"
)

func TestCanTransitionLegalEdges(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		role user.Role
	}{
		{"salesperson confirms pending", StatusPending, StatusPreparing, user.RoleSalesperson},
		{"admin confirms pending", StatusPending, StatusPreparing, user.RoleAdmin},
		{"salesperson rejects pending", StatusPending, StatusRejected, user.RoleSalesperson},
		{"salesperson invoices", StatusPreparing, StatusInvoiced, user.RoleSalesperson},
		{"admin rejects in preparation", StatusPreparing, StatusRejected, user.RoleAdmin},
		{"admin rejects invoiced", StatusInvoiced, StatusRejected, user.RoleAdmin},
		{"salesperson rejects invoiced", StatusInvoiced, StatusRejected, user.RoleSalesperson},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, CanTransition(tt.from, tt.to, tt.role, false))
		})
	}
}

func TestCanTransitionIllegalEdges(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
	}{
		{"skip preparation", StatusPending, StatusInvoiced},
		{"skip invoicing", StatusPreparing, StatusDelivered},
		{"pending straight to delivered", StatusPending, StatusDelivered},
		{"backwards to pending", StatusPreparing, StatusPending},
		{"backwards from invoiced", StatusInvoiced, StatusPreparing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to, user.RoleAdmin, true)
			assert.ErrorIs(t, err, ErrIllegalTransition)
		})
	}
}

func TestCanTransitionTerminalStates(t *testing.T) {
	for _, from := range []Status{StatusDelivered, StatusRejected} {
		for _, to := range []Status{StatusPending, StatusPreparing, StatusInvoiced, StatusDelivered, StatusRejected} {
			err := CanTransition(from, to, user.RoleAdmin, true)
			assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", from, to)
		}
	}
}

func TestCanTransitionRoleGating(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		role user.Role
	}{
		{"client cannot confirm", StatusPending, StatusPreparing, user.RoleClient},
		{"deliverer cannot confirm", StatusPending, StatusPreparing, user.RoleDeliverer},
		{"client cannot reject pending", StatusPending, StatusRejected, user.RoleClient},
		{"client cannot invoice", StatusPreparing, StatusInvoiced, user.RoleClient},
		{"client cannot reject after confirmation", StatusPreparing, StatusRejected, user.RoleClient},
		{"deliverer cannot reject invoiced", StatusInvoiced, StatusRejected, user.RoleDeliverer},
		{"client cannot deliver", StatusInvoiced, StatusDelivered, user.RoleClient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to, tt.role, true)
			assert.ErrorIs(t, err, ErrRoleNotAllowed)
		})
	}
}

func TestCanTransitionDelivererGate(t *testing.T) {
	// Deliverer and salesperson need the assignment in place
	err := CanTransition(StatusInvoiced, StatusDelivered, user.RoleDeliverer, false)
	assert.ErrorIs(t, err, ErrDelivererRequired)
	err = CanTransition(StatusInvoiced, StatusDelivered, user.RoleSalesperson, false)
	assert.ErrorIs(t, err, ErrDelivererRequired)

	assert.NoError(t, CanTransition(StatusInvoiced, StatusDelivered, user.RoleDeliverer, true))
	assert.NoError(t, CanTransition(StatusInvoiced, StatusDelivered, user.RoleSalesperson, true))

	// Admin can mark delivered even without an assignment
	assert.NoError(t, CanTransition(StatusInvoiced, StatusDelivered, user.RoleAdmin, false))
}

func TestNextStatuses(t *testing.T) {
	next := NextStatuses(StatusPending, user.RoleSalesperson, false)
	assert.ElementsMatch(t, []Status{StatusPreparing, StatusRejected}, next)

	next = NextStatuses(StatusInvoiced, user.RoleSalesperson, true)
	assert.ElementsMatch(t, []Status{StatusDelivered, StatusRejected}, next)

	assert.Empty(t, NextStatuses(StatusPending, user.RoleClient, false))

	assert.Empty(t, NextStatuses(StatusDelivered, user.RoleAdmin, true))
	assert.Empty(t, NextStatuses(StatusInvoiced, user.RoleClient, true))
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusPreparing, StatusInvoiced, StatusDelivered, StatusRejected} {
		assert.True(t, s.Valid(), "%s", s)
	}
	assert.False(t, Status("ENVIADO").Valid())
	assert.False(t, Status("").Valid())
}
