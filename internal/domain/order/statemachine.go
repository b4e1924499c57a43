// internal/domain/order/statemachine.go
package order

import (
	"errors"
	"fmt"

	"github.com/your-org/distribuidora-backend/internal/domain/user"
)

// Transition failure kinds. Handlers map these to distinct HTTP statuses,
// so callers can tell "never allowed" from "not allowed for you" from
// "allowed once a precondition holds".
var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrRoleNotAllowed    = errors.New("role not allowed for this transition")
	ErrDelivererRequired = errors.New("a deliverer must be assigned before delivery")
)

// transitions maps each legal edge of the order lifecycle to the roles
// permitted to take it. Missing edges are illegal for everyone.
var transitions = map[Status]map[Status][]user.Role{
	StatusPending: {
		StatusPreparing: {user.RoleAdmin, user.RoleSalesperson},
		StatusRejected:  {user.RoleAdmin, user.RoleSalesperson},
	},
	StatusPreparing: {
		StatusInvoiced: {user.RoleAdmin, user.RoleSalesperson},
		StatusRejected: {user.RoleAdmin, user.RoleSalesperson},
	},
	StatusInvoiced: {
		StatusDelivered: {user.RoleAdmin, user.RoleSalesperson, user.RoleDeliverer},
		StatusRejected:  {user.RoleAdmin, user.RoleSalesperson},
	},
}

// CanTransition decides whether an actor with the given role may move an
// order from one status to another. hasDeliverer reports whether the order
// has a deliverer assigned; marking an order delivered requires one unless
// an admin performs the transition. Ownership checks (a deliverer may only
// touch orders assigned to them) are the caller's responsibility.
func CanTransition(from, to Status, role user.Role, hasDeliverer bool) error {
	if from.IsTerminal() {
		return fmt.Errorf("%w: %s is a terminal state", ErrIllegalTransition, from)
	}

	allowed, ok := transitions[from][to]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}

	roleOK := false
	for _, r := range allowed {
		if r == role {
			roleOK = true
			break
		}
	}
	if !roleOK {
		return fmt.Errorf("%w: %s cannot move an order from %s to %s", ErrRoleNotAllowed, role, from, to)
	}

	if from == StatusInvoiced && to == StatusDelivered {
		if !hasDeliverer && role != user.RoleAdmin {
			return ErrDelivererRequired
		}
	}

	return nil
}

// NextStatuses lists the statuses an actor with the given role could move
// the order to, used to drive action buttons in clients.
func NextStatuses(from Status, role user.Role, hasDeliverer bool) []Status {
	var out []Status
	for to := range transitions[from] {
		if CanTransition(from, to, role, hasDeliverer) == nil {
			out = append(out, to)
		}
	}
	return out
}
