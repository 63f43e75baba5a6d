// Package authz implements the catalogue authorization engine for Libris Core.
//
// The entire policy is the pure function Decide: given an identity, an
// action, and (for targeted actions) the book record being acted on, it
// returns an allow/deny decision. It performs no I/O, holds no state, and
// is deterministic — identical inputs always yield identical decisions.
//
// The rules combine role membership with resource ownership:
//   - every recognised role may list and read
//   - admin and librarian may create; the creator becomes the owner
//   - admin may update and delete anything; a librarian only records they
//     own; a reader nothing
//   - a record with no owner is mutable only by admin
//   - an unrecognised role is denied every action (fail closed)
//
// Callers are expected to resolve resource existence before asking for a
// decision, so that "not found" is distinguishable from "forbidden".
package authz

import "github.com/dastas/libris-core/internal/auth"

// Action is an operation on the book catalogue.
type Action string

// The closed set of catalogue actions.
const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Identity is the authenticated actor requesting an action.
type Identity struct {
	UserID int64
	Role   auth.Role
}

// Resource carries the authorization-relevant attributes of the record
// being acted on. It is nil for List and Create — List has no single
// target and Create has no pre-existing resource.
type Resource struct {
	// OwnerID is the ID of the user who created the record, or nil for
	// records with no recorded owner.
	OwnerID *int64
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Stable denial reasons. These are decision metadata, not user-facing
// copy — the API layer maps them onto its own error responses.
const (
	ReasonUnknownRole = "unrecognised role"
	ReasonRoleDenied  = "role does not permit this action"
	ReasonNotOwner    = "not the owner of this record"
	ReasonNoOwner     = "record has no owner"
	ReasonNoTarget    = "no target resource supplied"
	ReasonUnknownVerb = "unrecognised action"
)

// Allow returns an allowing decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision with the given reason.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Decide evaluates whether identity may perform action on resource.
//
// It is total over its inputs: every (identity, action, resource) triple
// produces a decision, and anything outside the known role and action
// sets denies. Resource must be non-nil for Update and Delete and is
// ignored for List, Read, and Create.
func Decide(identity Identity, action Action, resource *Resource) Decision {
	if !auth.IsValidRole(identity.Role) {
		return Deny(ReasonUnknownRole)
	}

	switch action {
	case ActionList, ActionRead:
		// Any authenticated, recognised role may view the catalogue.
		return Allow()

	case ActionCreate:
		if identity.Role == auth.RoleAdmin || identity.Role == auth.RoleLibrarian {
			return Allow()
		}
		return Deny(ReasonRoleDenied)

	case ActionUpdate, ActionDelete:
		return decideMutation(identity, resource)

	default:
		return Deny(ReasonUnknownVerb)
	}
}

// decideMutation applies the ownership rules shared by Update and Delete.
func decideMutation(identity Identity, resource *Resource) Decision {
	switch identity.Role {
	case auth.RoleAdmin:
		return Allow()

	case auth.RoleLibrarian:
		if resource == nil {
			return Deny(ReasonNoTarget)
		}
		if resource.OwnerID == nil {
			// No librarian owns an ownerless record.
			return Deny(ReasonNoOwner)
		}
		if *resource.OwnerID == identity.UserID {
			return Allow()
		}
		return Deny(ReasonNotOwner)

	default: // reader
		return Deny(ReasonRoleDenied)
	}
}
