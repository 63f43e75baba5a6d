package authz

import (
	"testing"

	"github.com/dastas/libris-core/internal/auth"
)

func ownerRef(id int64) *Resource {
	return &Resource{OwnerID: &id}
}

func TestDecide_ReaderPermissions(t *testing.T) {
	reader := Identity{UserID: 7, Role: auth.RoleReader}
	target := ownerRef(3)

	if d := Decide(reader, ActionList, nil); !d.Allowed {
		t.Errorf("reader list: denied (%s), want allowed", d.Reason)
	}
	if d := Decide(reader, ActionRead, target); !d.Allowed {
		t.Errorf("reader read: denied (%s), want allowed", d.Reason)
	}

	for _, action := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		d := Decide(reader, action, target)
		if d.Allowed {
			t.Errorf("reader %s: allowed, want denied", action)
		}
		if d.Reason == "" {
			t.Errorf("reader %s: denial should carry a reason", action)
		}
	}
}

func TestDecide_LibrarianOwnership(t *testing.T) {
	librarian := Identity{UserID: 7, Role: auth.RoleLibrarian}

	if d := Decide(librarian, ActionCreate, nil); !d.Allowed {
		t.Errorf("librarian create: denied (%s), want allowed", d.Reason)
	}

	// Own record: update and delete allowed
	own := ownerRef(7)
	if d := Decide(librarian, ActionUpdate, own); !d.Allowed {
		t.Errorf("librarian update own: denied (%s), want allowed", d.Reason)
	}
	if d := Decide(librarian, ActionDelete, own); !d.Allowed {
		t.Errorf("librarian delete own: denied (%s), want allowed", d.Reason)
	}

	// Someone else's record: denied with the ownership reason
	other := ownerRef(8)
	for _, action := range []Action{ActionUpdate, ActionDelete} {
		d := Decide(librarian, action, other)
		if d.Allowed {
			t.Errorf("librarian %s other's record: allowed, want denied", action)
		}
		if d.Reason != ReasonNotOwner {
			t.Errorf("librarian %s reason = %q, want %q", action, d.Reason, ReasonNotOwner)
		}
	}

	// Reads are never ownership-gated
	if d := Decide(librarian, ActionRead, other); !d.Allowed {
		t.Errorf("librarian read other's record: denied (%s), want allowed", d.Reason)
	}
}

func TestDecide_AdminAlwaysAllowed(t *testing.T) {
	admin := Identity{UserID: 1, Role: auth.RoleAdmin}
	other := ownerRef(99)

	for _, action := range []Action{ActionList, ActionRead, ActionCreate, ActionUpdate, ActionDelete} {
		if d := Decide(admin, action, other); !d.Allowed {
			t.Errorf("admin %s: denied (%s), want allowed", action, d.Reason)
		}
	}
}

func TestDecide_UnknownRoleFailsClosed(t *testing.T) {
	for _, role := range []auth.Role{"", "superuser", "Admin", "ADMIN"} {
		identity := Identity{UserID: 1, Role: role}
		for _, action := range []Action{ActionList, ActionRead, ActionCreate, ActionUpdate, ActionDelete} {
			d := Decide(identity, action, ownerRef(1))
			if d.Allowed {
				t.Errorf("role %q %s: allowed, want denied", role, action)
			}
			if d.Reason != ReasonUnknownRole {
				t.Errorf("role %q %s reason = %q, want %q", role, action, d.Reason, ReasonUnknownRole)
			}
		}
	}
}

func TestDecide_UnknownActionFailsClosed(t *testing.T) {
	admin := Identity{UserID: 1, Role: auth.RoleAdmin}

	d := Decide(admin, Action("publish"), ownerRef(1))
	if d.Allowed {
		t.Error("unknown action should be denied even for admin")
	}
	if d.Reason != ReasonUnknownVerb {
		t.Errorf("reason = %q, want %q", d.Reason, ReasonUnknownVerb)
	}
}

func TestDecide_OwnerlessRecord(t *testing.T) {
	// A record whose owner account was deleted is admin-only for mutation.
	orphan := &Resource{OwnerID: nil}

	librarian := Identity{UserID: 7, Role: auth.RoleLibrarian}
	d := Decide(librarian, ActionUpdate, orphan)
	if d.Allowed {
		t.Error("librarian update of ownerless record: allowed, want denied")
	}
	if d.Reason != ReasonNoOwner {
		t.Errorf("reason = %q, want %q", d.Reason, ReasonNoOwner)
	}

	admin := Identity{UserID: 1, Role: auth.RoleAdmin}
	if d := Decide(admin, ActionDelete, orphan); !d.Allowed {
		t.Errorf("admin delete of ownerless record: denied (%s), want allowed", d.Reason)
	}
}

func TestDecide_MissingTarget(t *testing.T) {
	librarian := Identity{UserID: 7, Role: auth.RoleLibrarian}

	d := Decide(librarian, ActionUpdate, nil)
	if d.Allowed {
		t.Error("mutation without a target resource should be denied")
	}
	if d.Reason != ReasonNoTarget {
		t.Errorf("reason = %q, want %q", d.Reason, ReasonNoTarget)
	}
}

func TestDecide_Deterministic(t *testing.T) {
	// Same inputs, same decision - the engine holds no state.
	identity := Identity{UserID: 7, Role: auth.RoleLibrarian}
	target := ownerRef(8)

	first := Decide(identity, ActionUpdate, target)
	for i := 0; i < 100; i++ {
		if got := Decide(identity, ActionUpdate, target); got != first {
			t.Fatalf("decision changed between calls: %+v vs %+v", first, got)
		}
	}
}
