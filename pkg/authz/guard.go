package authz

import (
	"github.com/SARVESHYOGI/store-rating-system/entity"
)

// Identity is the authenticated principal resolved from a token.
type Identity struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

// Action is a closed set of guarded operations.
type Action int

const (
	ManageUsers Action = iota + 1 // create/update/delete any user
	ViewUsers                     // list users / user detail
	ManageStores                  // create/delete any store
	UpdateStore                   // update one store
	ViewStores                    // store list/detail
	SubmitRating                  // create/replace a rating on one store
	DeleteRating                  // delete one rating
	ViewUserRatings               // list one user's ratings
	ViewAdminDashboard
	ViewOwnerDashboard
)

// Resource carries the loaded record an action targets, when the rule
// depends on it.
type Resource struct {
	Store  *entity.Store
	Rating *entity.Rating
	UserID uint // subject user for ViewUserRatings
}

type Decision struct {
	Allowed bool
	Reason  string // set on deny, suitable for a 403 body
}

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason string) Decision { return Decision{Reason: reason} }

// Authorize decides whether ident may perform action on res. It never
// mutates state; callers load resources first and translate a deny
// into a 403.
func Authorize(ident Identity, action Action, res *Resource) Decision {
	switch action {
	case ManageUsers, ViewUsers:
		if ident.Role == entity.RoleAdmin {
			return allow()
		}
		return deny("access denied, admin privileges required")

	case ManageStores:
		if ident.Role == entity.RoleAdmin {
			return allow()
		}
		return deny("access denied, admin privileges required")

	case UpdateStore:
		if ident.Role == entity.RoleAdmin {
			return allow()
		}
		if res != nil && res.Store != nil && res.Store.UserID == ident.ID {
			return allow()
		}
		return deny("not authorized to update this store")

	case ViewStores:
		// any authenticated identity
		return allow()

	case SubmitRating:
		if res != nil && res.Store != nil && res.Store.UserID == ident.ID {
			return deny("you cannot rate your own store")
		}
		return allow()

	case DeleteRating:
		if ident.Role == entity.RoleAdmin {
			return allow()
		}
		if res != nil && res.Rating != nil && res.Rating.UserID == ident.ID {
			return allow()
		}
		return deny("not authorized to delete this rating")

	case ViewUserRatings:
		if ident.Role == entity.RoleAdmin {
			return allow()
		}
		if res != nil && res.UserID == ident.ID {
			return allow()
		}
		return deny("not authorized to view these ratings")

	case ViewAdminDashboard:
		if ident.Role == entity.RoleAdmin {
			return allow()
		}
		return deny("access denied, admin privileges required")

	case ViewOwnerDashboard:
		switch ident.Role {
		case entity.RoleAdmin, entity.RoleStoreOwner:
			return allow()
		case entity.RoleUser:
			return deny("access denied, store owner privileges required")
		}
		return deny("access denied, store owner privileges required")
	}

	return deny("unknown action")
}
