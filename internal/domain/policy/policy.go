// Package policy implements the authorization decision component: a pure
// mapping from (actor, action, resource owner) to an allow/deny decision.
// It holds no state and touches no repository; callers resolve the resource
// owner before asking.
package policy

import "github.com/google/uuid"

// Deny reasons surfaced to callers. They match the error taxonomy the
// services translate decisions into.
const (
	ReasonUnauthorizedAction = "unauthorized action"
	ReasonAdminRequired      = "admin privileges required"
	ReasonRestrictedField    = "cannot modify restricted field"
)

// Actor is the identity attached to an inbound request, decoded from the
// access token's claims by the delivery layer.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

// Action identifies the kind of mutation being attempted.
type Action string

const (
	ActionMutatePlace   Action = "place:mutate"
	ActionMutateReview  Action = "review:mutate"
	ActionMutateAmenity Action = "amenity:mutate"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow is the affirmative decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny is a negative decision carrying the reason for the refusal.
func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Decide applies the authorization rules in priority order:
//
//  1. Admin actors are allowed all actions unconditionally.
//  2. Place and review mutations are allowed only to the resource owner
//     (the place owner or the review author).
//  3. Amenity mutations are admin-only; amenities have no owner.
//
// Reads carry no authorization check and never reach this function.
func Decide(actor Actor, action Action, resourceOwnerID uuid.UUID) Decision {
	if actor.IsAdmin {
		return Allow()
	}

	switch action {
	case ActionMutatePlace, ActionMutateReview:
		if actor.ID == resourceOwnerID {
			return Allow()
		}

		return Deny(ReasonUnauthorizedAction)
	case ActionMutateAmenity:
		return Deny(ReasonAdminRequired)
	default:
		return Deny(ReasonUnauthorizedAction)
	}
}

// DecideUserUpdate applies the user-record rules: a non-admin actor may only
// update their own record, and the restricted fields (email, password,
// is_admin) require an admin actor even on the actor's own record. Attempts
// to set them are denied, never silently dropped.
func DecideUserUpdate(actor Actor, targetUserID uuid.UUID, touchesRestricted bool) Decision {
	if actor.IsAdmin {
		return Allow()
	}
	if actor.ID != targetUserID {
		return Deny(ReasonUnauthorizedAction)
	}
	if touchesRestricted {
		return Deny(ReasonRestrictedField)
	}

	return Allow()
}
