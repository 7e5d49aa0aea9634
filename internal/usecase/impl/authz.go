package impl

import (
	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/domain/policy"
)

// denyError translates an authorization denial into the matching domain error.
func denyError(decision policy.Decision) error {
	switch decision.Reason {
	case policy.ReasonRestrictedField:
		return domainerrors.ErrRestrictedField
	case policy.ReasonAdminRequired:
		return domainerrors.ErrAdminRequired
	default:
		return domainerrors.ErrUnauthorizedAction
	}
}
