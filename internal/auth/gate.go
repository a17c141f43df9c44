package auth

import "pressroom/internal/model"

// Allow is the role gate: it decides whether an identity may proceed to a
// handler protected by the required role. A nil identity (unauthenticated
// request) is always denied; otherwise the decision is the identity's role
// membership, checked exactly. The gate is evaluated once per request and
// keeps no state between calls.
func Allow(identity *model.User, required model.Role) bool {
	if identity == nil {
		return false
	}
	return identity.HasRole(required)
}
