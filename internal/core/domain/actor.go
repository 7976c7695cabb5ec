package domain

// Actor is the authenticated caller identity attached to each request by the
// auth middleware. The core trusts it verbatim.
type Actor struct {
	UserID string
	Admin  bool
}

// CanView reports whether the actor may read the target user record:
// the actor is the target, or the actor is an admin.
func (a Actor) CanView(target *User) bool {
	return a.Admin || a.UserID == target.ID
}

// CanMutate reports whether the actor may apply an update to the target.
// Identity follows the same rule as CanView. When newRoles is non-nil and
// would change the admin flag, only admins may apply it: non-admins can
// update their own email and password but can neither grant nor revoke admin.
func (a Actor) CanMutate(target *User, newRoles *Roles) bool {
	if !a.CanView(target) {
		return false
	}
	if newRoles != nil && newRoles.Admin != target.Roles.Admin && !a.Admin {
		return false
	}
	return true
}
