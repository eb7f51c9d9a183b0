// Package rbac decides whether a caller may run an elevated action.
// Membership is checked against role names already resolved by the
// channel adapter; this package never talks to the chat platform.
package rbac

// Authorized reports whether required appears in the caller's roles.
// An empty required role means the action is open to everyone.
func Authorized(callerRoles []string, required string) bool {
	if required == "" {
		return true
	}
	for _, role := range callerRoles {
		if role == required {
			return true
		}
	}
	return false
}
