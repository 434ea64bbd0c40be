package auth

import (
	"net/http"

	"github.com/isdelr/vehicle-registry-be/internal/models"
)

// Operation names an action gated by the authorization policy.
type Operation string

const (
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// minimumRole maps each operation to the least privileged role allowed to
// perform it. Reads and creates are open to any authenticated identity;
// mutating existing records requires an administrator.
var minimumRole = map[Operation]models.Role{
	OpRead:   models.RoleEditor,
	OpCreate: models.RoleEditor,
	OpUpdate: models.RoleAdministrator,
	OpDelete: models.RoleAdministrator,
}

// Check reports whether a caller holding role may perform op. Authentication
// is a precondition handled before this table is consulted, not part of it.
func Check(op Operation, role models.Role) bool {
	min, ok := minimumRole[op]
	if !ok || !role.Valid() {
		return false
	}
	if min == models.RoleAdministrator {
		return role == models.RoleAdministrator
	}
	return true
}

// RequirePermission gates a route on the policy table. A request with no
// authenticated claims is rejected with 401; an authenticated caller with an
// insufficient role is rejected with 403. The two are never conflated.
func RequirePermission(op Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				http.Error(w, "Missing auth token", http.StatusUnauthorized)
				return
			}
			if !Check(op, claims.Role) {
				http.Error(w, "Insufficient permissions", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
