package domain

// Role adalah enum tetap. Otorisasi untuk role di luar daftar ini selalu
// ditolak (reject by default).
const (
	RoleAdmin   = "ADMIN"
	RoleClient  = "CLIENT"
	RoleOfficer = "OFFICER"
	RoleCRO     = "CRO"
	RoleFinance = "FINANCE"
)

var knownRoles = map[string]struct{}{
	RoleAdmin:   {},
	RoleClient:  {},
	RoleOfficer: {},
	RoleCRO:     {},
	RoleFinance: {},
}

func ValidRole(role string) bool {
	_, ok := knownRoles[role]
	return ok
}

// RoleAllowed memeriksa role terhadap allowlist statis sebuah route.
func RoleAllowed(role string, allowlist []string) bool {
	if !ValidRole(role) {
		return false
	}
	for _, allowed := range allowlist {
		if role == allowed {
			return true
		}
	}
	return false
}

// Identity adalah hasil resolusi token yang ditempel ke request context.
type Identity struct {
	ID    string
	Role  string
	Name  string
	Email string
}
