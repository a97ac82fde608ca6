package constants

// Role values stored on users.role. Anything else (including empty) is a
// regular member.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleUser       = "user"
)

// Guard rejection messages. Web clients match on these strings.
const (
	MsgUnauthorized = "unauthorized access"
	MsgForbidden    = "forbidden message"
	MsgInternal     = "internal server error"
	MsgAlreadyExist = "already exist"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
		RoleInstructor,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleInstructor,
	}
)

// IsKnownRole reports whether role is one of AllRoles.
func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
