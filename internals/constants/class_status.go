package constants

// Class review states set by admins on PATCH /topclass/:id.
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

var ClassStatuses = []string{ClassStatusPending, ClassStatusApproved, ClassStatusDenied}

// IsClassStatus reports whether s is one of ClassStatuses.
func IsClassStatus(s string) bool {
	for _, v := range ClassStatuses {
		if v == s {
			return true
		}
	}
	return false
}
