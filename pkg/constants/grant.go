package constants

// Grant lifecycle statuses.
const (
	GrantStatusActive    = "Active"
	GrantStatusCompleted = "Completed"
	GrantStatusSuspended = "Suspended"
)

var GrantStatuses = []string{
	GrantStatusActive,
	GrantStatusCompleted,
	GrantStatusSuspended,
}

func IsValidGrantStatus(status string) bool {
	for _, s := range GrantStatuses {
		if s == status {
			return true
		}
	}
	return false
}
