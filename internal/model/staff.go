package model

type StaffRole string

const (
	StaffRoleOwner     StaffRole = "Owner"
	StaffRoleManager   StaffRole = "Manager"
	StaffRoleClerk     StaffRole = "Clerk"
	StaffRoleSommelier StaffRole = "Sommelier"
)

var StaffRoles = []StaffRole{StaffRoleOwner, StaffRoleManager, StaffRoleClerk, StaffRoleSommelier}

func (r StaffRole) Valid() bool { return oneOf(r, StaffRoles) }

type StaffStatus string

const (
	StaffActive   StaffStatus = "Active"
	StaffInactive StaffStatus = "Inactive"
)

func (s StaffStatus) Valid() bool { return s == StaffActive || s == StaffInactive }

// Toggled flips Active and Inactive.
func (s StaffStatus) Toggled() StaffStatus {
	if s == StaffActive {
		return StaffInactive
	}
	return StaffActive
}

type StaffMember struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Role   StaffRole   `json:"role"`
	Email  string      `json:"email"`
	Phone  string      `json:"phone"`
	Status StaffStatus `json:"status"`
}
