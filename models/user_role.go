package models

type UserRole string

const (
	PortalAdminRole UserRole = "PORTAL_ADMIN_ROLE"
	ApplicantRole   UserRole = "APPLICANT_ROLE"
)

var roleHumanName = map[UserRole]string{
	PortalAdminRole: "Администратор",
	ApplicantRole:   "Соискатель",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == PortalAdminRole
}
