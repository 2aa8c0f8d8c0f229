package record

// NAKALA rights roles, strongest first. ROLE_OWNER is assigned
// automatically to the depositing account and cannot be removed;
// ROLE_DEPOSITOR is an attribution marker that grants nothing by itself.
const (
	RoleOwner     = "ROLE_OWNER"
	RoleAdmin     = "ROLE_ADMIN"
	RoleModerator = "ROLE_MODERATOR"
	RoleEditor    = "ROLE_EDITOR"
	RoleReader    = "ROLE_READER"
	RoleDepositor = "ROLE_DEPOSITOR"
)

// Roles lists the assignable roles in descending order of capability.
var Roles = []string{RoleOwner, RoleAdmin, RoleModerator, RoleEditor, RoleReader, RoleDepositor}

// ValidRole reports whether role is a known NAKALA role.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Group membership roles. Group payloads use their own role pair,
// distinct from the rights roles above.
const (
	GroupRoleUser  = "ROLE_USER"
	GroupRoleAdmin = "ROLE_ADMIN"
)

// ValidGroupRole reports whether role can be assigned to a group member.
func ValidGroupRole(role string) bool {
	return role == GroupRoleUser || role == GroupRoleAdmin
}

// Right grants a role on a dataset or collection to a user or group,
// identified by UUID.
type Right struct {
	ID   string `json:"id"`
	Role string `json:"role"`

	// Name and Type are filled by the server on GET /rights responses.
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// GroupUser is a member entry in a group payload.
type GroupUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Group is a NAKALA user group. Groups must contain at least one user
// besides the creating account, which is added as ROLE_OWNER
// automatically.
type Group struct {
	ID    string      `json:"id,omitempty"`
	Name  string      `json:"name"`
	Users []GroupUser `json:"users"`
}

// User is a NAKALA account as returned by GET /users/search.
type User struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	FullName string `json:"fullname,omitempty"`
	Surname  string `json:"surname,omitempty"`
	Given    string `json:"givenname,omitempty"`
}
