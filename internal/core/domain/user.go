package domain

// Roles a registered visitor can hold.
const (
	RoleParent  = "parent"
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleParent, RoleStudent, RoleAdmin:
		return true
	}
	return false
}

// Profile holds the optional student details attached to an account.
type Profile struct {
	StudentName string `json:"student_name,omitempty"`
	Grade       string `json:"grade,omitempty"`
	School      string `json:"school,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// User is an identity record. It is owned exclusively by the identity store;
// every other component refers to it by ID only.
type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Role    string   `json:"role"`
	Profile *Profile `json:"profile,omitempty"`
}
