package entities

// UserRole separates the two personas the marketplace serves.
//
// Role is fixed at sign-in; there is no escalation flow.

type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleProvider UserRole = "provider"
)

func (r UserRole) IsValid() bool {
	return r == UserRoleCustomer || r == UserRoleProvider
}

// User is the session identity supplied by the login stub.
//
// Exactly one User is "current" at a time; it is replaced on sign-in and
// cleared on sign-out. Credentials are never validated here.

type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
