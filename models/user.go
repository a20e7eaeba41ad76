package models

// Roles handed out by the session store.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User is the identity persisted as the active session.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Account is a registered user as stored in the users list. The password is
// kept in plaintext; it never leaves the session package over the API.
type Account struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (a Account) User() User {
	return User{ID: a.ID, Username: a.Username, Role: a.Role}
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
