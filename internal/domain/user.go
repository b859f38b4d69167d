package domain

import "time"

// User is a credential record. PasswordHash holds the bcrypt hash and must
// never be logged or returned to clients.
type User struct {
	ID           int64
	Name         string
	Email        string
	Phnumber     string
	Address      string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is the identity of the authenticated caller for a single request.
// It is built by the auth middleware from the bearer token and threaded
// through handler calls; there is no process-wide "current user".
type Session struct {
	UserID   int64
	Username string
	Email    string
}

// AuthResult is what a successful login returns to the client.
type AuthResult struct {
	Token    string
	Username string
	Phnumber string
	Address  string
}

type UserRepository interface {
	CreateUser(user *User) (*User, error)
	GetUserByEmail(email string) (*User, error)
}

type AuthUseCase interface {
	Register(name, email, phnumber, address, password string) (*User, error)
	Login(email, password string) (*AuthResult, error)
}
