// Package models defines the DTOs exchanged with the LibriVault REST API.
// The server owns these shapes; the client only decodes them.
package models

// Role is one of the closed set of actor categories the server recognizes.
type Role string

const (
	RoleReader    Role = "READER"
	RoleLibrarian Role = "LIBRARIAN"
	RoleAdmin     Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleReader, RoleLibrarian, RoleAdmin:
		return true
	}
	return false
}

// User is the server-sourced profile of the current actor. The client holds
// a read-mostly cached copy, refreshed on demand.
type User struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	FullName      string `json:"fullName"`
	Role          Role   `json:"role"`
	ReaderCredits int64  `json:"readerCredits"`
	Active        bool   `json:"active"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AuthResponse is the envelope returned by login, register and refresh.
type AuthResponse struct {
	Token string `json:"token"`
	Type  string `json:"type"`
	User  *User  `json:"user"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
