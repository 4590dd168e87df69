package auth

import "time"

type Role string

const (
	// RoleMember drafts agreements and acts as a party to them.
	RoleMember Role = "member"
	// RoleStaff works the ticket queue and court cases.
	RoleStaff Role = "staff"
	// RoleScholar reviews agreements submitted to the panel.
	RoleScholar Role = "scholar"
)

// User is the domain representation of an authenticated user.
// It mirrors the users table and should not include JSON annotations so it
// can be reused by different presentation layers.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Phone        *string
	Language     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterRequest contains user registration data supplied by callers.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Language string `json:"language"`
}

// LoginRequest contains user login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
