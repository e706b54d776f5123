package domain

import "time"

type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleClient     UserRole = "client"
	UserRoleTechnician UserRole = "technician"
)

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Role         UserRole  `json:"role"`
	CreatedOn    time.Time `json:"created_on"`
}
