package entities

import "time"

// UserRole restricts what a user is allowed to do in the procurement flow.
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRolePurchaser UserRole = "purchaser"
	UserRoleApprover  UserRole = "approver"
	UserRoleWarehouse UserRole = "warehouse"
	UserRoleFinance   UserRole = "finance"
)

// User is an application account persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (email-index): email
//
// Passwords are stored and compared in plaintext. This mirrors the legacy
// behavior and is not a security model; do not reuse outside this service.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
