package domain

// Role of an authenticated user
type Role string

// Known roles. The column stays a free-form string so future roles round-trip,
// but everything in-process compares against these two.
const (
	RoleUser  Role = "user"  // Default role
	RoleAdmin Role = "admin" // Catalog management rights
)

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`     // Primary key
	Email    string `gorm:"not null" json:"email"`    // Login identifier
	Password string `gorm:"not null" json:"-"`        // Credential, never serialized
	Role     string `gorm:"default:user" json:"role"` // Role: user or admin
}
