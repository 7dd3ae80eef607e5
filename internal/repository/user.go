package repository

import (
	"errors"                        // Error inspection
	"rental_system/internal/domain" // Importing domain models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// UserRepository owns persistence of User rows
type UserRepository struct {
	db            *gorm.DB // Database handle
	hashPasswords bool     // Store bcrypt hashes instead of raw passwords
}

// NewUserRepository creates a UserRepository
func NewUserRepository(db *gorm.DB, hashPasswords bool) *UserRepository {
	return &UserRepository{db: db, hashPasswords: hashPasswords}
}

// Create inserts a new user. Role defaults to "user" when empty.
func (r *UserRepository) Create(email, password, role string) (*domain.User, error) {
	if role == "" {
		role = string(domain.RoleUser) // Default role
	}
	// Hash the credential when the hashing mode is enabled
	if r.hashPasswords {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err // Return error if hashing fails
		}
		password = string(hash)
	}
	user := domain.User{Email: email, Password: password, Role: role}
	// Attempt to create the user in the database
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err // Return error if creation fails
	}
	return &user, nil
}

// FindByCredentials returns the first user matching both email and password.
// In legacy mode the password column is compared verbatim; in hashing mode the
// stored bcrypt hash is verified instead. gorm.ErrRecordNotFound reports a miss.
func (r *UserRepository) FindByCredentials(email, password string) (*domain.User, error) {
	var user domain.User
	// Legacy mode: exact match on both columns
	if !r.hashPasswords {
		if err := r.db.Where("email = ? AND password = ?", email, password).First(&user).Error; err != nil {
			return nil, err // Not found or query error
		}
		return &user, nil
	}
	// Hashing mode: fetch by email, then verify the hash
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err // Not found or query error
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, gorm.ErrRecordNotFound // Wrong password reads like a miss
	}
	return &user, nil
}

// IsNotFound reports whether err means no matching row
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
