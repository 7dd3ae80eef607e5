package repository

import (
	"rental_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// EquipmentRepository owns persistence of Equipment rows
type EquipmentRepository struct {
	db *gorm.DB // Database handle
}

// NewEquipmentRepository creates an EquipmentRepository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create inserts a new equipment row and assigns its ID
func (r *EquipmentRepository) Create(e *domain.Equipment) error {
	return r.db.Create(e).Error
}

// List returns every equipment row
func (r *EquipmentRepository) List() ([]domain.Equipment, error) {
	var items []domain.Equipment
	// Fetch all rows ordered by ID for a stable listing
	if err := r.db.Order("id").Find(&items).Error; err != nil {
		return nil, err // Return error if fetching fails
	}
	return items, nil
}

// GetByID returns the equipment row with the given ID
func (r *EquipmentRepository) GetByID(id uint) (*domain.Equipment, error) {
	var e domain.Equipment
	if err := r.db.First(&e, id).Error; err != nil {
		return nil, err // Not found or query error
	}
	return &e, nil
}

// Update applies only the supplied fields to the row with the given ID and
// returns the updated row. Absent IDs report gorm.ErrRecordNotFound without
// mutating anything.
func (r *EquipmentRepository) Update(id uint, fields map[string]any) (*domain.Equipment, error) {
	e, err := r.GetByID(id) // Row must exist first
	if err != nil {
		return nil, err // Not found or query error
	}
	// Nothing to change when the payload supplied no fields
	if len(fields) == 0 {
		return e, nil
	}
	// Map form keeps zero values (e.g. available=false) applied
	if err := r.db.Model(e).Updates(fields).Error; err != nil {
		return nil, err // Return error if update fails
	}
	return r.GetByID(id) // Re-read so the caller sees the stored values
}

// Delete removes the row with the given ID. Returns false when no row matched.
func (r *EquipmentRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&domain.Equipment{}, id) // Delete by primary key
	if res.Error != nil {
		return false, res.Error // Return error if deletion fails
	}
	return res.RowsAffected > 0, nil // False when the ID did not exist
}
