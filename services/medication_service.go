package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hajruuudin/life-line/models"
)

type MedicationService struct {
	db *gorm.DB
}

func NewMedicationService(db *gorm.DB) *MedicationService {
	return &MedicationService{db: db}
}

type MedicationPatch struct {
	Name           *string
	Quantity       *int
	ExpirationDate *time.Time
}

// CreateOrRestock adds stock with create-or-increment semantics keyed on the
// case-insensitive name. An existing row keeps its stored name and expiration
// date; only the quantity grows. The whole upsert is a single INSERT ... ON
// CONFLICT on the (user_id, name_key) unique index, so two concurrent calls
// for the same name both land as increments instead of one of them aborting
// the transaction.
func (s *MedicationService) CreateOrRestock(userID uint, name string, quantity int, expirationDate *time.Time) (*models.Medication, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Message: "name is required"}
	}
	if quantity < 1 {
		return nil, &ValidationError{Message: "quantity must be a positive integer"}
	}

	row := models.Medication{
		UserID:         userID,
		Name:           name,
		Quantity:       quantity,
		ExpirationDate: expirationDate,
	}
	var medication models.Medication
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "name_key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("quantity + excluded.quantity"),
				"updated_at": time.Now(),
			}),
		}).Create(&row).Error; err != nil {
			return err
		}

		// Re-read so the conflict path returns the stored row, not the input.
		return tx.
			Where("user_id = ? AND name_key = ?", userID, strings.ToLower(name)).
			First(&medication).Error
	})
	if err != nil {
		return nil, err
	}
	return &medication, nil
}

func (s *MedicationService) List(userID uint) ([]models.Medication, error) {
	var medications []models.Medication
	err := s.db.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&medications).Error
	return medications, err
}

func (s *MedicationService) Get(userID, medicationID uint) (*models.Medication, error) {
	var medication models.Medication
	err := s.db.
		Where("id = ? AND user_id = ?", medicationID, userID).
		First(&medication).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("medication not found")
	}
	if err != nil {
		return nil, err
	}
	return &medication, nil
}

func (s *MedicationService) Update(userID, medicationID uint, patch MedicationPatch) (*models.Medication, error) {
	medication, err := s.Get(userID, medicationID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, &ValidationError{Message: "name must not be empty"}
		}
		updates["name"] = *patch.Name
		updates["name_key"] = strings.ToLower(*patch.Name)
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return nil, &ValidationError{Message: "quantity must not be negative"}
		}
		updates["quantity"] = *patch.Quantity
	}
	if patch.ExpirationDate != nil {
		updates["expiration_date"] = *patch.ExpirationDate
	}

	if len(updates) == 0 {
		return medication, nil
	}

	if err := s.db.Model(&models.Medication{}).
		Where("id = ? AND user_id = ?", medicationID, userID).
		Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ValidationError{Message: "a medication with this name already exists"}
		}
		return nil, err
	}

	return s.Get(userID, medicationID)
}

func (s *MedicationService) Delete(userID, medicationID uint) (bool, error) {
	var deleted bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var medication models.Medication
		if err := tx.
			Where("id = ? AND user_id = ?", medicationID, userID).
			First(&medication).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Where("medication_id = ?", medication.ID).
			Delete(&models.MedicationUsage{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&medication).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}
