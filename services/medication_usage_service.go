package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hajruuudin/life-line/models"
)

type MedicationUsageService struct {
	db *gorm.DB
}

func NewMedicationUsageService(db *gorm.DB) *MedicationUsageService {
	return &MedicationUsageService{db: db}
}

// LogUsage records a medication use for a family member and decrements the
// stock, all in one transaction. Both the family member and the medication
// must belong to the requesting user. The decrement is a conditional update
// guarded by the current quantity, so two concurrent consumers can never
// drive the stock negative: the loser's update affects zero rows and its
// usage record is rolled back.
func (s *MedicationUsageService) LogUsage(userID, familyMemberID, medicationID uint, quantityUsed int) (*models.MedicationUsage, error) {
	if quantityUsed < 1 {
		return nil, &ValidationError{Message: "quantity_used must be a positive integer"}
	}

	var usage models.MedicationUsage
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var member models.FamilyMember
		if err := tx.
			Where("id = ? AND user_id = ?", familyMemberID, userID).
			First(&member).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("family member not found or does not belong to user")
			}
			return err
		}

		var medication models.Medication
		if err := tx.
			Where("id = ? AND user_id = ?", medicationID, userID).
			First(&medication).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("medication not found or does not belong to user")
			}
			return err
		}

		if medication.Quantity < quantityUsed {
			return &InsufficientStockError{Available: medication.Quantity, Requested: quantityUsed}
		}

		usage = models.MedicationUsage{
			FamilyMemberID: familyMemberID,
			MedicationID:   medicationID,
			QuantityUsed:   quantityUsed,
			UsedAt:         time.Now(),
		}
		if err := tx.Create(&usage).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Medication{}).
			Where("id = ? AND user_id = ? AND quantity >= ?", medicationID, userID, quantityUsed).
			Update("quantity", gorm.Expr("quantity - ?", quantityUsed))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Raced with another consumer or a delete since the read above.
			var current models.Medication
			err := tx.Where("id = ? AND user_id = ?", medicationID, userID).First(&current).Error
			if err == nil {
				return &InsufficientStockError{Available: current.Quantity, Requested: quantityUsed}
			}
			return fmt.Errorf("failed to update medication quantity")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &usage, nil
}

// List returns every usage record reachable from the user's family members.
func (s *MedicationUsageService) List(userID uint) ([]models.MedicationUsage, error) {
	var logs []models.MedicationUsage
	err := s.db.
		Select("medication_usages.*").
		Joins("JOIN family_members ON family_members.id = medication_usages.family_member_id").
		Where("family_members.user_id = ?", userID).
		Order("medication_usages.used_at DESC").
		Find(&logs).Error
	return logs, err
}
