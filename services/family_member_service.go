package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hajruuudin/life-line/models"
)

type FamilyMemberService struct {
	db *gorm.DB
}

func NewFamilyMemberService(db *gorm.DB) *FamilyMemberService {
	return &FamilyMemberService{db: db}
}

// FamilyMemberPatch carries only the fields the caller supplied; a nil field
// is left untouched.
type FamilyMemberPatch struct {
	Name        *string
	DateOfBirth *time.Time
	Gender      *string
	Profession  *string
	HealthNotes *string
}

func (s *FamilyMemberService) List(userID uint) ([]models.FamilyMember, error) {
	var members []models.FamilyMember
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&members).Error
	return members, err
}

func (s *FamilyMemberService) Get(userID, memberID uint) (*models.FamilyMember, error) {
	var member models.FamilyMember
	err := s.db.
		Where("id = ? AND user_id = ?", memberID, userID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("family member not found")
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *FamilyMemberService) Create(userID uint, name string, dateOfBirth *time.Time, gender, profession, healthNotes string) (*models.FamilyMember, error) {
	if name == "" {
		return nil, &ValidationError{Message: "name is required"}
	}

	member := &models.FamilyMember{
		UserID:      userID,
		Name:        name,
		DateOfBirth: dateOfBirth,
		Gender:      gender,
		Profession:  profession,
		HealthNotes: healthNotes,
	}
	if err := s.db.Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func (s *FamilyMemberService) Update(userID, memberID uint, patch FamilyMemberPatch) (*models.FamilyMember, error) {
	member, err := s.Get(userID, memberID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, &ValidationError{Message: "name must not be empty"}
		}
		updates["name"] = *patch.Name
	}
	if patch.DateOfBirth != nil {
		updates["date_of_birth"] = *patch.DateOfBirth
	}
	if patch.Gender != nil {
		updates["gender"] = *patch.Gender
	}
	if patch.Profession != nil {
		updates["profession"] = *patch.Profession
	}
	if patch.HealthNotes != nil {
		updates["health_notes"] = *patch.HealthNotes
	}

	// An empty patch is a no-op that returns the current row unmodified.
	if len(updates) == 0 {
		return member, nil
	}

	if err := s.db.Model(&models.FamilyMember{}).
		Where("id = ? AND user_id = ?", memberID, userID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.Get(userID, memberID)
}

// Delete removes the family member together with its illness logs and usage
// records, mirroring the database cascade for stores that do not enforce it.
func (s *FamilyMemberService) Delete(userID, memberID uint) (bool, error) {
	var deleted bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var member models.FamilyMember
		if err := tx.
			Where("id = ? AND user_id = ?", memberID, userID).
			First(&member).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Where("family_member_id = ?", member.ID).
			Delete(&models.MedicationUsage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("family_member_id = ?", member.ID).
			Delete(&models.IllnessLog{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&member).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}
