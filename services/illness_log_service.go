package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hajruuudin/life-line/models"
)

type IllnessLogService struct {
	db          *gorm.DB
	suggestions *AISuggestionService
	aiEnabled   bool
}

func NewIllnessLogService(db *gorm.DB, suggestions *AISuggestionService, aiEnabled bool) *IllnessLogService {
	return &IllnessLogService{db: db, suggestions: suggestions, aiEnabled: aiEnabled}
}

// IllnessLogEntry is an illness log row joined with the family member name.
type IllnessLogEntry struct {
	ID               uint       `json:"id"`
	FamilyMemberID   uint       `json:"family_member_id"`
	FamilyMemberName string     `json:"family_member_name"`
	IllnessName      string     `json:"illness_name"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	Notes            string     `json:"notes"`
	AISuggestion     *string    `json:"ai_suggestion"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type IllnessLogPatch struct {
	IllnessName *string
	StartDate   *time.Time
	EndDate     *time.Time
	Notes       *string
}

// Create verifies the family member belongs to the user, then asks the AI
// adapter for a home-remedy suggestion. The AI call is best-effort: a nil
// suggestion never blocks the log creation.
func (s *IllnessLogService) Create(ctx context.Context, userID, familyMemberID uint, illnessName string, startDate time.Time, endDate *time.Time, notes string) (*IllnessLogEntry, error) {
	if illnessName == "" {
		return nil, &ValidationError{Message: "illness_name is required"}
	}

	var member models.FamilyMember
	if err := s.db.
		Where("id = ? AND user_id = ?", familyMemberID, userID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("family member not found or does not belong to user")
		}
		return nil, err
	}

	var suggestion *string
	if s.aiEnabled && s.suggestions != nil {
		suggestion = s.suggestions.GetHomeRemedies(ctx, illnessName, notes)
	}

	logRow := models.IllnessLog{
		FamilyMemberID: familyMemberID,
		IllnessName:    illnessName,
		StartDate:      startDate,
		EndDate:        endDate,
		Notes:          notes,
		AISuggestion:   suggestion,
	}
	if err := s.db.Create(&logRow).Error; err != nil {
		return nil, err
	}

	return &IllnessLogEntry{
		ID:               logRow.ID,
		FamilyMemberID:   logRow.FamilyMemberID,
		FamilyMemberName: member.Name,
		IllnessName:      logRow.IllnessName,
		StartDate:        logRow.StartDate,
		EndDate:          logRow.EndDate,
		Notes:            logRow.Notes,
		AISuggestion:     logRow.AISuggestion,
		CreatedAt:        logRow.CreatedAt,
		UpdatedAt:        logRow.UpdatedAt,
	}, nil
}

func (s *IllnessLogService) List(userID uint, familyMemberID *uint) ([]IllnessLogEntry, error) {
	var entries []IllnessLogEntry
	q := s.db.
		Table("illness_logs").
		Select("illness_logs.*, family_members.name AS family_member_name").
		Joins("JOIN family_members ON family_members.id = illness_logs.family_member_id").
		Where("family_members.user_id = ?", userID).
		Order("illness_logs.start_date DESC")

	if familyMemberID != nil {
		q = q.Where("illness_logs.family_member_id = ?", *familyMemberID)
	}

	if err := q.Scan(&entries).Error; err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []IllnessLogEntry{}
	}
	return entries, nil
}

func (s *IllnessLogService) Get(userID, logID uint) (*IllnessLogEntry, error) {
	var entry IllnessLogEntry
	err := s.db.
		Table("illness_logs").
		Select("illness_logs.*, family_members.name AS family_member_name").
		Joins("JOIN family_members ON family_members.id = illness_logs.family_member_id").
		Where("illness_logs.id = ? AND family_members.user_id = ?", logID, userID).
		Scan(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == 0 {
		return nil, notFound("illness log not found")
	}
	return &entry, nil
}

func (s *IllnessLogService) Update(userID, logID uint, patch IllnessLogPatch) (*IllnessLogEntry, error) {
	entry, err := s.Get(userID, logID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.IllnessName != nil {
		if *patch.IllnessName == "" {
			return nil, &ValidationError{Message: "illness_name must not be empty"}
		}
		updates["illness_name"] = *patch.IllnessName
	}
	if patch.StartDate != nil {
		updates["start_date"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		updates["end_date"] = *patch.EndDate
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	if len(updates) == 0 {
		return entry, nil
	}

	if err := s.db.Model(&models.IllnessLog{}).
		Where("id = ?", logID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.Get(userID, logID)
}

func (s *IllnessLogService) Delete(userID, logID uint) (bool, error) {
	if _, err := s.Get(userID, logID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	res := s.db.Where("id = ?", logID).Delete(&models.IllnessLog{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
