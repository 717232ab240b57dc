package store

import (
	"errors"

	"github.com/circuitlab-dev/circuitlab/db"
	"github.com/circuitlab-dev/circuitlab/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MarkChallengeComplete upserts the progress row with completed=true.
// Calling it again is a no-op beyond bumping updated_at.
func MarkChallengeComplete(userID, challengeID uint) (*models.ChallengeProgress, error) {
	progress := models.ChallengeProgress{
		UserID:      userID,
		ChallengeID: challengeID,
		Completed:   true,
	}

	err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "challenge_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(&progress).Error

	if err != nil {
		return nil, err
	}

	var stored models.ChallengeProgress

	err = db.DB.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&stored).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &stored, nil
}

// GetCompletedChallengeIDs returns only rows with completed=true; a progress
// row that exists with completed=false does not count.
func GetCompletedChallengeIDs(userID uint) ([]uint, error) {
	var ids []uint

	err := db.DB.Model(&models.ChallengeProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Order("challenge_id").
		Pluck("challenge_id", &ids).Error

	if err != nil {
		return nil, err
	}

	return ids, nil
}
