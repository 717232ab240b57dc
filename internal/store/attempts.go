package store

import (
	"errors"

	"github.com/circuitlab-dev/circuitlab/db"
	"github.com/circuitlab-dev/circuitlab/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveAttempt upserts the workspace payload for a (user, challenge) pair.
// The insert conflicts on the composite unique index and turns into an
// update of the payload, so the whole thing is one atomic statement and
// concurrent saves resolve to last-write-wins with the row intact.
func SaveAttempt(userID, challengeID uint, data datatypes.JSON) (*models.ChallengeAttempt, error) {
	attempt := models.ChallengeAttempt{
		UserID:      userID,
		ChallengeID: challengeID,
		Data:        data,
	}

	err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "challenge_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&attempt).Error

	if err != nil {
		return nil, err
	}

	// Re-read so the caller gets the stored row either way; on conflict the
	// returned struct keeps the insert's zero ID.
	return GetAttempt(userID, challengeID)
}

func GetAttempt(userID, challengeID uint) (*models.ChallengeAttempt, error) {
	var attempt models.ChallengeAttempt

	err := db.DB.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&attempt).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &attempt, nil
}

// DeleteAttempt reports whether a row existed. A miss is not an error.
func DeleteAttempt(userID, challengeID uint) (bool, error) {
	result := db.DB.Where("user_id = ? AND challenge_id = ?", userID, challengeID).Delete(&models.ChallengeAttempt{})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
