package models

import (
	"gorm.io/datatypes"
)

type ChallengeAttempt struct {
	BaseModel

	UserID      uint           `gorm:"not null;uniqueIndex:idx_attempt_user_challenge"`
	ChallengeID uint           `gorm:"not null;uniqueIndex:idx_attempt_user_challenge"`
	Data        datatypes.JSON `gorm:"type:jsonb"` // workspace state, caller-defined shape

	// Relationships
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Challenge Challenge `gorm:"foreignKey:ChallengeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
