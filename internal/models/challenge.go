package models

import (
	"gorm.io/datatypes"
)

type Challenge struct {
	BaseModel

	Title         string         `gorm:"not null"`
	Description   string         `gorm:"not null"`
	WorkspaceType string         `gorm:"not null"` // "electric", "logic", etc.
	Difficulty    int            `gorm:"not null"`
	Requirements  datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	Attempts []ChallengeAttempt  `gorm:"foreignKey:ChallengeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Progress []ChallengeProgress `gorm:"foreignKey:ChallengeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
