package models

type ChallengeProgress struct {
	BaseModel

	UserID      uint `gorm:"not null;uniqueIndex:idx_progress_user_challenge"`
	ChallengeID uint `gorm:"not null;uniqueIndex:idx_progress_user_challenge"`
	Completed   bool `gorm:"not null;default:false"`

	// Relationships
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Challenge Challenge `gorm:"foreignKey:ChallengeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
