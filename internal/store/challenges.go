package store

import (
	"errors"

	"github.com/circuitlab-dev/circuitlab/db"
	"github.com/circuitlab-dev/circuitlab/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func ListChallenges() ([]models.Challenge, error) {
	var challenges []models.Challenge

	if err := db.DB.Order("id").Find(&challenges).Error; err != nil {
		return nil, err
	}

	return challenges, nil
}

func GetChallenge(id uint) (*models.Challenge, error) {
	var challenge models.Challenge

	err := db.DB.Where("id = ?", id).First(&challenge).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &challenge, nil
}

func CreateChallenge(title, description, workspaceType string, difficulty int, requirements datatypes.JSON) (*models.Challenge, error) {
	challenge := models.Challenge{
		Title:         title,
		Description:   description,
		WorkspaceType: workspaceType,
		Difficulty:    difficulty,
		Requirements:  requirements,
	}

	if err := db.DB.Create(&challenge).Error; err != nil {
		return nil, err
	}

	return &challenge, nil
}

// DeleteChallenge removes the challenge; the cascade constraints take any
// attempt and progress rows that reference it along.
func DeleteChallenge(id uint) (*models.Challenge, error) {
	challenge, err := GetChallenge(id)

	if err != nil {
		return nil, err
	}

	if err := db.DB.Delete(challenge).Error; err != nil {
		return nil, err
	}

	return challenge, nil
}
