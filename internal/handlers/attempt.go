package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/circuitlab-dev/circuitlab/internal/models"
	"github.com/circuitlab-dev/circuitlab/internal/store"
	"github.com/circuitlab-dev/circuitlab/internal/types"
	"github.com/circuitlab-dev/circuitlab/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type SaveAttemptRequest struct {
	Data json.RawMessage `json:"data" binding:"required"`
}

func attemptResponse(attempt *models.ChallengeAttempt) types.AttemptResponse {
	return types.AttemptResponse{
		ID:          attempt.ID,
		UserID:      attempt.UserID,
		ChallengeID: attempt.ChallengeID,
		Data:        json.RawMessage(attempt.Data),
	}
}

func SaveAttempt(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	challengeID, ok := parseChallengeID(ctx)

	if !ok {
		return
	}

	var body SaveAttemptRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := store.GetChallenge(challengeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
			return
		}
		log.Printf("Failed to fetch challenge: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	attempt, err := store.SaveAttempt(userID, challengeID, datatypes.JSON(body.Data))

	if err != nil {
		log.Printf("Failed to save attempt: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"attempt": attemptResponse(attempt)})
}

func GetAttempt(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	challengeID, ok := parseChallengeID(ctx)

	if !ok {
		return
	}

	attempt, err := store.GetAttempt(userID, challengeID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Attempt not found"})
			return
		}
		log.Printf("Failed to fetch attempt: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"attempt": attemptResponse(attempt)})
}

func DeleteAttempt(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	challengeID, ok := parseChallengeID(ctx)

	if !ok {
		return
	}

	deleted, err := store.DeleteAttempt(userID, challengeID)

	if err != nil {
		log.Printf("Failed to delete attempt: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Deleting an attempt that was never saved is not an error.
	ctx.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
