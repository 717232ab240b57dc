package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/circuitlab-dev/circuitlab/internal/store"
	"github.com/circuitlab-dev/circuitlab/internal/types"
	"github.com/circuitlab-dev/circuitlab/internal/utils"
	"github.com/gin-gonic/gin"
)

func CompleteChallenge(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	challengeID, ok := parseChallengeID(ctx)

	if !ok {
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

	progress, err := store.MarkChallengeComplete(userID, challengeID)

	if err != nil {
		log.Printf("Failed to mark challenge complete: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"challenge_id": progress.ChallengeID,
		"completed":    progress.Completed,
	})
}

func GetProgress(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ids, err := store.GetCompletedChallengeIDs(userID)

	if err != nil {
		log.Printf("Failed to fetch progress: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.ProgressResponse{Completed: ids})
}
