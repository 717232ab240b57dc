package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/circuitlab-dev/circuitlab/internal/models"
	"github.com/circuitlab-dev/circuitlab/internal/store"
	"github.com/circuitlab-dev/circuitlab/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type CreateChallengeRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	WorkspaceType string          `json:"workspace_type" binding:"required"`
	Difficulty    int             `json:"difficulty" binding:"required,min=1"`
	Requirements  json.RawMessage `json:"requirements"`
}

func challengeResponse(challenge *models.Challenge) types.ChallengeResponse {
	return types.ChallengeResponse{
		ID:            challenge.ID,
		Title:         challenge.Title,
		Description:   challenge.Description,
		WorkspaceType: challenge.WorkspaceType,
		Difficulty:    challenge.Difficulty,
		Requirements:  json.RawMessage(challenge.Requirements),
	}
}

func parseChallengeID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("challenge_id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid challenge ID"})
		return 0, false
	}

	return uint(id), true
}

func ListChallenges(ctx *gin.Context) {
	challenges, err := store.ListChallenges()

	if err != nil {
		log.Printf("Failed to list challenges: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.ChallengeResponse, 0, len(challenges))

	for i := range challenges {
		response = append(response, challengeResponse(&challenges[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"challenges": response})
}

func GetChallenge(ctx *gin.Context) {
	id, ok := parseChallengeID(ctx)

	if !ok {
		return
	}

	challenge, err := store.GetChallenge(id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
			return
		}
		log.Printf("Failed to fetch challenge: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"challenge": challengeResponse(challenge)})
}

func CreateChallenge(ctx *gin.Context) {
	var body CreateChallengeRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	challenge, err := store.CreateChallenge(body.Title, body.Description, body.WorkspaceType, body.Difficulty, datatypes.JSON(body.Requirements))

	if err != nil {
		log.Printf("Failed to create challenge: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"challenge": challengeResponse(challenge)})
}

func DeleteChallenge(ctx *gin.Context) {
	id, ok := parseChallengeID(ctx)

	if !ok {
		return
	}

	challenge, err := store.DeleteChallenge(id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
			return
		}
		log.Printf("Failed to delete challenge: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"challenge": challengeResponse(challenge)})
}
