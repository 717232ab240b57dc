package types

import "encoding/json"

type UserResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ChallengeResponse struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	WorkspaceType string          `json:"workspace_type"`
	Difficulty    int             `json:"difficulty"`
	Requirements  json.RawMessage `json:"requirements"`
}

type AttemptResponse struct {
	ID          uint            `json:"id"`
	UserID      uint            `json:"user_id"`
	ChallengeID uint            `json:"challenge_id"`
	Data        json.RawMessage `json:"data"`
}

type ProgressResponse struct {
	Completed []uint `json:"completed"`
}
