package dtos

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *string     `json:"error,omitempty"`
}

type AskRequest struct {
	Question  string `json:"question" binding:"required"`
	SessionID string `json:"session_id"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}
