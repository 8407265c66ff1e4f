package constants

const (
	OpenAI = "openai"
	Gemini = "gemini"
)

// DefaultSessionID is used when a request carries no session_id.
const DefaultSessionID = "default-session"
