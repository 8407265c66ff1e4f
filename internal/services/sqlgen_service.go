package services

import (
	"context"
	"fmt"

	"askdb-ai/internal/constants"
	"askdb-ai/internal/sessions"
	"askdb-ai/pkg/llm"
)

// SchemaProvider supplies the memoized textual schema description.
type SchemaProvider interface {
	GetSchemaDescription(ctx context.Context) (string, error)
}

// SQLGenService turns a question plus session history into raw model output
// that should contain a SQL statement.
type SQLGenService interface {
	GenerateSQL(ctx context.Context, question, sessionID string) (string, error)
}

type sqlGenService struct {
	store     *sessions.Store
	schema    SchemaProvider
	llmClient llm.Client
	dbType    string
}

func NewSQLGenService(store *sessions.Store, schema SchemaProvider, llmClient llm.Client, dbType string) SQLGenService {
	return &sqlGenService{
		store:     store,
		schema:    schema,
		llmClient: llmClient,
		dbType:    dbType,
	}
}

// GenerateSQL renders the SQL prompt with the session transcript and the
// question, invokes the model and appends the exchange to the transcript.
// The exchange runs under the session lock, so later calls with the same
// session observe all prior turns in request order. Model errors propagate
// and leave the transcript untouched.
func (s *sqlGenService) GenerateSQL(ctx context.Context, question, sessionID string) (string, error) {
	schema, err := s.schema.GetSchemaDescription(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get schema description: %w", err)
	}

	template := constants.BuildSQLPrompt(constants.DatabaseDisplayName(s.dbType), schema)
	session := s.store.GetMemory(sessionID)

	return session.Exchange(question, func(history []sessions.Turn) (string, error) {
		prompt := constants.RenderSQLPrompt(template, sessions.FormatHistory(history), question)
		return s.llmClient.GenerateResponse(ctx, []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		})
	})
}
