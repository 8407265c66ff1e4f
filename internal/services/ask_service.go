package services

import (
	"context"
	"fmt"
	"net/http"

	"askdb-ai/internal/apis/dtos"
	"askdb-ai/internal/constants"
	"askdb-ai/internal/utils"
	"askdb-ai/pkg/dbmanager"
	"askdb-ai/pkg/llm"
)

// QueryExecutor runs sanitized SQL and reports the outcome as data.
type QueryExecutor interface {
	ExecuteQuery(ctx context.Context, query string) *dbmanager.QueryResult
}

type AskService interface {
	ProcessQuestion(ctx context.Context, question, sessionID string) (*dtos.AskResponse, uint32, error)
}

type askService struct {
	sqlGen      SQLGenService
	executor    QueryExecutor
	llmClient   llm.Client
	corrections utils.Corrections
}

func NewAskService(sqlGen SQLGenService, executor QueryExecutor, llmClient llm.Client, corrections utils.Corrections) AskService {
	return &askService{
		sqlGen:      sqlGen,
		executor:    executor,
		llmClient:   llmClient,
		corrections: corrections,
	}
}

// ProcessQuestion runs the pipeline for one question: generate SQL, clean
// and correct it, execute it, then rephrase the raw result. The flow is
// strictly linear; an execution error is not a failure, it is passed to the
// rephraser so the user gets a conversational explanation.
func (s *askService) ProcessQuestion(ctx context.Context, question, sessionID string) (*dtos.AskResponse, uint32, error) {
	rawSQL, err := s.sqlGen.GenerateSQL(ctx, question, sessionID)
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("failed to generate SQL: %w", err)
	}

	query := utils.CleanSQLOutput(rawSQL)
	query = s.corrections.Apply(query)

	result := s.executor.ExecuteQuery(ctx, query)

	answerPrompt := constants.BuildAnswerPrompt(question, query, result.String())
	answer, err := s.llmClient.GenerateResponse(ctx, []llm.Message{
		{Role: llm.RoleUser, Content: answerPrompt},
	})
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("failed to rephrase result: %w", err)
	}

	return &dtos.AskResponse{Answer: answer}, http.StatusOK, nil
}
