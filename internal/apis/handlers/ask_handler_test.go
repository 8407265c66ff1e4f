package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"askdb-ai/internal/apis/dtos"

	"github.com/gin-gonic/gin"
)

type fakeAskService struct {
	question  string
	sessionID string
	answer    string
}

func (f *fakeAskService) ProcessQuestion(_ context.Context, question, sessionID string) (*dtos.AskResponse, uint32, error) {
	f.question = question
	f.sessionID = sessionID
	return &dtos.AskResponse{Answer: f.answer}, http.StatusOK, nil
}

func newTestRouter(service *fakeAskService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/ask", NewAskHandler(service).Ask)
	return router
}

func TestAskReturnsAnswer(t *testing.T) {
	service := &fakeAskService{answer: "There are 12 customers in France."}
	router := newTestRouter(service)

	body := `{"question": "How many customers are in France?", "session_id": "session-1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var response dtos.Response
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !response.Success {
		t.Error("Success = false")
	}

	data, ok := response.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data shape: %T", response.Data)
	}
	if data["answer"] != "There are 12 customers in France." {
		t.Errorf("answer = %v", data["answer"])
	}
	if service.sessionID != "session-1" {
		t.Errorf("sessionID = %q", service.sessionID)
	}
}

func TestAskDefaultsSessionID(t *testing.T) {
	service := &fakeAskService{answer: "ok"}
	router := newTestRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"question": "hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if service.sessionID != "default-session" {
		t.Errorf("sessionID = %q, want default-session", service.sessionID)
	}
}

func TestAskRejectsMissingQuestion(t *testing.T) {
	service := &fakeAskService{answer: "ok"}
	router := newTestRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"session_id": "session-1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var response dtos.Response
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if response.Success || response.Error == nil {
		t.Errorf("expected error envelope, got %+v", response)
	}
	if service.question != "" {
		t.Error("service should not be invoked on binding failure")
	}
}
