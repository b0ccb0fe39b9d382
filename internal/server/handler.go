//go:generate mockgen -source=handler.go -destination=../mocks/server/mock_handler.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/at-ishikawa/kwinsight/internal/analysis"
	"github.com/at-ishikawa/kwinsight/internal/keyword"
)

const maxRequestBytes = 1 << 20

// Analyzer is the part of *analysis.Engine the HTTP layer needs.
type Analyzer interface {
	Analyze(ctx context.Context, raw string) (keyword.Analysis, error)
	Suggestions(ctx context.Context, raw string) ([]keyword.Suggestion, error)
	Questions(ctx context.Context, raw string) ([]keyword.Question, error)
	Difficulty(ctx context.Context, raw string) (int, error)
	AnalyzeBulk(ctx context.Context, raws []string) ([]analysis.BulkResult, error)
}

// KeywordHandler exposes the analysis engine over JSON.
type KeywordHandler struct {
	analyzer Analyzer
	validate *validator.Validate
}

func NewKeywordHandler(analyzer Analyzer) *KeywordHandler {
	return &KeywordHandler{
		analyzer: analyzer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type AnalyzeRequest struct {
	Keyword string `json:"keyword" validate:"required"`
}

type BulkAnalyzeRequest struct {
	Keywords []string `json:"keywords" validate:"required"`
}

type BulkAnalyzeResponse struct {
	Results []analysis.BulkResult `json:"results"`
}

type SuggestionsResponse struct {
	Keyword     string               `json:"keyword"`
	Suggestions []keyword.Suggestion `json:"suggestions"`
}

type QuestionsResponse struct {
	Keyword   string             `json:"keyword"`
	Questions []keyword.Question `json:"questions"`
}

type DifficultyResponse struct {
	Keyword    string `json:"keyword"`
	Difficulty int    `json:"difficulty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *KeywordHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := h.decode(w, r, &req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid keyword"})
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), req.Keyword)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (h *KeywordHandler) AnalyzeBulk(w http.ResponseWriter, r *http.Request) {
	var req BulkAnalyzeRequest
	if err := h.decode(w, r, &req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid input or too many keywords"})
		return
	}

	results, err := h.analyzer.AnalyzeBulk(r.Context(), req.Keywords)
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidInput) {
			writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid input or too many keywords"})
			return
		}
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, BulkAnalyzeResponse{Results: results})
}

func (h *KeywordHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	suggestions, err := h.analyzer.Suggestions(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, SuggestionsResponse{Keyword: q, Suggestions: suggestions})
}

func (h *KeywordHandler) Questions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	questions, err := h.analyzer.Questions(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, QuestionsResponse{Keyword: q, Questions: questions})
}

func (h *KeywordHandler) Difficulty(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	difficulty, err := h.analyzer.Difficulty(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, DifficultyResponse{Keyword: q, Difficulty: difficulty})
}

func (h *KeywordHandler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("json.Decode > %w", err)
	}
	if err := h.validate.Struct(v); err != nil {
		return fmt.Errorf("validate.Struct > %w", err)
	}
	return nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, analysis.ErrInvalidInput):
		writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid keyword"})
	case errors.Is(err, analysis.ErrRateLimited):
		writeJSON(w, r, http.StatusTooManyRequests, ErrorResponse{Error: "too many requests, try again later"})
	default:
		slog.Default().ErrorContext(r.Context(), "analysis failed",
			"path", r.URL.Path,
			"request_id", RequestID(r.Context()),
			"error", err)
		writeJSON(w, r, http.StatusInternalServerError, ErrorResponse{Error: "an error occurred"})
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().WarnContext(r.Context(), "failed to write response",
			"request_id", RequestID(r.Context()),
			"error", err)
	}
}
