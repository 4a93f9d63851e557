package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mockmate/reviews-service/internal/domain"
	"github.com/mockmate/reviews-service/internal/service"
	"github.com/mockmate/reviews-service/pkg/validator"
)

// ReviewHandler handles HTTP requests for the review endpoints.
type ReviewHandler struct {
	service *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new review HTTP handler.
func NewReviewHandler(svc *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// CreateReviewRequest is the JSON request body for submitting a review.
// Server-assigned fields (id, timestamp, helpful, verified) are not
// accepted here; anything the client sends for them is ignored.
type CreateReviewRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	Email         string `json:"email" validate:"required,max=254"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title         string `json:"title" validate:"required,max=200"`
	Comment       string `json:"comment" validate:"required,max=5000"`
	InterviewType string `json:"interviewType" validate:"max=100"`
	InterviewRole string `json:"interviewRole" validate:"max=100"`
}

// VoteHelpfulRequest is the JSON request body for a helpful vote.
type VoteHelpfulRequest struct {
	ReviewID string `json:"reviewId" validate:"required"`
	Helpful  int    `json:"helpful" validate:"required,gte=1"`
}

// --- Response DTOs (wire contract shared with the review browser) ---

type listResponse struct {
	Reviews []domain.Review    `json:"reviews"`
	Stats   domain.ReviewStats `json:"stats"`
	Demo    bool               `json:"demo"`
	Error   string             `json:"error,omitempty"`
}

type createResponse struct {
	Success bool               `json:"success"`
	Review  domain.Review      `json:"review"`
	Stats   domain.ReviewStats `json:"stats"`
	Demo    bool               `json:"demo"`
	Error   string             `json:"error,omitempty"`
}

type voteResponse struct {
	Success bool               `json:"success"`
	Stats   domain.ReviewStats `json:"stats"`
	Demo    bool               `json:"demo"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// --- Handlers ---

// ListReviews handles GET /api/v1/reviews. It always answers 200: a store
// failure degrades to fallback data with demo=true and a notice in error.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	result := h.service.ListReviews(r.Context())

	writeJSON(w, http.StatusOK, listResponse{
		Reviews: result.Reviews,
		Stats:   result.Stats,
		Demo:    result.Demo,
		Error:   result.Notice,
	})
}

// CreateReview handles POST /api/v1/reviews. An unparseable or invalid
// payload is the only hard client error; a store failure still accepts the
// review into the fallback and flags the response as degraded.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, failureResponse{
			Error: "invalid request body: " + err.Error(),
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	result := h.service.CreateReview(r.Context(), &service.CreateReviewInput{
		Name:          req.Name,
		Email:         req.Email,
		Rating:        req.Rating,
		Title:         req.Title,
		Comment:       req.Comment,
		InterviewType: req.InterviewType,
		InterviewRole: req.InterviewRole,
	})

	writeJSON(w, http.StatusOK, createResponse{
		Success: true,
		Review:  result.Review,
		Stats:   result.Stats,
		Demo:    result.Demo,
		Error:   result.Notice,
	})
}

// VoteHelpful handles PUT /api/v1/reviews. Unlike list and create, a store
// failure here is surfaced as a 500 so the browser can show a failure toast
// instead of silently losing the vote.
func (h *ReviewHandler) VoteHelpful(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	var req VoteHelpfulRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, failureResponse{
			Error: "invalid request body: " + err.Error(),
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	result, err := h.service.VoteHelpful(r.Context(), req.ReviewID, req.Helpful)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "helpful vote failed",
			slog.String("review_id", req.ReviewID),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, failureResponse{
			Error: "failed to update review",
		})
		return
	}

	writeJSON(w, http.StatusOK, voteResponse{
		Success: true,
		Stats:   result.Stats,
		Demo:    result.Demo,
	})
}

// --- Helpers ---

func (h *ReviewHandler) writeValidationError(w http.ResponseWriter, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		writeJSON(w, http.StatusBadRequest, failureResponse{
			Error: valErr.Error(),
		})
		return
	}

	writeJSON(w, http.StatusBadRequest, failureResponse{
		Error: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
