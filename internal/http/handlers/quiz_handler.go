// Quiz HTTP handlers.
//
//   - GET  /quizzes                        (levels)
//   - GET  /quizzes/{level}                (questions, answers hidden)
//   - POST /quizzes/{level}/submissions    (grade + record; Idempotency-Key aware)
//   - POST /quiz-results                   (record a pre-graded attempt)
//   - GET  /quiz-results                   (history, newest first)
//   - GET  /quiz-results/stats
//   - GET  /quiz-results/{id}
package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/transport-edu-backend/internal/catalog"
	"github.com/tbourn/transport-edu-backend/internal/domain"
	"github.com/tbourn/transport-edu-backend/internal/http/middleware"
	"github.com/tbourn/transport-edu-backend/internal/services"
	"github.com/tbourn/transport-edu-backend/internal/utils"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

//
// DTOs
//

// QuizLevelsResponse lists the available quiz levels.
type QuizLevelsResponse struct {
	Levels []string `json:"levels" example:"기본,중급"`
}

// QuizResponse is one level's question set without answers.
type QuizResponse struct {
	Level     string             `json:"level" example:"기본"`
	Questions []catalog.Question `json:"questions"`
}

// SubmitQuizRequest carries the chosen option per question index (0-based).
// Missing indexes count as unanswered.
type SubmitQuizRequest struct {
	Answers map[int]string `json:"answers" binding:"required"`
}

// RecordQuizRequest records an attempt graded elsewhere.
type RecordQuizRequest struct {
	QuizID         string                `json:"quiz_id" binding:"required,max=50" example:"기본"`
	Score          int                   `json:"score" example:"2"`
	TotalQuestions int                   `json:"total_questions" example:"3"`
	Answers        []domain.AnswerDetail `json:"answers"`
}

// QuizResultResponse is a stored attempt with its derived figures.
type QuizResultResponse struct {
	Result  *domain.QuizResult    `json:"result"`
	Percent float64               `json:"percent" example:"66.7"`
	Verdict string                `json:"verdict"`
	Details []domain.AnswerDetail `json:"details"`
}

// QuizHistoryResponse wraps a user's attempts, newest first.
type QuizHistoryResponse struct {
	Results []domain.QuizResult `json:"results"`
}

func resultResponse(r *domain.QuizResult) QuizResultResponse {
	pct := services.Percentage(r.Score, r.TotalQuestions)
	var details []domain.AnswerDetail
	if len(r.Answers) > 0 {
		_ = json.Unmarshal(r.Answers, &details)
	}
	if details == nil {
		details = []domain.AnswerDetail{}
	}
	return QuizResultResponse{
		Result:  r,
		Percent: math.Round(pct*10) / 10,
		Verdict: services.Verdict(pct),
		Details: details,
	}
}

//
// Handlers
//

// ListQuizLevels godoc
// @ID          listQuizLevels
// @Summary     Quiz levels
// @Tags        Quizzes
// @Produce     json
// @Success     200  {object} handlers.QuizLevelsResponse
// @Router      /quizzes [get]
func (h *Handlers) ListQuizLevels(c *gin.Context) {
	ok(c, http.StatusOK, QuizLevelsResponse{Levels: h.cat.Levels()})
}

// GetQuiz godoc
// @ID          getQuiz
// @Summary     Questions of a level
// @Description Returns questions and options. Correct answers and explanations are only revealed after submission.
// @Tags        Quizzes
// @Produce     json
// @Param       level  path  string  true  "Quiz level"  example(기본)
// @Success     200  {object} handlers.QuizResponse
// @Failure     404  {object} handlers.ErrorResponse "Unknown level"
// @Router      /quizzes/{level} [get]
func (h *Handlers) GetQuiz(c *gin.Context) {
	level := strings.TrimSpace(c.Param("level"))
	qs, found := h.cat.Quiz(level)
	if !found {
		fail(c, http.StatusNotFound, ErrCodeUnknownLevel, "unknown quiz level")
		return
	}
	ok(c, http.StatusOK, QuizResponse{Level: level, Questions: qs})
}

// SubmitQuiz godoc
// @ID          submitQuiz
// @Summary     Submit quiz answers
// @Description Grades the answers against the level's question set and records the attempt.
// @Description Supports idempotency via the Idempotency-Key header (same key → same attempt, Idempotency-Replayed: true).
// @Tags        Quizzes
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID        header  string  false "User ID"  example(user123)
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       level            path    string  true  "Quiz level"  example(기본)
// @Param       body             body    handlers.SubmitQuizRequest  true  "Answers by question index"
//
// @Success     201  {object}  handlers.QuizResultResponse "Recorded"
// @Success     200  {object}  handlers.QuizResultResponse "Replayed"
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse "Unknown level"
// @Failure     503  {object}  handlers.ErrorResponse "Storage unavailable"
// @Router      /quizzes/{level}/submissions [post]
func (h *Handlers) SubmitQuiz(c *gin.Context) {
	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answers must map question indexes to options")
		return
	}

	idemKey, _ := middleware.GetIdempotencyKey(c)
	res, replayed, err := h.quizSvc.Submit(c.Request.Context(), h.userID(c), c.Param("level"), req.Answers, idemKey)
	if err != nil {
		failErr(c, err)
		return
	}
	if replayed {
		c.Header("Idempotency-Replayed", "true")
		ok(c, http.StatusOK, resultResponse(res))
		return
	}
	ok(c, http.StatusCreated, resultResponse(res))
}

// RecordQuizResult godoc
// @ID          recordQuizResult
// @Summary     Record a quiz attempt
// @Description Appends an attempt that was graded by the client. Score must lie between 0 and total_questions.
// @Tags        Quizzes
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header  string  false "User ID"  example(user123)
// @Param       body       body    handlers.RecordQuizRequest  true  "Attempt"
// @Success     201  {object}  handlers.QuizResultResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     503  {object}  handlers.ErrorResponse "Storage unavailable"
// @Router      /quiz-results [post]
func (h *Handlers) RecordQuizResult(c *gin.Context) {
	var req RecordQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "quiz_id is required")
		return
	}
	res, err := h.quizSvc.Record(c.Request.Context(), h.userID(c), req.QuizID, req.Score, req.TotalQuestions, req.Answers)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, resultResponse(res))
}

// ListQuizResults godoc
// @ID          listQuizResults
// @Summary     Quiz history
// @Tags        Quizzes
// @Produce     json
// @Param       X-User-ID  header  string  false "User ID"  example(user123)
// @Param       limit      query   int     false "Max results"  minimum(1) maximum(100) default(20)
// @Success     200  {object} handlers.QuizHistoryResponse
// @Failure     503  {object} handlers.ErrorResponse "Storage unavailable"
// @Router      /quiz-results [get]
func (h *Handlers) ListQuizResults(c *gin.Context) {
	limit := utils.ClampLimit(c.Query("limit"), defaultHistoryLimit, maxHistoryLimit)
	items, err := h.quizSvc.History(c.Request.Context(), h.userID(c), limit)
	if err != nil {
		failErr(c, err)
		return
	}
	if items == nil {
		items = []domain.QuizResult{}
	}
	ok(c, http.StatusOK, QuizHistoryResponse{Results: items})
}

// GetQuizResult godoc
// @ID          getQuizResult
// @Summary     One quiz attempt
// @Tags        Quizzes
// @Produce     json
// @Param       X-User-ID  header  string  false "User ID"  example(user123)
// @Param       id         path    int     true  "Attempt id"
// @Success     200  {object} handlers.QuizResultResponse
// @Failure     404  {object} handlers.ErrorResponse "Not found"
// @Router      /quiz-results/{id} [get]
func (h *Handlers) GetQuizResult(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}
	res, err := h.quizSvc.Get(c.Request.Context(), h.userID(c), uint(id))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, resultResponse(res))
}

// QuizStats godoc
// @ID          quizStats
// @Summary     Quiz statistics
// @Description Attempt count, average and best percentage, and the most recent attempts.
// @Tags        Quizzes
// @Produce     json
// @Param       X-User-ID  header  string  false "User ID"  example(user123)
// @Success     200  {object} services.QuizStats
// @Failure     503  {object} handlers.ErrorResponse "Storage unavailable"
// @Router      /quiz-results/stats [get]
func (h *Handlers) QuizStats(c *gin.Context) {
	st, err := h.quizSvc.Stats(c.Request.Context(), h.userID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	if st.Recent == nil {
		st.Recent = []domain.QuizResult{}
	}
	ok(c, http.StatusOK, st)
}
