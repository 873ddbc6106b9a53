package http

import (
	"encoding/json"
	"net/http"

	"hackquest-service/internal/app"
	"hackquest-service/internal/auth"
	"hackquest-service/internal/domain"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the gamification use cases over REST.
type Handler struct {
	service *app.Service
	issuer  auth.Issuer
}

func NewHandler(service *app.Service, issuer auth.Issuer) *Handler {
	return &Handler{service: service, issuer: issuer}
}

func (h *Handler) Ping(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Server is running!"})
}

// authResponse is returned bare (no envelope) by the auth routes.
type authResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrInvalidInput)
		return
	}
	user, err := h.service.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{User: user, Token: h.issuer.Issue(user.ID)})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrInvalidInput)
		return
	}
	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{User: user, Token: h.issuer.Issue(user.ID)})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Profile(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, user)
}

func (h *Handler) Hackathons(w http.ResponseWriter, r *http.Request) {
	hackathons, err := h.service.Hackathons(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, hackathons)
}

func (h *Handler) HackathonByID(w http.ResponseWriter, r *http.Request) {
	hackathon, err := h.service.Hackathon(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, hackathon)
}

func (h *Handler) HackathonSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.Submissions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, subs)
}

func (h *Handler) SubmitProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		GithubURL   string `json:"githubUrl"`
		LiveURL     string `json:"liveUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrInvalidInput)
		return
	}
	sub, err := h.service.SubmitProject(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id"), app.SubmissionInput{
		Title:       req.Title,
		Description: req.Description,
		GithubURL:   req.GithubURL,
		LiveURL:     req.LiveURL,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, sub)
}

func (h *Handler) Quizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.service.Quizzes(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	views := make([]quizView, 0, len(quizzes))
	for _, quiz := range quizzes {
		views = append(views, redactQuiz(quiz))
	}
	respondData(w, http.StatusOK, views)
}

func (h *Handler) QuizByID(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.service.Quiz(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, redactQuiz(quiz))
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuizID    string               `json:"quizId"`
		Answers   []domain.AnswerValue `json:"answers"`
		TimeSpent int                  `json:"timeSpent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrInvalidInput)
		return
	}
	attempt, err := h.service.SubmitQuiz(r.Context(), userIDFrom(r.Context()), req.QuizID, req.Answers, req.TimeSpent)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, attempt)
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Leaderboard(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, entries)
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.Progress(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, progress)
}
