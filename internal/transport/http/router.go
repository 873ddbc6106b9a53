package http

import (
	"net/http"

	"hackquest-service/internal/app"
	"hackquest-service/internal/auth"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the REST surface and the websocket leaderboard stream.
func NewRouter(service *app.Service, issuer auth.Issuer, resolver auth.Resolver, logger *logrus.Logger) http.Handler {
	h := NewHandler(service, issuer)
	stream := NewLeaderboardStream(service, logger)

	r := chi.NewRouter()
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ws/leaderboard", stream.ServeWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.Ping)
		r.Post("/auth/signup", h.Signup)
		r.Post("/auth/login", h.Login)
		r.Get("/hackathons", h.Hackathons)
		r.Get("/hackathons/{id}", h.HackathonByID)
		r.Get("/hackathons/{id}/submissions", h.HackathonSubmissions)
		r.Get("/quizzes", h.Quizzes)
		r.Get("/quizzes/{id}", h.QuizByID)
		r.Get("/leaderboard", h.Leaderboard)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(resolver))
			r.Get("/auth/profile", h.Profile)
			r.Post("/quizzes/submit", h.SubmitQuiz)
			r.Get("/user/progress", h.Progress)
			r.Post("/hackathons/{id}/submit", h.SubmitProject)
		})
	})

	return r
}
