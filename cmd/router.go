package cmd

import (
	"net/http"

	"lovejournal-backend/internal/handlers"
	"lovejournal-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type routeHandlers struct {
	health      *handlers.HealthHandler
	users       *handlers.UserHandler
	memories    *handlers.MemoryHandler
	journals    *handlers.JournalHandler
	letters     *handlers.LetterHandler
	loveNotes   *handlers.LoveNoteHandler
	reflections *handlers.ReflectionHandler
	questions   *handlers.QuestionHandler
	stats       *handlers.StatsHandler
	bucketList  *handlers.BucketListHandler
	dateIdeas   *handlers.DateIdeaHandler
	pulse       *handlers.PulseHandler
	media       *handlers.MediaHandler
}

func newRouter(h *routeHandlers, auth middleware.Authenticator) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/healthz", h.health.Healthz)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", h.users.Register)
		r.Post("/auth/login", h.users.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(auth))
			r.Get("/me", h.users.GetMe)
			r.Patch("/me", h.users.UpdateMe)

			// Couple-scoped routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireCouple)

				r.Get("/memories", h.memories.List)
				r.Post("/memories", h.memories.Create)
				r.Delete("/memories/{id}", h.memories.Delete)

				r.Get("/journals", h.journals.List)
				r.Post("/journals", h.journals.Create)

				r.Get("/letters", h.letters.List)
				r.Post("/letters", h.letters.Create)
				r.Post("/letters/{id}/open", h.letters.Open)

				r.Get("/love-notes", h.loveNotes.List)
				r.Post("/love-notes", h.loveNotes.Create)

				r.Get("/reflections", h.reflections.List)
				r.Post("/reflections", h.reflections.Create)

				r.Get("/questions/today", h.questions.Today)
				r.Post("/questions/today", h.questions.Answer)

				r.Get("/insights", h.stats.Insights)
				r.Get("/streaks", h.stats.Streaks)
				r.Get("/story", h.stats.Story)

				r.Get("/bucket-list", h.bucketList.List)
				r.Post("/bucket-list", h.bucketList.Create)
				r.Patch("/bucket-list/{id}", h.bucketList.Update)

				r.Get("/date-ideas", h.dateIdeas.List)
				r.Post("/date-ideas", h.dateIdeas.Create)
				r.Post("/date-ideas/spin", h.dateIdeas.Spin)
				r.Patch("/date-ideas/{id}", h.dateIdeas.Update)

				r.Get("/pulse", h.pulse.Latest)
				r.Post("/pulse", h.pulse.Send)

				r.Post("/uploads", h.media.Upload)
			})
		})
	})

	return r
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
