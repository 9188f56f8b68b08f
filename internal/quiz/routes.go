package quiz

import (
	"net/http"

	"github.com/Tomasz2002/AI-project/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/materials", h.UploadMaterials)
	r.Post("/generate", h.GenerateQuiz)
	r.Get("/", h.ListQuizzes)
	r.Get("/{id}", h.GetQuiz)
	r.Patch("/{id}/progress", h.UpdateProgress)
	r.Delete("/{id}", h.DeleteQuiz)
	return r
}
