package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Tomasz2002/AI-project/internal/auth"
	"github.com/Tomasz2002/AI-project/internal/middlewares"
	"github.com/Tomasz2002/AI-project/internal/quiz"
	"github.com/Tomasz2002/AI-project/internal/user"
)

type RouterConfig struct {
	UserHandler *user.Handler
	QuizHandler *quiz.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	})
	return r
}
