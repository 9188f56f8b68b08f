package quiz

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Tomasz2002/AI-project/internal/auth"
	"github.com/Tomasz2002/AI-project/internal/config"
	"github.com/Tomasz2002/AI-project/internal/pdftext"
	"github.com/Tomasz2002/AI-project/internal/youtube"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxUploadSize = 32 << 20 // 32 MB

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.UserID)
}

func (h *Handler) UploadMaterials(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if _, err := userIDFromRequest(r); err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	youtubeURL := r.FormValue("youtubeUrl")
	if youtubeURL == "" {
		http.Error(w, "youtubeUrl is required", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	sessionID, err := h.service.BeginUpload(r.Context(), UploadMaterialDTO{
		FileName:   header.Filename,
		MimeType:   header.Header.Get("Content-Type"),
		Data:       data,
		YoutubeURL: youtubeURL,
	})
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]string{
		"sessionId": sessionID,
	})
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto GenerateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.SessionID == "" {
		http.Error(w, "sessionId is required", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.Generate(r.Context(), dto, userID)
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"quizId": quiz.ID,
	})
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quiz, err := h.service.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizzes, err := h.service.FindAllByUser(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateProgressDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.UpdateProgress(r.Context(), chi.URLParam(r, "id"), dto.CompletedQuestionIDs)
	if err != nil {
		h.writeServiceError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.DeleteQuiz(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		h.writeServiceError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, ErrMissingFile),
		errors.Is(err, ErrUnsupportedFile),
		errors.Is(err, ErrInvalidCounts),
		errors.Is(err, ErrInvalidVideoURL),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, pdftext.ErrInvalidPageRange),
		errors.Is(err, youtube.ErrVideoNotFound):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrQuizNotFound), errors.Is(err, ErrSessionExpired):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrExternalAPI):
		http.Error(w, "upstream service error", http.StatusBadGateway)
	default:
		log.WithError(err).Error("Quiz request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
