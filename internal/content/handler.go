package content

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/polyglot-quiz/backend/internal/locale"
	"github.com/polyglot-quiz/backend/internal/models"
)

const healthTimeout = 2 * time.Second

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Register mounts the read-only content routes on r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/", h.Status).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/subjects", h.ListSubjects).Methods(http.MethodGet)
	api.HandleFunc("/questions/{subjectId}/{language}", h.ListQuestions).Methods(http.MethodGet)
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.StatusResponse{
		Status:             "Quiz API running",
		SupportedLanguages: locale.Supported(),
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.service.Ping(ctx); err != nil {
		h.log.Warn("store ping failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, models.HealthResponse{Status: "degraded", Store: "down"})
		return
	}
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok", Store: "up"})
}

func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	lang := locale.Normalize(r.URL.Query().Get("lang"))

	subjects, err := h.service.ListSubjects(r.Context(), lang)
	if err != nil {
		h.log.Error("subject fetch failed", zap.String("lang", string(lang)), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch subjects"})
		return
	}

	writeJSON(w, http.StatusOK, subjects)
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	subjectID := vars["subjectId"]
	lang := locale.Normalize(vars["language"])

	questions, err := h.service.ListQuestions(r.Context(), subjectID, lang)
	if err != nil {
		h.log.Error("question fetch failed",
			zap.String("subject_id", subjectID),
			zap.String("lang", string(lang)),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch questions"})
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
