package activity

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/briangreenhill/ftracker/internal/training"
)

type createWorkoutRequest struct {
	Code string    `json:"code"`
	Data []float64 `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewAPI(logger *slog.Logger, activityService *Service) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST /workouts", handleCreateWorkout(logger, activityService))
	mux.Handle("GET /workouts", handleListWorkouts(logger, activityService))
	mux.Handle("GET /workouts/{id}", handleGetWorkout(logger, activityService))
	mux.Handle("GET /workouts/{id}/report", handleGetReport(logger, activityService))
	mux.Handle("GET /workouts/{id}/gpx", handleGetGPX(logger, activityService))
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

func handleCreateWorkout(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req createWorkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(logger, w, http.StatusBadRequest, "invalid json body")
			return
		}

		workout, err := activityService.Add(r.Context(), req.Code, req.Data)
		if err != nil {
			if isInputError(err) {
				writeError(logger, w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Error("Error adding workout", slog.Any("error", err))
			writeError(logger, w, http.StatusInternalServerError, "could not store workout")
			return
		}

		writeJSON(logger, w, http.StatusCreated, workout)
	})
}

func handleListWorkouts(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workouts, err := activityService.List(r.Context())
		if err != nil {
			logger.Error("Error getting workouts", slog.Any("error", err))
			writeError(logger, w, http.StatusInternalServerError, "could not list workouts")
			return
		}
		writeJSON(logger, w, http.StatusOK, workouts)
	})
}

func handleGetWorkout(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workout, ok := lookupWorkout(logger, activityService, w, r)
		if !ok {
			return
		}
		writeJSON(logger, w, http.StatusOK, workout)
	})
}

func handleGetReport(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workout, ok := lookupWorkout(logger, activityService, w, r)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(workout.Message + "\n")); err != nil {
			logger.Error("Error writing report", slog.Any("error", err))
		}
	})
}

func handleGetGPX(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workout, ok := lookupWorkout(logger, activityService, w, r)
		if !ok {
			return
		}
		if len(workout.GPX) == 0 {
			writeError(logger, w, http.StatusNotFound, "workout has no gpx track")
			return
		}

		w.Header().Set("Content-Type", "application/gpx+xml")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(workout.GPX); err != nil {
			logger.Error("Error writing gpx", slog.Any("error", err))
		}
	})
}

func lookupWorkout(logger *slog.Logger, activityService *Service, w http.ResponseWriter, r *http.Request) (Workout, bool) {
	workout, err := activityService.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, ErrWorkoutNotFound) {
		writeError(logger, w, http.StatusNotFound, "workout not found")
		return Workout{}, false
	}
	if err != nil {
		logger.Error("Error getting workout", slog.Any("error", err))
		writeError(logger, w, http.StatusInternalServerError, "could not get workout")
		return Workout{}, false
	}
	return workout, true
}

func isInputError(err error) bool {
	return errors.Is(err, training.ErrUnknownActivityCode) ||
		errors.Is(err, training.ErrArityMismatch) ||
		errors.Is(err, training.ErrInvalidInput) ||
		errors.Is(err, training.ErrDivisionUndefined)
}

// writeJSON encodes before writing the header so an unencodable value
// turns into a 500 rather than an empty 200.
func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Error("Error encoding response", slog.Any("error", err))
		status = http.StatusInternalServerError
		body = []byte(`{"error":"could not encode response"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.Error("Error writing response", slog.Any("error", err))
	}
}

func writeError(logger *slog.Logger, w http.ResponseWriter, status int, msg string) {
	writeJSON(logger, w, status, errorResponse{Error: msg})
}
