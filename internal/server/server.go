// Package server exposes the task API over a task.Repository. It is the
// reference implementation of the endpoint the scheduling surface talks to.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/davidcortes/horario/internal/api"
	"github.com/davidcortes/horario/internal/task"
)

// Server handles task API requests.
type Server struct {
	repo task.Repository
	log  zerolog.Logger
	mux  *http.ServeMux
}

// New creates a Server over the given repository.
func New(repo task.Repository, log zerolog.Logger) *Server {
	s := &Server{repo: repo, log: log, mux: http.NewServeMux()}

	s.mux.HandleFunc("GET /tasks", s.handleList)
	s.mux.HandleFunc("POST /tasks", s.handleCreate)
	s.mux.HandleFunc("PATCH /tasks/{id}", s.handlePatch)
	s.mux.HandleFunc("DELETE /tasks/{id}", s.handleDelete)

	return s
}

// ServeHTTP dispatches requests with request logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	s.log.Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Dur("elapsed", time.Since(start)).
		Msg("request")
}

// ListenAndServe runs the server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info().Str("addr", addr).Msg("task API listening")
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	from, err := parseInstant(r.URL.Query().Get("from"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid from: "+err.Error())
		return
	}
	to, err := parseInstant(r.URL.Query().Get("to"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid to: "+err.Error())
		return
	}

	tasks, err := s.repo.ListRange(r.Context(), from, to)
	if err != nil {
		s.log.Error().Err(err).Msg("listing tasks")
		s.writeError(w, http.StatusInternalServerError, "listing tasks failed")
		return
	}

	wire := make([]api.TaskJSON, 0, len(tasks))
	for _, t := range tasks {
		wire = append(wire, api.ToWire(t))
	}
	s.writeJSON(w, http.StatusOK, wire)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in api.TaskJSON
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	parsed, err := api.FromWire(in)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := task.New(parsed.Title, string(parsed.Priority), parsed.Start, parsed.End)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	t.Project = parsed.Project

	if err := s.repo.CreateTask(r.Context(), t); err != nil {
		s.log.Error().Err(err).Msg("creating task")
		s.writeError(w, http.StatusInternalServerError, "creating task failed")
		return
	}

	s.writeJSON(w, http.StatusCreated, api.ToWire(t))
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var patch api.PatchJSON
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	start, err := parseInstant(patch.Start)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid start: "+err.Error())
		return
	}
	end, err := parseInstant(patch.End)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid end: "+err.Error())
		return
	}

	updated, err := s.repo.UpdateTimes(r.Context(), id, start, end)
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		s.writeError(w, http.StatusNotFound, "task not found")
		return
	case errors.Is(err, task.ErrEndBeforeStart):
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.log.Error().Err(err).Int64("task", id).Msg("updating task times")
		s.writeError(w, http.StatusInternalServerError, "updating task failed")
		return
	}

	s.writeJSON(w, http.StatusOK, api.ToWire(updated))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	err = s.repo.DeleteTask(r.Context(), id)
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		s.writeError(w, http.StatusNotFound, "task not found")
		return
	case err != nil:
		s.log.Error().Err(err).Int64("task", id).Msg("deleting task")
		s.writeError(w, http.StatusInternalServerError, "deleting task failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("missing instant")
	}
	return time.Parse(time.RFC3339, s)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encoding response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, api.ErrorJSON{Error: msg})
}
