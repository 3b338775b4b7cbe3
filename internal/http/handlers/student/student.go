// Package student contains all HTTP handlers for the Student resource.
//
// Each handler is built by a factory that closes over the Service and
// returns a func(http.ResponseWriter, *http.Request):
//
//	router.HandleFunc("POST /students", student.New(svc))
//
// New(svc) runs once at startup; the returned handler runs on every
// request.
package student

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"

	studentsvc "github.com/aanand-mishra/school-api/internal/service/student"
	"github.com/aanand-mishra/school-api/internal/types"
	"github.com/aanand-mishra/school-api/internal/utils/response"
)

// Service is what the handlers need from the student service.
type Service interface {
	CreateStudent(ctx context.Context, student types.Student) (string, error)
	UpdateStudent(ctx context.Context, id string, patch types.StudentPatch) error
	ListActiveStudents(ctx context.Context) ([]types.Student, error)
	GetStudent(ctx context.Context, id string) (types.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}

// Register wires all student routes onto mux.
func Register(mux *http.ServeMux, svc Service) {
	mux.HandleFunc("POST /students", New(svc))
	mux.HandleFunc("GET /students", GetList(svc))
	mux.HandleFunc("GET /students/{id}", GetByID(svc))
	mux.HandleFunc("PUT /students/{id}", Update(svc))
	mux.HandleFunc("DELETE /students/{id}", Delete(svc))
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /students
//
// Request body:
//
//	{ "id": "1", "name": "David", "active": true }
//
// 201 Created, Location: /students/1, body {}
// 400 ENTITY_FOUND when the id is taken, BAD_REQUEST for a bad body.
// ─────────────────────────────────────────────────────────────────────────────
func New(svc Service) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		var student types.Student
		if !decode(w, r, &student) {
			return
		}

		if err := validate.Struct(student); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(verrs))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		id, err := svc.CreateStudent(r.Context(), student)
		if err != nil {
			writeServiceError(w, "error creating student", student.ID, err)
			return
		}

		slog.Info("student created", slog.String("id", id))

		w.Header().Set("Location", "/students/"+url.PathEscape(id))
		response.WriteJSON(w, http.StatusCreated, response.SuccessNoData())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /students/{id}
//
// Only name and active are read from the body; the id comes from the path.
// 200 {} on success, 404 ENTITY_NOT_FOUND for an unknown id.
// ─────────────────────────────────────────────────────────────────────────────
func Update(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a student", slog.String("id", id))

		var patch types.StudentPatch
		if !decode(w, r, &patch) {
			return
		}

		if err := svc.UpdateStudent(r.Context(), id, patch); err != nil {
			writeServiceError(w, "error updating student", id, err)
			return
		}

		slog.Info("student updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, response.SuccessNoData())
	}
}

// GetList handles GET /students. Only active students are returned;
// an empty list is sent as {"data": []}.
func GetList(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting active students")

		students, err := svc.ListActiveStudents(r.Context())
		if err != nil {
			writeServiceError(w, "error getting students", "", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.SuccessWithData(students))
	}
}

// GetByID handles GET /students/{id}. Inactive students are returned too.
func GetByID(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting a student", slog.String("id", id))

		student, err := svc.GetStudent(r.Context(), id)
		if err != nil {
			writeServiceError(w, "error getting student", id, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.SuccessWithData(student))
	}
}

// Delete handles DELETE /students/{id}.
func Delete(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a student", slog.String("id", id))

		if err := svc.DeleteStudent(r.Context(), id); err != nil {
			writeServiceError(w, "error deleting student", id, err)
			return
		}

		slog.Info("student deleted", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, response.SuccessNoData())
	}
}

// decode reads the JSON body into v. On failure it writes a 400 and
// returns false.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("request body is empty")))
		return false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}
	return true
}

// writeServiceError maps service errors to the envelope. Anything that
// is not a known domain error is logged and hidden behind a 500.
func writeServiceError(w http.ResponseWriter, msg, id string, err error) {
	switch {
	case errors.Is(err, studentsvc.ErrAlreadyExists):
		response.WriteError(w, response.EntityFound)
	case errors.Is(err, studentsvc.ErrNotFound):
		response.WriteError(w, response.EntityNotFound)
	default:
		slog.Error(msg,
			slog.String("id", id),
			slog.String("error", err.Error()))
		response.WriteError(w, response.InternalError)
	}
}
