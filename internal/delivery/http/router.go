package http

import (
	"net/http"
	"time"

	"box-scheduler-backend/internal/delivery/http/handler"
	"box-scheduler-backend/internal/delivery/http/middleware"
	"box-scheduler-backend/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	roomHandler       *handler.RoomHandler
	assignmentHandler *handler.AssignmentHandler
	personaHandler    *handler.PersonaHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	roomHandler *handler.RoomHandler,
	assignmentHandler *handler.AssignmentHandler,
	personaHandler *handler.PersonaHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		roomHandler:       roomHandler,
		assignmentHandler: assignmentHandler,
		personaHandler:    personaHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and diagnostic greeting
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api.HandleFunc("/status", r.status).Methods(http.MethodGet)

	// Doctor directory (read-only, fed by the schedule CSV).
	// Fixed paths must be registered before the {rut} catch-all.
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/search", r.doctorHandler.SearchDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/doctors/rooms", r.doctorHandler.GetRooms).Methods(http.MethodGet)
	api.HandleFunc("/doctors/specialty-stats", r.doctorHandler.GetSpecialtyStats).Methods(http.MethodGet)
	api.HandleFunc("/doctors/by-specialty", r.doctorHandler.GetDoctorsBySpecialty).Methods(http.MethodGet)
	api.HandleFunc("/doctors/by-specialty/{specialty}", r.doctorHandler.GetDoctorsBySpecialty).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{rut}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Room and floor catalog
	api.HandleFunc("/floors", r.roomHandler.GetFloors).Methods(http.MethodGet)
	api.HandleFunc("/floors/{floor}/rooms", r.roomHandler.GetRoomsByFloor).Methods(http.MethodGet)
	api.HandleFunc("/rooms", r.roomHandler.CreateRoom).Methods(http.MethodPost)
	api.HandleFunc("/rooms", r.roomHandler.GetAllRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms/suggest-floor", r.roomHandler.SuggestFloor).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", r.roomHandler.GetRoom).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", r.roomHandler.UpdateRoom).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{id}", r.roomHandler.DeleteRoom).Methods(http.MethodDelete)

	// Assignments and availability
	api.HandleFunc("/assignments", r.assignmentHandler.CreateAssignment).Methods(http.MethodPost)
	api.HandleFunc("/assignments", r.assignmentHandler.GetAllAssignments).Methods(http.MethodGet)
	api.HandleFunc("/assignments/availability", r.assignmentHandler.GetAvailability).Methods(http.MethodGet)
	api.HandleFunc("/assignments/{id}", r.assignmentHandler.GetAssignment).Methods(http.MethodGet)
	api.HandleFunc("/assignments/{id}", r.assignmentHandler.UpdateAssignment).Methods(http.MethodPut)
	api.HandleFunc("/assignments/{id}", r.assignmentHandler.DeleteAssignment).Methods(http.MethodDelete)

	// Legacy persona records
	api.HandleFunc("/personas", r.personaHandler.CreatePersona).Methods(http.MethodPost)
	api.HandleFunc("/personas", r.personaHandler.GetAllPersonas).Methods(http.MethodGet)
	api.HandleFunc("/personas/{id}", r.personaHandler.GetPersona).Methods(http.MethodGet)
	api.HandleFunc("/personas/{id}", r.personaHandler.UpdatePersona).Methods(http.MethodPut)
	api.HandleFunc("/personas/{id}", r.personaHandler.DeletePersona).Methods(http.MethodDelete)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

// status is the diagnostic greeting kept from the previous deployment.
func (r *Router) status(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "Service running", map[string]interface{}{
		"message":   "Hola desde el backend de agendamiento de boxes",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
