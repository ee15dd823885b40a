package handler

import (
	"net/http"

	"box-scheduler-backend/internal/domain/entity"
	"box-scheduler-backend/internal/usecase"
	"box-scheduler-backend/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors := h.directoryUsecase.GetAll(r.Context())
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := entity.DoctorFilter{
		Text:      query.Get("text"),
		Specialty: query.Get("specialty"),
		Weekday:   query.Get("weekday"),
		Room:      query.Get("room"),
	}

	results := h.directoryUsecase.Search(r.Context(), filter)
	response.Success(w, http.StatusOK, "Search completed", results)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties := h.directoryUsecase.GetSpecialties(r.Context())
	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *DoctorHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms := h.directoryUsecase.GetRooms(r.Context())
	response.Success(w, http.StatusOK, "Rooms retrieved successfully", rooms)
}

func (h *DoctorHandler) GetSpecialtyStats(w http.ResponseWriter, r *http.Request) {
	stats := h.directoryUsecase.GetSpecialtyStats(r.Context())
	response.Success(w, http.StatusOK, "Specialty statistics retrieved successfully", stats)
}

func (h *DoctorHandler) GetDoctorsBySpecialty(w http.ResponseWriter, r *http.Request) {
	specialty := mux.Vars(r)["specialty"]

	results, err := h.directoryUsecase.GetBySpecialty(r.Context(), specialty)
	if err != nil {
		if err == usecase.ErrSpecialtyRequired {
			response.Error(w, http.StatusBadRequest, "Specialty is required", nil)
			return
		}
		response.InternalServerError(w, "Failed to get doctors by specialty")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", results)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	rut := mux.Vars(r)["rut"]

	doctor, err := h.directoryUsecase.GetByRUT(r.Context(), rut)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}
