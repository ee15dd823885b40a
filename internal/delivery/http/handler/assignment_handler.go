package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"box-scheduler-backend/internal/delivery/dto"
	"box-scheduler-backend/internal/domain/entity"
	"box-scheduler-backend/internal/usecase"
	"box-scheduler-backend/pkg/response"
	"box-scheduler-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AssignmentHandler struct {
	assignmentUsecase usecase.AssignmentUsecase
	validator         *validator.CustomValidator
}

func NewAssignmentHandler(assignmentUsecase usecase.AssignmentUsecase, validator *validator.CustomValidator) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUsecase: assignmentUsecase,
		validator:         validator,
	}
}

func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	assignment, err := h.assignmentUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeAssignmentError(w, err, "Failed to create assignment")
		return
	}

	response.Success(w, http.StatusCreated, "Assignment created successfully", assignment)
}

func (h *AssignmentHandler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid assignment ID", nil)
		return
	}

	assignment, err := h.assignmentUsecase.Get(r.Context(), id)
	if err != nil {
		h.writeAssignmentError(w, err, "Failed to get assignment")
		return
	}

	response.Success(w, http.StatusOK, "Assignment retrieved successfully", assignment)
}

func (h *AssignmentHandler) GetAllAssignments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &entity.AssignmentFilter{
		DoctorRUT: query.Get("doctor_rut"),
		Specialty: query.Get("specialty"),
	}

	if weekday := query.Get("weekday"); weekday != "" {
		day := entity.NormalizeWeekday(weekday)
		if day == "" {
			response.Error(w, http.StatusBadRequest, "Invalid weekday", nil)
			return
		}
		filter.Weekday = day
	}
	if roomID := query.Get("room_id"); roomID != "" {
		id, err := uuid.Parse(roomID)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
			return
		}
		filter.RoomID = id
	}
	if floor := query.Get("floor"); floor != "" {
		f, err := strconv.Atoi(floor)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid floor", nil)
			return
		}
		filter.Floor = f
	}

	assignments, err := h.assignmentUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get assignments")
		return
	}

	response.Success(w, http.StatusOK, "Assignments retrieved successfully", assignments)
}

func (h *AssignmentHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid assignment ID", nil)
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	assignment, err := h.assignmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeAssignmentError(w, err, "Failed to update assignment")
		return
	}

	response.Success(w, http.StatusOK, "Assignment updated successfully", assignment)
}

func (h *AssignmentHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid assignment ID", nil)
		return
	}

	if err := h.assignmentUsecase.Delete(r.Context(), id); err != nil {
		h.writeAssignmentError(w, err, "Failed to delete assignment")
		return
	}

	response.Success(w, http.StatusOK, "Assignment deleted successfully", nil)
}

// GetAvailability renders the occupancy grid for one room and weekday.
func (h *AssignmentHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	roomID, err := uuid.Parse(query.Get("room_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Room ID is required", nil)
		return
	}
	weekday := query.Get("weekday")
	if weekday == "" {
		response.Error(w, http.StatusBadRequest, "Weekday is required", nil)
		return
	}

	availability, err := h.assignmentUsecase.Availability(r.Context(), roomID, weekday)
	if err != nil {
		h.writeAssignmentError(w, err, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

func (h *AssignmentHandler) writeAssignmentError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrAssignmentNotFound:
		response.NotFound(w, "Assignment not found")
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor not found")
	case usecase.ErrRoomNotFound:
		response.NotFound(w, "Room not found")
	case usecase.ErrInvalidWeekday:
		response.Error(w, http.StatusBadRequest, "Invalid weekday", nil)
	case usecase.ErrInvalidTimeFormat:
		response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
	case usecase.ErrInvalidTimeRange:
		response.Error(w, http.StatusBadRequest, "End time must be after start time", nil)
	case usecase.ErrAssignmentConflict:
		response.Conflict(w, "The room is already assigned in that time range")
	default:
		response.InternalServerError(w, fallback)
	}
}
