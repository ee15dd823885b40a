package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"box-scheduler-backend/internal/delivery/dto"
	"box-scheduler-backend/internal/usecase"
	"box-scheduler-backend/pkg/response"
	"box-scheduler-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
	validator   *validator.CustomValidator
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase, validator *validator.CustomValidator) *RoomHandler {
	return &RoomHandler{
		roomUsecase: roomUsecase,
		validator:   validator,
	}
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.roomUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeRoomError(w, err, "Failed to create room")
		return
	}

	response.Success(w, http.StatusCreated, "Room created successfully", room)
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	room, err := h.roomUsecase.Get(r.Context(), id)
	if err != nil {
		h.writeRoomError(w, err, "Failed to get room")
		return
	}

	response.Success(w, http.StatusOK, "Room retrieved successfully", room)
}

func (h *RoomHandler) GetAllRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get rooms")
		return
	}

	response.Success(w, http.StatusOK, "Rooms retrieved successfully", rooms)
}

func (h *RoomHandler) GetFloors(w http.ResponseWriter, r *http.Request) {
	floors := h.roomUsecase.Floors(r.Context())
	response.Success(w, http.StatusOK, "Floors retrieved successfully", floors)
}

func (h *RoomHandler) GetRoomsByFloor(w http.ResponseWriter, r *http.Request) {
	floor, err := strconv.Atoi(mux.Vars(r)["floor"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid floor", nil)
		return
	}

	rooms, err := h.roomUsecase.ListByFloor(r.Context(), floor)
	if err != nil {
		response.InternalServerError(w, "Failed to get rooms")
		return
	}

	response.Success(w, http.StatusOK, "Rooms retrieved successfully", rooms)
}

// SuggestFloor maps a specialty to its suggested floor for the
// assignment form.
func (h *RoomHandler) SuggestFloor(w http.ResponseWriter, r *http.Request) {
	suggestion, err := h.roomUsecase.SuggestFloor(r.Context(), r.URL.Query().Get("specialty"))
	if err != nil {
		h.writeRoomError(w, err, "Failed to suggest floor")
		return
	}

	response.Success(w, http.StatusOK, "Floor suggestion computed", suggestion)
}

func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	var req dto.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.roomUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeRoomError(w, err, "Failed to update room")
		return
	}

	response.Success(w, http.StatusOK, "Room updated successfully", room)
}

func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	if err := h.roomUsecase.Delete(r.Context(), id); err != nil {
		h.writeRoomError(w, err, "Failed to delete room")
		return
	}

	response.Success(w, http.StatusOK, "Room deleted successfully", nil)
}

func (h *RoomHandler) writeRoomError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrRoomNotFound:
		response.NotFound(w, "Room not found")
	case usecase.ErrInvalidRoomType:
		response.Error(w, http.StatusBadRequest, "Invalid room type", nil)
	case usecase.ErrUnknownFloor:
		response.Error(w, http.StatusBadRequest, "Unknown floor", nil)
	case usecase.ErrSpecialtyRequired:
		response.Error(w, http.StatusBadRequest, "Specialty is required", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
