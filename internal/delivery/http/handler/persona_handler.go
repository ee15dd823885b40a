package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"box-scheduler-backend/internal/delivery/dto"
	"box-scheduler-backend/internal/usecase"
	"box-scheduler-backend/pkg/response"
	"box-scheduler-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type PersonaHandler struct {
	personaUsecase usecase.PersonaUsecase
	validator      *validator.CustomValidator
}

func NewPersonaHandler(personaUsecase usecase.PersonaUsecase, validator *validator.CustomValidator) *PersonaHandler {
	return &PersonaHandler{
		personaUsecase: personaUsecase,
		validator:      validator,
	}
}

func (h *PersonaHandler) CreatePersona(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePersonaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	persona, err := h.personaUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create persona")
		return
	}

	response.Success(w, http.StatusCreated, "Persona created successfully", persona)
}

func (h *PersonaHandler) GetPersona(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid persona ID", nil)
		return
	}

	persona, err := h.personaUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrPersonaNotFound {
			response.NotFound(w, "Persona not found")
			return
		}
		response.InternalServerError(w, "Failed to get persona")
		return
	}

	response.Success(w, http.StatusOK, "Persona retrieved successfully", persona)
}

func (h *PersonaHandler) GetAllPersonas(w http.ResponseWriter, r *http.Request) {
	personas, err := h.personaUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get personas")
		return
	}

	response.Success(w, http.StatusOK, "Personas retrieved successfully", personas)
}

func (h *PersonaHandler) UpdatePersona(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid persona ID", nil)
		return
	}

	var req dto.UpdatePersonaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	persona, err := h.personaUsecase.Update(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrPersonaNotFound {
			response.NotFound(w, "Persona not found")
			return
		}
		response.InternalServerError(w, "Failed to update persona")
		return
	}

	response.Success(w, http.StatusOK, "Persona updated successfully", persona)
}

func (h *PersonaHandler) DeletePersona(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid persona ID", nil)
		return
	}

	if err := h.personaUsecase.Delete(r.Context(), id); err != nil {
		if err == usecase.ErrPersonaNotFound {
			response.NotFound(w, "Persona not found")
			return
		}
		response.InternalServerError(w, "Failed to delete persona")
		return
	}

	response.Success(w, http.StatusOK, "Persona deleted successfully", nil)
}
