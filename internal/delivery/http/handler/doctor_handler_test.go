package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"box-scheduler-backend/internal/domain/entity"
	"box-scheduler-backend/internal/repository"
	"box-scheduler-backend/internal/service"
	"box-scheduler-backend/internal/usecase"
	"box-scheduler-backend/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func newDoctorTestHandler() *DoctorHandler {
	log := logrus.New()
	log.SetOutput(io.Discard)

	directory := repository.NewDoctorDirectory([]entity.Doctor{
		{
			RUT:       "11111111-1",
			Name:      "Dr. Abarca",
			Specialty: "Pediatría",
			Schedule: []entity.ScheduleBlock{
				{Weekday: "lunes", StartTime: "08:00", EndTime: "09:00", Room: "101"},
			},
		},
		{
			RUT:       "22222222-2",
			Name:      "Dra. Beltrán",
			Specialty: "Cardiología",
		},
	})
	cache := service.NewDirectoryCache(nil, log, 0)
	return NewDoctorHandler(usecase.NewDoctorDirectoryUsecase(log, directory, cache))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return resp
}

func TestGetAllDoctors(t *testing.T) {
	h := newDoctorTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	rec := httptest.NewRecorder()
	h.GetAllDoctors(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp := decodeResponse(t, rec); !resp.Success {
		t.Errorf("expected success envelope, got %+v", resp)
	}
}

func TestSearchDoctorsByWeekday(t *testing.T) {
	h := newDoctorTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/search?weekday=Mi%C3%A9rcoles", nil)
	rec := httptest.NewRecorder()
	h.SearchDoctors(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data payload: %+v", resp.Data)
	}
	if total, _ := data["total"].(float64); total != 0 {
		t.Errorf("weekday with no attendance returned total %v, want 0", data["total"])
	}
}

func TestGetDoctor(t *testing.T) {
	h := newDoctorTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/11111111-1", nil)
	req = mux.SetURLVars(req, map[string]string{"rut": "11111111-1"})
	rec := httptest.NewRecorder()
	h.GetDoctor(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGetDoctorNotFound(t *testing.T) {
	h := newDoctorTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/99999999-9", nil)
	req = mux.SetURLVars(req, map[string]string{"rut": "99999999-9"})
	rec := httptest.NewRecorder()
	h.GetDoctor(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if resp := decodeResponse(t, rec); resp.Success {
		t.Errorf("expected failure envelope, got %+v", resp)
	}
}

func TestGetDoctorsBySpecialtyRequiresValue(t *testing.T) {
	h := newDoctorTestHandler()

	// Route registered without the {specialty} var: the handler must
	// answer 400, not 404.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/by-specialty", nil)
	rec := httptest.NewRecorder()
	h.GetDoctorsBySpecialty(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetDoctorsBySpecialty(t *testing.T) {
	h := newDoctorTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/by-specialty/Pediatr%C3%ADa", nil)
	req = mux.SetURLVars(req, map[string]string{"specialty": "Pediatría"})
	rec := httptest.NewRecorder()
	h.GetDoctorsBySpecialty(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data payload: %+v", resp.Data)
	}
	if total, _ := data["total"].(float64); total != 1 {
		t.Errorf("total = %v, want 1", data["total"])
	}
}

func TestGetSpecialties(t *testing.T) {
	h := newDoctorTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/specialties", nil)
	rec := httptest.NewRecorder()
	h.GetSpecialties(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGetSpecialtyStats(t *testing.T) {
	h := newDoctorTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/specialty-stats", nil)
	rec := httptest.NewRecorder()
	h.GetSpecialtyStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
