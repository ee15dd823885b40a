package usecase

import (
	"context"
	"errors"

	"box-scheduler-backend/internal/converter"
	"box-scheduler-backend/internal/delivery/dto"
	"box-scheduler-backend/internal/domain/entity"
	"box-scheduler-backend/internal/domain/repository"
	"box-scheduler-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrInvalidWeekday     = errors.New("invalid weekday")
	ErrInvalidTimeFormat  = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange   = errors.New("end time must be after start time")
	ErrAssignmentConflict = errors.New("assignment overlaps an existing assignment for this room and day")
)

type AssignmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AssignmentResponse, error)
	List(ctx context.Context, filter *entity.AssignmentFilter) (*dto.AssignmentListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Availability(ctx context.Context, roomID uuid.UUID, weekday string) (*dto.AvailabilityResponse, error)
}

type assignmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	assignmentRepo repository.AssignmentRepository
	roomRepo       repository.RoomRepository
	directory      repository.DoctorDirectory
	engine         *service.AvailabilityEngine
}

func NewAssignmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	assignmentRepo repository.AssignmentRepository,
	roomRepo repository.RoomRepository,
	directory repository.DoctorDirectory,
	engine *service.AvailabilityEngine,
) AssignmentUsecase {
	return &assignmentUsecase{
		db:             db,
		log:            log,
		assignmentRepo: assignmentRepo,
		roomRepo:       roomRepo,
		directory:      directory,
		engine:         engine,
	}
}

// normalizeWindow validates the weekday and time range, applying the
// one-hour default duration when no end time was picked.
func normalizeWindow(weekday, startTime, endTime string) (string, string, string, error) {
	day := entity.NormalizeWeekday(weekday)
	if day == "" {
		return "", "", "", ErrInvalidWeekday
	}

	start, err := service.ParseClock(startTime)
	if err != nil {
		return "", "", "", ErrInvalidTimeFormat
	}
	startTime = service.FormatClock(start)

	if endTime == "" {
		endTime, err = service.DefaultEnd(startTime)
		if err != nil {
			return "", "", "", ErrInvalidTimeFormat
		}
		return day, startTime, endTime, nil
	}

	end, err := service.ParseClock(endTime)
	if err != nil {
		return "", "", "", ErrInvalidTimeFormat
	}
	if end <= start {
		return "", "", "", ErrInvalidTimeRange
	}
	return day, startTime, service.FormatClock(end), nil
}

func (u *assignmentUsecase) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	weekday, startTime, endTime, err := normalizeWindow(req.Weekday, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	doctor := u.directory.FindByRUT(req.DoctorRUT)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	specialty := req.Specialty
	if specialty == "" {
		specialty = doctor.Specialty
	}

	assignment := &entity.Assignment{
		DoctorRUT: req.DoctorRUT,
		RoomID:    req.RoomID,
		Weekday:   weekday,
		StartTime: startTime,
		EndTime:   endTime,
		Specialty: specialty,
	}

	// Conflict check and insert run as one atomic unit: the (room, weekday)
	// partition stays locked until the transaction commits.
	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := u.roomRepo.FindByID(tx, req.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return ErrRoomNotFound
		}
		assignment.RoomType = room.Type

		existing, err := u.assignmentRepo.FindByRoomAndWeekdayForUpdate(tx, req.RoomID, weekday)
		if err != nil {
			return err
		}
		conflict, err := u.engine.FindConflict(existing, startTime, endTime, uuid.Nil)
		if err != nil {
			return ErrInvalidTimeFormat
		}
		if conflict != nil {
			return ErrAssignmentConflict
		}

		return u.assignmentRepo.Create(tx, assignment)
	})
	if err != nil {
		if !isKnownAssignmentError(err) {
			u.log.Warnf("Failed to create assignment: %+v", err)
		}
		return nil, err
	}

	return u.reload(ctx, assignment)
}

func (u *assignmentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AssignmentResponse, error) {
	assignment, err := u.assignmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find assignment %s: %+v", id, err)
		return nil, err
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound
	}
	return u.withDoctorName(converter.AssignmentToResponse(assignment)), nil
}

func (u *assignmentUsecase) List(ctx context.Context, filter *entity.AssignmentFilter) (*dto.AssignmentListResponse, error) {
	assignments, err := u.assignmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list assignments: %+v", err)
		return nil, err
	}

	responses := converter.AssignmentsToResponses(assignments)
	for i := range responses {
		u.withDoctorName(&responses[i])
	}

	return &dto.AssignmentListResponse{
		Assignments: responses,
		Total:       len(responses),
	}, nil
}

func (u *assignmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error) {
	weekday, startTime, endTime, err := normalizeWindow(req.Weekday, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	doctor := u.directory.FindByRUT(req.DoctorRUT)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	specialty := req.Specialty
	if specialty == "" {
		specialty = doctor.Specialty
	}

	var assignment *entity.Assignment
	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assignment, err = u.assignmentRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if assignment == nil {
			return ErrAssignmentNotFound
		}

		room, err := u.roomRepo.FindByID(tx, req.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return ErrRoomNotFound
		}

		existing, err := u.assignmentRepo.FindByRoomAndWeekdayForUpdate(tx, req.RoomID, weekday)
		if err != nil {
			return err
		}
		// The assignment being edited is excluded from the conflict set,
		// otherwise every edit would collide with its own prior state.
		conflict, err := u.engine.FindConflict(existing, startTime, endTime, id)
		if err != nil {
			return ErrInvalidTimeFormat
		}
		if conflict != nil {
			return ErrAssignmentConflict
		}

		assignment.DoctorRUT = req.DoctorRUT
		assignment.RoomID = req.RoomID
		assignment.Weekday = weekday
		assignment.StartTime = startTime
		assignment.EndTime = endTime
		assignment.Specialty = specialty
		assignment.RoomType = room.Type
		return u.assignmentRepo.Update(tx, assignment)
	})
	if err != nil {
		if !isKnownAssignmentError(err) {
			u.log.Warnf("Failed to update assignment %s: %+v", id, err)
		}
		return nil, err
	}

	return u.reload(ctx, assignment)
}

func (u *assignmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.assignmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete assignment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func (u *assignmentUsecase) Availability(ctx context.Context, roomID uuid.UUID, weekday string) (*dto.AvailabilityResponse, error) {
	day := entity.NormalizeWeekday(weekday)
	if day == "" {
		return nil, ErrInvalidWeekday
	}

	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	assignments, err := u.assignmentRepo.FindAll(u.db.WithContext(ctx), &entity.AssignmentFilter{
		RoomID:  roomID,
		Weekday: day,
	})
	if err != nil {
		u.log.Warnf("Failed to load occupancy for room %s %s: %+v", roomID, day, err)
		return nil, err
	}

	return &dto.AvailabilityResponse{
		RoomID:      roomID,
		Weekday:     day,
		SlotMinutes: u.engine.SlotMinutes(),
		Slots:       u.engine.BuildGrid(assignments),
	}, nil
}

// reload fetches the stored assignment with its room so responses carry
// the denormalized display fields.
func (u *assignmentUsecase) reload(ctx context.Context, assignment *entity.Assignment) (*dto.AssignmentResponse, error) {
	full, err := u.assignmentRepo.FindByID(u.db.WithContext(ctx), assignment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload assignment %s: %+v", assignment.ID, err)
		return u.withDoctorName(converter.AssignmentToResponse(assignment)), nil
	}
	return u.withDoctorName(converter.AssignmentToResponse(full)), nil
}

func (u *assignmentUsecase) withDoctorName(response *dto.AssignmentResponse) *dto.AssignmentResponse {
	if doctor := u.directory.FindByRUT(response.DoctorRUT); doctor != nil {
		response.DoctorName = doctor.Name
	}
	return response
}

func isKnownAssignmentError(err error) bool {
	return errors.Is(err, ErrAssignmentNotFound) ||
		errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrAssignmentConflict) ||
		errors.Is(err, ErrInvalidTimeFormat)
}
