package usecase

import (
	"context"
	"errors"
	"strings"

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
	ErrInvalidRoomType = errors.New("invalid room type")
	ErrUnknownFloor    = errors.New("unknown floor")
)

type RoomUsecase interface {
	Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error)
	List(ctx context.Context) (*dto.RoomListResponse, error)
	ListByFloor(ctx context.Context, floor int) (*dto.RoomListResponse, error)
	Floors(ctx context.Context) *dto.FloorListResponse
	SuggestFloor(ctx context.Context, specialty string) (*dto.FloorSuggestionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	roomRepo repository.RoomRepository
	floors   []int
	mapper   *service.FloorMapper
}

func NewRoomUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	floors []int,
	mapper *service.FloorMapper,
) RoomUsecase {
	return &roomUsecase{
		db:       db,
		log:      log,
		roomRepo: roomRepo,
		floors:   floors,
		mapper:   mapper,
	}
}

func (u *roomUsecase) knownFloor(floor int) bool {
	for _, f := range u.floors {
		if f == floor {
			return true
		}
	}
	return false
}

func (u *roomUsecase) Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	roomType := entity.RoomType(req.Type)
	if !roomType.IsValid() {
		return nil, ErrInvalidRoomType
	}
	if !u.knownFloor(req.Floor) {
		return nil, ErrUnknownFloor
	}

	// Room numbers are administratively assigned; duplicates are allowed.
	room := &entity.Room{
		Number:      req.Number,
		Floor:       req.Floor,
		Type:        roomType,
		Specialty:   req.Specialty,
		Description: req.Description,
	}

	if err := u.roomRepo.Create(u.db.WithContext(ctx), room); err != nil {
		u.log.Warnf("Failed to create room: %+v", err)
		return nil, err
	}

	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", id, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) List(ctx context.Context) (*dto.RoomListResponse, error) {
	rooms, err := u.roomRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list rooms: %+v", err)
		return nil, err
	}
	return &dto.RoomListResponse{
		Rooms: converter.RoomsToResponses(rooms),
		Total: len(rooms),
	}, nil
}

func (u *roomUsecase) ListByFloor(ctx context.Context, floor int) (*dto.RoomListResponse, error) {
	rooms, err := u.roomRepo.FindByFloor(u.db.WithContext(ctx), floor)
	if err != nil {
		u.log.Warnf("Failed to list rooms on floor %d: %+v", floor, err)
		return nil, err
	}
	return &dto.RoomListResponse{
		Rooms: converter.RoomsToResponses(rooms),
		Total: len(rooms),
	}, nil
}

func (u *roomUsecase) Floors(ctx context.Context) *dto.FloorListResponse {
	return &dto.FloorListResponse{Floors: u.floors}
}

// SuggestFloor maps a chosen specialty to its floor. No keyword match
// leaves the floor null rather than erroring.
func (u *roomUsecase) SuggestFloor(ctx context.Context, specialty string) (*dto.FloorSuggestionResponse, error) {
	if strings.TrimSpace(specialty) == "" {
		return nil, ErrSpecialtyRequired
	}

	response := &dto.FloorSuggestionResponse{Specialty: specialty}
	if floor, ok := u.mapper.SuggestFloor(specialty); ok {
		response.Floor = &floor
	}
	return response, nil
}

func (u *roomUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	roomType := entity.RoomType(req.Type)
	if !roomType.IsValid() {
		return nil, ErrInvalidRoomType
	}
	if !u.knownFloor(req.Floor) {
		return nil, ErrUnknownFloor
	}

	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", id, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	room.Number = req.Number
	room.Floor = req.Floor
	room.Type = roomType
	room.Specialty = req.Specialty
	room.Description = req.Description

	if err := u.roomRepo.Update(u.db.WithContext(ctx), room); err != nil {
		u.log.Warnf("Failed to update room %s: %+v", id, err)
		return nil, err
	}

	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.roomRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete room %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
