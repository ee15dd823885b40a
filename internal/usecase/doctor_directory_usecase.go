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

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrSpecialtyRequired = errors.New("specialty is required")
)

type DoctorDirectoryUsecase interface {
	GetAll(ctx context.Context) *dto.DoctorListResponse
	Search(ctx context.Context, filter entity.DoctorFilter) *dto.DoctorSearchResponse
	GetByRUT(ctx context.Context, rut string) (*dto.DoctorResponse, error)
	GetBySpecialty(ctx context.Context, specialty string) (*dto.DoctorSearchResponse, error)
	GetSpecialties(ctx context.Context) *dto.SpecialtyListResponse
	GetRooms(ctx context.Context) *dto.RoomLabelListResponse
	GetSpecialtyStats(ctx context.Context) *dto.SpecialtyStatsResponse
}

type doctorDirectoryUsecase struct {
	log       *logrus.Logger
	directory repository.DoctorDirectory
	cache     *service.DirectoryCache
}

func NewDoctorDirectoryUsecase(
	log *logrus.Logger,
	directory repository.DoctorDirectory,
	cache *service.DirectoryCache,
) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:       log,
		directory: directory,
		cache:     cache,
	}
}

func (u *doctorDirectoryUsecase) GetAll(ctx context.Context) *dto.DoctorListResponse {
	doctors := u.directory.GetAll()
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}
}

func (u *doctorDirectoryUsecase) Search(ctx context.Context, filter entity.DoctorFilter) *dto.DoctorSearchResponse {
	doctors := u.directory.Search(filter)
	return &dto.DoctorSearchResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
		Filters: dto.SearchFilters{
			Text:      filter.Text,
			Specialty: filter.Specialty,
			Weekday:   filter.Weekday,
			Room:      filter.Room,
		},
	}
}

func (u *doctorDirectoryUsecase) GetByRUT(ctx context.Context, rut string) (*dto.DoctorResponse, error) {
	doctor := u.directory.FindByRUT(rut)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorDirectoryUsecase) GetBySpecialty(ctx context.Context, specialty string) (*dto.DoctorSearchResponse, error) {
	if strings.TrimSpace(specialty) == "" {
		return nil, ErrSpecialtyRequired
	}
	return u.Search(ctx, entity.DoctorFilter{Specialty: specialty}), nil
}

func (u *doctorDirectoryUsecase) GetSpecialties(ctx context.Context) *dto.SpecialtyListResponse {
	var specialties []string
	if !u.cache.Get(ctx, service.CacheKeySpecialties, &specialties) {
		specialties = u.directory.Specialties()
		u.cache.Set(ctx, service.CacheKeySpecialties, specialties)
	}
	return &dto.SpecialtyListResponse{
		Specialties: specialties,
		Total:       len(specialties),
	}
}

func (u *doctorDirectoryUsecase) GetRooms(ctx context.Context) *dto.RoomLabelListResponse {
	var rooms []string
	if !u.cache.Get(ctx, service.CacheKeyRooms, &rooms) {
		rooms = u.directory.Rooms()
		u.cache.Set(ctx, service.CacheKeyRooms, rooms)
	}
	return &dto.RoomLabelListResponse{
		Rooms: rooms,
		Total: len(rooms),
	}
}

func (u *doctorDirectoryUsecase) GetSpecialtyStats(ctx context.Context) *dto.SpecialtyStatsResponse {
	var stats []entity.SpecialtyStat
	if !u.cache.Get(ctx, service.CacheKeySpecialtyStats, &stats) {
		stats = u.directory.SpecialtyStats()
		u.cache.Set(ctx, service.CacheKeySpecialtyStats, stats)
	}
	return &dto.SpecialtyStatsResponse{
		Stats:        converter.SpecialtyStatsToResponses(stats),
		TotalDoctors: len(u.directory.GetAll()),
	}
}
