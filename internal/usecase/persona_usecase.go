package usecase

import (
	"context"
	"errors"

	"box-scheduler-backend/internal/converter"
	"box-scheduler-backend/internal/delivery/dto"
	"box-scheduler-backend/internal/domain/entity"
	"box-scheduler-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPersonaNotFound = errors.New("persona not found")

// PersonaUsecase serves the legacy persona records. Kept for
// compatibility with the pre-scheduling deployments.
type PersonaUsecase interface {
	Create(ctx context.Context, req *dto.CreatePersonaRequest) (*dto.PersonaResponse, error)
	Get(ctx context.Context, id int) (*dto.PersonaResponse, error)
	List(ctx context.Context) (*dto.PersonaListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdatePersonaRequest) (*dto.PersonaResponse, error)
	Delete(ctx context.Context, id int) error
}

type personaUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	personaRepo repository.PersonaRepository
}

func NewPersonaUsecase(db *gorm.DB, log *logrus.Logger, personaRepo repository.PersonaRepository) PersonaUsecase {
	return &personaUsecase{
		db:          db,
		log:         log,
		personaRepo: personaRepo,
	}
}

func (u *personaUsecase) Create(ctx context.Context, req *dto.CreatePersonaRequest) (*dto.PersonaResponse, error) {
	persona := &entity.Persona{
		Name: req.Nombre,
		Age:  req.Edad,
	}
	if err := u.personaRepo.Create(u.db.WithContext(ctx), persona); err != nil {
		u.log.Warnf("Failed to create persona: %+v", err)
		return nil, err
	}
	return converter.PersonaToResponse(persona), nil
}

func (u *personaUsecase) Get(ctx context.Context, id int) (*dto.PersonaResponse, error) {
	persona, err := u.personaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find persona %d: %+v", id, err)
		return nil, err
	}
	if persona == nil {
		return nil, ErrPersonaNotFound
	}
	return converter.PersonaToResponse(persona), nil
}

func (u *personaUsecase) List(ctx context.Context) (*dto.PersonaListResponse, error) {
	personas, err := u.personaRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list personas: %+v", err)
		return nil, err
	}
	return &dto.PersonaListResponse{
		Personas: converter.PersonasToResponses(personas),
		Total:    len(personas),
	}, nil
}

func (u *personaUsecase) Update(ctx context.Context, id int, req *dto.UpdatePersonaRequest) (*dto.PersonaResponse, error) {
	persona, err := u.personaRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find persona %d: %+v", id, err)
		return nil, err
	}
	if persona == nil {
		return nil, ErrPersonaNotFound
	}

	persona.Name = req.Nombre
	persona.Age = req.Edad

	if err := u.personaRepo.Update(u.db.WithContext(ctx), persona); err != nil {
		u.log.Warnf("Failed to update persona %d: %+v", id, err)
		return nil, err
	}
	return converter.PersonaToResponse(persona), nil
}

func (u *personaUsecase) Delete(ctx context.Context, id int) error {
	affected, err := u.personaRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete persona %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPersonaNotFound
	}
	return nil
}
