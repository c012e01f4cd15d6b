package manage_facilities

import (
	"context"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/internal/service/facilities/models"
)

type FacilityService interface {
	CreateGym(ctx context.Context, req *models.GymRequest) (*models.GymResponse, error)
	GetGym(ctx context.Context, id int64) (*models.GymResponse, error)
	ListGyms(ctx context.Context) ([]models.GymResponse, error)
	UpdateGym(ctx context.Context, id int64, req *models.GymRequest) (*models.GymResponse, error)
	DeleteGym(ctx context.Context, id int64) error

	CreateCourt(ctx context.Context, gymID int64, req *models.CreateCourtRequest) (*models.CourtResponse, error)
	ListCourts(ctx context.Context, gymID int64) ([]models.CourtResponse, error)
	UpdateCourt(ctx context.Context, ref domain.CourtRef, req *models.UpdateCourtRequest) (*models.CourtResponse, error)
	ChangeCourtStatus(ctx context.Context, ref domain.CourtRef, req *models.CourtStatusRequest) error
	SetCourtSports(ctx context.Context, ref domain.CourtRef, req *models.CourtSportsRequest) error
	DeleteCourt(ctx context.Context, ref domain.CourtRef) error

	CreateSport(ctx context.Context, req *models.SportRequest) (*models.SportResponse, error)
	ListSports(ctx context.Context) ([]models.SportResponse, error)
	UpdateSport(ctx context.Context, id int64, req *models.SportRequest) (*models.SportResponse, error)
	DeleteSport(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
