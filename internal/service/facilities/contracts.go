package facilities

import (
	"context"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// FacilityRepository интерфейс репозитория спортзалов, кортов и видов спорта
type FacilityRepository interface {
	CreateGym(ctx context.Context, gym *domain.Gym) (*domain.Gym, error)
	GetGym(ctx context.Context, id int64) (*domain.Gym, error)
	ListGyms(ctx context.Context) ([]*domain.Gym, error)
	UpdateGym(ctx context.Context, gym *domain.Gym) error
	DeleteGym(ctx context.Context, id int64) error

	CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error)
	GetCourt(ctx context.Context, ref domain.CourtRef) (*domain.Court, error)
	ListCourts(ctx context.Context, gymID int64) ([]*domain.Court, error)
	UpdateCourt(ctx context.Context, court *domain.Court) error
	UpdateCourtStatus(ctx context.Context, ref domain.CourtRef, status domain.CourtStatus) error
	SetCourtSports(ctx context.Context, ref domain.CourtRef, sportIDs []int64) error
	DeleteCourt(ctx context.Context, ref domain.CourtRef) error

	CreateSport(ctx context.Context, sport *domain.Sport) (*domain.Sport, error)
	ListSports(ctx context.Context) ([]*domain.Sport, error)
	UpdateSport(ctx context.Context, sport *domain.Sport) error
	DeleteSport(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
