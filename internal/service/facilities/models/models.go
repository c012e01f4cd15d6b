package models

import "github.com/m04kA/SMC-GymBookingService/internal/domain"

// Request модели

// GymRequest данные спортзала
type GymRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Address  string `json:"address" validate:"max=500"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

// CreateCourtRequest данные нового корта
type CreateCourtRequest struct {
	Number        int     `json:"number" validate:"required,gt=0"`
	Capacity      int     `json:"capacity" validate:"gte=0"`
	FloorType     string  `json:"floorType" validate:"max=100"`
	Covered       bool    `json:"covered"`
	Status        string  `json:"status" validate:"omitempty,oneof=available maintenance restricted"`
	AllowedSports []int64 `json:"allowedSports" validate:"dive,gt=0"`
}

// UpdateCourtRequest характеристики корта
type UpdateCourtRequest struct {
	Capacity  int    `json:"capacity" validate:"gte=0"`
	FloorType string `json:"floorType" validate:"max=100"`
	Covered   bool   `json:"covered"`
	Status    string `json:"status" validate:"required,oneof=available maintenance restricted"`
}

// CourtStatusRequest новый статус корта
type CourtStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available maintenance restricted"`
}

// CourtSportsRequest список разрешенных видов спорта
type CourtSportsRequest struct {
	SportIDs []int64 `json:"sportIds" validate:"required,dive,gt=0"`
}

// SportRequest данные вида спорта
type SportRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	MaxPlayers int    `json:"maxPlayers" validate:"gte=0"`
}

// Response модели

// GymResponse спортзал
type GymResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
}

// CourtResponse корт
type CourtResponse struct {
	GymID         int64   `json:"gymId"`
	Number        int     `json:"number"`
	Capacity      int     `json:"capacity"`
	FloorType     string  `json:"floorType"`
	Covered       bool    `json:"covered"`
	Status        string  `json:"status"`
	AllowedSports []int64 `json:"allowedSports"`
}

// SportResponse вид спорта
type SportResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	MaxPlayers int    `json:"maxPlayers"`
}

// Методы конвертации

// FromDomainGym конвертирует спортзал
func FromDomainGym(g *domain.Gym) *GymResponse {
	if g == nil {
		return nil
	}
	return &GymResponse{ID: g.ID, Name: g.Name, Address: g.Address, Capacity: g.Capacity}
}

// FromDomainGyms конвертирует список спортзалов
func FromDomainGyms(gyms []*domain.Gym) []GymResponse {
	result := make([]GymResponse, 0, len(gyms))
	for _, g := range gyms {
		result = append(result, *FromDomainGym(g))
	}
	return result
}

// FromDomainCourt конвертирует корт
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}
	sports := c.AllowedSports
	if sports == nil {
		sports = []int64{}
	}
	return &CourtResponse{
		GymID:         c.GymID,
		Number:        c.Number,
		Capacity:      c.Capacity,
		FloorType:     c.FloorType,
		Covered:       c.Covered,
		Status:        string(c.Status),
		AllowedSports: sports,
	}
}

// FromDomainCourts конвертирует список кортов
func FromDomainCourts(courts []*domain.Court) []CourtResponse {
	result := make([]CourtResponse, 0, len(courts))
	for _, c := range courts {
		result = append(result, *FromDomainCourt(c))
	}
	return result
}

// FromDomainSports конвертирует список видов спорта
func FromDomainSports(sports []*domain.Sport) []SportResponse {
	result := make([]SportResponse, 0, len(sports))
	for _, s := range sports {
		result = append(result, SportResponse{ID: s.ID, Name: s.Name, MaxPlayers: s.MaxPlayers})
	}
	return result
}
