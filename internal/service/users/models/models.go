package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

var (
	// ErrUnknownRole возвращается для неизвестной роли
	ErrUnknownRole = errors.New("unknown user role")
)

// Request модели

// ProfileRequest поля профиля; используются только поля выбранной роли
type ProfileRequest struct {
	Role              string `json:"role" validate:"required,oneof=student employee admin"`
	Enrollment        string `json:"enrollment,omitempty" validate:"required_if=Role student"`
	Course            string `json:"course,omitempty"`
	ScholarshipHolder bool   `json:"scholarshipHolder,omitempty"`
	Department        string `json:"department,omitempty" validate:"required_if=Role employee"`
	Position          string `json:"position,omitempty"`
	AccessLevel       int    `json:"accessLevel,omitempty" validate:"gte=0"`
}

// CreateUserRequest запрос на создание пользователя
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	CPF      string `json:"cpf" validate:"required,numeric,len=11"`
	Password string `json:"password" validate:"required,min=6"`
	ProfileRequest
}

// UpdateUserRequest запрос на обновление пользователя; пустой пароль не меняется
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	CPF      string `json:"cpf" validate:"required,numeric,len=11"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	ProfileRequest
}

// ToDomainProfile собирает профиль по роли
func (p *ProfileRequest) ToDomainProfile() (domain.Profile, error) {
	switch domain.Role(p.Role) {
	case domain.RoleStudent:
		return domain.StudentProfile{
			Enrollment:        p.Enrollment,
			Course:            p.Course,
			ScholarshipHolder: p.ScholarshipHolder,
		}, nil
	case domain.RoleEmployee:
		return domain.EmployeeProfile{
			Department: p.Department,
			Position:   p.Position,
		}, nil
	case domain.RoleAdmin:
		return domain.AdminProfile{AccessLevel: p.AccessLevel}, nil
	default:
		return nil, ErrUnknownRole
	}
}

// Response модели

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	CPF               string    `json:"cpf"`
	Status            string    `json:"status"`
	Role              string    `json:"role"`
	Enrollment        string    `json:"enrollment,omitempty"`
	Course            string    `json:"course,omitempty"`
	ScholarshipHolder bool      `json:"scholarshipHolder,omitempty"`
	Department        string    `json:"department,omitempty"`
	Position          string    `json:"position,omitempty"`
	AccessLevel       int       `json:"accessLevel,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// FromDomainUser конвертирует domain модель в DTO без хеша пароля
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	resp := &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CPF:       u.CPF,
		Status:    string(u.Status),
		Role:      string(u.Role()),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}

	switch p := u.Profile.(type) {
	case domain.StudentProfile:
		resp.Enrollment = p.Enrollment
		resp.Course = p.Course
		resp.ScholarshipHolder = p.ScholarshipHolder
	case domain.EmployeeProfile:
		resp.Department = p.Department
		resp.Position = p.Position
	case domain.AdminProfile:
		resp.AccessLevel = p.AccessLevel
	}

	return resp
}

// FromDomainUserList конвертирует список пользователей
func FromDomainUserList(users []*domain.User) *UserListResponse {
	resp := &UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		if r := FromDomainUser(u); r != nil {
			resp.Users = append(resp.Users, *r)
		}
	}
	return resp
}
