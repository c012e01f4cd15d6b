package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Role роль пользователя; определяет тип профиля
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// IsValid проверяет, что роль известна
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// IsStaff сотрудники и администраторы управляют площадками и мероприятиями
func (r Role) IsStaff() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// UserStatus статус учетной записи
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// Toggled противоположный статус
func (s UserStatus) Toggled() UserStatus {
	if s == UserActive {
		return UserInactive
	}
	return UserActive
}

// Profile данные, специфичные для роли. Реализации: StudentProfile, EmployeeProfile, AdminProfile.
type Profile interface {
	Role() Role
	isProfile()
}

// StudentProfile профиль студента; ScholarshipHolder может бронировать за других
type StudentProfile struct {
	Enrollment        string `json:"enrollment"`
	Course            string `json:"course"`
	ScholarshipHolder bool   `json:"scholarship_holder"`
}

func (StudentProfile) Role() Role { return RoleStudent }
func (StudentProfile) isProfile() {}

// EmployeeProfile профиль сотрудника
type EmployeeProfile struct {
	Department string `json:"department"`
	Position   string `json:"position"`
}

func (EmployeeProfile) Role() Role { return RoleEmployee }
func (EmployeeProfile) isProfile() {}

// AdminProfile профиль администратора
type AdminProfile struct {
	AccessLevel int `json:"access_level"`
}

func (AdminProfile) Role() Role { return RoleAdmin }
func (AdminProfile) isProfile() {}

// User пользователь системы
type User struct {
	ID           int64
	Name         string
	Email        string
	CPF          string
	PasswordHash string
	Status       UserStatus
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role роль по типу профиля
func (u *User) Role() Role {
	if u.Profile == nil {
		return ""
	}
	return u.Profile.Role()
}

// IsActive учетная запись активна
func (u *User) IsActive() bool {
	return u.Status == UserActive
}

// IsScholarshipHolder студент-стипендиат
func (u *User) IsScholarshipHolder() bool {
	p, ok := u.Profile.(StudentProfile)
	return ok && p.ScholarshipHolder
}

// IsStaff сотрудник или администратор
func (u *User) IsStaff() bool {
	return u.Role().IsStaff()
}

// CanBookOnBehalf бронировать за других могут стипендиаты и сотрудники
func (u *User) CanBookOnBehalf() bool {
	return u.IsScholarshipHolder() || u.IsStaff()
}

// DecodeProfile восстанавливает профиль по роли из JSON
func DecodeProfile(role Role, raw []byte) (Profile, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	switch role {
	case RoleStudent:
		var p StudentProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
		}
		return p, nil
	case RoleEmployee:
		var p EmployeeProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
		}
		return p, nil
	case RoleAdmin:
		var p AdminProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

// EncodeProfile сериализует профиль и возвращает его роль
func EncodeProfile(p Profile) (Role, []byte, error) {
	if p == nil {
		return "", nil, fmt.Errorf("%w: nil profile", ErrInvalidProfile)
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return p.Role(), raw, nil
}
