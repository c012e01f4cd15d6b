package domain

// Actor пользователь, выполняющий запрос (из токена)
type Actor struct {
	UserID            int64
	Role              Role
	ScholarshipHolder bool
}

// IsStaff сотрудник или администратор
func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}

// IsAdmin администратор
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanOperate стипендиаты и сотрудники обслуживают брони других пользователей
func (a Actor) CanOperate() bool {
	return a.ScholarshipHolder || a.IsStaff()
}
