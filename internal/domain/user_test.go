package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProfile(t *testing.T) {
	p, err := DecodeProfile(RoleStudent, []byte(`{"enrollment":"2021001","course":"Physics","scholarship_holder":true}`))
	require.NoError(t, err)

	student, ok := p.(StudentProfile)
	require.True(t, ok)
	assert.Equal(t, "2021001", student.Enrollment)
	assert.True(t, student.ScholarshipHolder)

	p, err = DecodeProfile(RoleEmployee, []byte(`{"department":"Sports","position":"Coach"}`))
	require.NoError(t, err)
	assert.Equal(t, EmployeeProfile{Department: "Sports", Position: "Coach"}, p)

	p, err = DecodeProfile(RoleAdmin, nil)
	require.NoError(t, err)
	assert.Equal(t, AdminProfile{}, p)
}

func TestDecodeProfile_Errors(t *testing.T) {
	_, err := DecodeProfile("visitor", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = DecodeProfile(RoleStudent, []byte(`{"enrollment":`))
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestEncodeProfile_RoundTrip(t *testing.T) {
	role, raw, err := EncodeProfile(EmployeeProfile{Department: "Maintenance", Position: "Technician"})
	require.NoError(t, err)
	assert.Equal(t, RoleEmployee, role)

	p, err := DecodeProfile(role, raw)
	require.NoError(t, err)
	assert.Equal(t, EmployeeProfile{Department: "Maintenance", Position: "Technician"}, p)

	_, _, err = EncodeProfile(nil)
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestUser_Permissions(t *testing.T) {
	scholar := &User{Status: UserActive, Profile: StudentProfile{ScholarshipHolder: true}}
	student := &User{Status: UserActive, Profile: StudentProfile{}}
	employee := &User{Status: UserInactive, Profile: EmployeeProfile{}}

	assert.True(t, scholar.CanBookOnBehalf())
	assert.False(t, scholar.IsStaff())
	assert.False(t, student.CanBookOnBehalf())
	assert.True(t, employee.CanBookOnBehalf())
	assert.False(t, employee.IsActive())
	assert.Equal(t, UserActive, employee.Status.Toggled())
	assert.Equal(t, Role(""), (&User{}).Role())
}
