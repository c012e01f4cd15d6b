package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые репозитории переводят в доменные ошибки
const (
	CodeUniqueViolation     = pq.ErrorCode("23505")
	CodeForeignKeyViolation = pq.ErrorCode("23503")
	CodeExclusionViolation  = pq.ErrorCode("23P01")
	CodeCheckViolation      = pq.ErrorCode("23514")
)

// Code код ошибки PostgreSQL или пустая строка
func Code(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return Code(err) == CodeUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return Code(err) == CodeForeignKeyViolation
}

func IsExclusionViolation(err error) bool {
	return Code(err) == CodeExclusionViolation
}

func IsCheckViolation(err error) bool {
	return Code(err) == CodeCheckViolation
}
