package attendanceerrors

import (
	"go-absensi/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid timestamp, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid period range, 'from' must be before 'to'",
		http.StatusBadRequest,
	)
)
