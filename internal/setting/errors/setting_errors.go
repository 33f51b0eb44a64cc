package settingerrors

import (
	"go-absensi/internal/shared/apperror"
	"net/http"
)

var (
	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance setting not found",
		http.StatusNotFound,
	)
	ErrUnknownWeekday = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown weekday name in workdays",
		http.StatusBadRequest,
	)
)
