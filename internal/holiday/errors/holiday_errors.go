package holidayerrors

import (
	"go-absensi/internal/shared/apperror"
	"net/http"
)

var (
	ErrHolidayNotFound = apperror.New(
		apperror.CodeNotFound,
		"Holiday not found",
		http.StatusNotFound,
	)
	ErrInvalidHolidayDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid holiday date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
