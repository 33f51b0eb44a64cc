package recaperrors

import (
	"go-absensi/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidPeriod,
		"Invalid month or year",
		http.StatusBadRequest,
	)
	ErrMissingConfiguration = apperror.New(
		apperror.CodeMissingConfiguration,
		"Attendance settings have not been configured",
		http.StatusInternalServerError,
	)
)
