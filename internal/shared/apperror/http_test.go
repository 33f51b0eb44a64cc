package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP_AppError(t *testing.T) {
	got := ToHTTP(ErrNotFound)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, CodeNotFound, got.Code)

	got = ToHTTP(ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, CodeInvalidInput, got.Code)
}

func TestToHTTP_UnknownErrorCollapsesToInternal(t *testing.T) {
	got := ToHTTP(errors.New("pq: connection reset"))
	assert.Equal(t, ErrInternal.HTTPStatus, got.Status)
	assert.Equal(t, ErrInternal.Code, got.Code)
	// detail internal tidak boleh bocor ke caller
	assert.Equal(t, ErrInternal.Message, got.Message)
}

func TestToHTTP_WrappedAppError(t *testing.T) {
	wrapped := Wrap(errors.New("record not found"), CodeNotFound, "Holiday not found", http.StatusNotFound)

	got := ToHTTP(wrapped)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "Holiday not found", got.Message)
}

func TestMapValidationError_RequiredField(t *testing.T) {
	Init()

	var req struct {
		Nama string `json:"nama" binding:"required"`
		NIP  string `json:"nip" binding:"required"`
	}
	req.Nama = "Alice"
	err := binding.Validator.ValidateStruct(&req)
	assert.Error(t, err)

	mapped := MapValidationError(err)
	httpErr := ToHTTP(mapped)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, CodeInvalidInput, httpErr.Code)
	assert.Equal(t, "Nip is required", httpErr.Message)
}

func TestMapValidationError_NonValidatorError(t *testing.T) {
	mapped := MapValidationError(errors.New("unexpected EOF"))

	httpErr := ToHTTP(mapped)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, CodeInvalidInput, httpErr.Code)
}
