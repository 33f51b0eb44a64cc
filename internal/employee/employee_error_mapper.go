package employee

import (
	"errors"
	"strings"

	employeeerrors "go-absensi/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_karyawan_nip":
				return employeeerrors.ErrNIPAlreadyExists
			case "uq_karyawan_email":
				return employeeerrors.ErrEmailAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_karyawan_nip") {
		return employeeerrors.ErrNIPAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_karyawan_email") {
		return employeeerrors.ErrEmailAlreadyExists
	}

	return err
}
