package api

import (
	"errors"

	"warung-loyalty/internal/pkg/errs"
)

func isDomainValidation(err error) bool {
	return errors.Is(err, errs.ErrDomainValidation)
}
