package controllers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "maintenance-system/pkg/errors"
)

// parseIDParam читает числовой path-параметр.
func parseIDParam(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewInvalidInputError("неверный параметр %q", name)
	}
	return id, nil
}
