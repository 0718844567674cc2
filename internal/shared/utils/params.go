package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/shared/constants"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
)

// ParseIDParam parses a numeric entity id from a URL path parameter.
func ParseIDParam(c *gin.Context, paramName string) (int64, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewBadRequestError(constants.ErrMsgInvalidID)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError(constants.ErrMsgInvalidID, err.Error())
	}

	return id, nil
}

// BindJSON decodes the request body into obj and runs struct validation.
// Undecodable bodies become BadRequest, failed rules become Validation.
func BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return errors.NewBadRequestError(constants.ErrMsgInvalidRequestBody, err.Error())
	}
	return ValidateStruct(obj)
}
