package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salesboost/salesboost-api/internal/api/handler/v1/response"
	"github.com/salesboost/salesboost-api/internal/api/middleware"
	"github.com/salesboost/salesboost-api/internal/domain"
)

func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	rawUserID, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrWrongCredentials(errors.New("missing user in context"))
	}

	userID, ok := rawUserID.(uint)
	if !ok {
		return domain.User{}, response.ErrWrongCredentials(errors.New("invalid user in context"))
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("getUserFromContext -> uSvc.GetUser -> %w", err))
	}

	return user, nil
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %w", name, err)
	}

	return uint(value), nil
}
