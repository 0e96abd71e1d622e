package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salesboost/salesboost-api/internal/api/handler/v1/response"
	"github.com/salesboost/salesboost-api/internal/domain"
)

type EarningsService interface {
	GetEarnings(ctx context.Context, userID, campaignID uint) (domain.EarningsData, error)
}

type EarningsHandler struct {
	svc  EarningsService
	uSvc UserService
}

func NewEarningsHandler(svc EarningsService, uSvc UserService) *EarningsHandler {
	return &EarningsHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetUserEarnings godoc
// @Summary      Get a user's earnings on a campaign
// @Description  FBOs can only read their own earnings; managers can read anyone's.
// @Tags         earnings
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Param        userID      path      int  true  "user ID"
// @Success      200  {object}  domain.EarningsData
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns/{campaignID}/users/{userID}/earnings [get]
// @Security     BearerAuth
func (h *EarningsHandler) HandleGetUserEarnings(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	campaignID, err := parseUintParam(ctx, "campaignID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	userID, err := parseUintParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if user.Role != domain.RoleManager && user.ID != userID {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v cannot read another user's earnings", user.ID)))
		return
	}

	earnings, err := h.svc.GetEarnings(ctx.Request.Context(), userID, campaignID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetUserEarnings -> h.svc.GetEarnings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, earnings)
}

// HandleGetMyEarnings godoc
// @Summary      Get the current user's earnings on a campaign
// @Tags         earnings
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Success      200  {object}  domain.EarningsData
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns/{campaignID}/my-earnings [get]
// @Security     BearerAuth
func (h *EarningsHandler) HandleGetMyEarnings(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	campaignID, err := parseUintParam(ctx, "campaignID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	earnings, err := h.svc.GetEarnings(ctx.Request.Context(), user.ID, campaignID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMyEarnings -> h.svc.GetEarnings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, earnings)
}
