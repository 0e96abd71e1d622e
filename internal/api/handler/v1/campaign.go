package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/salesboost/salesboost-api/internal/api/handler/v1/request"
	"github.com/salesboost/salesboost-api/internal/api/handler/v1/response"
	"github.com/salesboost/salesboost-api/internal/domain"
	"github.com/salesboost/salesboost-api/internal/service"
)

type CampaignService interface {
	CreateCampaign(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	GetCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id uint) (domain.Campaign, error)
	CompleteAction(ctx context.Context, userID, actionID uint) (domain.UserAction, error)
	UncompleteAction(ctx context.Context, userID, actionID uint) (domain.UserAction, error)
}

type CampaignHandler struct {
	svc  CampaignService
	uSvc UserService
}

func NewCampaignHandler(svc CampaignService, uSvc UserService) *CampaignHandler {
	return &CampaignHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetCampaigns godoc
// @Summary      List campaigns
// @Tags         campaigns
// @Produce      json
// @Success      200  {array}   domain.Campaign
// @Failure      500  {object}  response.Err
// @Router       /campaigns [get]
// @Security     BearerAuth
func (h *CampaignHandler) HandleGetCampaigns(ctx *gin.Context) {
	campaigns, err := h.svc.GetCampaigns(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCampaigns -> h.svc.GetCampaigns -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, campaigns)
}

// HandleGetCampaign godoc
// @Summary      Get a campaign with its challenges and actions
// @Tags         campaigns
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Success      200  {object}  domain.Campaign
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns/{campaignID} [get]
// @Security     BearerAuth
func (h *CampaignHandler) HandleGetCampaign(ctx *gin.Context) {
	campaignID, err := parseUintParam(ctx, "campaignID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	campaign, err := h.svc.GetCampaign(ctx.Request.Context(), campaignID)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", campaignID))
			return
		}

		err = fmt.Errorf("v1.HandleGetCampaign -> h.svc.GetCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, campaign)
}

// HandleCreateCampaign godoc
// @Summary      Create a campaign with challenges and actions
// @Description  Only managers can create campaigns.
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCampaignRequest  true  "request body"
// @Success      201      {object}  domain.Campaign
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /campaigns [post]
// @Security     BearerAuth
func (h *CampaignHandler) HandleCreateCampaign(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if user.Role != domain.RoleManager {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not a manager", user.ID)))
		return
	}

	var req request.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	campaign, err := campaignFromRequest(req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateCampaign(ctx.Request.Context(), campaign)
	if err != nil {
		if errors.Is(err, service.ErrEmptyDateRange) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateCampaign -> h.svc.CreateCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleCompleteAction godoc
// @Summary      Mark an action as completed by the current user
// @Tags         actions
// @Produce      json
// @Param        actionID  path      int  true  "action ID"
// @Success      200  {object}  domain.UserAction
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /actions/{actionID}/complete [post]
// @Security     BearerAuth
func (h *CampaignHandler) HandleCompleteAction(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	actionID, err := parseUintParam(ctx, "actionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ua, err := h.svc.CompleteAction(ctx.Request.Context(), user.ID, actionID)
	if err != nil {
		if errors.Is(err, service.ErrActionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("action", "ID", actionID))
			return
		}

		err = fmt.Errorf("v1.HandleCompleteAction -> h.svc.CompleteAction -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, ua)
}

// HandleUncompleteAction godoc
// @Summary      Revert a completed action for the current user
// @Tags         actions
// @Produce      json
// @Param        actionID  path      int  true  "action ID"
// @Success      200  {object}  domain.UserAction
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /actions/{actionID}/complete [delete]
// @Security     BearerAuth
func (h *CampaignHandler) HandleUncompleteAction(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	actionID, err := parseUintParam(ctx, "actionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ua, err := h.svc.UncompleteAction(ctx.Request.Context(), user.ID, actionID)
	if err != nil {
		if errors.Is(err, service.ErrActionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("action", "ID", actionID))
			return
		}

		err = fmt.Errorf("v1.HandleUncompleteAction -> h.svc.UncompleteAction -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, ua)
}

func campaignFromRequest(req request.CreateCampaignRequest) (domain.Campaign, error) {
	startDate, err := time.Parse(request.DateLayout, req.StartDate)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("invalid start date: %w", err)
	}

	endDate, err := time.Parse(request.DateLayout, req.EndDate)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("invalid end date: %w", err)
	}

	campaign := domain.Campaign{
		Name:           req.Name,
		Description:    req.Description,
		StartDate:      startDate,
		EndDate:        endDate,
		BonusesEnabled: req.BonusesEnabled,
	}

	for _, c := range req.Challenges {
		date, err := time.Parse(request.DateLayout, c.Date)
		if err != nil {
			return domain.Campaign{}, fmt.Errorf("invalid challenge date: %w", err)
		}

		value, err := decimal.NewFromString(c.ValueInEuro)
		if err != nil {
			return domain.Campaign{}, fmt.Errorf("invalid challenge value: %w", err)
		}

		challenge := domain.Challenge{
			Date:        date,
			Title:       c.Title,
			ValueInEuro: value,
		}
		for _, a := range c.Actions {
			challenge.Actions = append(challenge.Actions, domain.Action{
				Type:         domain.ActionType(a.Type),
				Title:        a.Title,
				DisplayOrder: a.DisplayOrder,
			})
		}

		campaign.Challenges = append(campaign.Challenges, challenge)
	}

	return campaign, nil
}
