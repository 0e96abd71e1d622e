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

type BonusService interface {
	DeclareBonus(ctx context.Context, userID, campaignID uint, bonusDate time.Time, bonusType domain.BonusType) (domain.DailyBonus, error)
	ReviewBonus(ctx context.Context, bonusID uint, status domain.BonusStatus) (domain.DailyBonus, error)
	GetBonuses(ctx context.Context, userID, campaignID uint) ([]domain.DailyBonus, error)
	SetBonusConfig(ctx context.Context, conf domain.CampaignBonusConfig) (domain.CampaignBonusConfig, error)
}

type BonusHandler struct {
	svc  BonusService
	uSvc UserService
}

func NewBonusHandler(svc BonusService, uSvc UserService) *BonusHandler {
	return &BonusHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleDeclareBonus godoc
// @Summary      Declare a daily bonus on a campaign
// @Description  The bonus amount is frozen from the campaign's bonus config at creation time.
// @Tags         bonuses
// @Accept       json
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Param        request     body      request.DeclareBonusRequest  true  "request body"
// @Success      201  {object}  domain.DailyBonus
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns/{campaignID}/bonuses [post]
// @Security     BearerAuth
func (h *BonusHandler) HandleDeclareBonus(ctx *gin.Context) {
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

	var req request.DeclareBonusRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	bonusDate, err := time.Parse(request.DateLayout, req.BonusDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid bonus date: %w", err)))
		return
	}

	bonus, err := h.svc.DeclareBonus(ctx.Request.Context(), user.ID, campaignID, bonusDate, domain.BonusType(req.BonusType))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampaignNotFound):
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", campaignID))
		case errors.Is(err, service.ErrBonusesDisabled), errors.Is(err, service.ErrBonusConfigNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleDeclareBonus -> h.svc.DeclareBonus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, bonus)
}

// HandleGetBonuses godoc
// @Summary      List the current user's bonuses on a campaign
// @Tags         bonuses
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Success      200  {array}   domain.DailyBonus
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns/{campaignID}/bonuses [get]
// @Security     BearerAuth
func (h *BonusHandler) HandleGetBonuses(ctx *gin.Context) {
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

	bonuses, err := h.svc.GetBonuses(ctx.Request.Context(), user.ID, campaignID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetBonuses -> h.svc.GetBonuses -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, bonuses)
}

// HandleReviewBonus godoc
// @Summary      Approve or reject a pending bonus
// @Description  Only managers can review bonuses.
// @Tags         bonuses
// @Accept       json
// @Produce      json
// @Param        bonusID  path      int  true  "bonus ID"
// @Param        request  body      request.ReviewBonusRequest  true  "request body"
// @Success      200  {object}  domain.DailyBonus
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /bonuses/{bonusID}/review [put]
// @Security     BearerAuth
func (h *BonusHandler) HandleReviewBonus(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if user.Role != domain.RoleManager {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not a manager", user.ID)))
		return
	}

	bonusID, err := parseUintParam(ctx, "bonusID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.ReviewBonusRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	bonus, err := h.svc.ReviewBonus(ctx.Request.Context(), bonusID, domain.BonusStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBonusNotFound):
			response.RenderErr(ctx, response.ErrNotFound("bonus", "ID", bonusID))
		case errors.Is(err, service.ErrBonusNotPending):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleReviewBonus -> h.svc.ReviewBonus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, bonus)
}

// HandleSetBonusConfig godoc
// @Summary      Create or replace a campaign's bonus config
// @Description  Only managers can set the bonus config.
// @Tags         bonuses
// @Accept       json
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Param        request     body      request.BonusConfigRequest  true  "request body"
// @Success      200  {object}  domain.CampaignBonusConfig
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns/{campaignID}/bonus-config [put]
// @Security     BearerAuth
func (h *BonusHandler) HandleSetBonusConfig(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if user.Role != domain.RoleManager {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not a manager", user.ID)))
		return
	}

	campaignID, err := parseUintParam(ctx, "campaignID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.BonusConfigRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	basketAmount, err := decimal.NewFromString(req.BasketBonusAmount)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid basket bonus amount: %w", err)))
		return
	}

	sponsorshipAmount, err := decimal.NewFromString(req.SponsorshipBonusAmount)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid sponsorship bonus amount: %w", err)))
		return
	}

	conf, err := h.svc.SetBonusConfig(ctx.Request.Context(), domain.CampaignBonusConfig{
		CampaignID:             campaignID,
		BasketBonusAmount:      basketAmount,
		SponsorshipBonusAmount: sponsorshipAmount,
	})
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", campaignID))
			return
		}

		err = fmt.Errorf("v1.HandleSetBonusConfig -> h.svc.SetBonusConfig -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, conf)
}
