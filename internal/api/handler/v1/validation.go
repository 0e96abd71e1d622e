package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salesboost/salesboost-api/internal/api/handler/v1/request"
	"github.com/salesboost/salesboost-api/internal/api/handler/v1/response"
	"github.com/salesboost/salesboost-api/internal/domain"
	"github.com/salesboost/salesboost-api/internal/service"
)

type ValidationService interface {
	GetValidationsForCampaign(ctx context.Context, campaignID uint) ([]domain.CampaignValidation, error)
	GetMyStatus(ctx context.Context, userID, campaignID uint) (domain.CampaignValidation, error)
	UpdateValidation(ctx context.Context, managerID, userID, campaignID uint, status domain.ValidationStatus, comment string) (domain.CampaignValidation, error)
	CreateUnlockConditions(ctx context.Context, campaignID uint, conditions []domain.UnlockCondition) ([]domain.UnlockCondition, error)
	SetFulfillment(ctx context.Context, managerID, validationID, conditionID uint, isFulfilled bool, comment string) (domain.ConditionFulfillment, error)
	GetFulfillmentsForValidation(ctx context.Context, validationID uint) ([]domain.ConditionWithFulfillment, error)
}

type ValidationHandler struct {
	svc  ValidationService
	uSvc UserService
}

func NewValidationHandler(svc ValidationService, uSvc UserService) *ValidationHandler {
	return &ValidationHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetCampaignValidations godoc
// @Summary      List all validations of a campaign
// @Description  Only managers can list validations.
// @Tags         campaign-validation
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Success      200  {array}   domain.CampaignValidation
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaign-validation/campaigns/{campaignID} [get]
// @Security     BearerAuth
func (h *ValidationHandler) HandleGetCampaignValidations(ctx *gin.Context) {
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

	validations, err := h.svc.GetValidationsForCampaign(ctx.Request.Context(), campaignID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCampaignValidations -> h.svc.GetValidationsForCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, validations)
}

// HandleGetMyStatus godoc
// @Summary      Get the current user's validation status on a campaign
// @Description  Creates a pending validation record on first read.
// @Tags         campaign-validation
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Success      200  {object}  domain.CampaignValidation
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaign-validation/my-status/{campaignID} [get]
// @Security     BearerAuth
func (h *ValidationHandler) HandleGetMyStatus(ctx *gin.Context) {
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

	validation, err := h.svc.GetMyStatus(ctx.Request.Context(), user.ID, campaignID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMyStatus -> h.svc.GetMyStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, validation)
}

// HandleUpdateValidation godoc
// @Summary      Approve, reject or reset a user's campaign validation
// @Description  Only managers can update validations. Approval requires every unlock condition of the campaign to be fulfilled.
// @Tags         campaign-validation
// @Accept       json
// @Produce      json
// @Param        userID      path      int  true  "user ID"
// @Param        campaignID  path      int  true  "campaign ID"
// @Param        request     body      request.UpdateValidationRequest  true  "request body"
// @Success      200  {object}  domain.CampaignValidation
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaign-validation/users/{userID}/campaigns/{campaignID} [put]
// @Security     BearerAuth
func (h *ValidationHandler) HandleUpdateValidation(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if user.Role != domain.RoleManager {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not a manager", user.ID)))
		return
	}

	userID, err := parseUintParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	campaignID, err := parseUintParam(ctx, "campaignID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateValidationRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	validation, err := h.svc.UpdateValidation(ctx.Request.Context(), user.ID, userID, campaignID,
		domain.ValidationStatus(req.Status), req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrUnlockConditionsUnmet) {
			response.RenderErr(ctx, response.ErrUnprocessableEntity(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateValidation -> h.svc.UpdateValidation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, validation)
}

// HandleCreateConditions godoc
// @Summary      Create unlock conditions for a campaign
// @Description  Only managers can create unlock conditions.
// @Tags         campaign-validation
// @Accept       json
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Param        request     body      request.CreateConditionsRequest  true  "request body"
// @Success      201  {array}   domain.UnlockCondition
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaign-validation/campaigns/{campaignID}/conditions [post]
// @Security     BearerAuth
func (h *ValidationHandler) HandleCreateConditions(ctx *gin.Context) {
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

	var req request.CreateConditionsRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	conditions := make([]domain.UnlockCondition, len(req.Conditions))
	for i, c := range req.Conditions {
		conditions[i] = domain.UnlockCondition{
			Description:  c.Description,
			DisplayOrder: c.DisplayOrder,
		}
	}

	created, err := h.svc.CreateUnlockConditions(ctx.Request.Context(), campaignID, conditions)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateConditions -> h.svc.CreateUnlockConditions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetFulfillments godoc
// @Summary      List a validation's conditions with their fulfillments
// @Tags         campaign-validation
// @Produce      json
// @Param        validationID  path      int  true  "validation ID"
// @Success      200  {array}   domain.ConditionWithFulfillment
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaign-validation/validations/{validationID}/conditions [get]
// @Security     BearerAuth
func (h *ValidationHandler) HandleGetFulfillments(ctx *gin.Context) {
	validationID, err := parseUintParam(ctx, "validationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fulfillments, err := h.svc.GetFulfillmentsForValidation(ctx.Request.Context(), validationID)
	if err != nil {
		if errors.Is(err, service.ErrValidationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("validation", "ID", validationID))
			return
		}

		err = fmt.Errorf("v1.HandleGetFulfillments -> h.svc.GetFulfillmentsForValidation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, fulfillments)
}

// HandleFulfillCondition godoc
// @Summary      Confirm or revert one unlock condition for a validation
// @Description  Only managers can update fulfillments.
// @Tags         campaign-validation
// @Accept       json
// @Produce      json
// @Param        validationID  path      int  true  "validation ID"
// @Param        conditionID   path      int  true  "condition ID"
// @Param        request       body      request.FulfillConditionRequest  true  "request body"
// @Success      200  {object}  domain.ConditionFulfillment
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaign-validation/validations/{validationID}/conditions/{conditionID}/fulfill [put]
// @Security     BearerAuth
func (h *ValidationHandler) HandleFulfillCondition(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if user.Role != domain.RoleManager {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not a manager", user.ID)))
		return
	}

	validationID, err := parseUintParam(ctx, "validationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	conditionID, err := parseUintParam(ctx, "conditionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.FulfillConditionRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fulfillment, err := h.svc.SetFulfillment(ctx.Request.Context(), user.ID, validationID, conditionID, req.IsFulfilled, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("validation", "ID", validationID))
		case errors.Is(err, service.ErrConditionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("condition", "ID", conditionID))
		case errors.Is(err, service.ErrConditionNotInCampaign):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleFulfillCondition -> h.svc.SetFulfillment -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, fulfillment)
}
