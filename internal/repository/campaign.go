package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/salesboost/salesboost-api/internal/domain"
	"github.com/salesboost/salesboost-api/internal/repository/dao"
)

var (
	ErrCampaignNotFound = dao.ErrCampaignNotFound
	ErrActionNotFound   = dao.ErrActionNotFound
)

type CampaignDAO interface {
	Insert(ctx context.Context, campaign dao.Campaign) (dao.Campaign, error)
	FindAll(ctx context.Context) ([]dao.Campaign, error)
	FindByID(ctx context.Context, id uint) (dao.Campaign, error)
	FindChallengesByCampaignID(ctx context.Context, campaignID uint) ([]dao.Challenge, error)
	FindActionByID(ctx context.Context, id uint) (dao.Action, error)
	CountActionsByChallengeID(ctx context.Context, challengeID uint) (int64, error)
}

type UserActionDAO interface {
	Upsert(ctx context.Context, ua dao.UserAction) (dao.UserAction, error)
	CountCompleted(ctx context.Context, challengeID, userID uint) (int64, error)
	FindByUserAndChallenge(ctx context.Context, userID, challengeID uint) ([]dao.UserAction, error)
}

type CampaignRepository struct {
	dao           CampaignDAO
	userActionDAO UserActionDAO
}

func NewCampaignRepository(dao CampaignDAO, userActionDAO UserActionDAO) *CampaignRepository {
	return &CampaignRepository{
		dao:           dao,
		userActionDAO: userActionDAO,
	}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(campaign))
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CampaignRepository) FindAll(ctx context.Context) ([]domain.Campaign, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	campaigns := make([]domain.Campaign, len(found))
	for i, c := range found {
		campaigns[i] = r.daoToDomain(c)
	}

	return campaigns, nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id uint) (domain.Campaign, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CampaignRepository) FindChallenges(ctx context.Context, campaignID uint) ([]domain.Challenge, error) {
	found, err := r.dao.FindChallengesByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindChallengesByCampaignID -> %w", err)
	}

	challenges := make([]domain.Challenge, len(found))
	for i, c := range found {
		challenges[i] = r.challengeDaoToDomain(c)
	}

	return challenges, nil
}

func (r *CampaignRepository) FindActionByID(ctx context.Context, id uint) (domain.Action, error) {
	found, err := r.dao.FindActionByID(ctx, id)
	if err != nil {
		return domain.Action{}, fmt.Errorf("r.dao.FindActionByID -> %w", err)
	}

	return r.actionDaoToDomain(found), nil
}

func (r *CampaignRepository) CountActions(ctx context.Context, challengeID uint) (int, error) {
	count, err := r.dao.CountActionsByChallengeID(ctx, challengeID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountActionsByChallengeID -> %w", err)
	}

	return int(count), nil
}

func (r *CampaignRepository) CountCompletedActions(ctx context.Context, challengeID, userID uint) (int, error) {
	count, err := r.userActionDAO.CountCompleted(ctx, challengeID, userID)
	if err != nil {
		return 0, fmt.Errorf("r.userActionDAO.CountCompleted -> %w", err)
	}

	return int(count), nil
}

// SetActionCompletion upserts the (user, action) completion record.
// completedAt is stamped when completing and cleared when un-completing.
func (r *CampaignRepository) SetActionCompletion(ctx context.Context, userID uint, action domain.Action, completed bool) (domain.UserAction, error) {
	ua := dao.UserAction{
		UserID:      userID,
		ActionID:    action.ID,
		ChallengeID: action.ChallengeID,
		Completed:   completed,
	}
	if completed {
		now := time.Now()
		ua.CompletedAt = &now
	}

	upserted, err := r.userActionDAO.Upsert(ctx, ua)
	if err != nil {
		return domain.UserAction{}, fmt.Errorf("r.userActionDAO.Upsert -> %w", err)
	}

	return domain.UserAction{
		ID:          upserted.ID,
		UserID:      upserted.UserID,
		ActionID:    upserted.ActionID,
		ChallengeID: upserted.ChallengeID,
		Completed:   upserted.Completed,
		CompletedAt: upserted.CompletedAt,
	}, nil
}

func (r *CampaignRepository) domainToDao(c domain.Campaign) dao.Campaign {
	daoCampaign := dao.Campaign{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Status:         string(c.Status),
		BonusesEnabled: c.BonusesEnabled,
	}

	for _, challenge := range c.Challenges {
		daoChallenge := dao.Challenge{
			Date:        challenge.Date,
			Title:       challenge.Title,
			ValueInEuro: challenge.ValueInEuro,
		}
		for _, action := range challenge.Actions {
			daoChallenge.Actions = append(daoChallenge.Actions, dao.Action{
				Type:         string(action.Type),
				Title:        action.Title,
				DisplayOrder: action.DisplayOrder,
			})
		}
		daoCampaign.Challenges = append(daoCampaign.Challenges, daoChallenge)
	}

	return daoCampaign
}

func (r *CampaignRepository) daoToDomain(c dao.Campaign) domain.Campaign {
	campaign := domain.Campaign{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Status:         domain.CampaignStatus(c.Status),
		BonusesEnabled: c.BonusesEnabled,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}

	for _, challenge := range c.Challenges {
		campaign.Challenges = append(campaign.Challenges, r.challengeDaoToDomain(challenge))
	}

	if c.BonusConfig != nil {
		campaign.BonusConfig = &domain.CampaignBonusConfig{
			CampaignID:             c.BonusConfig.CampaignID,
			BasketBonusAmount:      c.BonusConfig.BasketBonusAmount,
			SponsorshipBonusAmount: c.BonusConfig.SponsorshipBonusAmount,
		}
	}

	return campaign
}

func (r *CampaignRepository) challengeDaoToDomain(c dao.Challenge) domain.Challenge {
	challenge := domain.Challenge{
		ID:          c.ID,
		CampaignID:  c.CampaignID,
		Date:        c.Date,
		Title:       c.Title,
		ValueInEuro: c.ValueInEuro,
	}

	for _, action := range c.Actions {
		challenge.Actions = append(challenge.Actions, r.actionDaoToDomain(action))
	}

	return challenge
}

func (r *CampaignRepository) actionDaoToDomain(a dao.Action) domain.Action {
	return domain.Action{
		ID:           a.ID,
		ChallengeID:  a.ChallengeID,
		Type:         domain.ActionType(a.Type),
		Title:        a.Title,
		DisplayOrder: a.DisplayOrder,
	}
}
