package repository

import (
	"context"
	"fmt"

	"github.com/salesboost/salesboost-api/internal/domain"
	"github.com/salesboost/salesboost-api/internal/repository/dao"
)

var (
	ErrBonusNotFound       = dao.ErrBonusNotFound
	ErrBonusConfigNotFound = dao.ErrBonusConfigNotFound
)

type BonusDAO interface {
	Insert(ctx context.Context, bonus dao.DailyBonus) (dao.DailyBonus, error)
	FindByID(ctx context.Context, id uint) (dao.DailyBonus, error)
	FindByUserAndCampaign(ctx context.Context, userID, campaignID uint) ([]dao.DailyBonus, error)
	FindApproved(ctx context.Context, userID, campaignID uint) ([]dao.DailyBonus, error)
	UpdateStatus(ctx context.Context, id uint, status string) (dao.DailyBonus, error)
	UpsertConfig(ctx context.Context, conf dao.CampaignBonusConfig) (dao.CampaignBonusConfig, error)
	FindConfigByCampaignID(ctx context.Context, campaignID uint) (dao.CampaignBonusConfig, error)
}

type BonusRepository struct {
	dao BonusDAO
}

func NewBonusRepository(dao BonusDAO) *BonusRepository {
	return &BonusRepository{
		dao: dao,
	}
}

func (r *BonusRepository) Create(ctx context.Context, bonus domain.DailyBonus) (domain.DailyBonus, error) {
	created, err := r.dao.Insert(ctx, dao.DailyBonus{
		UserID:     bonus.UserID,
		CampaignID: bonus.CampaignID,
		BonusDate:  bonus.BonusDate,
		BonusType:  string(bonus.Type),
		Amount:     bonus.Amount,
		Status:     string(bonus.Status),
	})
	if err != nil {
		return domain.DailyBonus{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *BonusRepository) FindByID(ctx context.Context, id uint) (domain.DailyBonus, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.DailyBonus{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *BonusRepository) FindByUserAndCampaign(ctx context.Context, userID, campaignID uint) ([]domain.DailyBonus, error) {
	found, err := r.dao.FindByUserAndCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserAndCampaign -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *BonusRepository) FindApproved(ctx context.Context, userID, campaignID uint) ([]domain.DailyBonus, error) {
	found, err := r.dao.FindApproved(ctx, userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindApproved -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *BonusRepository) UpdateStatus(ctx context.Context, id uint, status domain.BonusStatus) (domain.DailyBonus, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(status))
	if err != nil {
		return domain.DailyBonus{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *BonusRepository) UpsertConfig(ctx context.Context, conf domain.CampaignBonusConfig) (domain.CampaignBonusConfig, error) {
	upserted, err := r.dao.UpsertConfig(ctx, dao.CampaignBonusConfig{
		CampaignID:             conf.CampaignID,
		BasketBonusAmount:      conf.BasketBonusAmount,
		SponsorshipBonusAmount: conf.SponsorshipBonusAmount,
	})
	if err != nil {
		return domain.CampaignBonusConfig{}, fmt.Errorf("r.dao.UpsertConfig -> %w", err)
	}

	return r.configDaoToDomain(upserted), nil
}

func (r *BonusRepository) FindConfig(ctx context.Context, campaignID uint) (domain.CampaignBonusConfig, error) {
	found, err := r.dao.FindConfigByCampaignID(ctx, campaignID)
	if err != nil {
		return domain.CampaignBonusConfig{}, fmt.Errorf("r.dao.FindConfigByCampaignID -> %w", err)
	}

	return r.configDaoToDomain(found), nil
}

func (r *BonusRepository) daosToDomain(bonuses []dao.DailyBonus) []domain.DailyBonus {
	result := make([]domain.DailyBonus, len(bonuses))
	for i, b := range bonuses {
		result[i] = r.daoToDomain(b)
	}

	return result
}

func (r *BonusRepository) daoToDomain(b dao.DailyBonus) domain.DailyBonus {
	return domain.DailyBonus{
		ID:         b.ID,
		UserID:     b.UserID,
		CampaignID: b.CampaignID,
		BonusDate:  b.BonusDate,
		Type:       domain.BonusType(b.BonusType),
		Amount:     b.Amount,
		Status:     domain.BonusStatus(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (r *BonusRepository) configDaoToDomain(c dao.CampaignBonusConfig) domain.CampaignBonusConfig {
	return domain.CampaignBonusConfig{
		CampaignID:             c.CampaignID,
		BasketBonusAmount:      c.BasketBonusAmount,
		SponsorshipBonusAmount: c.SponsorshipBonusAmount,
	}
}
