package offering

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
	"github.com/vfg2006/monetization-dashboard-api/pkg/utils"
)

type OfferService interface {
	ListOffers(ctx context.Context, claims *domain.Claims, page domain.PageRequest, status string) (*domain.Page[domain.Offer], error)
	GetOffer(ctx context.Context, claims *domain.Claims, id int64) (*domain.Offer, error)
	CreateOffer(ctx context.Context, claims *domain.Claims, request *domain.OfferRequest) (*domain.Offer, error)
	UpdateOffer(ctx context.Context, claims *domain.Claims, id int64, request *domain.OfferRequest) (*domain.Offer, error)
	UpdateOfferStatus(ctx context.Context, claims *domain.Claims, id int64, request *domain.StatusRequest) (*domain.Offer, error)

	ListRewards(ctx context.Context, claims *domain.Claims, offerID int64, page domain.PageRequest) (*domain.Page[domain.Reward], error)
	CreateReward(ctx context.Context, claims *domain.Claims, offerID int64, request *domain.RewardRequest) (*domain.Reward, error)
	UpdateReward(ctx context.Context, claims *domain.Claims, id int64, request *domain.RewardRequest) (*domain.Reward, error)
	DeleteReward(ctx context.Context, claims *domain.Claims, id int64) error
}

type Service struct {
	offerRepo  repository.OfferRepository
	rewardRepo repository.RewardRepository
}

func NewService(offerRepo repository.OfferRepository, rewardRepo repository.RewardRepository) OfferService {
	return &Service{
		offerRepo:  offerRepo,
		rewardRepo: rewardRepo,
	}
}

// scope retorna o anunciante ao qual o usuário está restrito; nil para administradores
func scope(claims *domain.Claims) *int64 {
	if claims.IsAdmin() {
		return nil
	}
	if claims.AdvertiserID == nil {
		none := int64(0)
		return &none
	}
	return claims.AdvertiserID
}

// owns indica se o registro pertence ao escopo do usuário
func owns(claims *domain.Claims, advertiserID int64) bool {
	advertiser := scope(claims)
	return advertiser == nil || *advertiser == advertiserID
}

func (s *Service) ListOffers(ctx context.Context, claims *domain.Claims, page domain.PageRequest, status string) (*domain.Page[domain.Offer], error) {
	filter := domain.OfferFilter{
		PageRequest:  page,
		AdvertiserID: scope(claims),
	}

	if status != "" {
		parsed, ok := domain.ParseOfferStatus(status)
		if !ok {
			return nil, invalidStatus(status)
		}
		filter.Status = &parsed
	}

	return s.offerRepo.List(ctx, filter)
}

// GetOffer devolve 404 também quando a oferta é de outro anunciante
func (s *Service) GetOffer(ctx context.Context, claims *domain.Claims, id int64) (*domain.Offer, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if offer == nil || !owns(claims, offer.AdvertiserID) {
		return nil, notFound(ErrOfferNotFound)
	}

	return offer, nil
}

func (s *Service) CreateOffer(ctx context.Context, claims *domain.Claims, request *domain.OfferRequest) (*domain.Offer, error) {
	name := strings.TrimSpace(request.OfferName)
	if name == "" {
		return nil, apiErrors.New(ErrOfferNameRequired, apiErrors.ErrMissingRequiredData, nil)
	}

	advertiserID := scope(claims)
	if advertiserID == nil {
		advertiserID = request.AdvertiserID
	}
	if advertiserID == nil {
		return nil, apiErrors.New(ErrAdvertiserRequired, apiErrors.ErrMissingRequiredData, nil)
	}

	offer := &domain.Offer{
		AdvertiserID: *advertiserID,
		Name:         name,
		Status:       domain.OfferStatusActive,
		TrackingURL:  request.TrackingURL,
		Country:      request.Country,
	}

	if request.Status != nil {
		status, ok := domain.ParseOfferStatus(*request.Status)
		if !ok {
			return nil, invalidStatus(*request.Status)
		}
		offer.Status = status
	}

	if err := applyAmounts(offer, request); err != nil {
		return nil, err
	}

	if err := applyDates(offer, request); err != nil {
		return nil, err
	}

	created, err := s.offerRepo.Create(ctx, offer)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"offer_id":      created.ID,
		"advertiser_id": created.AdvertiserID,
	}).Info("Oferta criada")

	return created, nil
}

func (s *Service) UpdateOffer(ctx context.Context, claims *domain.Claims, id int64, request *domain.OfferRequest) (*domain.Offer, error) {
	offer, err := s.GetOffer(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	var status *domain.OfferStatus
	if request.Status != nil {
		parsed, ok := domain.ParseOfferStatus(*request.Status)
		if !ok {
			return nil, invalidStatus(*request.Status)
		}
		status = &parsed
	}

	if name := strings.TrimSpace(request.OfferName); name != "" {
		offer.Name = name
	}
	if request.TrackingURL != nil {
		offer.TrackingURL = request.TrackingURL
	}
	if request.Country != nil {
		offer.Country = request.Country
	}

	if err := applyAmounts(offer, request); err != nil {
		return nil, err
	}

	if err := applyDates(offer, request); err != nil {
		return nil, err
	}

	// status e demais campos saem no mesmo UPDATE
	if status != nil {
		offer.Status = *status
	}

	updated, err := s.offerRepo.Update(ctx, offer)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound(ErrOfferNotFound)
	}

	return updated, nil
}

// UpdateOfferStatus valida o status antes de qualquer escrita; status inválido não altera a linha
func (s *Service) UpdateOfferStatus(ctx context.Context, claims *domain.Claims, id int64, request *domain.StatusRequest) (*domain.Offer, error) {
	status, ok := domain.ParseOfferStatus(request.Status)
	if !ok {
		return nil, invalidStatus(request.Status)
	}

	offer, err := s.GetOffer(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.offerRepo.UpdateStatus(ctx, offer.ID, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, notFound(ErrOfferNotFound)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"offer_id": offer.ID,
		"from":     offer.Status,
		"to":       status,
	}).Info("Status da oferta alterado")

	refreshed, err := s.offerRepo.GetByID(ctx, offer.ID)
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		return nil, notFound(ErrOfferNotFound)
	}

	return refreshed, nil
}

func applyAmounts(offer *domain.Offer, request *domain.OfferRequest) error {
	if request.Bid != nil {
		if request.Bid.IsNegative() {
			return apiErrors.New(ErrNegativeAmount, apiErrors.ErrInvalidRequest, map[string]any{"field": "bid"})
		}
		offer.Bid = *request.Bid
	}

	if request.Payout != nil {
		if request.Payout.IsNegative() {
			return apiErrors.New(ErrNegativeAmount, apiErrors.ErrInvalidRequest, map[string]any{"field": "payout"})
		}
		offer.Payout = *request.Payout
	}

	return nil
}

func applyDates(offer *domain.Offer, request *domain.OfferRequest) error {
	if request.StartDate != nil {
		start, err := utils.ParseDate(*request.StartDate)
		if err != nil {
			return apiErrors.New(err, apiErrors.ErrInvalidFormat, map[string]any{"field": "start_date"})
		}
		offer.StartDate = start
	}

	if request.EndDate != nil {
		end, err := utils.ParseDate(*request.EndDate)
		if err != nil {
			return apiErrors.New(err, apiErrors.ErrInvalidFormat, map[string]any{"field": "end_date"})
		}
		offer.EndDate = end
	}

	if offer.StartDate != nil && offer.EndDate != nil && offer.StartDate.After(*offer.EndDate) {
		return apiErrors.New(ErrInvalidDates, apiErrors.ErrInvalidDateRange, nil)
	}

	return nil
}

func (s *Service) ListRewards(ctx context.Context, claims *domain.Claims, offerID int64, page domain.PageRequest) (*domain.Page[domain.Reward], error) {
	if _, err := s.GetOffer(ctx, claims, offerID); err != nil {
		return nil, err
	}

	return s.rewardRepo.ListByOffer(ctx, offerID, page)
}

func (s *Service) CreateReward(ctx context.Context, claims *domain.Claims, offerID int64, request *domain.RewardRequest) (*domain.Reward, error) {
	revenue := decimal.Zero
	if request.YourRevenue != nil {
		revenue = *request.YourRevenue
	}
	if revenue.IsNegative() {
		return nil, apiErrors.New(ErrNegativeAmount, apiErrors.ErrInvalidRequest, map[string]any{"field": "your_revenue"})
	}

	offer, err := s.GetOffer(ctx, claims, offerID)
	if err != nil {
		return nil, err
	}

	return s.rewardRepo.Create(ctx, &domain.Reward{
		OfferID:      offer.ID,
		AdvertiserID: offer.AdvertiserID,
		Description:  request.Description,
		YourRevenue:  revenue,
	})
}

func (s *Service) getReward(ctx context.Context, claims *domain.Claims, id int64) (*domain.Reward, error) {
	reward, err := s.rewardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if reward == nil || !owns(claims, reward.AdvertiserID) {
		return nil, notFound(ErrRewardNotFound)
	}

	return reward, nil
}

// UpdateReward altera apenas a receita
func (s *Service) UpdateReward(ctx context.Context, claims *domain.Claims, id int64, request *domain.RewardRequest) (*domain.Reward, error) {
	if request.YourRevenue == nil {
		return nil, apiErrors.New(ErrRevenueRequired, apiErrors.ErrMissingRequiredData, map[string]any{"field": "your_revenue"})
	}
	if request.YourRevenue.IsNegative() {
		return nil, apiErrors.New(ErrNegativeAmount, apiErrors.ErrInvalidRequest, map[string]any{"field": "your_revenue"})
	}

	if _, err := s.getReward(ctx, claims, id); err != nil {
		return nil, err
	}

	updated, err := s.rewardRepo.UpdateRevenue(ctx, id, *request.YourRevenue)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound(ErrRewardNotFound)
	}

	return updated, nil
}

func (s *Service) DeleteReward(ctx context.Context, claims *domain.Claims, id int64) error {
	if _, err := s.getReward(ctx, claims, id); err != nil {
		return err
	}

	deleted, err := s.rewardRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound(ErrRewardNotFound)
	}

	return nil
}
