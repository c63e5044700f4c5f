package account

import (
	"context"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
	"github.com/vfg2006/monetization-dashboard-api/pkg/metrics"
	"github.com/vfg2006/monetization-dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type AccountService interface {
	ListAdvertisers(ctx context.Context, page domain.PageRequest) (*domain.Page[domain.AdvertiserListItem], error)
	GetAdvertiser(ctx context.Context, id int64) (*domain.AdvertiserDetail, error)
	GetBilling(ctx context.Context, advertiserID int64) (*domain.BillingDetails, error)
	UpdateBilling(ctx context.Context, advertiserID int64, request *domain.BillingRequest) (*domain.BillingDetails, error)

	ListPublishers(ctx context.Context, page domain.PageRequest) (*domain.Page[domain.PublisherListItem], error)
	GetPublisher(ctx context.Context, id int64) (*domain.PublisherDetail, error)
	SetPublisherStatus(ctx context.Context, id int64, request *domain.StatusRequest) (*domain.Approval, error)
	GetPublisherPayout(ctx context.Context, id int64, from, to string) (*domain.PublisherPayout, error)
}

type Service struct {
	advertiserRepo repository.AdvertiserRepository
	publisherRepo  repository.PublisherRepository
	approvalRepo   repository.ApprovalRepository
	analyticsRepo  repository.AnalyticsRepository
	now            func() time.Time
}

func NewService(
	advertiserRepo repository.AdvertiserRepository,
	publisherRepo repository.PublisherRepository,
	approvalRepo repository.ApprovalRepository,
	analyticsRepo repository.AnalyticsRepository,
) AccountService {
	return &Service{
		advertiserRepo: advertiserRepo,
		publisherRepo:  publisherRepo,
		approvalRepo:   approvalRepo,
		analyticsRepo:  analyticsRepo,
		now:            time.Now,
	}
}

func (s *Service) ListAdvertisers(ctx context.Context, page domain.PageRequest) (*domain.Page[domain.AdvertiserListItem], error) {
	advertisers, err := s.advertiserRepo.List(ctx, page)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Error listing advertisers")
		return nil, NewAccountError(ErrFetchAdvertisers, apiErrors.ErrDatabaseOperation, "Falha ao listar anunciantes no banco de dados")
	}

	return advertisers, nil
}

// GetAdvertiser busca o anunciante, as estatísticas e o faturamento em paralelo
func (s *Service) GetAdvertiser(ctx context.Context, id int64) (*domain.AdvertiserDetail, error) {
	var (
		advertiser *domain.Advertiser
		stats      map[int64]domain.AdvertiserStats
		billing    *domain.BillingDetails
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		advertiser, err = s.advertiserRepo.GetByID(gctx, id)
		return err
	})

	g.Go(func() error {
		var err error
		stats, err = s.advertiserRepo.GetStats(gctx, []int64{id})
		return err
	})

	g.Go(func() error {
		var err error
		billing, err = s.advertiserRepo.GetBilling(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).WithField("advertiser_id", id).Error("Error getting advertiser")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, strconv.FormatInt(id, 10), "Erro ao buscar anunciante no banco de dados")
	}

	if advertiser == nil {
		return nil, NewAccountErrorWithID(ErrAdvertiserNotFound, apiErrors.ErrNotFound, strconv.FormatInt(id, 10), "Anunciante não encontrado")
	}

	return &domain.AdvertiserDetail{
		Advertiser: *advertiser,
		Stats:      stats[id],
		Billing:    billing,
	}, nil
}

func (s *Service) GetBilling(ctx context.Context, advertiserID int64) (*domain.BillingDetails, error) {
	if advertiserID == 0 {
		return nil, NewAccountError(ErrAdvertiserIDRequired, apiErrors.ErrInsufficientPrivilege, "Usuário sem anunciante vinculado")
	}

	billing, err := s.advertiserRepo.GetBilling(ctx, advertiserID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Error getting billing details")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar dados de faturamento")
	}

	// Sem cadastro ainda: devolve o registro vazio em vez de 404
	if billing == nil {
		billing = &domain.BillingDetails{AdvertiserID: advertiserID}
	}

	return billing, nil
}

func (s *Service) UpdateBilling(ctx context.Context, advertiserID int64, request *domain.BillingRequest) (*domain.BillingDetails, error) {
	if advertiserID == 0 {
		return nil, NewAccountError(ErrAdvertiserIDRequired, apiErrors.ErrInsufficientPrivilege, "Usuário sem anunciante vinculado")
	}

	if request.BillingEmail != nil && strings.TrimSpace(*request.BillingEmail) != "" {
		if _, err := mail.ParseAddress(*request.BillingEmail); err != nil {
			return nil, NewAccountError(ErrInvalidBillingEmail, apiErrors.ErrInvalidFormat, "billing_email inválido")
		}
	}

	billing, err := s.advertiserRepo.UpsertBilling(ctx, &domain.BillingDetails{
		AdvertiserID: advertiserID,
		CompanyName:  trimmed(request.CompanyName),
		TaxID:        trimmed(request.TaxID),
		Address:      trimmed(request.Address),
		City:         trimmed(request.City),
		Country:      trimmed(request.Country),
		PostalCode:   trimmed(request.PostalCode),
		BillingEmail: trimmed(request.BillingEmail),
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Error updating billing details")
		return nil, NewAccountError(ErrUpdateBilling, apiErrors.ErrDatabaseOperation, "Falha ao salvar dados de faturamento")
	}

	return billing, nil
}

func (s *Service) ListPublishers(ctx context.Context, page domain.PageRequest) (*domain.Page[domain.PublisherListItem], error) {
	publishers, err := s.publisherRepo.List(ctx, page)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Error listing publishers")
		return nil, NewAccountError(ErrFetchPublishers, apiErrors.ErrDatabaseOperation, "Falha ao listar publishers no banco de dados")
	}

	return publishers, nil
}

func (s *Service) GetPublisher(ctx context.Context, id int64) (*domain.PublisherDetail, error) {
	publisher, err := s.findPublisher(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		stats      map[string]domain.PublisherStats
		validation *domain.PublisherValidation
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats, err = s.publisherRepo.GetStats(gctx, []string{publisher.Name})
		return err
	})

	g.Go(func() error {
		var err error
		validation, err = s.publisherRepo.GetLatestValidation(gctx, publisher.Name)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).WithField("publisher_id", id).Error("Error getting publisher details")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, strconv.FormatInt(id, 10), "Erro ao buscar detalhes do publisher")
	}

	return &domain.PublisherDetail{
		Publisher:  *publisher,
		Stats:      stats[publisher.Name],
		Validation: validation,
	}, nil
}

// SetPublisherStatus grava a aprovação pelo nome do publisher, que é a chave natural
// da tabela de aprovações
func (s *Service) SetPublisherStatus(ctx context.Context, id int64, request *domain.StatusRequest) (*domain.Approval, error) {
	status, ok := domain.ParseApprovalStatus(request.Status)
	if !ok {
		return nil, apiErrors.New(ErrUpdatePublisher, apiErrors.ErrInvalidStatus, map[string]any{
			"status":  request.Status,
			"allowed": domain.ApprovalStatuses,
		})
	}

	publisher, err := s.findPublisher(ctx, id)
	if err != nil {
		return nil, err
	}

	approval, err := s.approvalRepo.SetStatus(ctx, domain.ApprovalKindPublisher, domain.ApprovalRef{Key: publisher.Name}, status, request.Note)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("publisher_id", id).Error("Error updating publisher status")
		return nil, NewAccountErrorWithID(ErrUpdatePublisher, apiErrors.ErrDatabaseOperation, strconv.FormatInt(id, 10), "Falha ao atualizar status do publisher")
	}

	metrics.RecordApproval(string(domain.ApprovalKindPublisher), string(status))

	log.ForContext(ctx).WithFields(log.Fields{
		"publisher_id":   id,
		"publisher_name": publisher.Name,
		"status":         status,
	}).Info("Status do publisher atualizado")

	return approval, nil
}

func (s *Service) GetPublisherPayout(ctx context.Context, id int64, from, to string) (*domain.PublisherPayout, error) {
	dateRange, err := utils.NormalizeWindow(from, to, s.now())
	if err != nil {
		return nil, err
	}

	publisher, err := s.findPublisher(ctx, id)
	if err != nil {
		return nil, err
	}

	gross, _, err := s.analyticsRepo.RevenueSum(ctx, domain.ReportFilter{
		Range:         dateRange,
		PublisherName: &publisher.Name,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("publisher_id", id).Error("Error summing publisher revenue")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, strconv.FormatInt(id, 10), "Erro ao calcular receita do publisher")
	}

	return &domain.PublisherPayout{
		PublisherID:   publisher.ID,
		PublisherName: publisher.Name,
		Range:         dateRange,
		Payout:        domain.ComputePayout(gross),
	}, nil
}

func (s *Service) findPublisher(ctx context.Context, id int64) (*domain.Publisher, error) {
	publisher, err := s.publisherRepo.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("publisher_id", id).Error("Error getting publisher by id")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, strconv.FormatInt(id, 10), "Erro ao buscar publisher no banco de dados")
	}

	if publisher == nil {
		return nil, NewAccountErrorWithID(ErrPublisherNotFound, apiErrors.ErrNotFound, strconv.FormatInt(id, 10), "Publisher não encontrado")
	}

	return publisher, nil
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}

	v := strings.TrimSpace(*value)
	if v == "" {
		return nil
	}

	return &v
}
