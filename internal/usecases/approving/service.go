package approving

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
	"github.com/vfg2006/monetization-dashboard-api/pkg/metrics"
)

var (
	ErrInvalidKind       = errors.New("tipo de aprovação inválido")
	ErrInvalidStatus     = errors.New("status de aprovação inválido")
	ErrInvalidIdentifier = errors.New("identificador inválido")
	ErrApprovalNotFound  = errors.New("aprovação não encontrada")
)

type ApprovalService interface {
	SetStatus(ctx context.Context, kind, identifier string, request *domain.StatusRequest) (*domain.Approval, error)
	List(ctx context.Context, kind string, page domain.PageRequest, status string) (*domain.Page[domain.Approval], error)
}

type Service struct {
	approvalRepo repository.ApprovalRepository
}

func NewService(approvalRepo repository.ApprovalRepository) ApprovalService {
	return &Service{
		approvalRepo: approvalRepo,
	}
}

func parseKind(kind string) (domain.ApprovalKind, error) {
	parsed, ok := domain.ParseApprovalKind(kind)
	if !ok {
		return "", apiErrors.New(ErrInvalidKind, apiErrors.ErrInvalidRequest, map[string]any{
			"kind":    kind,
			"allowed": []domain.ApprovalKind{domain.ApprovalKindOffer, domain.ApprovalKindNotification, domain.ApprovalKindPublisher},
		})
	}
	return parsed, nil
}

func parseStatus(status string) (domain.ApprovalStatus, error) {
	parsed, ok := domain.ParseApprovalStatus(status)
	if !ok {
		return "", apiErrors.New(ErrInvalidStatus, apiErrors.ErrInvalidStatus, map[string]any{
			"status":  status,
			"allowed": domain.ApprovalStatuses,
		})
	}
	return parsed, nil
}

// ResolveRef monta a referência do alvo. Um identificador numérico é tentado
// primeiro como chave primária da aprovação e depois como chave natural.
// Ofertas e notificações só têm chave natural numérica.
func ResolveRef(kind domain.ApprovalKind, identifier string) (domain.ApprovalRef, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return domain.ApprovalRef{}, apiErrors.New(ErrInvalidIdentifier, apiErrors.ErrMissingRequiredData, nil)
	}

	ref := domain.ApprovalRef{Key: identifier}

	id, err := strconv.ParseInt(identifier, 10, 64)
	if err == nil && id > 0 {
		ref.ID = &id
		return ref, nil
	}

	if kind != domain.ApprovalKindPublisher {
		return domain.ApprovalRef{}, apiErrors.New(ErrInvalidIdentifier, apiErrors.ErrInvalidFormat, map[string]any{
			"id": identifier,
		})
	}

	return ref, nil
}

// SetStatus valida tipo e status antes de qualquer acesso ao banco
func (s *Service) SetStatus(ctx context.Context, kind, identifier string, request *domain.StatusRequest) (*domain.Approval, error) {
	approvalKind, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	status, err := parseStatus(request.Status)
	if err != nil {
		return nil, err
	}

	ref, err := ResolveRef(approvalKind, identifier)
	if err != nil {
		return nil, err
	}

	approval, err := s.approvalRepo.SetStatus(ctx, approvalKind, ref, status, request.Note)
	if errors.Is(err, repository.ErrSubjectNotFound) {
		return nil, apiErrors.New(err, apiErrors.ErrNotFound, map[string]any{"kind": approvalKind, "id": identifier})
	}
	if err != nil {
		return nil, err
	}
	if approval == nil {
		return nil, apiErrors.New(ErrApprovalNotFound, apiErrors.ErrNotFound, nil)
	}

	metrics.RecordApproval(string(approvalKind), string(status))

	log.ForContext(ctx).WithFields(log.Fields{
		"kind":        approvalKind,
		"approval_id": approval.ID,
		"subject":     approval.SubjectKey,
		"status":      status,
	}).Info("Status de aprovação atualizado")

	return approval, nil
}

func (s *Service) List(ctx context.Context, kind string, page domain.PageRequest, status string) (*domain.Page[domain.Approval], error) {
	approvalKind, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	filter := domain.ApprovalFilter{PageRequest: page}
	if status != "" {
		parsed, err := parseStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = &parsed
	}

	return s.approvalRepo.List(ctx, approvalKind, filter)
}
