package invoicing

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/monetization-dashboard-api/internal/config"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
	"github.com/vfg2006/monetization-dashboard-api/pkg/utils"
)

const (
	DefaultMonths = 6
	MaxMonths     = 24

	sniffLength = 512
)

var (
	ErrFileRequired     = errors.New("arquivo é obrigatório")
	ErrFileTooLarge     = errors.New("arquivo excede o tamanho máximo")
	ErrNotPDF           = errors.New("apenas arquivos PDF são aceitos")
	ErrInvoiceNotFound  = errors.New("nota fiscal não encontrada")
	ErrInvalidMonths    = errors.New("months deve ser um inteiro positivo")
	ErrNumberGeneration = errors.New("erro ao gerar número da nota fiscal")
)

// UploadRequest é a parte `file` do multipart já separada pelo handler
type UploadRequest struct {
	FileName      string
	ContentType   string
	InvoiceNumber string
	File          io.Reader
}

type InvoiceService interface {
	Upload(ctx context.Context, advertiserID int64, request *UploadRequest) (*domain.InvoiceUpload, error)
	ListUploads(ctx context.Context, advertiserID int64, page domain.PageRequest) (*domain.Page[domain.InvoiceUpload], error)
	Download(ctx context.Context, advertiserID, id int64) (*domain.InvoiceUpload, error)
	ListMonthly(ctx context.Context, advertiserID int64, months int) ([]domain.MonthlyInvoice, error)
}

type Service struct {
	invoiceRepo   repository.InvoiceRepository
	analyticsRepo repository.AnalyticsRepository
	maxBytes      int64
	now           func() time.Time
}

func NewService(invoiceRepo repository.InvoiceRepository, analyticsRepo repository.AnalyticsRepository, cfg *config.Config) InvoiceService {
	return &Service{
		invoiceRepo:   invoiceRepo,
		analyticsRepo: analyticsRepo,
		maxBytes:      cfg.Upload.MaxBytes,
		now:           time.Now,
	}
}

// Upload lê no máximo maxBytes+1 bytes para detectar arquivos acima do limite
// sem carregar o restante em memória
func (s *Service) Upload(ctx context.Context, advertiserID int64, request *UploadRequest) (*domain.InvoiceUpload, error) {
	if request.File == nil {
		return nil, apiErrors.New(ErrFileRequired, apiErrors.ErrMissingRequiredData, map[string]any{"field": "file"})
	}

	if !isPDFHeader(request.ContentType) {
		return nil, apiErrors.New(ErrNotPDF, apiErrors.ErrUnsupportedMediaType, map[string]any{
			"content_type": request.ContentType,
		})
	}

	content, err := io.ReadAll(io.LimitReader(request.File, s.maxBytes+1))
	if err != nil {
		return nil, apiErrors.New(err, apiErrors.ErrInvalidRequest, nil)
	}

	if len(content) == 0 {
		return nil, apiErrors.New(ErrFileRequired, apiErrors.ErrMissingRequiredData, map[string]any{"field": "file"})
	}

	if int64(len(content)) > s.maxBytes {
		return nil, apiErrors.New(ErrFileTooLarge, apiErrors.ErrPayloadTooLarge, map[string]any{
			"max_bytes": s.maxBytes,
		})
	}

	sniffed := http.DetectContentType(content[:min(len(content), sniffLength)])
	if sniffed != domain.InvoiceContentType {
		return nil, apiErrors.New(ErrNotPDF, apiErrors.ErrUnsupportedMediaType, map[string]any{
			"content_type": sniffed,
		})
	}

	invoiceNumber := strings.TrimSpace(request.InvoiceNumber)
	if invoiceNumber == "" {
		invoiceNumber, err = utils.GenerateInvoiceNumber(s.now())
		if err != nil {
			return nil, apiErrors.New(ErrNumberGeneration, apiErrors.ErrInternalServer, nil)
		}
	}

	upload, err := s.invoiceRepo.CreateUpload(ctx, &domain.InvoiceUpload{
		AdvertiserID:  advertiserID,
		InvoiceNumber: invoiceNumber,
		FileName:      sanitizeFileName(request.FileName, invoiceNumber),
		ContentType:   domain.InvoiceContentType,
		SizeBytes:     int64(len(content)),
		Content:       content,
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"advertiser_id":  advertiserID,
		"invoice_id":     upload.ID,
		"invoice_number": upload.InvoiceNumber,
		"size_bytes":     upload.SizeBytes,
	}).Info("Nota fiscal enviada")

	return upload, nil
}

func (s *Service) ListUploads(ctx context.Context, advertiserID int64, page domain.PageRequest) (*domain.Page[domain.InvoiceUpload], error) {
	return s.invoiceRepo.ListUploads(ctx, advertiserID, page)
}

func (s *Service) Download(ctx context.Context, advertiserID, id int64) (*domain.InvoiceUpload, error) {
	upload, err := s.invoiceRepo.GetUpload(ctx, advertiserID, id)
	if err != nil {
		return nil, err
	}
	if upload == nil {
		return nil, apiErrors.New(ErrInvoiceNotFound, apiErrors.ErrNotFound, nil)
	}

	return upload, nil
}

// ListMonthly consolida a receita dos últimos `months` meses, incluindo o mês corrente
func (s *Service) ListMonthly(ctx context.Context, advertiserID int64, months int) ([]domain.MonthlyInvoice, error) {
	if months < 0 {
		return nil, apiErrors.New(ErrInvalidMonths, apiErrors.ErrInvalidRequest, map[string]any{"months": months})
	}
	if months == 0 {
		months = DefaultMonths
	}
	if months > MaxMonths {
		months = MaxMonths
	}

	now := s.now().UTC()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	invoices, err := s.analyticsRepo.MonthlyRevenue(ctx, advertiserID, since)
	if err != nil {
		return nil, err
	}

	for i := range invoices {
		invoices[i].Amount = invoices[i].Amount.Round(2)
		invoices[i].GST = invoices[i].Amount.Mul(domain.GSTRate).Round(2)
		invoices[i].Total = invoices[i].Amount.Add(invoices[i].GST)
	}

	if invoices == nil {
		invoices = []domain.MonthlyInvoice{}
	}

	return invoices, nil
}

func isPDFHeader(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == domain.InvoiceContentType
}

func sanitizeFileName(name, fallback string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return fallback + ".pdf"
	}

	var b bytes.Buffer
	for _, r := range name {
		if r < 0x20 || r == '"' {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
