package invoicing

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var pdfContent = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF")

func newTestService(t *testing.T, maxBytes int64) (*Service, *mocks.MockInvoiceRepository, *mocks.MockAnalyticsRepository) {
	ctrl := gomock.NewController(t)

	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	analyticsRepo := mocks.NewMockAnalyticsRepository(ctrl)

	return &Service{
		invoiceRepo:   invoiceRepo,
		analyticsRepo: analyticsRepo,
		maxBytes:      maxBytes,
		now: func() time.Time {
			return time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
		},
	}, invoiceRepo, analyticsRepo
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()

	var apiErr *apiErrors.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, code, apiErr.Code)
}

func TestService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("gera número quando omitido", func(t *testing.T) {
		service, invoiceRepo, _ := newTestService(t, 1024)

		invoiceRepo.EXPECT().
			CreateUpload(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, upload *domain.InvoiceUpload) (*domain.InvoiceUpload, error) {
				assert.Equal(t, int64(7), upload.AdvertiserID)
				assert.True(t, strings.HasPrefix(upload.InvoiceNumber, "INV-202406-"))
				assert.Equal(t, "junho.pdf", upload.FileName)
				assert.Equal(t, int64(len(pdfContent)), upload.SizeBytes)
				upload.ID = 1
				return upload, nil
			})

		upload, err := service.Upload(ctx, 7, &UploadRequest{
			FileName:    "../../junho.pdf",
			ContentType: "application/pdf",
			File:        bytes.NewReader(pdfContent),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), upload.ID)
	})

	t.Run("mantém número informado", func(t *testing.T) {
		service, invoiceRepo, _ := newTestService(t, 1024)

		invoiceRepo.EXPECT().
			CreateUpload(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, upload *domain.InvoiceUpload) (*domain.InvoiceUpload, error) {
				assert.Equal(t, "NF-001", upload.InvoiceNumber)
				return upload, nil
			})

		_, err := service.Upload(ctx, 7, &UploadRequest{
			FileName:      "nf.pdf",
			ContentType:   "application/pdf",
			InvoiceNumber: " NF-001 ",
			File:          bytes.NewReader(pdfContent),
		})
		require.NoError(t, err)
	})

	tests := []struct {
		name     string
		maxBytes int64
		request  *UploadRequest
		code     string
	}{
		{
			name:     "sem arquivo",
			maxBytes: 1024,
			request:  &UploadRequest{ContentType: "application/pdf"},
			code:     apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "cabeçalho não é PDF",
			maxBytes: 1024,
			request:  &UploadRequest{ContentType: "image/png", File: bytes.NewReader(pdfContent)},
			code:     apiErrors.ErrUnsupportedMediaType,
		},
		{
			name:     "conteúdo não é PDF",
			maxBytes: 1024,
			request:  &UploadRequest{ContentType: "application/pdf", File: strings.NewReader("hello world")},
			code:     apiErrors.ErrUnsupportedMediaType,
		},
		{
			name:     "acima do limite",
			maxBytes: 10,
			request:  &UploadRequest{ContentType: "application/pdf", File: bytes.NewReader(pdfContent)},
			code:     apiErrors.ErrPayloadTooLarge,
		},
		{
			name:     "arquivo vazio",
			maxBytes: 1024,
			request:  &UploadRequest{ContentType: "application/pdf", File: bytes.NewReader(nil)},
			code:     apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestService(t, tt.maxBytes)

			_, err := service.Upload(ctx, 7, tt.request)
			assertCode(t, err, tt.code)
		})
	}
}

func TestService_Download(t *testing.T) {
	ctx := context.Background()
	service, invoiceRepo, _ := newTestService(t, 1024)

	invoiceRepo.EXPECT().GetUpload(ctx, int64(7), int64(99)).Return(nil, nil)

	_, err := service.Download(ctx, 7, 99)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
	assertCode(t, err, apiErrors.ErrNotFound)
}

func TestService_ListMonthly(t *testing.T) {
	ctx := context.Background()

	t.Run("aplica GST e janela padrão", func(t *testing.T) {
		service, _, analyticsRepo := newTestService(t, 1024)

		analyticsRepo.EXPECT().
			MonthlyRevenue(ctx, int64(7), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
			Return([]domain.MonthlyInvoice{
				{Month: "2024-06", Conversions: 10, Amount: decimal.RequireFromString("100")},
				{Month: "2024-05", Conversions: 3, Amount: decimal.RequireFromString("12.345")},
			}, nil)

		invoices, err := service.ListMonthly(ctx, 7, 0)
		require.NoError(t, err)
		require.Len(t, invoices, 2)

		assert.Equal(t, "18", invoices[0].GST.String())
		assert.Equal(t, "118", invoices[0].Total.String())
		assert.Equal(t, "12.35", invoices[1].Amount.String())
		assert.Equal(t, "2.22", invoices[1].GST.String())
		assert.Equal(t, "14.57", invoices[1].Total.String())
	})

	t.Run("sem receita retorna lista vazia", func(t *testing.T) {
		service, _, analyticsRepo := newTestService(t, 1024)

		analyticsRepo.EXPECT().
			MonthlyRevenue(ctx, int64(7), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).
			Return(nil, nil)

		invoices, err := service.ListMonthly(ctx, 7, 1)
		require.NoError(t, err)
		assert.NotNil(t, invoices)
		assert.Empty(t, invoices)
	})

	t.Run("months negativo", func(t *testing.T) {
		service, _, _ := newTestService(t, 1024)

		_, err := service.ListMonthly(ctx, 7, -1)
		assertCode(t, err, apiErrors.ErrInvalidRequest)
	})
}
