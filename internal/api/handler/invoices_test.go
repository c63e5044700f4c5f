package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/invoicing"
	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/invoicing/mocks"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const testMaxUpload = 1 << 10

var pdfContent = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF\n")

func multipartBody(t *testing.T, fileName, contentType string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if content != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func uploadRequest(body io.Reader, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/invoices/uploads", body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func TestInvoices_Upload(t *testing.T) {
	t.Run("envia o arquivo e o número informado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockInvoiceService(ctrl)

		service.EXPECT().
			Upload(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, req *invoicing.UploadRequest) (*domain.InvoiceUpload, error) {
				content, err := io.ReadAll(req.File)
				require.NoError(t, err)

				assert.Equal(t, pdfContent, content)
				assert.Equal(t, "junho.pdf", req.FileName)
				assert.Equal(t, "application/pdf", req.ContentType)
				assert.Equal(t, "INV-2024-06", req.InvoiceNumber)

				return &domain.InvoiceUpload{ID: 1, AdvertiserID: 7, InvoiceNumber: req.InvoiceNumber, FileName: req.FileName, SizeBytes: int64(len(content))}, nil
			})

		body, contentType := multipartBody(t, "junho.pdf", "application/pdf", pdfContent, map[string]string{"invoice_number": "INV-2024-06"})
		rec := httptest.NewRecorder()
		newTestRouter(advertiserClaims(7), Invoices(service, testMaxUpload)...).ServeHTTP(rec, uploadRequest(body, contentType))

		require.Equal(t, http.StatusCreated, rec.Code)
		upload := decodeResponse[dataResponse[domain.InvoiceUpload]](t, rec).Data
		assert.Equal(t, "INV-2024-06", upload.InvoiceNumber)
		assert.Equal(t, int64(len(pdfContent)), upload.SizeBytes)
	})

	t.Run("corpo acima do limite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockInvoiceService(ctrl)

		huge := append(append([]byte{}, pdfContent...), bytes.Repeat([]byte("0"), testMaxUpload+multipartOverhead)...)
		body, contentType := multipartBody(t, "big.pdf", "application/pdf", huge, nil)
		rec := httptest.NewRecorder()
		newTestRouter(advertiserClaims(7), Invoices(service, testMaxUpload)...).ServeHTTP(rec, uploadRequest(body, contentType))

		assertAPIError(t, rec, http.StatusRequestEntityTooLarge, apiErrors.ErrPayloadTooLarge)
	})

	t.Run("sem campo file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockInvoiceService(ctrl)

		body, contentType := multipartBody(t, "", "", nil, map[string]string{"invoice_number": "X"})
		rec := httptest.NewRecorder()
		newTestRouter(advertiserClaims(7), Invoices(service, testMaxUpload)...).ServeHTTP(rec, uploadRequest(body, contentType))

		assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrMissingRequiredData)
	})

	t.Run("corpo que não é multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockInvoiceService(ctrl)

		rec := httptest.NewRecorder()
		newTestRouter(advertiserClaims(7), Invoices(service, testMaxUpload)...).
			ServeHTTP(rec, uploadRequest(bytes.NewReader(pdfContent), "application/pdf"))

		assertAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrInvalidRequest)
	})
}

func TestInvoices_Download(t *testing.T) {
	t.Run("devolve o pdf como anexo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockInvoiceService(ctrl)

		service.EXPECT().Download(gomock.Any(), int64(7), int64(3)).Return(&domain.InvoiceUpload{
			ID:            3,
			AdvertiserID:  7,
			InvoiceNumber: "INV-1",
			FileName:      "nota junho.pdf",
			ContentType:   domain.InvoiceContentType,
			Content:       pdfContent,
		}, nil)

		rec := doRequest(t, newTestRouter(advertiserClaims(7), Invoices(service, testMaxUpload)...), http.MethodGet, "/v1/invoices/uploads/3/download", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="nota junho.pdf"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, pdfContent, rec.Body.Bytes())
	})

	t.Run("nota de outro anunciante", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockInvoiceService(ctrl)

		service.EXPECT().Download(gomock.Any(), int64(7), int64(4)).
			Return(nil, apiErrors.New(invoicing.ErrInvoiceNotFound, apiErrors.ErrNotFound, nil))

		rec := doRequest(t, newTestRouter(advertiserClaims(7), Invoices(service, testMaxUpload)...), http.MethodGet, "/v1/invoices/uploads/4/download", nil)

		assertAPIError(t, rec, http.StatusNotFound, apiErrors.ErrNotFound)
	})
}

func TestInvoices_ListMonthly(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockInvoiceService(ctrl)

	service.EXPECT().ListMonthly(gomock.Any(), int64(7), 3).Return([]domain.MonthlyInvoice{{Month: "2024-06"}}, nil)

	rec := doRequest(t, newTestRouter(advertiserClaims(7), Invoices(service, testMaxUpload)...), http.MethodGet, "/v1/invoices?months=3", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	invoices := decodeResponse[dataResponse[[]domain.MonthlyInvoice]](t, rec).Data
	require.Len(t, invoices, 1)
	assert.Equal(t, "2024-06", invoices[0].Month)
}
