package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceRepository_GetUpload(t *testing.T) {
	conn, mock := newMockConn(t)
	pdf := []byte("%PDF-1.4 fatura")

	mock.ExpectQuery(q("SELECT id, advertiser_id, invoice_number, file_name, content_type, size_bytes, created_at, file_data FROM invoice_uploads WHERE advertiser_id = $1 AND id = $2")).
		WithArgs(int64(7), int64(3)).
		WillReturnRows(sqlmock.NewRows(invoiceDownloadColumns).
			AddRow(3, 7, "INV-202406-abc", "junho.pdf", "application/pdf", len(pdf), fixedTime, pdf))

	upload, err := NewInvoiceRepository(conn).GetUpload(context.Background(), 7, 3)
	require.NoError(t, err)

	assert.Equal(t, "INV-202406-abc", upload.InvoiceNumber)
	assert.Equal(t, pdf, upload.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceColumns_DownloadDoesNotShareBacking(t *testing.T) {
	require.Len(t, invoiceUploadColumns, 7)
	assert.NotContains(t, invoiceUploadColumns, "file_data")
	assert.Equal(t, "file_data", invoiceDownloadColumns[len(invoiceDownloadColumns)-1])

	invoiceDownloadColumns[0] = "changed"
	t.Cleanup(func() { invoiceDownloadColumns[0] = "id" })
	assert.Equal(t, "id", invoiceUploadColumns[0])
}
