package repository

import (
	"context"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/monetization-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/monetization-dashboard-api/internal/domain"
)

const invoiceUploadsTable = "invoice_uploads"

var (
	invoiceUploadColumns = []string{"id", "advertiser_id", "invoice_number", "file_name", "content_type", "size_bytes", "created_at"}
	// metadados + conteúdo, só para download
	invoiceDownloadColumns = append(slices.Clone(invoiceUploadColumns), "file_data")
)

type InvoiceRepository interface {
	CreateUpload(ctx context.Context, upload *domain.InvoiceUpload) (*domain.InvoiceUpload, error)
	ListUploads(ctx context.Context, advertiserID int64, page domain.PageRequest) (*domain.Page[domain.InvoiceUpload], error)
	GetUpload(ctx context.Context, advertiserID, id int64) (*domain.InvoiceUpload, error)
}

type invoiceRepository struct {
	conn postgres.Conn
}

func NewInvoiceRepository(conn postgres.Conn) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

func (r *invoiceRepository) CreateUpload(ctx context.Context, upload *domain.InvoiceUpload) (*domain.InvoiceUpload, error) {
	created, err := getOne[domain.InvoiceUpload](ctx, r.conn, psql.
		Insert(invoiceUploadsTable).
		Columns("advertiser_id", "invoice_number", "file_name", "content_type", "size_bytes", "file_data").
		Values(upload.AdvertiserID, upload.InvoiceNumber, upload.FileName, upload.ContentType, upload.SizeBytes, upload.Content).
		Suffix("RETURNING "+joinColumns(invoiceUploadColumns)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao salvar fatura")
	}

	return created, nil
}

// ListUploads não carrega o conteúdo do arquivo
func (r *invoiceRepository) ListUploads(ctx context.Context, advertiserID int64, page domain.PageRequest) (*domain.Page[domain.InvoiceUpload], error) {
	base := psql.Select().
		From(invoiceUploadsTable).
		Where(squirrel.Eq{"advertiser_id": advertiserID})
	if page.Query != "" {
		base = base.Where(searchAny(page.Query, "invoice_number", "file_name"))
	}

	uploads, err := paginate[domain.InvoiceUpload](ctx, r.conn, listQuery{
		base:    base,
		columns: invoiceUploadColumns,
		orderBy: []string{"created_at DESC", "id DESC"},
	}, page)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar faturas")
	}

	return uploads, nil
}

func (r *invoiceRepository) GetUpload(ctx context.Context, advertiserID, id int64) (*domain.InvoiceUpload, error) {
	upload, err := getOne[domain.InvoiceUpload](ctx, r.conn, psql.
		Select(invoiceDownloadColumns...).
		From(invoiceUploadsTable).
		Where(squirrel.Eq{"id": id, "advertiser_id": advertiserID}))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar fatura")
	}

	return upload, nil
}
