package handler

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/vfg2006/monetization-dashboard-api/internal/usecases/invoicing"
	"github.com/vfg2006/monetization-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/monetization-dashboard-api/pkg/log"
)

// folga para os cabeçalhos e campos de texto do multipart
const multipartOverhead = 64 << 10

var ErrMultipartRequired = errors.New("envie o arquivo como multipart/form-data no campo file")

func ListMonthlyInvoices(service invoicing.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advertiserID, err := advertiserScope(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		months, err := queryInt(r, "months")
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		invoices, err := service.ListMonthly(r.Context(), advertiserID, months)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, invoices)
	}
}

// UploadInvoice lê o campo `file` de um multipart/form-data. O corpo é limitado
// ao tamanho máximo do arquivo mais a folga do multipart.
func UploadInvoice(service invoicing.InvoiceService, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advertiserID, err := advertiserScope(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

		if err := r.ParseMultipartForm(maxBytes + multipartOverhead); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo excede o tamanho máximo", map[string]any{
					"max_bytes": maxBytes,
				})
				return
			}

			apiErrors.Handle(w, r, apiErrors.New(ErrMultipartRequired, apiErrors.ErrInvalidRequest, nil))
			return
		}
		defer func() {
			_ = r.MultipartForm.RemoveAll()
		}()

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.Handle(w, r, apiErrors.New(ErrMultipartRequired, apiErrors.ErrMissingRequiredData, map[string]any{"field": "file"}))
			return
		}
		defer file.Close()

		upload, err := service.Upload(r.Context(), advertiserID, &invoicing.UploadRequest{
			FileName:      header.Filename,
			ContentType:   header.Header.Get("Content-Type"),
			InvoiceNumber: r.FormValue("invoice_number"),
			File:          file,
		})
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, upload)
	}
}

func ListInvoiceUploads(service invoicing.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advertiserID, err := advertiserScope(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		page, err := pageRequest(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		uploads, err := service.ListUploads(r.Context(), advertiserID, page)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		writeList(w, r, uploads)
	}
}

func DownloadInvoice(service invoicing.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advertiserID, err := advertiserScope(r)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		id, err := pathID(r, "id")
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		upload, err := service.Download(r.Context(), advertiserID, id)
		if err != nil {
			apiErrors.Handle(w, r, err)
			return
		}

		fileName := upload.FileName
		if fileName == "" {
			fileName = fmt.Sprintf("%s.pdf", upload.InvoiceNumber)
		}

		w.Header().Set("Content-Type", upload.ContentType)
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
		w.Header().Set("Content-Length", strconv.Itoa(len(upload.Content)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(upload.Content); err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("invoice_id", id).Warn("Erro ao enviar nota fiscal")
		}
	}
}
