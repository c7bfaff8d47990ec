package upload

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hostelhq/hostelhq/internal/http/respond"
	"github.com/hostelhq/hostelhq/internal/receipt"
)

type Handler struct {
	uploader *receipt.Uploader
}

func NewHandler(uploader *receipt.Uploader) *Handler {
	return &Handler{uploader: uploader}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/receipt", h.uploadReceipt)
}

type uploadResponse struct {
	URL string `json:"user_fee_receipt"`
}

func (h *Handler) uploadReceipt(w http.ResponseWriter, r *http.Request) {
	// One byte past the ceiling is enough to tell an oversized file apart
	// from one that is exactly at the limit.
	if err := r.ParseMultipartForm(receipt.MaxUploadSize + 1); err != nil {
		respond.Fail(w, http.StatusBadRequest, "malformed multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, receipt.MaxUploadSize+1))
	if err != nil {
		respond.Fail(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	url, err := h.uploader.Upload(r.Context(), header.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, receipt.ErrTooLarge):
			respond.Fail(w, http.StatusBadRequest, "receipt image exceeds 2 MB")
		case errors.Is(err, receipt.ErrNotImage):
			respond.Fail(w, http.StatusBadRequest, "receipt must be an image")
		default:
			respond.Fail(w, http.StatusBadGateway, "failed to store receipt")
		}

		return
	}

	respond.JSON(w, http.StatusOK, uploadResponse{URL: url})
}
