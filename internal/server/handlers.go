package server

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"persondocs/internal/catalog"
	"persondocs/internal/common"
	"persondocs/internal/export"
	"persondocs/internal/repository"
)

//go:embed templates/*.html
var templateFS embed.FS

// maxUploadBytes caps a single multipart upload.
const maxUploadBytes = 32 << 20

// Handler serves the HTML surface over the catalog.
type Handler struct {
	catalog  *catalog.Service
	export   *export.Service
	db       *sql.DB
	sessions *sessions.CookieStore
	tmpl     *template.Template
	logger   *slog.Logger
}

func NewHandler(cat *catalog.Service, exp *export.Service, db *sql.DB, secretKey string, logger *slog.Logger) (*Handler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{
		catalog:  cat,
		export:   exp,
		db:       db,
		sessions: newSessionStore(secretKey),
		tmpl:     tmpl,
		logger:   logger,
	}, nil
}

type indexData struct {
	People     []catalog.PersonView
	SearchTerm string
	Flashes    []Flash
}

// Index renders the people listing, filtered when a search term is given.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")

	people, err := h.catalog.Search(r.Context(), term)
	if err != nil {
		h.logger.Error("listing failed", "error", err)
		http.Error(w, "failed to load documents", http.StatusInternalServerError)
		return
	}

	data := indexData{
		People:     people,
		SearchTerm: term,
		Flashes:    h.popFlashes(w, r),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		h.logger.Error("template render failed", "error", err)
	}
}

// Upload accepts a multipart form, stores the file, and redirects back
// to the listing with a flash describing the result.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.addFlash(w, r, "danger", "Invalid upload form.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.addFlash(w, r, "danger", "A file is required.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	defer file.Close()

	doc, err := h.catalog.Upload(r.Context(), catalog.UploadRequest{
		PersonUniqueID:    r.FormValue("person_unique_id"),
		PersonDisplayName: r.FormValue("person_display_name"),
		DocumentName:      r.FormValue("document_name"),
		Category:          r.FormValue("category"),
		Filename:          header.Filename,
		Content:           file,
	})
	switch {
	case err == nil:
		h.addFlash(w, r, "success", fmt.Sprintf("Successfully uploaded document: %s", doc.DocumentName))
	case errors.Is(err, common.ErrInvalidInput):
		h.addFlash(w, r, "danger", userMessage(err))
	default:
		h.logger.Error("upload failed", "error", err)
		h.addFlash(w, r, "danger", "Error uploading document. Please try again.")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// View streams the stored file inline.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	docID, err := uuid.Parse(chi.URLParam(r, "docID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	vf, err := h.catalog.ResolveView(r.Context(), docID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, common.ErrFileMissing):
			http.Error(w, "document exists but its stored file is missing from disk", http.StatusNotFound)
		default:
			h.logger.Error("view failed", "document_id", docID, "error", err)
			http.Error(w, "failed to open document", http.StatusInternalServerError)
		}
		return
	}
	defer vf.File.Close()

	info, err := vf.File.Stat()
	if err != nil {
		http.Error(w, "failed to open document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", vf.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", vf.DocumentName))
	http.ServeContent(w, r, vf.DocumentName, info.ModTime(), vf.File)
}

// Delete removes a document and redirects with the outcome flash.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	docID, err := uuid.Parse(chi.URLParam(r, "docID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	res, err := h.catalog.Delete(r.Context(), docID)
	switch {
	case err == nil && res.FileWasMissing:
		h.addFlash(w, r, "danger", fmt.Sprintf("Warning: Document %s deleted from DB, but file was already missing from disk.", res.DocumentName))
	case err == nil:
		h.addFlash(w, r, "success", fmt.Sprintf("Successfully deleted document: %s", res.DocumentName))
	case errors.Is(err, common.ErrNotFound):
		http.NotFound(w, r)
		return
	default:
		h.logger.Error("delete failed", "document_id", docID, "error", err)
		h.addFlash(w, r, "danger", fmt.Sprintf("Error deleting document: %v", userMessage(err)))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Export streams the full catalog as an XLSX workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.export.ExportCatalogXLSX(r.Context())
	if err != nil {
		h.logger.Error("export failed", "error", err)
		http.Error(w, "failed to export catalog", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("documents_export_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}

// Healthz reports liveness of the process and its database.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := repository.HealthCheck(r.Context(), h.db, 2*time.Second, h.logger); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}

// userMessage unwraps an AppError down to its message for display.
func userMessage(err error) string {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
