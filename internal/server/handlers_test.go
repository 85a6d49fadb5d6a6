package server

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persondocs/gen/ent"
	"persondocs/internal/catalog"
	"persondocs/internal/common"
	"persondocs/internal/export"
	"persondocs/internal/ingest"
	"persondocs/internal/repository"
	"persondocs/internal/storage"
)

type stubPersonRepo struct {
	people []*ent.Person
}

func (s *stubPersonRepo) GetByID(context.Context, uuid.UUID) (*ent.Person, error) {
	return nil, common.ErrNotFound
}

func (s *stubPersonRepo) GetByUniqueID(_ context.Context, uid string) (*ent.Person, error) {
	for _, p := range s.people {
		if p.UniqueID == uid {
			return p, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *stubPersonRepo) Create(_ context.Context, uniqueID, standardName, displayName string) (*ent.Person, error) {
	p := &ent.Person{ID: uuid.New(), UniqueID: uniqueID, StandardName: standardName, DisplayName: displayName}
	s.people = append(s.people, p)
	return p, nil
}

func (s *stubPersonRepo) ListWithDocuments(context.Context) ([]*ent.Person, error) {
	return s.people, nil
}

type stubDocRepo struct {
	withOwner *ent.Document
}

func (s stubDocRepo) GetByID(context.Context, uuid.UUID) (*ent.Document, error) {
	return nil, common.ErrNotFound
}

func (s stubDocRepo) GetWithOwner(_ context.Context, id uuid.UUID) (*ent.Document, error) {
	if s.withOwner != nil && s.withOwner.ID == id {
		return s.withOwner, nil
	}
	return nil, common.ErrNotFound
}

func (stubDocRepo) Create(_ context.Context, p repository.CreateDocumentParams) (*ent.Document, error) {
	return &ent.Document{
		ID:             uuid.New(),
		PersonID:       p.PersonID,
		DocumentName:   p.DocumentName,
		FilenameOnDisk: p.FilenameOnDisk,
		Category:       p.Category,
		Description:    p.Description,
		DateUploaded:   time.Now(),
	}, nil
}

func (stubDocRepo) FilenameOnDiskExists(context.Context, string) (bool, error) {
	return false, nil
}

type stubDescriber struct{}

func (stubDescriber) Describe(context.Context, string, string) ingest.Outcome {
	return ingest.Outcome{Kind: ingest.KindOK, Description: "A scanned test letter."}
}

type stubTx struct{}

func (stubTx) BeginTx(context.Context) (catalog.DocTx, error) { return stubTx{}, nil }
func (stubTx) DeleteDocument(context.Context, uuid.UUID) error { return nil }
func (stubTx) Commit() error                                   { return nil }
func (stubTx) Rollback() error                                 { return nil }

func newTestHandler(t *testing.T, people *stubPersonRepo) *Handler {
	return newTestHandlerWith(t, people, stubDocRepo{})
}

func newTestHandlerWith(t *testing.T, people *stubPersonRepo, docs stubDocRepo) *Handler {
	t.Helper()
	cat := catalog.NewService(stubTx{}, people, docs, storage.NewLayout(t.TempDir(), nil), stubDescriber{}, nil, nil)
	exp := export.NewService(people, nil)
	h, err := NewHandler(cat, exp, nil, "test-secret", nil)
	require.NoError(t, err)
	return h
}

func TestIndexRendersPeopleAndDocuments(t *testing.T) {
	alice := &ent.Person{ID: uuid.New(), UniqueID: "P-001", DisplayName: "Alice Smith"}
	alice.Edges.Documents = []*ent.Document{{
		ID:           uuid.New(),
		PersonID:     alice.ID,
		DocumentName: "passport.pdf",
		Category:     "identity",
		DateUploaded: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description:  "A passport scan.",
	}}
	h := newTestHandler(t, &stubPersonRepo{people: []*ent.Person{alice}})

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Alice Smith")
	assert.Contains(t, body, "passport.pdf")
	assert.Contains(t, body, "A passport scan.")
}

func TestIndexFiltersBySearchTerm(t *testing.T) {
	alice := &ent.Person{ID: uuid.New(), UniqueID: "P-001", DisplayName: "Alice Smith"}
	bob := &ent.Person{ID: uuid.New(), UniqueID: "P-002", DisplayName: "Bob Jones"}
	h := newTestHandler(t, &stubPersonRepo{people: []*ent.Person{alice, bob}})

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/?search=bob", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Bob Jones")
	assert.NotContains(t, body, "Alice Smith")
}

func TestUploadRedirectsWithSuccessFlash(t *testing.T) {
	h := newTestHandler(t, &stubPersonRepo{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("person_unique_id", "P-001"))
	require.NoError(t, mw.WriteField("person_display_name", "Alice Smith"))
	fw, err := mw.CreateFormFile("file", "letter.txt")
	require.NoError(t, err)
	_, err = io.Copy(fw, strings.NewReader("dear sir"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.NotEmpty(t, rec.Result().Cookies(), "a flash cookie must be set")
}

func TestUploadRejectedExtensionFlashesError(t *testing.T) {
	h := newTestHandler(t, &stubPersonRepo{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("person_unique_id", "P-001"))
	require.NoError(t, mw.WriteField("person_display_name", "Alice Smith"))
	fw, err := mw.CreateFormFile("file", "tool.exe")
	require.NoError(t, err)
	_, err = fw.Write([]byte("MZ"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	// still a redirect; the failure is reported via flash, not a status code
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestViewUnknownDocumentIs404(t *testing.T) {
	h := newTestHandler(t, &stubPersonRepo{})
	srv := New(":0", h, nil)

	req := httptest.NewRequest(http.MethodGet, "/view/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestViewMissingFileReportsDistinctlyFromUnknown(t *testing.T) {
	doc := &ent.Document{
		ID:             uuid.New(),
		DocumentName:   "Lease",
		FilenameOnDisk: "lease.pdf",
		Edges:          ent.DocumentEdges{Owner: &ent.Person{ID: uuid.New(), UniqueID: "P-001"}},
	}
	h := newTestHandlerWith(t, &stubPersonRepo{}, stubDocRepo{withOwner: doc})
	srv := New(":0", h, nil)

	// row exists, nothing was ever written under the upload root
	orphanRec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(orphanRec,
		httptest.NewRequest(http.MethodGet, "/view/"+doc.ID.String(), nil))

	unknownRec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(unknownRec,
		httptest.NewRequest(http.MethodGet, "/view/"+uuid.NewString(), nil))

	require.Equal(t, http.StatusNotFound, orphanRec.Code)
	require.Equal(t, http.StatusNotFound, unknownRec.Code)
	assert.Contains(t, orphanRec.Body.String(), "stored file is missing")
	assert.NotEqual(t, unknownRec.Body.String(), orphanRec.Body.String())
}

func TestDeleteMissingFileFlashesWarning(t *testing.T) {
	doc := &ent.Document{
		ID:             uuid.New(),
		DocumentName:   "Lease",
		FilenameOnDisk: "lease.pdf",
		Edges:          ent.DocumentEdges{Owner: &ent.Person{ID: uuid.New(), UniqueID: "P-001"}},
	}
	h := newTestHandlerWith(t, &stubPersonRepo{}, stubDocRepo{withOwner: doc})
	srv := New(":0", h, nil)

	delRec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(delRec,
		httptest.NewRequest(http.MethodPost, "/delete/"+doc.ID.String(), nil))
	require.Equal(t, http.StatusSeeOther, delRec.Code)

	// follow the redirect with the flash cookie to read the warning
	idxReq := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range delRec.Result().Cookies() {
		idxReq.AddCookie(c)
	}
	idxRec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(idxRec, idxReq)

	require.Equal(t, http.StatusOK, idxRec.Code)
	assert.Contains(t, idxRec.Body.String(), "file was already missing from disk.")
}

func TestViewMalformedIDIs404(t *testing.T) {
	h := newTestHandler(t, &stubPersonRepo{})
	srv := New(":0", h, nil)

	req := httptest.NewRequest(http.MethodGet, "/view/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportServesWorkbook(t *testing.T) {
	alice := &ent.Person{ID: uuid.New(), UniqueID: "P-001", DisplayName: "Alice Smith"}
	h := newTestHandler(t, &stubPersonRepo{people: []*ent.Person{alice}})

	rec := httptest.NewRecorder()
	h.Export(rec, httptest.NewRequest(http.MethodGet, "/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.NotZero(t, rec.Body.Len())
}
