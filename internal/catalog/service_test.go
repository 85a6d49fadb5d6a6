package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persondocs/gen/ent"
	"persondocs/internal/common"
	"persondocs/internal/ingest"
	"persondocs/internal/repository"
	"persondocs/internal/storage"
)

type fakePersonRepo struct {
	byUID   map[string]*ent.Person
	created []*ent.Person
}

func (f *fakePersonRepo) GetByID(context.Context, uuid.UUID) (*ent.Person, error) {
	return nil, common.ErrNotFound
}

func (f *fakePersonRepo) GetByUniqueID(_ context.Context, uid string) (*ent.Person, error) {
	if p, ok := f.byUID[uid]; ok {
		return p, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakePersonRepo) Create(_ context.Context, uniqueID, standardName, displayName string) (*ent.Person, error) {
	p := &ent.Person{ID: uuid.New(), UniqueID: uniqueID, StandardName: standardName, DisplayName: displayName}
	if f.byUID == nil {
		f.byUID = map[string]*ent.Person{}
	}
	f.byUID[uniqueID] = p
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakePersonRepo) ListWithDocuments(context.Context) ([]*ent.Person, error) {
	return nil, nil
}

type fakeDocRepo struct {
	taken     map[string]bool
	createErr error
	lastParam repository.CreateDocumentParams
	withOwner *ent.Document
}

func (f *fakeDocRepo) GetByID(context.Context, uuid.UUID) (*ent.Document, error) {
	return nil, common.ErrNotFound
}

func (f *fakeDocRepo) GetWithOwner(_ context.Context, id uuid.UUID) (*ent.Document, error) {
	if f.withOwner != nil && f.withOwner.ID == id {
		return f.withOwner, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeDocRepo) Create(_ context.Context, p repository.CreateDocumentParams) (*ent.Document, error) {
	f.lastParam = p
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &ent.Document{
		ID:             uuid.New(),
		PersonID:       p.PersonID,
		DocumentName:   p.DocumentName,
		FilenameOnDisk: p.FilenameOnDisk,
		Category:       p.Category,
		Description:    p.Description,
	}, nil
}

func (f *fakeDocRepo) FilenameOnDiskExists(_ context.Context, name string) (bool, error) {
	return f.taken[name], nil
}

// fakeTx acts as both the starter and the transaction so tests can count
// commits and rollbacks.
type fakeTx struct {
	deleteErr error
	deletes   int
	commits   int
	rollbacks int
}

func (f *fakeTx) BeginTx(context.Context) (DocTx, error) { return f, nil }

func (f *fakeTx) DeleteDocument(context.Context, uuid.UUID) error {
	f.deletes++
	return f.deleteErr
}

func (f *fakeTx) Commit() error   { f.commits++; return nil }
func (f *fakeTx) Rollback() error { f.rollbacks++; return nil }

type fixedDescriber struct {
	outcome ingest.Outcome
	calls   int
}

func (f *fixedDescriber) Describe(context.Context, string, string) ingest.Outcome {
	f.calls++
	return f.outcome
}

func newTestService(t *testing.T, docs *fakeDocRepo, desc Describer) (*Service, *fakePersonRepo, string) {
	t.Helper()
	root := t.TempDir()
	people := &fakePersonRepo{}
	svc := NewService(nil, people, docs, storage.NewLayout(root, nil), desc, nil, nil)
	return svc, people, root
}

func TestUploadCreatesPersonAndDocument(t *testing.T) {
	docs := &fakeDocRepo{}
	desc := &fixedDescriber{outcome: ingest.Outcome{Kind: ingest.KindOK, Description: "An invoice due 2024-01-15."}}
	svc, people, root := newTestService(t, docs, desc)

	doc, err := svc.Upload(context.Background(), UploadRequest{
		PersonUniqueID:    "P-001",
		PersonDisplayName: "Alice Smith",
		DocumentName:      "Invoice March",
		Category:          "finance",
		Filename:          "invoice.pdf",
		Content:           strings.NewReader("%PDF-1.4 fake"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Invoice March", doc.DocumentName)
	assert.Equal(t, "An invoice due 2024-01-15.", doc.Description)
	assert.Equal(t, 1, desc.calls)

	require.Len(t, people.created, 1)
	assert.Equal(t, "alicesmith", people.created[0].StandardName)

	assert.FileExists(t, filepath.Join(root, "P-001", "invoice.pdf"))
}

func TestUploadReusesExistingPerson(t *testing.T) {
	docs := &fakeDocRepo{}
	desc := &fixedDescriber{outcome: ingest.Outcome{Kind: ingest.KindNoReadableText}}
	svc, people, _ := newTestService(t, docs, desc)

	existing := &ent.Person{ID: uuid.New(), UniqueID: "P-001", DisplayName: "Alice Smith"}
	people.byUID = map[string]*ent.Person{"P-001": existing}

	_, err := svc.Upload(context.Background(), UploadRequest{
		PersonUniqueID: "P-001",
		Filename:       "photo.png",
		Content:        strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)

	assert.Empty(t, people.created)
	assert.Equal(t, existing.ID, docs.lastParam.PersonID)
	// the placeholder is what gets stored when OCR finds nothing
	assert.Equal(t, "[AI Skipped]: Document/Image contained no readable text.", docs.lastParam.Description)
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	docs := &fakeDocRepo{}
	desc := &fixedDescriber{}
	svc, _, root := newTestService(t, docs, desc)

	_, err := svc.Upload(context.Background(), UploadRequest{
		PersonUniqueID:    "P-001",
		PersonDisplayName: "Alice Smith",
		Filename:          "malware.exe",
		Content:           strings.NewReader("MZ"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Zero(t, desc.calls)

	entries, _ := os.ReadDir(root)
	assert.Empty(t, entries, "nothing may be written for a rejected upload")
}

func TestUploadRequiresDisplayNameForNewPerson(t *testing.T) {
	svc, _, _ := newTestService(t, &fakeDocRepo{}, &fixedDescriber{})

	_, err := svc.Upload(context.Background(), UploadRequest{
		PersonUniqueID: "P-404",
		Filename:       "a.pdf",
		Content:        strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestUploadRemovesFileWhenRowInsertFails(t *testing.T) {
	docs := &fakeDocRepo{createErr: errors.New("UNIQUE constraint failed")}
	desc := &fixedDescriber{outcome: ingest.Outcome{Kind: ingest.KindOK, Description: "d"}}
	svc, _, root := newTestService(t, docs, desc)

	_, err := svc.Upload(context.Background(), UploadRequest{
		PersonUniqueID:    "P-001",
		PersonDisplayName: "Alice Smith",
		Filename:          "doc.pdf",
		Content:           strings.NewReader("x"),
	})
	require.Error(t, err)

	assert.NoFileExists(t, filepath.Join(root, "P-001", "doc.pdf"))
}

func TestUploadPrefixesTakenDiskName(t *testing.T) {
	docs := &fakeDocRepo{taken: map[string]bool{"invoice.pdf": true}}
	desc := &fixedDescriber{outcome: ingest.Outcome{Kind: ingest.KindOK, Description: "d"}}
	svc, _, _ := newTestService(t, docs, desc)

	doc, err := svc.Upload(context.Background(), UploadRequest{
		PersonUniqueID:    "P-002",
		PersonDisplayName: "Bob Jones",
		Filename:          "invoice.pdf",
		Content:           strings.NewReader("x"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, "invoice.pdf", doc.FilenameOnDisk)
	assert.True(t, strings.HasSuffix(doc.FilenameOnDisk, "_invoice.pdf"), "got %q", doc.FilenameOnDisk)
	assert.LessOrEqual(t, len(doc.FilenameOnDisk), 150)
}

func TestUploadKeepsLongUnicodeNameValidUTF8(t *testing.T) {
	docs := &fakeDocRepo{}
	desc := &fixedDescriber{outcome: ingest.Outcome{Kind: ingest.KindOK, Description: "d"}}
	svc, _, _ := newTestService(t, docs, desc)

	doc, err := svc.Upload(context.Background(), UploadRequest{
		PersonUniqueID:    "P-001",
		PersonDisplayName: "Alice Smith",
		Filename:          strings.Repeat("é", 200) + ".pdf",
		Content:           strings.NewReader("x"),
	})
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(doc.FilenameOnDisk))
	assert.LessOrEqual(t, len(doc.FilenameOnDisk), 150)
	assert.True(t, strings.HasSuffix(doc.FilenameOnDisk, ".pdf"))
}

func storedDoc(uid, diskName string) *ent.Document {
	return &ent.Document{
		ID:             uuid.New(),
		DocumentName:   "Lease",
		FilenameOnDisk: diskName,
		Edges:          ent.DocumentEdges{Owner: &ent.Person{ID: uuid.New(), UniqueID: uid}},
	}
}

func newDeleteService(t *testing.T, docs *fakeDocRepo, tx *fakeTx) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	svc := NewService(tx, &fakePersonRepo{}, docs, storage.NewLayout(root, nil), &fixedDescriber{}, nil, nil)
	return svc, root
}

func TestDeleteRemovesRowAndStoredFile(t *testing.T) {
	doc := storedDoc("P-001", "lease.pdf")
	tx := &fakeTx{}
	svc, root := newDeleteService(t, &fakeDocRepo{withOwner: doc}, tx)

	path := filepath.Join(root, "P-001", "lease.pdf")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	res, err := svc.Delete(context.Background(), doc.ID)
	require.NoError(t, err)

	assert.Equal(t, "Lease", res.DocumentName)
	assert.False(t, res.FileWasMissing)
	assert.Equal(t, 1, tx.deletes)
	assert.Equal(t, 1, tx.commits)
	assert.Zero(t, tx.rollbacks)
	assert.NoFileExists(t, path)
}

func TestDeleteCommitsWithWarningWhenFileAlreadyGone(t *testing.T) {
	doc := storedDoc("P-001", "lease.pdf")
	tx := &fakeTx{}
	svc, _ := newDeleteService(t, &fakeDocRepo{withOwner: doc}, tx)

	res, err := svc.Delete(context.Background(), doc.ID)
	require.NoError(t, err)

	assert.True(t, res.FileWasMissing)
	assert.Equal(t, 1, tx.commits)
	assert.Zero(t, tx.rollbacks)
}

func TestDeleteRollsBackWhenFileRemovalFails(t *testing.T) {
	doc := storedDoc("P-001", "lease.pdf")
	tx := &fakeTx{}
	svc, root := newDeleteService(t, &fakeDocRepo{withOwner: doc}, tx)

	// a non-empty directory at the stored path makes the removal fail
	// with something other than not-exist
	path := filepath.Join(root, "P-001", "lease.pdf")
	require.NoError(t, os.MkdirAll(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "inner"), []byte("x"), 0o644))

	_, err := svc.Delete(context.Background(), doc.ID)
	require.Error(t, err)

	assert.ErrorIs(t, err, common.ErrPersistence)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, tx.commits)
}

func TestDeleteRowFailureRollsBackAndKeepsFile(t *testing.T) {
	doc := storedDoc("P-001", "lease.pdf")
	tx := &fakeTx{deleteErr: errors.New("FOREIGN KEY constraint failed")}
	svc, root := newDeleteService(t, &fakeDocRepo{withOwner: doc}, tx)

	path := filepath.Join(root, "P-001", "lease.pdf")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := svc.Delete(context.Background(), doc.ID)
	require.Error(t, err)

	assert.ErrorIs(t, err, common.ErrPersistence)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, tx.commits)
	assert.FileExists(t, path)
}

func TestDeleteUnknownDocumentIsNotFound(t *testing.T) {
	tx := &fakeTx{}
	svc, _ := newDeleteService(t, &fakeDocRepo{}, tx)

	_, err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Zero(t, tx.deletes)
}

func TestUploadDefaultsDocumentNameToFilename(t *testing.T) {
	docs := &fakeDocRepo{}
	desc := &fixedDescriber{outcome: ingest.Outcome{Kind: ingest.KindOK, Description: "d"}}
	svc, _, _ := newTestService(t, docs, desc)

	doc, err := svc.Upload(context.Background(), UploadRequest{
		PersonUniqueID:    "P-003",
		PersonDisplayName: "Carol White",
		Filename:          "lease agreement.pdf",
		Content:           strings.NewReader("x"),
	})
	require.NoError(t, err)
	assert.Equal(t, "lease_agreement.pdf", doc.DocumentName)
}
