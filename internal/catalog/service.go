package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"persondocs/constants"
	"persondocs/gen/ent"
	"persondocs/internal/common"
	"persondocs/internal/ingest"
	"persondocs/internal/repository"
	"persondocs/internal/storage"
)

// maxDiskNameLen matches the filename_on_disk column width.
const maxDiskNameLen = 150

// Describer is the pipeline contract the catalog depends on.
type Describer interface {
	Describe(ctx context.Context, path, originalFilename string) ingest.Outcome
}

// DocTx is one document-delete transaction.
type DocTx interface {
	DeleteDocument(ctx context.Context, id uuid.UUID) error
	Commit() error
	Rollback() error
}

// TxStarter begins delete transactions. The production implementation
// wraps the ent client; tests substitute a fake.
type TxStarter interface {
	BeginTx(ctx context.Context) (DocTx, error)
}

type entTxStarter struct {
	client *ent.Client
}

// NewEntTx adapts the ent client to the TxStarter seam.
func NewEntTx(client *ent.Client) TxStarter {
	return entTxStarter{client: client}
}

func (s entTxStarter) BeginTx(ctx context.Context) (DocTx, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	return entDocTx{tx: tx}, nil
}

type entDocTx struct {
	tx *ent.Tx
}

func (t entDocTx) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	return t.tx.Document.DeleteOneID(id).Exec(ctx)
}

func (t entDocTx) Commit() error   { return t.tx.Commit() }
func (t entDocTx) Rollback() error { return t.tx.Rollback() }

// Service owns the person/document use cases: upload, search, view
// resolution, delete, and the disk-name policy.
type Service struct {
	tx          TxStarter
	people      repository.PersonRepository
	docs        repository.DocumentRepository
	layout      *storage.Layout
	describer   Describer
	allowedExts map[string]struct{}
	logger      *slog.Logger
}

func NewService(
	tx TxStarter,
	people repository.PersonRepository,
	docs repository.DocumentRepository,
	layout *storage.Layout,
	describer Describer,
	allowedExts map[string]struct{},
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if allowedExts == nil {
		allowedExts = constants.DefaultAllowedExtensions
	}
	return &Service{
		tx:          tx,
		people:      people,
		docs:        docs,
		layout:      layout,
		describer:   describer,
		allowedExts: allowedExts,
		logger:      logger,
	}
}

// UploadRequest carries one multipart upload.
type UploadRequest struct {
	PersonUniqueID    string
	PersonDisplayName string
	DocumentName      string
	Category          string
	Filename          string // the client's original filename
	Content           io.Reader
}

// Upload stores the file under the person's directory, runs the
// ingestion pipeline, and creates the document row. The person is
// created implicitly on first reference. A failed row insert removes the
// just-written file so the store and the disk stay consistent.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*ent.Document, error) {
	uid := strings.TrimSpace(req.PersonUniqueID)
	if uid == "" {
		return nil, common.NewAppError("UPLOAD_INVALID", "person unique id is required", common.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Filename) == "" || req.Content == nil {
		return nil, common.NewAppError("UPLOAD_INVALID", "a file is required", common.ErrInvalidInput)
	}

	ext := constants.NormalizeExt(filepath.Ext(req.Filename))
	if _, ok := s.allowedExts[ext]; !ok {
		return nil, common.NewAppError("UPLOAD_INVALID",
			fmt.Sprintf("file type %q is not allowed", ext), common.ErrInvalidInput)
	}

	person, err := s.findOrCreatePerson(ctx, uid, req.PersonDisplayName)
	if err != nil {
		return nil, err
	}

	diskName, err := s.uniqueDiskName(ctx, req.Filename)
	if err != nil {
		return nil, err
	}

	path, size, err := s.layout.Save(person.UniqueID, diskName, req.Content)
	if err != nil {
		return nil, common.NewAppError("UPLOAD_STORE", "failed to store file", err)
	}

	outcome := s.describer.Describe(ctx, path, req.Filename)
	s.logger.Info("ingest outcome", "person_uid", person.UniqueID, "filename", req.Filename, "kind", outcome.Kind)

	docName := strings.TrimSpace(req.DocumentName)
	if docName == "" {
		docName = common.SanitizeFilename(req.Filename)
	}

	doc, err := s.docs.Create(ctx, repository.CreateDocumentParams{
		PersonID:       person.ID,
		DocumentName:   docName,
		FilenameOnDisk: diskName,
		Category:       strings.TrimSpace(req.Category),
		Description:    outcome.DisplayText(),
	})
	if err != nil {
		// roll the file back so no orphan is left on disk
		if _, rmErr := s.layout.Remove(person.UniqueID, diskName); rmErr != nil {
			s.logger.Error("rollback remove failed", "person_uid", person.UniqueID, "filename", diskName, "error", rmErr)
		}
		return nil, common.NewAppError("UPLOAD_PERSIST", "failed to store document metadata", err)
	}

	s.logger.Info("upload complete", "document_id", doc.ID, "person_uid", person.UniqueID, "bytes", size)
	return doc, nil
}

func (s *Service) findOrCreatePerson(ctx context.Context, uniqueID, displayName string) (*ent.Person, error) {
	p, err := s.people.GetByUniqueID(ctx, uniqueID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, common.NewAppError("PERSON_LOOKUP", "failed to look up person", err)
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, common.NewAppError("UPLOAD_INVALID", "a display name is required for a new person", common.ErrInvalidInput)
	}
	return s.people.Create(ctx, uniqueID, common.StandardizeName(displayName), displayName)
}

// uniqueDiskName sanitizes the original filename and guarantees
// store-wide uniqueness by prefixing a short uuid when the name is
// already taken. The unique constraint on filename_on_disk backstops
// this check.
func (s *Service) uniqueDiskName(ctx context.Context, originalFilename string) (string, error) {
	name := common.SanitizeFilename(originalFilename)
	// trim whole runes from the front so the stored name stays valid UTF-8
	for len(name) > maxDiskNameLen-9 {
		_, size := utf8.DecodeRuneInString(name)
		name = name[size:]
	}

	taken, err := s.docs.FilenameOnDiskExists(ctx, name)
	if err != nil {
		return "", common.NewAppError("UPLOAD_NAME", "failed to check disk filename", err)
	}
	if taken {
		name = uuid.NewString()[:8] + "_" + name
	}
	return name, nil
}

// Search returns the projected people list for a term. Read-only: the
// persisted relationships are never modified, and repeated calls with
// the same term return the same listing.
func (s *Service) Search(ctx context.Context, term string) ([]PersonView, error) {
	people, err := s.people.ListWithDocuments(ctx)
	if err != nil {
		return nil, err
	}
	return FilterPeople(people, term), nil
}

// ViewFile is a resolved stored file ready to stream.
type ViewFile struct {
	File         *os.File
	MimeType     string
	DocumentName string
}

// ResolveView resolves a document id to its on-disk file. It
// distinguishes an unknown document (common.ErrNotFound) from an
// orphaned row whose file is gone (common.ErrFileMissing). The caller
// must close the returned file.
func (s *Service) ResolveView(ctx context.Context, docID uuid.UUID) (*ViewFile, error) {
	doc, err := s.docs.GetWithOwner(ctx, docID)
	if err != nil {
		return nil, err
	}
	owner := doc.Edges.Owner
	if owner == nil {
		return nil, common.NewAppError("VIEW_OWNER", "document has no owner loaded", common.ErrInternal)
	}

	f, err := s.layout.Open(owner.UniqueID, doc.FilenameOnDisk)
	if err != nil {
		if errors.Is(err, common.ErrFileMissing) {
			s.logger.Warn("document is orphaned", "document_id", docID, "filename_on_disk", doc.FilenameOnDisk)
		}
		return nil, err
	}

	return &ViewFile{
		File:         f,
		MimeType:     constants.MimeTypeForExt(filepath.Ext(doc.FilenameOnDisk)),
		DocumentName: doc.DocumentName,
	}, nil
}

// DeleteResult reports a completed delete. FileWasMissing means the row
// was removed but the disk file had already disappeared; that case is a
// warning for the user, not an error.
type DeleteResult struct {
	DocumentName   string
	FileWasMissing bool
}

// Delete removes the document row and its stored file as one ordered
// unit: the row delete and the file removal are both attempted before
// the transaction commits. A file that is already gone still commits;
// any other removal failure rolls the row back and surfaces the error.
func (s *Service) Delete(ctx context.Context, docID uuid.UUID) (DeleteResult, error) {
	doc, err := s.docs.GetWithOwner(ctx, docID)
	if err != nil {
		return DeleteResult{}, err
	}
	owner := doc.Edges.Owner
	if owner == nil {
		return DeleteResult{}, common.NewAppError("DELETE_OWNER", "document has no owner loaded", common.ErrInternal)
	}

	tx, err := s.tx.BeginTx(ctx)
	if err != nil {
		return DeleteResult{}, common.NewAppError("DELETE_TX", "failed to begin transaction", err)
	}

	if err := tx.DeleteDocument(ctx, docID); err != nil {
		_ = tx.Rollback()
		return DeleteResult{}, common.NewAppError("DELETE_ROW", "failed to delete document row", errors.Join(common.ErrPersistence, err))
	}

	missing, err := s.layout.Remove(owner.UniqueID, doc.FilenameOnDisk)
	if err != nil {
		_ = tx.Rollback()
		s.logger.Error("file removal failed, document retained", "document_id", docID, "error", err)
		return DeleteResult{}, common.NewAppError("DELETE_FILE", "failed to remove stored file", errors.Join(common.ErrPersistence, err))
	}

	if err := tx.Commit(); err != nil {
		return DeleteResult{}, common.NewAppError("DELETE_COMMIT", "failed to commit delete", errors.Join(common.ErrPersistence, err))
	}

	s.logger.Info("document deleted", "document_id", docID, "document_name", doc.DocumentName, "file_was_missing", missing)
	return DeleteResult{DocumentName: doc.DocumentName, FileWasMissing: missing}, nil
}
