package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"persondocs/gen/ent"
	"persondocs/gen/ent/document"
	"persondocs/internal/common"
)

// CreateDocumentParams carries the fields needed to persist a new
// document row. Category and Description may be empty.
type CreateDocumentParams struct {
	PersonID       uuid.UUID
	DocumentName   string
	FilenameOnDisk string
	Category       string
	Description    string
}

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	// GetWithOwner loads the document together with its owning person.
	GetWithOwner(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	Create(ctx context.Context, p CreateDocumentParams) (*ent.Document, error)
	FilenameOnDiskExists(ctx context.Context, name string) (bool, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	doc, err := r.client.Document.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return doc, err
}

func (r *documentRepository) GetWithOwner(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	doc, err := r.client.Document.Query().
		Where(document.ID(id)).
		WithOwner().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return doc, err
}

func (r *documentRepository) Create(ctx context.Context, p CreateDocumentParams) (*ent.Document, error) {
	create := r.client.Document.Create().
		SetPersonID(p.PersonID).
		SetDocumentName(p.DocumentName).
		SetFilenameOnDisk(p.FilenameOnDisk)
	if p.Category != "" {
		create.SetCategory(p.Category)
	}
	if p.Description != "" {
		create.SetDescription(p.Description)
	}

	doc, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "person_id", p.PersonID, "filename_on_disk", p.FilenameOnDisk, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "id", doc.ID, "person_id", p.PersonID, "filename_on_disk", p.FilenameOnDisk)
	return doc, nil
}

func (r *documentRepository) FilenameOnDiskExists(ctx context.Context, name string) (bool, error) {
	return r.client.Document.Query().
		Where(document.FilenameOnDisk(name)).
		Exist(ctx)
}
