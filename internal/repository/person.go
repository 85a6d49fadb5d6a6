package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"persondocs/gen/ent"
	"persondocs/gen/ent/document"
	"persondocs/gen/ent/person"
	"persondocs/internal/common"
)

type PersonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Person, error)
	GetByUniqueID(ctx context.Context, uniqueID string) (*ent.Person, error)
	Create(ctx context.Context, uniqueID, standardName, displayName string) (*ent.Person, error)
	// ListWithDocuments returns every person ordered by display name, each
	// with their documents eager-loaded in upload order.
	ListWithDocuments(ctx context.Context) ([]*ent.Person, error)
}

type personRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPersonRepository(client *ent.Client, logger *slog.Logger) PersonRepository {
	return &personRepository{
		client: client,
		logger: logger,
	}
}

func (r *personRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Person, error) {
	p, err := r.client.Person.
		Query().
		Where(person.ID(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return p, err
}

func (r *personRepository) GetByUniqueID(ctx context.Context, uniqueID string) (*ent.Person, error) {
	p, err := r.client.Person.
		Query().
		Where(person.UniqueID(uniqueID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return p, err
}

func (r *personRepository) Create(ctx context.Context, uniqueID, standardName, displayName string) (*ent.Person, error) {
	p, err := r.client.Person.Create().
		SetUniqueID(uniqueID).
		SetStandardName(standardName).
		SetDisplayName(displayName).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create person", "unique_id", uniqueID, "display_name", displayName, "error", err)
		return nil, err
	}
	r.logger.Info("person created", "id", p.ID, "unique_id", uniqueID)
	return p, nil
}

func (r *personRepository) ListWithDocuments(ctx context.Context) ([]*ent.Person, error) {
	plist, err := r.client.Person.Query().
		Order(person.ByDisplayName()).
		WithDocuments(func(q *ent.DocumentQuery) {
			q.Order(document.ByDateUploaded())
		}).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list people", "error", err)
		return nil, err
	}
	return plist, nil
}
