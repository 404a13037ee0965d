package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

type firestoreResourceRepository struct {
	client *firestore.Client
}

func NewFirestoreResourceRepository(client *firestore.Client) repository.ResourceRepository {
	return &firestoreResourceRepository{client: client}
}

func (r *firestoreResourceRepository) Create(ctx context.Context, resource *entity.Resource) error {
	if resource.ID == "" {
		resource.ID = uuid.New().String()
	}

	resource.CreatedAt = time.Now()

	_, err := r.client.Collection("resources").Doc(resource.ID).Set(ctx, resource)
	if err != nil {
		return errors.Internal("Failed to create resource", err)
	}
	return nil
}

func (r *firestoreResourceRepository) GetByID(ctx context.Context, id string) (*entity.Resource, error) {
	doc, err := r.client.Collection("resources").Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Resource", err)
		}
		return nil, errors.Internal("Failed to get resource", err)
	}

	var resource entity.Resource
	if err := doc.DataTo(&resource); err != nil {
		return nil, errors.Internal("Failed to parse resource data", err)
	}
	return &resource, nil
}

func (r *firestoreResourceRepository) List(ctx context.Context) ([]*entity.Resource, error) {
	iter := r.client.Collection("resources").OrderBy("createdAt", firestore.Desc).Documents(ctx)

	var resources []*entity.Resource
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate resources", err)
		}

		var resource entity.Resource
		if err := doc.DataTo(&resource); err != nil {
			continue // Skip malformed documents
		}
		resources = append(resources, &resource)
	}

	return resources, nil
}

func (r *firestoreResourceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("resources").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete resource", err)
	}
	return nil
}
