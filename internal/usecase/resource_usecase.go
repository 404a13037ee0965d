package usecase

import (
	"context"
	"strings"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

type ResourceUseCase struct {
	resourceRepo repository.ResourceRepository
}

func NewResourceUseCase(resourceRepo repository.ResourceRepository) *ResourceUseCase {
	return &ResourceUseCase{
		resourceRepo: resourceRepo,
	}
}

type CreateResourceInput struct {
	Title       string
	URL         string
	Description string
	Tags        []string
}

func (uc *ResourceUseCase) Create(ctx context.Context, userID string, input CreateResourceInput) (*entity.Resource, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.BadRequest("Title must not be empty", nil)
	}

	resource := &entity.Resource{
		Title:       title,
		URL:         input.URL,
		Description: input.Description,
		Tags:        input.Tags,
		CreatedBy:   userID,
	}

	if err := uc.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

func (uc *ResourceUseCase) List(ctx context.Context) ([]*entity.Resource, error) {
	return uc.resourceRepo.List(ctx)
}

// Search filters the library by keyword over title, description and tags.
// The filter runs client-side; the document store has no full-text index.
func (uc *ResourceUseCase) Search(ctx context.Context, keyword string) ([]*entity.Resource, error) {
	resources, err := uc.resourceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return resources, nil
	}

	var matched []*entity.Resource
	for _, r := range resources {
		if resourceMatches(r, keyword) {
			matched = append(matched, r)
		}
	}

	return matched, nil
}

func (uc *ResourceUseCase) Delete(ctx context.Context, userID, resourceID string) error {
	resource, err := uc.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return err
	}

	if resource.CreatedBy != userID {
		return errors.Forbidden("You can only delete resources you added", nil)
	}

	return uc.resourceRepo.Delete(ctx, resourceID)
}

func resourceMatches(r *entity.Resource, keyword string) bool {
	if strings.Contains(strings.ToLower(r.Title), keyword) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), keyword) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), keyword) {
			return true
		}
	}
	return false
}
