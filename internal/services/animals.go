package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shelterdesk/portal/internal/api"
	"github.com/shelterdesk/portal/internal/models"
)

// AnimalFilter narrows and orders an animal listing. Zero-valued fields are
// omitted from the request.
type AnimalFilter struct {
	SpeciesID     string
	Status        string
	SortBy        string
	SortDirection string
}

type AnimalService interface {
	List(ctx context.Context, page, pageSize int, filter AnimalFilter) (models.Page[models.Animal], error)
	Register(ctx context.Context, animal models.NewAnimal) (models.Animal, error)
	SetStatus(ctx context.Context, animalID, status string) (models.Animal, error)
}

type animalService struct {
	client *api.Client
}

func NewAnimalService(client *api.Client) AnimalService {
	return &animalService{client: client}
}

func (s *animalService) List(ctx context.Context, page, pageSize int, filter AnimalFilter) (models.Page[models.Animal], error) {
	q := api.PageQuery(page, pageSize)
	if filter.SpeciesID != "" {
		q.Set("speciesId", filter.SpeciesID)
	}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.SortBy != "" {
		q.Set("sortBy", filter.SortBy)
		if filter.SortDirection != "" {
			q.Set("sortDirection", filter.SortDirection)
		}
	}
	return api.Get[models.Page[models.Animal]](ctx, s.client, "/api/animals", q)
}

func (s *animalService) Register(ctx context.Context, animal models.NewAnimal) (models.Animal, error) {
	return api.Post[models.Animal](ctx, s.client, "/api/animals", animal)
}

func (s *animalService) SetStatus(ctx context.Context, animalID, status string) (models.Animal, error) {
	path := fmt.Sprintf("/api/animals/%s/status", url.PathEscape(animalID))
	return api.Post[models.Animal](ctx, s.client, path, map[string]string{"status": status})
}
