package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shelterdesk/portal/internal/api"
	"github.com/shelterdesk/portal/internal/models"
)

// SpeciesService lists species and their breeds. Search is passed through to
// the backend as a query parameter; no filtering happens client-side, so
// results stay correct across page boundaries.
type SpeciesService interface {
	List(ctx context.Context, page, pageSize int, search string) (models.Page[models.Species], error)
	Breeds(ctx context.Context, speciesID string) ([]models.Breed, error)
}

type speciesService struct {
	client *api.Client
}

func NewSpeciesService(client *api.Client) SpeciesService {
	return &speciesService{client: client}
}

func (s *speciesService) List(ctx context.Context, page, pageSize int, search string) (models.Page[models.Species], error) {
	q := api.PageQuery(page, pageSize)
	if search != "" {
		q.Set("search", search)
	}
	return api.Get[models.Page[models.Species]](ctx, s.client, "/api/species", q)
}

func (s *speciesService) Breeds(ctx context.Context, speciesID string) ([]models.Breed, error) {
	path := fmt.Sprintf("/api/species/%s/breeds", url.PathEscape(speciesID))
	return api.Get[[]models.Breed](ctx, s.client, path, nil)
}
