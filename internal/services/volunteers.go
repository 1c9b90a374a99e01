package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shelterdesk/portal/internal/api"
	"github.com/shelterdesk/portal/internal/models"
)

type VolunteerService interface {
	List(ctx context.Context, page, pageSize int) (models.Page[models.Volunteer], error)
	Profile(ctx context.Context, volunteerID string) (models.Volunteer, error)

	// PendingRequests lists membership requests awaiting a decision.
	PendingRequests(ctx context.Context, page, pageSize int) (models.Page[models.VolunteerRequest], error)
	Approve(ctx context.Context, requestID string) error
	Reject(ctx context.Context, requestID, reason string) error
}

type volunteerService struct {
	client *api.Client
}

func NewVolunteerService(client *api.Client) VolunteerService {
	return &volunteerService{client: client}
}

func (s *volunteerService) List(ctx context.Context, page, pageSize int) (models.Page[models.Volunteer], error) {
	return api.Get[models.Page[models.Volunteer]](ctx, s.client, "/api/volunteers", api.PageQuery(page, pageSize))
}

func (s *volunteerService) Profile(ctx context.Context, volunteerID string) (models.Volunteer, error) {
	path := fmt.Sprintf("/api/volunteers/%s", url.PathEscape(volunteerID))
	return api.Get[models.Volunteer](ctx, s.client, path, nil)
}

func (s *volunteerService) PendingRequests(ctx context.Context, page, pageSize int) (models.Page[models.VolunteerRequest], error) {
	q := api.PageQuery(page, pageSize)
	q.Set("status", models.RequestStatusPending)
	return api.Get[models.Page[models.VolunteerRequest]](ctx, s.client, "/api/volunteers/requests", q)
}

func (s *volunteerService) Approve(ctx context.Context, requestID string) error {
	path := fmt.Sprintf("/api/volunteers/requests/%s/approve", url.PathEscape(requestID))
	_, err := api.Post[bool](ctx, s.client, path, nil)
	return err
}

func (s *volunteerService) Reject(ctx context.Context, requestID, reason string) error {
	path := fmt.Sprintf("/api/volunteers/requests/%s/reject", url.PathEscape(requestID))
	_, err := api.Post[bool](ctx, s.client, path, map[string]string{"reason": reason})
	return err
}
