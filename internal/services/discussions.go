package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shelterdesk/portal/internal/api"
	"github.com/shelterdesk/portal/internal/models"
)

type DiscussionService interface {
	List(ctx context.Context, page, pageSize int) (models.Page[models.Discussion], error)
	Messages(ctx context.Context, discussionID string, page, pageSize int) (models.Page[models.Message], error)
	Post(ctx context.Context, discussionID, text string) (models.Message, error)
}

type discussionService struct {
	client *api.Client
}

func NewDiscussionService(client *api.Client) DiscussionService {
	return &discussionService{client: client}
}

func (s *discussionService) List(ctx context.Context, page, pageSize int) (models.Page[models.Discussion], error) {
	return api.Get[models.Page[models.Discussion]](ctx, s.client, "/api/discussions", api.PageQuery(page, pageSize))
}

func (s *discussionService) Messages(ctx context.Context, discussionID string, page, pageSize int) (models.Page[models.Message], error) {
	path := fmt.Sprintf("/api/discussions/%s/messages", url.PathEscape(discussionID))
	return api.Get[models.Page[models.Message]](ctx, s.client, path, api.PageQuery(page, pageSize))
}

func (s *discussionService) Post(ctx context.Context, discussionID, text string) (models.Message, error) {
	path := fmt.Sprintf("/api/discussions/%s/messages", url.PathEscape(discussionID))
	return api.Post[models.Message](ctx, s.client, path, map[string]string{"text": text})
}
