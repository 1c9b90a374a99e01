package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"

	"github.com/shelterdesk/portal/internal/common"
	"github.com/shelterdesk/portal/internal/logging"
	"github.com/shelterdesk/portal/internal/models"
	"github.com/shelterdesk/portal/internal/session"
)

// NotificationService streams live discussion messages from the notification
// service over a websocket, authenticated with the same bearer token the
// HTTP calls use.
type NotificationService interface {
	Subscribe(ctx context.Context, discussionID string) (*MessageStream, error)
}

// MessageStream is one live subscription. Messages arrive on Messages();
// the channel closes when the connection drops or the subscribing context
// is canceled.
type MessageStream struct {
	conn *websocket.Conn
	msgs chan models.Message
}

func (s *MessageStream) Messages() <-chan models.Message {
	return s.msgs
}

func (s *MessageStream) Close() error {
	return s.conn.Close()
}

type notificationService struct {
	wsBaseURL string
	session   session.Reader
	log       logging.Logger
}

func NewNotificationService(wsBaseURL string, sess session.Reader, log logging.Logger) NotificationService {
	return &notificationService{wsBaseURL: wsBaseURL, session: sess, log: log}
}

func (n *notificationService) Subscribe(ctx context.Context, discussionID string) (*MessageStream, error) {
	token := n.session.AccessToken()
	if token == "" {
		return nil, common.ErrNotAuthenticated
	}

	endpoint := fmt.Sprintf("%s/ws/discussions/%s", n.wsBaseURL, url.PathEscape(discussionID))

	header := http.Header{}
	header.Set(common.AuthorizationHeader, common.BearerPrefix+token)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	stream := &MessageStream{conn: conn, msgs: make(chan models.Message)}

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	go func() {
		defer close(stream.msgs)
		for {
			var msg models.Message
			if err := conn.ReadJSON(&msg); err != nil {
				if ctx.Err() == nil {
					n.log.Warn(ctx, "message stream closed", "discussion", discussionID, "error", err)
				}
				return
			}
			select {
			case stream.msgs <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	return stream, nil
}
