package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"storefront/models"
)

// OrderStatusStream is a live connection to the commerce API's order status
// channel at /ws/orders/{orderID}/.
type OrderStatusStream struct {
	conn *websocket.Conn
}

// DialOrderStatus opens the stream. baseURL is the commerce API base; http(s)
// schemes are rewritten to ws(s). The bearer token rides in the handshake
// headers.
func DialOrderStatus(ctx context.Context, baseURL, orderID, token string) (*OrderStatusStream, error) {
	wsURL := httpToWS(strings.TrimRight(baseURL, "/")) + "/ws/orders/" + orderID + "/"

	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	stream := &OrderStatusStream{conn: conn}
	go func() {
		<-ctx.Done()
		conn.Close()
	}()
	return stream, nil
}

// Next blocks for the next status update. It returns an error once the peer
// closes or the dial context is cancelled.
func (s *OrderStatusStream) Next() (models.OrderStatusUpdate, error) {
	var update models.OrderStatusUpdate
	if err := s.conn.ReadJSON(&update); err != nil {
		return models.OrderStatusUpdate{}, err
	}
	return update, nil
}

func (s *OrderStatusStream) Close() error {
	s.conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
	return s.conn.Close()
}

func httpToWS(url string) string {
	switch {
	case strings.HasPrefix(url, "https://"):
		return "wss://" + strings.TrimPrefix(url, "https://")
	case strings.HasPrefix(url, "http://"):
		return "ws://" + strings.TrimPrefix(url, "http://")
	}
	return url
}
