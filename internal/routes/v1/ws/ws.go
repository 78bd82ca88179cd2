package routesV1WS

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"

	"github.com/pawpawapp/pawpaw-backend/internal/realtime"
	"github.com/pawpawapp/pawpaw-backend/pkg/jwt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ConnectHandler upgrades the request and registers the socket for the user.
// Browsers cannot set headers on WebSocket requests, so the token rides in a
// query parameter.
func ConnectHandler(c echo.Context, hub *realtime.Hub) error {
	token := c.QueryParam("token")
	if token == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "missing token"})
	}

	claims, err := jwt.ValidateToken(token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid token"})
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logrus.WithError(err).Debug("websocket upgrade failed")
		return nil
	}

	hub.Register(uint(claims.UserID), conn)

	return nil
}
