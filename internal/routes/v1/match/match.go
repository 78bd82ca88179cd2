package routesV1Match

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	"github.com/pawpawapp/pawpaw-backend/internal/routes/httperr"
	chatUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/chat"
	matchUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/match"
	"github.com/pawpawapp/pawpaw-backend/pkg/http_util"
)

func currentUser(c echo.Context) *entity.User {
	return c.Get("userProfile").(*entity.User)
}

func ListMatchesHandler(c echo.Context, matchCase matchUseCase.IMatchUseCase) error {
	matches, err := matchCase.ListMatches(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.MatchListResponse]{
		Message: "Matches fetched",
		Data:    entity.MatchListResponse{Matches: matches},
	})
}

func ListMessagesHandler(c echo.Context, chatCase chatUseCase.IChatUseCase) error {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	messages, err := chatCase.ListMessages(c.Request().Context(), currentUser(c).ID, uint(matchID), 100)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[[]entity.Message]{
		Message: "Messages fetched",
		Data:    messages,
	})
}

func SendMessageHandler(c echo.Context, chatCase chatUseCase.IChatUseCase) error {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	request, err := http_util.Decode[entity.SendMessageRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "bad request, check your request"})
	}

	message, err := chatCase.SendMessage(c.Request().Context(), currentUser(c).ID, uint(matchID), request.Body)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.Message]{
		Message: "Message sent",
		Data:    message,
	})
}
