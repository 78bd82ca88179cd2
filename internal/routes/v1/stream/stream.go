package routesV1Stream

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	"github.com/pawpawapp/pawpaw-backend/internal/routes/httperr"
	giftUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/gift"
	streamUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/stream"
	"github.com/pawpawapp/pawpaw-backend/pkg/http_util"
)

func currentUser(c echo.Context) *entity.User {
	return c.Get("userProfile").(*entity.User)
}

func streamID(c echo.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func StartStreamHandler(c echo.Context, streamCase streamUseCase.IStreamUseCase) error {
	request, err := http_util.Decode[entity.StartStreamRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "bad request, check your request"})
	}

	stream, err := streamCase.StartStream(c.Request().Context(), currentUser(c).ID, request.Title, request.CoverURL)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.LiveStream]{
		Message: "Stream started",
		Data:    stream,
	})
}

func EndStreamHandler(c echo.Context, streamCase streamUseCase.IStreamUseCase) error {
	id, ok := streamID(c)
	if !ok {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if err := streamCase.EndStream(c.Request().Context(), currentUser(c).ID, id); err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Stream ended"})
}

func ListStreamsHandler(c echo.Context, streamCase streamUseCase.IStreamUseCase) error {
	streams, err := streamCase.ListLiveStreams(c.Request().Context())
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.StreamListResponse]{
		Message: "Streams fetched",
		Data:    entity.StreamListResponse{Streams: streams},
	})
}

func JoinStreamHandler(c echo.Context, streamCase streamUseCase.IStreamUseCase) error {
	id, ok := streamID(c)
	if !ok {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	viewers, err := streamCase.JoinStream(c.Request().Context(), currentUser(c).ID, id)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, map[string]int64{"viewers": viewers})
}

func LeaveStreamHandler(c echo.Context, streamCase streamUseCase.IStreamUseCase) error {
	id, ok := streamID(c)
	if !ok {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	viewers, err := streamCase.LeaveStream(c.Request().Context(), currentUser(c).ID, id)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, map[string]int64{"viewers": viewers})
}

func SendStreamMessageHandler(c echo.Context, streamCase streamUseCase.IStreamUseCase) error {
	id, ok := streamID(c)
	if !ok {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	request, err := http_util.Decode[entity.SendMessageRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "bad request, check your request"})
	}

	message, err := streamCase.SendStreamMessage(c.Request().Context(), currentUser(c).ID, id, request.Body)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.StreamMessage]{
		Message: "Message sent",
		Data:    message,
	})
}

func ListStreamMessagesHandler(c echo.Context, streamCase streamUseCase.IStreamUseCase) error {
	id, ok := streamID(c)
	if !ok {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	messages, err := streamCase.ListStreamMessages(c.Request().Context(), id, 100)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[[]entity.StreamMessage]{
		Message: "Messages fetched",
		Data:    messages,
	})
}

func SendStreamGiftHandler(c echo.Context, giftCase giftUseCase.IGiftUseCase) error {
	id, ok := streamID(c)
	if !ok {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	request, err := http_util.Decode[entity.SendGiftRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	newBalance, err := giftCase.SendStreamGift(c.Request().Context(), currentUser(c).ID, id, entity.GiftKind(request.Kind))
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.SendGiftResponse]{
		Message: "Gift sent",
		Data:    entity.SendGiftResponse{NewBalance: newBalance},
	})
}
