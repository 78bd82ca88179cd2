package routesV1Swipe

import (
	"net/http"

	"github.com/labstack/echo"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	"github.com/pawpawapp/pawpaw-backend/internal/routes/httperr"
	swipeUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/swipe"
	"github.com/pawpawapp/pawpaw-backend/pkg/http_util"
)

func SwipeHandler(c echo.Context, swipeCase swipeUseCase.ISwipeUseCase) error {
	request, err := http_util.Decode[entity.SwipeRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	var decision entity.Decision
	switch request.Decision {
	case "like":
		decision = entity.DecisionLike
	case "pass":
		decision = entity.DecisionPass
	default:
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "decision must be like or pass"})
	}

	user := c.Get("userProfile").(*entity.User)

	result, err := swipeCase.Swipe(c.Request().Context(), user.ID, request.ProfileID, decision)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.SwipeResponse]{
		Message: "Swipe outcome",
		Data: entity.SwipeResponse{
			Outcome:     result.Outcome.String(),
			OutcomeEnum: result.Outcome,
			Match:       result.CounterpartPet,
		},
	})
}
