package routesV1Gift

import (
	"net/http"

	"github.com/labstack/echo"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	"github.com/pawpawapp/pawpaw-backend/internal/routes/httperr"
	giftUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/gift"
	"github.com/pawpawapp/pawpaw-backend/pkg/http_util"
)

func currentUser(c echo.Context) *entity.User {
	return c.Get("userProfile").(*entity.User)
}

func SendGiftHandler(c echo.Context, giftCase giftUseCase.IGiftUseCase) error {
	request, err := http_util.Decode[entity.SendGiftRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	newBalance, err := giftCase.SendGift(c.Request().Context(), currentUser(c).ID, request.PetID, entity.GiftKind(request.Kind))
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.SendGiftResponse]{
		Message: "Gift sent",
		Data:    entity.SendGiftResponse{NewBalance: newBalance},
	})
}

func GetWalletHandler(c echo.Context, giftCase giftUseCase.IGiftUseCase) error {
	wallet, err := giftCase.GetWallet(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.WalletResponse]{
		Message: "Wallet fetched",
		Data: entity.WalletResponse{
			Balance:     wallet.Balance,
			TotalEarned: wallet.TotalEarned,
		},
	})
}

func ListReceivedGiftsHandler(c echo.Context, giftCase giftUseCase.IGiftUseCase) error {
	gifts, err := giftCase.ListReceivedGifts(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[[]entity.Gift]{
		Message: "Gifts fetched",
		Data:    gifts,
	})
}
