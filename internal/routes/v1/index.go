package routesV1

import (
	"github.com/labstack/echo"

	"github.com/pawpawapp/pawpaw-backend/internal/media"
	"github.com/pawpawapp/pawpaw-backend/internal/middleware"
	"github.com/pawpawapp/pawpaw-backend/internal/realtime"
	userRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/user"
	routesV1Auth "github.com/pawpawapp/pawpaw-backend/internal/routes/v1/auth"
	routesV1Gift "github.com/pawpawapp/pawpaw-backend/internal/routes/v1/gift"
	routesV1Match "github.com/pawpawapp/pawpaw-backend/internal/routes/v1/match"
	routesV1Profile "github.com/pawpawapp/pawpaw-backend/internal/routes/v1/profile"
	routesV1Stream "github.com/pawpawapp/pawpaw-backend/internal/routes/v1/stream"
	routesV1Swipe "github.com/pawpawapp/pawpaw-backend/internal/routes/v1/swipe"
	routesV1WS "github.com/pawpawapp/pawpaw-backend/internal/routes/v1/ws"
	authUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/auth"
	chatUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/chat"
	giftUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/gift"
	matchUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/match"
	profileUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/profile"
	streamUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/stream"
	swipeUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/swipe"
)

type Handlers struct {
	UserRepo    userRepo.IUserRepo
	AuthCase    authUseCase.IAuthUseCase
	ProfileCase profileUseCase.IProfileUseCase
	SwipeCase   swipeUseCase.ISwipeUseCase
	GiftCase    giftUseCase.IGiftUseCase
	MatchCase   matchUseCase.IMatchUseCase
	ChatCase    chatUseCase.IChatUseCase
	StreamCase  streamUseCase.IStreamUseCase
	Media       media.IMediaService
	Hub         *realtime.Hub
}

func InitV1Routes(e *echo.Echo, h Handlers) {
	v1 := e.Group("/v1")

	v1.POST("/auth/sign-up", func(c echo.Context) error {
		return routesV1Auth.SignUpHandler(c, h.AuthCase)
	})
	v1.POST("/auth/sign-in", func(c echo.Context) error {
		return routesV1Auth.SignInHandler(c, h.AuthCase)
	})

	v1.GET("/ws", func(c echo.Context) error {
		return routesV1WS.ConnectHandler(c, h.Hub)
	})

	authed := v1.Group("", middleware.JWTMiddleware(h.UserRepo))

	authed.POST("/profiles", func(c echo.Context) error {
		return routesV1Profile.CreateHandler(c, h.ProfileCase)
	})
	authed.GET("/profiles/me", func(c echo.Context) error {
		return routesV1Profile.GetOwnHandler(c, h.ProfileCase)
	})
	authed.GET("/profiles/:id", func(c echo.Context) error {
		return routesV1Profile.GetHandler(c, h.ProfileCase)
	})
	authed.PUT("/profiles/:id", func(c echo.Context) error {
		return routesV1Profile.UpdateHandler(c, h.ProfileCase)
	})
	authed.DELETE("/profiles/:id", func(c echo.Context) error {
		return routesV1Profile.DeleteHandler(c, h.ProfileCase)
	})
	authed.POST("/profiles/feed", func(c echo.Context) error {
		return routesV1Profile.FeedHandler(c, h.ProfileCase)
	})
	authed.POST("/media/upload", func(c echo.Context) error {
		return routesV1Profile.UploadPhotoHandler(c, h.Media)
	})

	authed.POST("/swipes", func(c echo.Context) error {
		return routesV1Swipe.SwipeHandler(c, h.SwipeCase)
	})

	authed.POST("/gifts", func(c echo.Context) error {
		return routesV1Gift.SendGiftHandler(c, h.GiftCase)
	})
	authed.GET("/gifts/received", func(c echo.Context) error {
		return routesV1Gift.ListReceivedGiftsHandler(c, h.GiftCase)
	})
	authed.GET("/wallet", func(c echo.Context) error {
		return routesV1Gift.GetWalletHandler(c, h.GiftCase)
	})

	authed.GET("/matches", func(c echo.Context) error {
		return routesV1Match.ListMatchesHandler(c, h.MatchCase)
	})
	authed.GET("/matches/:id/messages", func(c echo.Context) error {
		return routesV1Match.ListMessagesHandler(c, h.ChatCase)
	})
	authed.POST("/matches/:id/messages", func(c echo.Context) error {
		return routesV1Match.SendMessageHandler(c, h.ChatCase)
	})

	authed.POST("/streams", func(c echo.Context) error {
		return routesV1Stream.StartStreamHandler(c, h.StreamCase)
	})
	authed.GET("/streams", func(c echo.Context) error {
		return routesV1Stream.ListStreamsHandler(c, h.StreamCase)
	})
	authed.POST("/streams/:id/end", func(c echo.Context) error {
		return routesV1Stream.EndStreamHandler(c, h.StreamCase)
	})
	authed.POST("/streams/:id/join", func(c echo.Context) error {
		return routesV1Stream.JoinStreamHandler(c, h.StreamCase)
	})
	authed.POST("/streams/:id/leave", func(c echo.Context) error {
		return routesV1Stream.LeaveStreamHandler(c, h.StreamCase)
	})
	authed.GET("/streams/:id/messages", func(c echo.Context) error {
		return routesV1Stream.ListStreamMessagesHandler(c, h.StreamCase)
	})
	authed.POST("/streams/:id/messages", func(c echo.Context) error {
		return routesV1Stream.SendStreamMessageHandler(c, h.StreamCase)
	})
	authed.POST("/streams/:id/gifts", func(c echo.Context) error {
		return routesV1Stream.SendStreamGiftHandler(c, h.GiftCase)
	})
}
