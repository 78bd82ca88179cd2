package routesV1Auth

import (
	"net/http"

	"github.com/labstack/echo"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	authUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/auth"
	"github.com/pawpawapp/pawpaw-backend/pkg/http_util"
)

func SignUpHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	reqBody, err := http_util.Decode[entity.CreateUserRequest](c)

	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	problems := reqBody.Validate(c.Request().Context())

	if len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "bad request, check your request"})
	}

	user, err := authCase.SignupUser(c.Request().Context(), reqBody)

	if err != nil {
		return http_util.Encode(c, http.StatusInternalServerError, map[string]string{"error": "failed to sign up"})
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.SignUpResponse]{
		Message: "Sign-up successful",
		Data: entity.SignUpResponse{
			ID:       int(user.ID),
			Username: user.Username,
			Name:     user.Name,
			Email:    user.Email,
		},
	})
}

func SignInHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	reqBody, err := http_util.Decode[entity.SignInRequest](c)

	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	problems := reqBody.Validate(c.Request().Context())

	if len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "bad request, check your request"})
	}

	jwtToken, err := authCase.SignIn(c.Request().Context(), reqBody.Email, reqBody.Username, reqBody.Password)

	if err != nil {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.SignInResponse]{
		Message: "Sign-in successful",
		Data:    entity.SignInResponse{Token: jwtToken},
	})
}
