package routesV1Profile

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	"github.com/pawpawapp/pawpaw-backend/internal/media"
	"github.com/pawpawapp/pawpaw-backend/internal/routes/httperr"
	profileUseCase "github.com/pawpawapp/pawpaw-backend/internal/usecase/profile"
	"github.com/pawpawapp/pawpaw-backend/pkg/http_util"
)

func currentUser(c echo.Context) *entity.User {
	return c.Get("userProfile").(*entity.User)
}

func CreateHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	request, err := http_util.Decode[entity.UpsertProfileRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "bad request, check your request"})
	}

	profile, err := profileCase.CreateProfile(c.Request().Context(), currentUser(c).ID, request)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.PetProfile]{
		Message: "Profile created",
		Data:    profile,
	})
}

func GetHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	profileID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	profile, err := profileCase.GetProfile(c.Request().Context(), uint(profileID))
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.PetProfile]{
		Message: "Profile fetched",
		Data:    profile,
	})
}

func GetOwnHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	profile, err := profileCase.GetOwnProfile(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.PetProfile]{
		Message: "Profile fetched",
		Data:    profile,
	})
}

func UpdateHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	profileID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	request, err := http_util.Decode[entity.UpsertProfileRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if problems := request.Validate(c.Request().Context()); len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "bad request, check your request"})
	}

	profile, err := profileCase.UpdateProfile(c.Request().Context(), currentUser(c).ID, uint(profileID), request)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.PetProfile]{
		Message: "Profile updated",
		Data:    profile,
	})
}

func DeleteHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	profileID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if err := profileCase.DeleteProfile(c.Request().Context(), currentUser(c).ID, uint(profileID)); err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Profile deleted"})
}

func FeedHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	request, err := http_util.Decode[entity.FeedRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	excludeIDs := make([]uint, 0, len(request.ExcludeProfiles))
	for _, id := range request.ExcludeProfiles {
		if id > 0 {
			excludeIDs = append(excludeIDs, uint(id))
		}
	}

	profiles, err := profileCase.GetFeed(c.Request().Context(), currentUser(c).ID, excludeIDs, 10)
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.FeedResponse]{
		Message: "Profiles fetched successfully",
		Data:    entity.FeedResponse{Profiles: profiles},
	})
}

func UploadPhotoHandler(c echo.Context, mediaService media.IMediaService) error {
	if mediaService == nil {
		return http_util.Encode(c, http.StatusServiceUnavailable, map[string]string{"error": "media uploads disabled"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	src, err := file.Open()
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	defer src.Close()

	key, url, err := mediaService.Upload(c.Request().Context(), src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return httperr.JSON(c, err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.UploadResponse]{
		Message: "Upload successful",
		Data:    entity.UploadResponse{Key: key, URL: url},
	})
}
