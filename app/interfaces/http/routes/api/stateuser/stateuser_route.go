package stateuserroute

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"menlo.ai/state-user-api/app/domain/common"
	"menlo.ai/state-user-api/app/domain/stateuser"
	"menlo.ai/state-user-api/app/interfaces/http/middleware"
	"menlo.ai/state-user-api/app/interfaces/http/responses"
	"menlo.ai/state-user-api/app/utils/logger"
)

type StateUserRoute struct {
	stateUserService *stateuser.StateUserService
}

func NewStateUserRoute(stateUserService *stateuser.StateUserService) *StateUserRoute {
	return &StateUserRoute{
		stateUserService: stateUserService,
	}
}

func (route *StateUserRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/user", route.GetStateUser)
}

type StateUserRequest struct {
	Address string `json:"address" example:"0xAbC0000000000000000000000000000000000001"`
}

// GetStateUser godoc
// @Summary     Resolve a state user
// @Description Looks up the profile registered for an address. The address is matched case-insensitively.
// @Tags        State User API
// @Accept      json
// @Produce     json
// @Param       request body StateUserRequest true "Address to resolve"
// @Success     200 {object} stateuser.StateUser
// @Failure     400 {object} responses.ErrorResponse "Missing address"
// @Failure     500 {object} responses.MessageResponse "Lookup failed"
// @Router      /api/user [post]
func (route *StateUserRoute) GetStateUser(reqCtx *gin.Context) {
	var req StateUserRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil || req.Address == "" {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Error: "Missing address",
		})
		return
	}

	ctx := reqCtx.Request.Context()
	user, err := route.stateUserService.GetStateUser(ctx, req.Address)
	if err != nil {
		message, code := describeError(err)
		logger.GetLogger().
			WithField("error_code", code).
			WithField("request_id", middleware.RequestIDFromContext(ctx)).
			Errorf("state user lookup failed for %s: %v", req.Address, err)
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.MessageResponse{
			Message: message,
		})
		return
	}

	reqCtx.JSON(http.StatusOK, user)
}

// describeError falls back to the generic message when err has no text.
func describeError(err error) (string, string) {
	message := err.Error()
	code := ""
	var domainErr *common.Error
	if errors.As(err, &domainErr) {
		message = domainErr.GetMessage()
		code = domainErr.GetCode()
	}
	if message == "" {
		message = responses.InternalServerErrorMessage
	}
	return message, code
}
