package handlers

import (
	"strconv"

	"newsroom-api/helper"
	"newsroom-api/models"
	"newsroom-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService         services.UserService
	subscriptionService services.SubscriptionService
	Helper              *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, subscriptionService services.SubscriptionService) *UserHandler {
	return &UserHandler{
		userService:         userService,
		subscriptionService: subscriptionService,
		Helper:              &helper.HTTPHelper{},
	}
}

// GetJournalists lists journalist accounts, the valid targets for
// reader subscriptions.
func (h *UserHandler) GetJournalists(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	journalists, total, err := h.userService.GetJournalists(params)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Journalists loaded", gin.H{
		"users":      journalists,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *UserHandler) Subscribe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.subscriptionService.SubscribeToJournalist(currentUser(c), uint(id)); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Subscribed", h.Helper.EmptyJsonMap())
}

func (h *UserHandler) Unsubscribe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.subscriptionService.UnsubscribeFromJournalist(currentUser(c), uint(id)); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Unsubscribed", h.Helper.EmptyJsonMap())
}
