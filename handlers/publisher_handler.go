package handlers

import (
	"strconv"

	"newsroom-api/helper"
	"newsroom-api/models"
	"newsroom-api/services"

	"github.com/gin-gonic/gin"
)

type PublisherHandler struct {
	publisherService    services.PublisherService
	subscriptionService services.SubscriptionService
	Helper              *helper.HTTPHelper
}

func NewPublisherHandler(publisherService services.PublisherService, subscriptionService services.SubscriptionService) *PublisherHandler {
	return &PublisherHandler{
		publisherService:    publisherService,
		subscriptionService: subscriptionService,
		Helper:              &helper.HTTPHelper{},
	}
}

func (h *PublisherHandler) CreatePublisher(c *gin.Context) {
	var req models.CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	publisher, err := h.publisherService.CreatePublisher(req, currentUser(c))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Publisher created", publisher)
}

func (h *PublisherHandler) GetPublishers(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	publishers, total, err := h.publisherService.GetPublishers(params)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Publishers loaded", gin.H{
		"publishers": publishers,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *PublisherHandler) GetPublisher(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher ID", h.Helper.EmptyJsonMap())
		return
	}

	publisher, err := h.publisherService.GetPublisher(uint(id))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Publisher loaded", publisher)
}

// Subscribe adds the reader→publisher edge. Subscribing twice is a
// no-op.
func (h *PublisherHandler) Subscribe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.subscriptionService.SubscribeToPublisher(currentUser(c), uint(id)); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Subscribed", h.Helper.EmptyJsonMap())
}

func (h *PublisherHandler) Unsubscribe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.subscriptionService.UnsubscribeFromPublisher(currentUser(c), uint(id)); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Unsubscribed", h.Helper.EmptyJsonMap())
}
