package handlers

import (
	"strconv"

	"newsroom-api/helper"
	"newsroom-api/models"
	"newsroom-api/services"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterService services.NewsletterService
	Helper            *helper.HTTPHelper
}

func NewNewsletterHandler(newsletterService services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService, Helper: &helper.HTTPHelper{}}
}

func (h *NewsletterHandler) CreateNewsletter(c *gin.Context) {
	var req models.CreateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	newsletter, err := h.newsletterService.Submit(req, currentUser(c))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter submitted", newsletter)
}

func (h *NewsletterHandler) GetNewsletters(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	newsletters, total, err := h.newsletterService.ListNewsletters(params, currentUser(c))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletters loaded", gin.H{
		"newsletters": newsletters,
		"pagination":  h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *NewsletterHandler) GetMySubscriptions(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	newsletters, total, err := h.newsletterService.ListSubscribed(params, currentUser(c))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletters loaded", gin.H{
		"newsletters": newsletters,
		"pagination":  h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *NewsletterHandler) GetNewsletter(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid newsletter ID", h.Helper.EmptyJsonMap())
		return
	}

	newsletter, err := h.newsletterService.GetNewsletter(uint(id), currentUser(c))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter loaded", newsletter)
}

func (h *NewsletterHandler) ApproveNewsletter(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid newsletter ID", h.Helper.EmptyJsonMap())
		return
	}

	newsletter, err := h.newsletterService.Approve(uint(id), currentUser(c))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter approved", newsletter)
}

func (h *NewsletterHandler) RejectNewsletter(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid newsletter ID", h.Helper.EmptyJsonMap())
		return
	}

	newsletter, err := h.newsletterService.Reject(uint(id), currentUser(c))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter rejected", newsletter)
}
