package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"commune/internal/httpx"
	"commune/internal/middleware"
	"commune/internal/service"
	"commune/internal/validate"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

type CommunityCreateReq struct {
	Name string `json:"name" binding:"required,min=2"`
}

func NewCommunityHandler(svc *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

func (h *CommunityHandler) Create(c *gin.Context) {
	var req CommunityCreateReq
	if err := validate.BindJSON(c, &req); err != nil {
		httpx.Fail(c, err)
		return
	}

	callerID, _ := middleware.CallerID(c)
	community, err := h.svc.Create(c.Request.Context(), callerID, req.Name)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, community)
}

func (h *CommunityHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	list, meta, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OKPage(c, list, meta)
}

func (h *CommunityHandler) ListOwned(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	callerID, _ := middleware.CallerID(c)
	list, meta, err := h.svc.ListOwned(c.Request.Context(), callerID, page)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OKPage(c, list, meta)
}

func (h *CommunityHandler) ListJoined(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	callerID, _ := middleware.CallerID(c)
	list, meta, err := h.svc.ListJoined(c.Request.Context(), callerID, page)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OKPage(c, list, meta)
}

func (h *CommunityHandler) ListMembers(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	list, meta, err := h.svc.ListMembers(c.Request.Context(), c.Param("id"), page)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OKPage(c, list, meta)
}
