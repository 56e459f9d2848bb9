package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"commune/internal/httpx"
	"commune/internal/service"
	"commune/internal/validate"
)

type RoleHandler struct {
	svc *service.RoleService
}

type RoleCreateReq struct {
	Name string `json:"name" binding:"required,min=2"`
}

func NewRoleHandler(svc *service.RoleService) *RoleHandler {
	return &RoleHandler{svc: svc}
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req RoleCreateReq
	if err := validate.BindJSON(c, &req); err != nil {
		httpx.Fail(c, err)
		return
	}

	role, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, role)
}

func (h *RoleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	list, meta, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OKPage(c, list, meta)
}
