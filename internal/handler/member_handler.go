package handler

import (
	"github.com/gin-gonic/gin"

	"commune/internal/httpx"
	"commune/internal/middleware"
	"commune/internal/service"
	"commune/internal/validate"
)

type MemberHandler struct {
	svc *service.MemberService
}

type MemberAddReq struct {
	Community string `json:"community" binding:"required"`
	User      string `json:"user" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

func NewMemberHandler(svc *service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

func (h *MemberHandler) Add(c *gin.Context) {
	var req MemberAddReq
	// body is cached; the validation stage and owner gate read it first
	if err := validate.BindJSON(c, &req); err != nil {
		httpx.Fail(c, err)
		return
	}

	member, err := h.svc.Add(c.Request.Context(), req.Community, req.User, req.Role)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, member)
}

func (h *MemberHandler) Remove(c *gin.Context) {
	callerID, _ := middleware.CallerID(c)

	removed, err := h.svc.Remove(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, gin.H{"removed": removed})
}
