package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"commune/internal/httpx"
	"commune/internal/middleware"
	"commune/internal/model"
	"commune/internal/service"
	"commune/internal/validate"
)

type AuthHandler struct {
	svc   *service.UserService
	store sessions.Store
	log   *zap.Logger
}

type SignUpReq struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=2"`
}

type SignInReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the outward user shape. The password never appears here.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewAuthHandler(svc *service.UserService, store sessions.Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, store: store, log: log}
}

func userResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpReq
	if err := validate.BindJSON(c, &req); err != nil {
		httpx.Fail(c, err)
		return
	}

	user, token, err := h.svc.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	h.saveSession(c, token)
	httpx.OK(c, gin.H{"user": userResponse(user), "token": token})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInReq
	if err := validate.BindJSON(c, &req); err != nil {
		httpx.Fail(c, err)
		return
	}

	user, token, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	h.saveSession(c, token)
	httpx.OK(c, gin.H{"user": userResponse(user), "token": token})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	callerID, _ := middleware.CallerID(c)
	h.svc.SignOut(c.Request.Context(), callerID)
	h.clearSession(c)
	httpx.OK(c, gin.H{"message": "Signed out."})
}

func (h *AuthHandler) Me(c *gin.Context) {
	callerID, _ := middleware.CallerID(c)
	user, err := h.svc.Me(c.Request.Context(), callerID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, userResponse(user))
}

func (h *AuthHandler) saveSession(c *gin.Context, token string) {
	sess, _ := h.store.Get(c.Request, middleware.SessionName)
	sess.Values[middleware.SessionTokenKey] = token
	if err := sess.Save(c.Request, c.Writer); err != nil {
		h.log.Warn("session cookie save failed", zap.Error(err))
	}
}

func (h *AuthHandler) clearSession(c *gin.Context) {
	sess, _ := h.store.Get(c.Request, middleware.SessionName)
	delete(sess.Values, middleware.SessionTokenKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request, c.Writer); err != nil {
		h.log.Warn("session cookie clear failed", zap.Error(err))
	}
}
