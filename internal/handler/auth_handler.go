package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"doctor-booking-api/internal/auth"
	"doctor-booking-api/internal/middleware"
	"doctor-booking-api/internal/store"
)

const sessionCookieMaxAge = int(auth.SessionTTL / time.Second)

type registerReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.FirstName == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields required"})
		return
	}
	if len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password too short"})
		return
	}

	user, tok, err := h.sessions.Register(c.Request.Context(), store.RegisterForm{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
	})
	switch {
	case errors.Is(err, store.ErrDuplicateEmail), errors.Is(err, store.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "registration failed, try again"})
		return
	}

	// tok is only issued in the auto-login configuration
	if tok != "" {
		c.SetCookie("auth", tok, sessionCookieMaxAge, "/", "", false, true)
		c.JSON(http.StatusCreated, gin.H{"user": user})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "message": "registration successful, please log in"})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	user, tok, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, store.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	case err != nil:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "login failed, try again"})
		return
	}

	c.SetCookie("auth", tok, sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "logout failed"})
		return
	}
	c.SetCookie("auth", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) profile(c *gin.Context) {
	user, ok := h.sessions.ProfileFor(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
