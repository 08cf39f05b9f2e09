package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"doctor-booking-api/internal/catalog"
	"doctor-booking-api/internal/middleware"
	"doctor-booking-api/internal/store"
)

type Handler struct {
	sessions *store.Session
	appts    *store.Appointments
	catalog  *catalog.Service
	secret   string
	payDelay time.Duration
}

func New(sessions *store.Session, appts *store.Appointments, cat *catalog.Service, secret string, payDelay time.Duration) *Handler {
	return &Handler{sessions: sessions, appts: appts, catalog: cat, secret: secret, payDelay: payDelay}
}

// Routes wires all endpoints. The credential endpoints sit behind the per-IP
// rate limiter; everything touching user data requires a live session.
func (h *Handler) Routes(r *gin.Engine, rl *middleware.RateLimiter) {
	authGroup := r.Group("/auth")
	authGroup.POST("/register", middleware.RateLimit(rl), h.register)
	authGroup.POST("/login", middleware.RateLimit(rl), h.login)
	authGroup.POST("/logout", h.logout)
	authGroup.GET("/profile", middleware.RequireSession(h.secret), h.profile)

	r.GET("/doctors", h.listDoctors)
	r.GET("/doctors/specialties", h.listSpecialties)

	appts := r.Group("/appointments", middleware.RequireSession(h.secret))
	appts.GET("", h.listAppointments)
	appts.POST("", h.createAppointment)
	appts.DELETE("/:id", h.removeAppointment)
}
