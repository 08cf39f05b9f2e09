package handler

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"doctor-booking-api/internal/middleware"
	"doctor-booking-api/internal/model"
)

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expDateRe    = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
)

type paymentReq struct {
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	ExpDate    string `json:"expDate"`
	CVV        string `json:"cvv"`
}

func (p *paymentReq) validate() string {
	switch {
	case p.CardName == "":
		return "name on card is required"
	case !cardNumberRe.MatchString(p.CardNumber):
		return "card number must be 16 digits"
	case !expDateRe.MatchString(p.ExpDate):
		return "expiration date must be in MM/YY format"
	case !cvvRe.MatchString(p.CVV):
		return "CVV must be 3 or 4 digits"
	}
	return ""
}

type createAppointmentReq struct {
	DoctorID string     `json:"doctorId"`
	DateTime string     `json:"dateTime"`
	Payment  paymentReq `json:"payment"`
}

func (h *Handler) listAppointments(c *gin.Context) {
	uid := c.GetString(middleware.UserIDKey)
	items := h.appts.List(c.Request.Context(), uid)
	if items == nil {
		items = []model.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": items})
}

func (h *Handler) createAppointment(c *gin.Context) {
	var req createAppointmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.DoctorID == "" || req.DateTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctorId and dateTime required"})
		return
	}
	if msg := req.Payment.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	doctor, ok := h.catalog.DoctorByID(req.DoctorID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
		return
	}

	// simulated payment processing; always succeeds but honors teardown
	if h.payDelay > 0 {
		t := time.NewTimer(h.payDelay)
		defer t.Stop()
		select {
		case <-c.Request.Context().Done():
			return
		case <-t.C:
		}
	}

	appt := model.Appointment{
		ID:              uuid.New().String(),
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		DoctorSpecialty: doctor.Specialty,
		DateTime:        req.DateTime,
		Location:        doctor.Location,
		DoctorPhoto:     doctor.Photo,
	}
	if err := h.appts.Add(c.Request.Context(), c.GetString(middleware.UserIDKey), appt); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not save appointment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// removeAppointment cancels a booking. Unknown ids are a no-op, matching the
// store contract.
func (h *Handler) removeAppointment(c *gin.Context) {
	uid := c.GetString(middleware.UserIDKey)
	if err := h.appts.Remove(c.Request.Context(), uid, c.Param("id")); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not cancel appointment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
