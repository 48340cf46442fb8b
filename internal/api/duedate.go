package api

import (
	"log"
	"net/http"
	"time"

	"github.com/bumpsafe/bumpsafe-be/internal/pregnancy"
	"github.com/gin-gonic/gin"
)

// dateLayout is the wire format for calendar dates
const dateLayout = "2006-01-02"

// DueDateHandler handles the due-date calculator endpoint
type DueDateHandler struct {
	// now is swappable for tests
	now func() time.Time
}

// NewDueDateHandler creates a new due-date handler
func NewDueDateHandler() *DueDateHandler {
	return &DueDateHandler{now: time.Now}
}

// DueDateRequest carries the last-menstrual-period date
type DueDateRequest struct {
	LastPeriodDate string `json:"last_period_date" binding:"required"`
}

// DueDateResponse is the calculator result plus display helpers
type DueDateResponse struct {
	DueDate        string             `json:"due_date"`
	ConceptionDate string             `json:"conception_date"`
	CurrentWeek    int                `json:"current_week"`
	CurrentDay     int                `json:"current_day"`
	GestationalAge string             `json:"gestational_age"`
	Trimester      int                `json:"trimester"`
	DaysUntilDue   int                `json:"days_until_due"`
	BabySize       pregnancy.SizeEntry `json:"baby_size"`
}

// Calculate computes the due-date result for a last-period date
func (h *DueDateHandler) Calculate(c *gin.Context) {
	var req DueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lastPeriod, err := time.Parse(dateLayout, req.LastPeriodDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "last_period_date must be formatted as YYYY-MM-DD"})
		return
	}

	now := h.now()
	if !pregnancy.IsValidPregnancyDate(lastPeriod, now) {
		log.Printf("[DEBUG] Rejected last period date %s", req.LastPeriodDate)
		c.JSON(http.StatusBadRequest, gin.H{"error": "last_period_date must be within the past 42 weeks and not in the future"})
		return
	}

	result := pregnancy.Compute(lastPeriod, now)

	c.JSON(http.StatusOK, DueDateResponse{
		DueDate:        result.DueDate.Format(dateLayout),
		ConceptionDate: result.ConceptionDate.Format(dateLayout),
		CurrentWeek:    result.CurrentWeek,
		CurrentDay:     result.CurrentDay,
		GestationalAge: pregnancy.FormatWeek(result.CurrentWeek, result.CurrentDay),
		Trimester:      result.Trimester,
		DaysUntilDue:   result.DaysUntilDue,
		BabySize:       result.BabySize,
	})
}
