package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"haircare-web/appointments"
	"haircare-web/pkg/logging"
	"haircare-web/session"
	"haircare-web/utils"
)

// AppointmentController serves the admin appointment view.
type AppointmentController struct {
	Manager *appointments.Manager
	Logger  *logging.Logger
}

// List returns all appointments visible to the credential.
func (a *AppointmentController) List(c *gin.Context) {
	list, err := a.Manager.List(c.Request.Context(), c.GetString(session.CtxToken))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": list})
}

// Act posts an accept or reject and returns the refreshed list. Non-pending
// appointments short-circuit with a conflict, mirroring the disabled
// buttons in the view.
func (a *AppointmentController) Act(c *gin.Context) {
	appointmentID := c.Param("id")
	action := c.Param("action")

	list, err := a.Manager.Act(c.Request.Context(), c.GetString(session.CtxToken), appointmentID, action)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrUnknownAction):
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown action")
		case errors.Is(err, appointments.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		case errors.Is(err, appointments.ErrNotPending):
			utils.RespondWithError(c, http.StatusConflict, "Appointment is no longer pending")
		default:
			utils.RespondWithError(c, http.StatusBadGateway, "Failed to perform action")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": list})
}
