package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"haircare-web/backend"
	"haircare-web/cart"
	"haircare-web/checkout"
	"haircare-web/models"
	"haircare-web/pkg/logging"
	"haircare-web/session"
	"haircare-web/utils"
)

type FeeInput struct {
	PostalCodePrefix string `json:"postalCodePrefix" binding:"required"`
	PostalCodeSuffix string `json:"postalCodeSuffix" binding:"required"`
}

type ConfirmInput struct {
	Street      string `json:"street"`
	Locality    string `json:"locality"`
	Parish      string `json:"parish"`
	County      string `json:"county"`
	Number      string `json:"number"`
	Floor       string `json:"floor"`
	Description string `json:"description"`
}

type ScheduleInput struct {
	Date string `json:"date" binding:"required"` // 2006-01-02
	Time string `json:"time" binding:"required"` // 15:04
}

// CheckoutController walks one flow per user through review, fee
// resolution, detail confirmation, scheduling and submission.
type CheckoutController struct {
	API      *backend.Client
	Sessions *session.Manager
	Carts    *cart.Stores
	Flows    *checkout.Registry
	Logger   *logging.Logger
}

// Start begins a checkout from the current cart and moves straight to
// address entry.
func (co *CheckoutController) Start(c *gin.Context) {
	userID := c.GetString(session.CtxUserID)
	store := co.Carts.For(userID)

	if store.Len() == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Cart is empty")
		return
	}

	flow := co.Flows.Start(userID, store.Total())
	if err := flow.Proceed(); err != nil {
		utils.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state": flow.State(),
		"total": store.FormatTotal(),
	})
}

// ResolveFee validates the postal code, asks the backend for the locality
// and travel fee, and pre-fills the editable address on success. Failure
// clears the address and leaves the flow ready for another attempt.
func (co *CheckoutController) ResolveFee(c *gin.Context) {
	var input FeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidatePostalCode(input.PostalCodePrefix, input.PostalCodeSuffix) {
		utils.RespondWithError(c, http.StatusBadRequest, "Postal code must be 4 digits and 3 digits")
		return
	}

	flow := co.Flows.Get(c.GetString(session.CtxUserID))
	if flow == nil {
		utils.RespondWithError(c, http.StatusConflict, "No checkout in progress")
		return
	}

	quote, err := co.API.ResolveLocality(c.Request.Context(),
		c.GetString(session.CtxToken), input.PostalCodePrefix, input.PostalCodeSuffix)
	if err != nil {
		flow.ResolveFailed()
		utils.RespondWithError(c, http.StatusBadGateway, backendMessage(err, "Could not resolve locality"))
		return
	}

	if err := flow.ResolveAddress(input.PostalCodePrefix, input.PostalCodeSuffix, quote.Location, quote.Fee); err != nil {
		utils.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":      flow.State(),
		"address":    flow.Address(),
		"fee":        quote.Fee.StringFixed(2),
		"totalFinal": flow.FormatTotalFinal(),
	})
}

// Confirm accepts the edited address and moves to time selection.
func (co *CheckoutController) Confirm(c *gin.Context) {
	var input ConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	flow := co.Flows.Get(c.GetString(session.CtxUserID))
	if flow == nil {
		utils.RespondWithError(c, http.StatusConflict, "No checkout in progress")
		return
	}

	err := flow.Confirm(models.AppointmentLocation{
		Street:   input.Street,
		Locality: input.Locality,
		Parish:   input.Parish,
		County:   input.County,
		Number:   input.Number,
		Floor:    input.Floor,
	}, input.Description)
	if err != nil {
		utils.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":      flow.State(),
		"totalFinal": flow.FormatTotalFinal(),
	})
}

// Submit validates the chosen slot, posts the appointment, clears the cart
// best-effort and sends the browser home. Any failure returns the flow to
// time selection.
func (co *CheckoutController) Submit(c *gin.Context) {
	var input ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	slot, err := parseSlot(input.Date, input.Time)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date or time")
		return
	}

	userID := c.GetString(session.CtxUserID)
	token := c.GetString(session.CtxToken)
	flow := co.Flows.Get(userID)
	if flow == nil {
		utils.RespondWithError(c, http.StatusConflict, "No checkout in progress")
		return
	}

	if err := flow.Schedule(slot, time.Now()); err != nil {
		var bad *checkout.ErrBadTransition
		if errors.As(err, &bad) {
			utils.RespondWithError(c, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	store := co.Carts.For(userID)
	serviceIDs := make([]string, 0, store.Len())
	for _, line := range store.Lines() {
		serviceIDs = append(serviceIDs, line.Service.ID)
	}

	draft, err := flow.Draft(serviceIDs)
	if err != nil {
		utils.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}

	if err := co.API.CreateAppointment(c.Request.Context(), token, draft); err != nil {
		flow.SubmitFailed()
		utils.RespondWithError(c, http.StatusBadGateway, backendMessage(err, "Failed to schedule appointment"))
		return
	}

	// Best effort: the appointment exists either way.
	if err := co.API.ClearCart(c.Request.Context(), token); err != nil {
		co.Logger.Warn("cart clear after checkout failed", "userId", userID)
	}
	store.Replace(nil)
	co.Flows.Remove(userID)

	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

// GetState reports the flow's current step and totals for the view.
func (co *CheckoutController) GetState(c *gin.Context) {
	flow := co.Flows.Get(c.GetString(session.CtxUserID))
	if flow == nil {
		c.JSON(http.StatusOK, gin.H{"state": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":      flow.State(),
		"address":    flow.Address(),
		"fee":        flow.Fee().StringFixed(2),
		"totalFinal": flow.FormatTotalFinal(),
	})
}

func parseSlot(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
}
