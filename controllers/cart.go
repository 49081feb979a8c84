package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"haircare-web/backend"
	"haircare-web/cart"
	"haircare-web/pkg/logging"
	"haircare-web/session"
	"haircare-web/utils"
)

type CartItemInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CartRemoveInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

// CartController keeps the per-user cart mirror in sync with the backend.
// Adds round-trip then refetch; quantity edits and removals are optimistic
// with rollback on backend failure.
type CartController struct {
	API      *backend.Client
	Sessions *session.Manager
	Carts    *cart.Stores
	Logger   *logging.Logger
}

// GetCart refetches the server-held cart and returns the refreshed mirror.
func (ct *CartController) GetCart(c *gin.Context) {
	token := c.GetString(session.CtxToken)
	store := ct.Carts.For(c.GetString(session.CtxUserID))

	fetched, err := ct.API.GetCart(c.Request.Context(), token)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to retrieve cart")
		return
	}
	store.Replace(fetched)

	ct.respondCart(c, store)
}

// AddItem adds a service to the cart. The session middleware rejects
// unauthenticated calls before any network request happens.
func (ct *CartController) AddItem(c *gin.Context) {
	var input CartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	token := c.GetString(session.CtxToken)
	store := ct.Carts.For(c.GetString(session.CtxUserID))

	if err := ct.API.AddToCart(c.Request.Context(), token, input.ServiceID, input.Quantity); err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, backendMessage(err, "Failed to add to cart"))
		return
	}

	fetched, err := ct.API.GetCart(c.Request.Context(), token)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Added, but failed to refresh cart")
		return
	}
	store.Replace(fetched)

	ct.respondCart(c, store)
}

// UpdateQuantity stages an optimistic quantity change, persists it, and
// rolls the line back if the backend rejects it. A completion that is no
// longer the newest mutation for the line is discarded.
func (ct *CartController) UpdateQuantity(c *gin.Context) {
	var input CartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	token := c.GetString(session.CtxToken)
	store := ct.Carts.For(c.GetString(session.CtxUserID))

	seq, err := store.StageQuantity(input.ServiceID, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrQuantityTooLow):
			utils.RespondWithError(c, http.StatusBadRequest, "Quantity must be at least 1")
		case errors.Is(err, cart.ErrLineNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Service is not in the cart")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cart")
		}
		return
	}

	backendErr := ct.API.EditCartQuantity(c.Request.Context(), token, input.ServiceID, input.Quantity)
	applied := store.ResolveQuantity(input.ServiceID, seq, backendErr == nil)

	if backendErr != nil {
		if applied {
			ct.Logger.Warn("quantity update reverted", "serviceId", input.ServiceID)
		}
		utils.RespondWithError(c, http.StatusBadGateway, backendMessage(backendErr, "Failed to update quantity; change reverted"))
		return
	}

	ct.respondCart(c, store)
}

// RemoveItem removes a line by service identity, optimistically.
func (ct *CartController) RemoveItem(c *gin.Context) {
	var input CartRemoveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	token := c.GetString(session.CtxToken)
	store := ct.Carts.For(c.GetString(session.CtxUserID))

	seq, err := store.StageRemove(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service is not in the cart")
		return
	}

	backendErr := ct.API.RemoveFromCart(c.Request.Context(), token, input.ServiceID)
	store.ResolveRemove(input.ServiceID, seq, backendErr == nil)

	if backendErr != nil {
		utils.RespondWithError(c, http.StatusBadGateway, backendMessage(backendErr, "Failed to remove item; line restored"))
		return
	}

	ct.respondCart(c, store)
}

func (ct *CartController) respondCart(c *gin.Context, store *cart.Store) {
	c.JSON(http.StatusOK, gin.H{
		"lines": store.Lines(),
		"total": store.FormatTotal(),
		"badge": store.Len(),
	})
}

// backendMessage prefers the backend-supplied message over the fallback.
func backendMessage(err error, fallback string) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
