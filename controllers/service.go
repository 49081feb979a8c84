package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"haircare-web/backend"
	"haircare-web/catalog"
	"haircare-web/pkg/logging"
	"haircare-web/session"
	"haircare-web/utils"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Treatment   string          `json:"treatments" binding:"required"`
	HairLength  string          `json:"hairLength" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Duration    int             `json:"duration" binding:"min=0"` // in seconds
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Treatment   *string          `json:"treatments"`
	HairLength  *string          `json:"hairLength"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Duration    *int             `json:"duration"`
	Active      *bool            `json:"active"`
}

// ServiceController serves the catalog view and forwards admin mutations.
// Every mutation is followed by a full refetch; the backend's list is the
// canonical state, never patched locally.
type ServiceController struct {
	API      *backend.Client
	Sessions *session.Manager
	Logger   *logging.Logger
}

// ListServices returns the catalog grouped by treatment. Non-admins only
// see active services; admins see inactive ones marked as such.
func (s *ServiceController) ListServices(c *gin.Context) {
	role := s.Sessions.Role(c.Request)
	services, err := s.API.ListServices(c.Request.Context(), s.Sessions.Token(c.Request))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to retrieve services")
		return
	}

	visible := catalog.VisibleTo(role, services)
	c.JSON(http.StatusOK, gin.H{
		"groups": catalog.GroupByTreatment(visible),
	})
}

// CreateService creates a new catalog entry.
func (s *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	err := s.API.CreateService(c.Request.Context(), s.Sessions.Token(c.Request), backend.CreateServiceRequest{
		Treatment:   input.Treatment,
		HairLength:  input.HairLength,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Active:      true,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to create service")
		return
	}

	s.respondWithRefetch(c, http.StatusCreated)
}

// UpdateService edits an existing catalog entry, including the active flag.
func (s *ServiceController) UpdateService(c *gin.Context) {
	serviceID := c.Param("id")
	if serviceID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Service ID required")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	err := s.API.UpdateService(c.Request.Context(), s.Sessions.Token(c.Request), serviceID, backend.UpdateServiceRequest{
		Treatment:   input.Treatment,
		HairLength:  input.HairLength,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Active:      input.Active,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to update service")
		return
	}

	s.respondWithRefetch(c, http.StatusOK)
}

// DeleteService removes a catalog entry.
func (s *ServiceController) DeleteService(c *gin.Context) {
	serviceID := c.Param("id")
	if serviceID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Service ID required")
		return
	}

	if err := s.API.DeleteService(c.Request.Context(), s.Sessions.Token(c.Request), serviceID); err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to delete service")
		return
	}

	s.respondWithRefetch(c, http.StatusOK)
}

func (s *ServiceController) respondWithRefetch(c *gin.Context, code int) {
	services, err := s.API.ListServices(c.Request.Context(), s.Sessions.Token(c.Request))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Mutation applied but refetch failed")
		return
	}
	c.JSON(code, gin.H{
		"groups": catalog.GroupByTreatment(services),
	})
}
