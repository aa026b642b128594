package handlers

import (
	"errors"
	"log"
	"net/http"

	request "roadassist/internal/adapter/http/dto/request"
	response "roadassist/internal/adapter/http/dto/response"
	"roadassist/internal/domain/entities"
	"roadassist/internal/usecase"
	"roadassist/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)

// PricingHandler handles the admin pricing routes: global fare defaults,
// per-vehicle fare fields and the issue / emergency-service catalogues.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

func (h *PricingHandler) GetAllConfigs(c *gin.Context) {
	configs, err := h.usecase.GetAllConfigs(c.Request.Context())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(configs))
}

func (h *PricingHandler) GetConfig(c *gin.Context) {
	cfg, err := h.usecase.GetConfig(c.Request.Context(), c.Param("vehicle_type"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(cfg))
}

// UpdateConfig patches the fare-formula fields of one vehicle type. Fields
// absent from the payload keep their stored values.
func (h *PricingHandler) UpdateConfig(c *gin.Context) {
	vehicleType := c.Param("vehicle_type")
	var payload request.UpdateVehiclePricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	log.Printf("[pricing][handler] update start vehicle_type=%s", vehicleType)
	cfg, err := h.usecase.UpdateVehicle(c.Request.Context(), vehicleType, usecase.UpdateVehicleCommand{
		BaseFare:              moneyPtr(payload.BaseFare),
		PricePerKm:            moneyPtr(payload.PricePerKm),
		MinimumFare:           moneyPtr(payload.MinimumFare),
		EmergencySurcharge:    moneyPtr(payload.EmergencySurcharge),
		SurgeMultiplier:       payload.SurgeMultiplier,
		PlatformCommissionPct: payload.PlatformCommissionPct,
		MechanicCommissionPct: payload.MechanicCommissionPct,
		OtherIssueBasePrice:   moneyPtr(payload.OtherIssueBasePrice),
	})
	if err != nil {
		log.Printf("[pricing][handler] update failed vehicle_type=%s err=%v", vehicleType, err)
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(cfg, "Pricing updated"))
}

func (h *PricingHandler) AddIssue(c *gin.Context) {
	var payload request.AddIssueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	item := entities.IssueItem{
		ID:             payload.ID,
		Label:          payload.Label,
		EstimatedPrice: entities.Money(payload.EstimatedPrice),
		IsActive:       true,
	}
	if payload.IsActive != nil {
		item.IsActive = *payload.IsActive
	}

	cfg, err := h.usecase.AddIssue(c.Request.Context(), c.Param("vehicle_type"), item)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OK(cfg))
}

func (h *PricingHandler) UpdateIssue(c *gin.Context) {
	var payload request.UpdateIssueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	cfg, err := h.usecase.UpdateIssue(c.Request.Context(), c.Param("vehicle_type"), c.Param("issue_id"), entities.IssuePatch{
		Label:          payload.Label,
		EstimatedPrice: moneyPtr(payload.EstimatedPrice),
		IsActive:       payload.IsActive,
	})
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(cfg))
}

func (h *PricingHandler) DeleteIssue(c *gin.Context) {
	cfg, err := h.usecase.DeleteIssue(c.Request.Context(), c.Param("vehicle_type"), c.Param("issue_id"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(cfg, "Issue removed"))
}

func (h *PricingHandler) AddEmergencyService(c *gin.Context) {
	var payload request.AddEmergencyServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	item := entities.EmergencyServiceItem{
		ID:            payload.ID,
		Label:         payload.Label,
		Price:         entities.Money(payload.Price),
		Description:   payload.Description,
		EstimatedTime: payload.EstimatedTime,
		UrgencyLevel:  entities.UrgencyLevel(payload.UrgencyLevel),
		IsActive:      true,
	}
	if payload.IsActive != nil {
		item.IsActive = *payload.IsActive
	}

	cfg, err := h.usecase.AddEmergencyService(c.Request.Context(), c.Param("vehicle_type"), item)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OK(cfg))
}

func (h *PricingHandler) UpdateEmergencyService(c *gin.Context) {
	var payload request.UpdateEmergencyServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	var urgency *entities.UrgencyLevel
	if payload.UrgencyLevel != nil {
		u := entities.UrgencyLevel(*payload.UrgencyLevel)
		urgency = &u
	}

	cfg, err := h.usecase.UpdateEmergencyService(c.Request.Context(), c.Param("vehicle_type"), c.Param("service_id"), entities.EmergencyServicePatch{
		Label:         payload.Label,
		Price:         moneyPtr(payload.Price),
		Description:   payload.Description,
		EstimatedTime: payload.EstimatedTime,
		UrgencyLevel:  urgency,
		IsActive:      payload.IsActive,
	})
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(cfg))
}

func (h *PricingHandler) DeleteEmergencyService(c *gin.Context) {
	cfg, err := h.usecase.DeleteEmergencyService(c.Request.Context(), c.Param("vehicle_type"), c.Param("service_id"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(cfg, "Emergency service removed"))
}

func (h *PricingHandler) GetGlobalPricing(c *gin.Context) {
	gp, err := h.usecase.GetGlobalPricing(c.Request.Context())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(gp))
}

// UpdateGlobalPricing replaces the platform-wide fare defaults in full.
func (h *PricingHandler) UpdateGlobalPricing(c *gin.Context) {
	var payload request.UpdateGlobalPricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	gp, err := h.usecase.UpdateGlobalPricing(c.Request.Context(), entities.GlobalPricing{
		BaseFare:              entities.Money(payload.BaseFare),
		PricePerKm:            entities.Money(payload.PricePerKm),
		MinimumFare:           entities.Money(payload.MinimumFare),
		EmergencySurcharge:    entities.Money(payload.EmergencySurcharge),
		SurgeMultiplier:       payload.SurgeMultiplier,
		PlatformCommissionPct: payload.PlatformCommissionPct,
		MechanicCommissionPct: payload.MechanicCommissionPct,
	})
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(gp, "Global pricing updated"))
}

func moneyPtr(v *int64) *entities.Money {
	if v == nil {
		return nil
	}
	m := entities.Money(*v)
	return &m
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleType):
		return pkg.NewDomainErrorSimple("INVALID_VEHICLE_TYPE", "Invalid vehicle type", http.StatusBadRequest)
	case errors.Is(err, entities.ErrCommissionMismatch):
		return pkg.NewDomainErrorSimple("COMMISSION_MISMATCH", "Commission percentages must sum to 100", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidConfig), errors.Is(err, entities.ErrInvalidPrice), errors.Is(err, entities.ErrInvalidPct):
		return pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)
	case errors.Is(err, entities.ErrDuplicateID):
		return pkg.NewDomainErrorSimple("DUPLICATE_CATALOGUE_ID", "Catalogue id already exists", http.StatusConflict)
	case errors.Is(err, entities.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOGUE_ITEM_NOT_FOUND", "Catalogue item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPricingConfigNotFound):
		return pkg.NewDomainErrorSimple("PRICING_CONFIG_NOT_FOUND", "Pricing config not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
