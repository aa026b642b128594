package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	request "roadassist/internal/adapter/http/dto/request"
	response "roadassist/internal/adapter/http/dto/response"
	"roadassist/internal/domain/entities"
	"roadassist/internal/usecase"
	"roadassist/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles the payment lifecycle routes: creation, the online
// gateway branch, the COD branch, settlement and the admin listing.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment prices a service request and opens its payment record.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create start service_request=%s method=%s", payload.ServiceRequestRef, payload.PaymentMethod)
	created, err := h.usecase.Create(c.Request.Context(), usecase.CreatePaymentCommand{
		ServiceRequestRef:  payload.ServiceRequestRef,
		CustomerRef:        payload.CustomerRef,
		MechanicRef:        payload.MechanicRef,
		VehicleType:        payload.VehicleType,
		DistanceKm:         payload.DistanceKm,
		IssueID:            payload.IssueID,
		EmergencyServiceID: payload.EmergencyServiceID,
		OtherIssue:         payload.OtherIssue,
		IsEmergency:        payload.IsEmergency,
		PaymentMethod:      entities.PaymentMethod(payload.PaymentMethod),
	})
	if err != nil {
		log.Printf("[payment][handler] create failed service_request=%s err=%v", payload.ServiceRequestRef, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create success payment_id=%s total=%d", created.ID, created.TotalAmount)
	c.JSON(http.StatusCreated, response.OK(response.FromPaymentRecord(created)))
}

// GetPayment returns one payment record by id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromPaymentRecord(p)))
}

// InitiatePayment opens a gateway order for an online payment.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] initiate start payment_id=%s", paymentID)

	p, err := h.usecase.InitiateOnline(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] initiate failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromPaymentRecord(p)))
}

// ConfirmPayment is the gateway success callback.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.ConfirmOnline(c.Request.Context(), c.Param("payment_id"), payload.GatewayPaymentRef)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromPaymentRecord(p)))
}

// FailPayment is the gateway failure/timeout callback.
func (h *PaymentHandler) FailPayment(c *gin.Context) {
	var payload request.FailPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.FailOnline(c.Request.Context(), c.Param("payment_id"), payload.Reason)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromPaymentRecord(p)))
}

// RefundPayment reverses a paid online payment in full.
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] refund start payment_id=%s", paymentID)

	p, err := h.usecase.Refund(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] refund failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKMessage(response.FromPaymentRecord(p), "Payment refunded"))
}

// CollectCOD records the mechanic's cash-received confirmation.
func (h *PaymentHandler) CollectCOD(c *gin.Context) {
	var payload request.CollectCODRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.CollectCOD(c.Request.Context(), c.Param("payment_id"), payload.MechanicRef)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromPaymentRecord(p)))
}

// SettlePayment finalizes one collected COD payment, addressed by service
// request so the admin screen needs no payment id.
func (h *PaymentHandler) SettlePayment(c *gin.Context) {
	ref := c.Param("service_request_id")
	log.Printf("[payment][handler] settle start service_request=%s", ref)

	p, err := h.usecase.Settle(c.Request.Context(), ref)
	if err != nil {
		log.Printf("[payment][handler] settle failed service_request=%s err=%v", ref, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] settle success payment_id=%s", p.ID)
	c.JSON(http.StatusOK, response.OKMessage(response.FromPaymentRecord(p), "Payment settled"))
}

// SettleAllPayments settles every collected COD payment; per-record failures
// are reported in the result list, not as a failed request.
func (h *PaymentHandler) SettleAllPayments(c *gin.Context) {
	results, err := h.usecase.SettleAll(c.Request.Context())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(results))
}

// ListPayments is the admin payment listing with optional method/status
// filters and 1-based paging.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	records, total, err := h.usecase.List(c.Request.Context(), entities.PaymentListFilter{
		Page:          page,
		Limit:         limit,
		PaymentMethod: entities.PaymentMethod(c.Query("payment_method")),
		PaymentStatus: entities.PaymentStatus(c.Query("payment_status")),
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	c.JSON(http.StatusOK, response.OK(response.FromPaymentRecords(records, page, limit, total)))
}

// PaymentStats returns the admin dashboard aggregate.
func (h *PaymentHandler) PaymentStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(stats))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInput), errors.Is(err, usecase.ErrInvalidVehicleType):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidConfig), errors.Is(err, entities.ErrInvalidPrice), errors.Is(err, entities.ErrInvalidPct):
		return pkg.NewDomainErrorSimple("INVALID_PRICING", "Invalid pricing input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentAlreadyExists):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_EXISTS", "A payment already exists for this service request", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPricingConfigNotFound):
		return pkg.NewDomainErrorSimple("PRICING_CONFIG_NOT_FOUND", "Pricing config not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOGUE_ITEM_NOT_FOUND", "Catalogue item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadySettled):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_SETTLED", "Payment already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Payment state does not allow this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
