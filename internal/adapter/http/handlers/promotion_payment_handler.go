package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	request "hlc_marketplace/internal/adapter/http/dto/request"
	response "hlc_marketplace/internal/adapter/http/dto/response"
	"hlc_marketplace/internal/domain/entities"
	"hlc_marketplace/internal/usecase"
	"hlc_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// PromotionPaymentHandler exposes payment initialization, verification and the
// promotion tier catalog.
type PromotionPaymentHandler struct {
	usecase usecase.IPromotionPaymentUseCase
}

func NewPromotionPaymentHandler(uc usecase.IPromotionPaymentUseCase) *PromotionPaymentHandler {
	return &PromotionPaymentHandler{usecase: uc}
}

// InitializePayment godoc
// @Summary      Initialize a payment
// @Description  Validates the intent and returns the provider checkout URL.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.InitializePaymentRequest  true  "Payment intent"
// @Success      200   {object}  response.InitializePaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /payments/initialize [post]
func (h *PromotionPaymentHandler) InitializePayment(c *gin.Context) {
	var payload request.InitializePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		zap.S().Infow("[payment][handler] initialize invalid payload", "err", err)
		writeAppError(c, bindingError(err))
		return
	}

	intent := payload.ToIntent()
	zap.S().Infow("[payment][handler] initialize start", "reference", intent.Reference)
	initialized, err := h.usecase.InitializePayment(c.Request.Context(), intent)
	if err != nil {
		zap.S().Infow("[payment][handler] initialize failed", "reference", intent.Reference, "err", err)
		writeAppError(c, mapPromotionPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentInitialization(initialized))
}

// CheckoutPromotion godoc
// @Summary      Pay for a listing promotion
// @Description  Prices the tier from the catalog and initializes the payment.
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Param        body  body      request.PromotionCheckoutRequest  true  "Promotion checkout"
// @Success      200   {object}  response.InitializePaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /promotions/checkout [post]
func (h *PromotionPaymentHandler) CheckoutPromotion(c *gin.Context) {
	var payload request.PromotionCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		zap.S().Infow("[payment][handler] checkout invalid payload", "err", err)
		writeAppError(c, bindingError(err))
		return
	}

	checkout := payload.ToCheckout()
	initialized, err := h.usecase.InitializePromotionPayment(c.Request.Context(), checkout)
	if err != nil {
		zap.S().Infow("[payment][handler] checkout failed", "property_id", checkout.PropertyID, "tier_id", checkout.TierID, "err", err)
		writeAppError(c, mapPromotionPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentInitialization(initialized))
}

// VerifyPayment godoc
// @Summary      Verify a payment and activate its promotion
// @Description  Fetches the transaction from the provider. A confirmed promotion payment is written to the listing; when that write fails the response still reports the payment as successful and carries a warning.
// @Tags         payments
// @Produce      json
// @Param        reference  path      string  true  "Payment reference"
// @Success      200        {object}  response.VerifyPaymentResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Failure      502        {object}  pkg.HTTPError
// @Failure      503        {object}  pkg.HTTPError
// @Router       /payments/verify/{reference} [get]
func (h *PromotionPaymentHandler) VerifyPayment(c *gin.Context) {
	reference := c.Param("reference")
	zap.S().Infow("[payment][handler] verify start", "reference", reference)

	outcome, err := h.usecase.VerifyAndActivate(c.Request.Context(), reference)
	if err != nil {
		zap.S().Infow("[payment][handler] verify failed", "reference", reference, "err", err)
		writeAppError(c, mapPromotionPaymentError(err))
		return
	}
	zap.S().Infow("[payment][handler] verify done", "reference", reference, "state", outcome.State,
		"payment_verified", outcome.PaymentVerified, "promotion_applied", outcome.PromotionApplied)

	c.JSON(http.StatusOK, response.FromVerificationOutcome(outcome))
}

// ListTiers godoc
// @Summary      List promotion tiers
// @Tags         promotions
// @Produce      json
// @Success      200  {array}   response.PromotionTierResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /promotions/tiers [get]
func (h *PromotionPaymentHandler) ListTiers(c *gin.Context) {
	tiers, err := h.usecase.ListTiers(c.Request.Context())
	if err != nil {
		zap.S().Errorw("[payment][handler] list tiers failed", "err", err)
		writeAppError(c, mapPromotionPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPromotionTiers(tiers))
}

// GetPaymentRecord godoc
// @Summary      Payment attempt audit record
// @Tags         payments
// @Produce      json
// @Param        reference  path      string  true  "Payment reference"
// @Success      200        {object}  response.PaymentRecordResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /payment-records/{reference} [get]
func (h *PromotionPaymentHandler) GetPaymentRecord(c *gin.Context) {
	reference := c.Param("reference")
	rec, err := h.usecase.GetPaymentRecord(c.Request.Context(), reference)
	if err != nil {
		writeAppError(c, mapPromotionPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func bindingError(err error) *pkg.AppError {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		parts := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request: "+strings.Join(parts, ", "), err, http.StatusBadRequest)
	}
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
}

func mapPromotionPaymentError(err error) *pkg.AppError {
	var (
		validationErr *entities.ValidationError
		providerErr   *entities.ProviderError
		notFoundErr   *entities.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("INVALID_REQUEST", validationErr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrConfiguration):
		return pkg.NewDomainError("PAYMENT_NOT_CONFIGURED", "Payment service is not configured", err, http.StatusServiceUnavailable)
	case errors.As(err, &notFoundErr):
		return pkg.NewDomainError("PAYMENT_NOT_FOUND", "Transaction reference not found", err, http.StatusNotFound).WithReference(notFoundErr.Reference)
	case errors.Is(err, usecase.ErrPromotionTierNotFound):
		return pkg.NewDomainError("PROMOTION_TIER_NOT_FOUND", "Promotion tier not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentRecordNotFound):
		return pkg.NewDomainError("PAYMENT_RECORD_NOT_FOUND", "Payment record not found", err, http.StatusNotFound)
	case errors.As(err, &providerErr):
		msg := providerErr.Message
		if msg == "" {
			msg = "Payment provider error"
		}
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", msg, err, http.StatusBadGateway).WithReference(providerErr.Reference)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
