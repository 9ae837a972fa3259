package payments

import (
	"context"
	"encoding/json"
	"strings"

	"hlc_marketplace/internal/domain/entities"
	"hlc_marketplace/internal/domain/promotion"
	"hlc_marketplace/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const ProviderMercadoPago = "mercadopago"

// MercadoPagoGateway implements the gateway contract on Mercado Pago Checkout Pro.
//
// Initialize creates a checkout preference whose external_reference is our
// reference; Verify searches payments by that external_reference.
type MercadoPagoGateway struct {
	accessToken func() string
	callbackURL func() string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

type MercadoPagoOption func(*MercadoPagoGateway)

func WithAccessTokenSource(source func() string) MercadoPagoOption {
	return func(g *MercadoPagoGateway) { g.accessToken = source }
}

func NewMercadoPagoGateway(opts ...MercadoPagoOption) *MercadoPagoGateway {
	g := &MercadoPagoGateway{
		accessToken: envSource("MERCADOPAGO_ACCESS_TOKEN"),
		callbackURL: envSource("PAYMENT_CALLBACK_URL"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *MercadoPagoGateway) Name() string { return ProviderMercadoPago }

func (g *MercadoPagoGateway) Configured() error {
	if g.accessToken() == "" {
		return &entities.ConfigurationError{Setting: "MERCADOPAGO_ACCESS_TOKEN"}
	}
	return nil
}

// mpPayment is the subset of the Mercado Pago payment resource we read.
type mpPayment struct {
	ID                any            `json:"id"`
	Status            string         `json:"status"`
	StatusDetail      string         `json:"status_detail"`
	ExternalReference string         `json:"external_reference"`
	TransactionAmount float64        `json:"transaction_amount"`
	CurrencyID        string         `json:"currency_id"`
	DateApproved      string         `json:"date_approved"`
	Metadata          map[string]any `json:"metadata"`
}

type mpSearchResult struct {
	Results []json.RawMessage `json:"results"`
}

func (g *MercadoPagoGateway) sdkConfig(op, reference string) (*config.Config, error) {
	token := g.accessToken()
	if token == "" {
		zap.S().Errorw("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, &entities.ConfigurationError{Setting: "MERCADOPAGO_ACCESS_TOKEN"}
	}
	cfg, err := config.New(token)
	if err != nil {
		return nil, &entities.ProviderError{Operation: op, Reference: reference, Message: "failed creating sdk config", Err: err}
	}
	return cfg, nil
}

func (g *MercadoPagoGateway) Initialize(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentInitialization, error) {
	cfg, err := g.sdkConfig("initialize", intent.Reference)
	if err != nil {
		return entities.PaymentInitialization{}, err
	}
	if err := promotion.ValidateIntent(intent); err != nil {
		return entities.PaymentInitialization{}, err
	}

	callback := strings.TrimSpace(intent.CallbackURL)
	if callback == "" && g.callbackURL != nil {
		callback = g.callbackURL()
	}

	b, err := json.Marshal(buildPreferencePayload(intent, callback))
	if err != nil {
		return entities.PaymentInitialization{}, &entities.ProviderError{Operation: "initialize", Reference: intent.Reference, Message: "failed to encode request", Err: err}
	}
	var req preference.Request
	if err := json.Unmarshal(b, &req); err != nil {
		return entities.PaymentInitialization{}, &entities.ProviderError{Operation: "initialize", Reference: intent.Reference, Message: "failed to encode request", Err: err}
	}

	zap.S().Infow("[payment][gateway] initialize start", "provider", ProviderMercadoPago, "reference", intent.Reference)
	resp, err := preference.NewClient(cfg).Create(ctx, req)
	if err != nil {
		zap.S().Errorw("[payment][gateway] sdk preference create failed", "reference", intent.Reference, "err", err)
		return entities.PaymentInitialization{}, &entities.ProviderError{Operation: "initialize", Reference: intent.Reference, Message: err.Error(), Err: err}
	}
	if resp == nil || resp.InitPoint == "" {
		return entities.PaymentInitialization{}, &entities.ProviderError{Operation: "initialize", Reference: intent.Reference, Message: "response has no init_point"}
	}
	zap.S().Infow("[payment][gateway] initialize success", "provider", ProviderMercadoPago, "reference", intent.Reference, "preference_id", resp.ID)

	return entities.PaymentInitialization{
		AuthorizationURL: resp.InitPoint,
		AccessCode:       resp.ID,
		Reference:        intent.Reference,
	}, nil
}

func (g *MercadoPagoGateway) Verify(ctx context.Context, reference string) (entities.VerificationResult, error) {
	reference = strings.TrimSpace(reference)
	cfg, err := g.sdkConfig("verify", reference)
	if err != nil {
		return entities.VerificationResult{}, err
	}
	if reference == "" {
		return entities.VerificationResult{}, entities.NewValidationError("reference", "is required")
	}

	zap.S().Infow("[payment][gateway] verify start", "provider", ProviderMercadoPago, "reference", reference)
	resp, err := payment.NewClient(cfg).Search(ctx, payment.SearchRequest{
		Filters: map[string]string{
			"external_reference": reference,
			"sort":               "date_created",
			"criteria":           "desc",
		},
	})
	if err != nil {
		zap.S().Errorw("[payment][gateway] sdk payment search failed", "reference", reference, "err", err)
		return entities.VerificationResult{}, &entities.ProviderError{Operation: "verify", Reference: reference, Message: err.Error(), Err: err}
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return entities.VerificationResult{}, &entities.ProviderError{Operation: "verify", Reference: reference, Message: "malformed response", Err: err}
	}
	return selectMercadoPagoResult(reference, b)
}

// buildPreferencePayload maps an intent onto a Checkout Pro preference. The whole
// amount is one item priced in major units.
func buildPreferencePayload(intent entities.PaymentIntent, callback string) map[string]any {
	payload := map[string]any{
		"items": []map[string]any{{
			"id":         intent.Metadata.TierID,
			"title":      "Listing promotion: " + intent.Metadata.TierName,
			"quantity":   1,
			"unit_price": decimal.New(intent.AmountMinorUnits, -2).InexactFloat64(),
		}},
		"payer":              map[string]any{"email": intent.PayerEmail},
		"external_reference": intent.Reference,
		"metadata":           promotion.Encode(intent.Metadata),
	}
	if callback != "" {
		payload["back_urls"] = map[string]any{"success": callback, "pending": callback, "failure": callback}
		payload["auto_return"] = "approved"
	}
	return payload
}

// selectMercadoPagoResult prefers an approved payment; otherwise the most recent one.
func selectMercadoPagoResult(reference string, searchBody []byte) (entities.VerificationResult, error) {
	var search mpSearchResult
	if err := json.Unmarshal(searchBody, &search); err != nil {
		return entities.VerificationResult{}, &entities.ProviderError{Operation: "verify", Reference: reference, Message: "malformed response", Err: err}
	}
	if len(search.Results) == 0 {
		return entities.VerificationResult{}, &entities.NotFoundError{Reference: reference, Message: "no payment with this external_reference"}
	}

	var chosen mpPayment
	var chosenRaw json.RawMessage
	for i, raw := range search.Results {
		var p mpPayment
		if err := json.Unmarshal(raw, &p); err != nil {
			return entities.VerificationResult{}, &entities.ProviderError{Operation: "verify", Reference: reference, Message: "malformed payment", Err: err}
		}
		if i == 0 || mapMercadoPagoStatus(p.Status) == entities.VerificationStatusSuccess {
			chosen, chosenRaw = p, raw
		}
		if mapMercadoPagoStatus(p.Status) == entities.VerificationStatusSuccess {
			break
		}
	}

	zap.S().Infow("[payment][gateway] verify success", "provider", ProviderMercadoPago, "reference", reference,
		"provider_status", chosen.Status, "status_detail", chosen.StatusDetail)
	return entities.VerificationResult{
		Status:           mapMercadoPagoStatus(chosen.Status),
		Reference:        reference,
		AmountMinorUnits: decimal.NewFromFloat(chosen.TransactionAmount).Shift(2).Round(0).IntPart(),
		Currency:         chosen.CurrencyID,
		PaidAt:           parseTimestamp(chosen.DateApproved),
		Metadata:         chosen.Metadata,
		Raw:              chosenRaw,
	}, nil
}

func mapMercadoPagoStatus(status string) entities.VerificationStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.VerificationStatusSuccess
	case "rejected", "refunded", "charged_back":
		return entities.VerificationStatusFailed
	case "cancelled":
		return entities.VerificationStatusAbandoned
	default:
		return entities.VerificationStatusPending
	}
}
