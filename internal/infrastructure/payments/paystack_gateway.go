package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"hlc_marketplace/internal/domain/entities"
	"hlc_marketplace/internal/domain/promotion"
	"hlc_marketplace/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	ProviderPaystack = "paystack"

	defaultPaystackBaseURL = "https://api.paystack.co"
	defaultGatewayTimeout  = 10 * time.Second
	maxResponseBytes       = 1 << 20
)

// PaystackGateway talks to the Paystack transaction API.
//
// The secret key is looked up on every call so a rotated key is picked up without
// a restart.
type PaystackGateway struct {
	baseURL     string
	client      *http.Client
	secretKey   func() string
	callbackURL func() string
}

var _ interfaces.IPaymentGateway = (*PaystackGateway)(nil)

type PaystackOption func(*PaystackGateway)

func WithPaystackBaseURL(baseURL string) PaystackOption {
	return func(g *PaystackGateway) { g.baseURL = strings.TrimRight(baseURL, "/") }
}

func WithHTTPClient(client *http.Client) PaystackOption {
	return func(g *PaystackGateway) { g.client = client }
}

func WithSecretKeySource(source func() string) PaystackOption {
	return func(g *PaystackGateway) { g.secretKey = source }
}

func WithCallbackURLSource(source func() string) PaystackOption {
	return func(g *PaystackGateway) { g.callbackURL = source }
}

// NewPaystackGateway reads PAYSTACK_SECRET_KEY and PAYMENT_CALLBACK_URL at call time.
// PAYSTACK_BASE_URL is read once.
func NewPaystackGateway(opts ...PaystackOption) *PaystackGateway {
	g := &PaystackGateway{
		baseURL:     strings.TrimRight(getenvDefault("PAYSTACK_BASE_URL", defaultPaystackBaseURL), "/"),
		client:      &http.Client{Timeout: defaultGatewayTimeout},
		secretKey:   envSource("PAYSTACK_SECRET_KEY"),
		callbackURL: envSource("PAYMENT_CALLBACK_URL"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *PaystackGateway) Name() string { return ProviderPaystack }

func (g *PaystackGateway) Configured() error {
	if g.secretKey() == "" {
		return &entities.ConfigurationError{Setting: "PAYSTACK_SECRET_KEY"}
	}
	return nil
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type paystackInitializeRequest struct {
	Email       string         `json:"email"`
	Amount      int64          `json:"amount"`
	Reference   string         `json:"reference"`
	CallbackURL string         `json:"callback_url,omitempty"`
	Metadata    map[string]any `json:"metadata"`
}

type paystackInitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type paystackVerifyData struct {
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency"`
	PaidAt    string          `json:"paid_at"`
	Metadata  json.RawMessage `json:"metadata"`
}

// Initialize calls POST /transaction/initialize.
func (g *PaystackGateway) Initialize(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentInitialization, error) {
	secret := g.secretKey()
	if secret == "" {
		zap.S().Errorw("[payment][gateway] missing PAYSTACK_SECRET_KEY")
		return entities.PaymentInitialization{}, &entities.ConfigurationError{Setting: "PAYSTACK_SECRET_KEY"}
	}
	if err := promotion.ValidateIntent(intent); err != nil {
		return entities.PaymentInitialization{}, err
	}

	callback := strings.TrimSpace(intent.CallbackURL)
	if callback == "" && g.callbackURL != nil {
		callback = g.callbackURL()
	}
	body := paystackInitializeRequest{
		Email:       intent.PayerEmail,
		Amount:      intent.AmountMinorUnits,
		Reference:   intent.Reference,
		CallbackURL: callback,
		Metadata:    promotion.Encode(intent.Metadata),
	}

	zap.S().Infow("[payment][gateway] initialize start", "provider", ProviderPaystack, "reference", intent.Reference, "amount", intent.AmountMinorUnits)
	raw, err := g.do(ctx, secret, http.MethodPost, "/transaction/initialize", body, "initialize", intent.Reference)
	if err != nil {
		return entities.PaymentInitialization{}, err
	}

	var data paystackInitializeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return entities.PaymentInitialization{}, &entities.ProviderError{Operation: "initialize", Reference: intent.Reference, Message: "malformed data", Err: err}
	}
	if data.AuthorizationURL == "" {
		return entities.PaymentInitialization{}, &entities.ProviderError{Operation: "initialize", Reference: intent.Reference, Message: "response has no authorization_url"}
	}
	if data.Reference != "" && data.Reference != intent.Reference {
		return entities.PaymentInitialization{}, &entities.ProviderError{Operation: "initialize", Reference: intent.Reference, Message: "provider answered for reference " + data.Reference}
	}
	zap.S().Infow("[payment][gateway] initialize success", "provider", ProviderPaystack, "reference", intent.Reference)

	return entities.PaymentInitialization{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        intent.Reference,
	}, nil
}

// Verify calls GET /transaction/verify/{reference}.
func (g *PaystackGateway) Verify(ctx context.Context, reference string) (entities.VerificationResult, error) {
	secret := g.secretKey()
	if secret == "" {
		zap.S().Errorw("[payment][gateway] missing PAYSTACK_SECRET_KEY")
		return entities.VerificationResult{}, &entities.ConfigurationError{Setting: "PAYSTACK_SECRET_KEY"}
	}
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.VerificationResult{}, entities.NewValidationError("reference", "is required")
	}

	zap.S().Infow("[payment][gateway] verify start", "provider", ProviderPaystack, "reference", reference)
	raw, err := g.do(ctx, secret, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil, "verify", reference)
	if err != nil {
		return entities.VerificationResult{}, err
	}

	var data paystackVerifyData
	if err := json.Unmarshal(raw, &data); err != nil {
		return entities.VerificationResult{}, &entities.ProviderError{Operation: "verify", Reference: reference, Message: "malformed data", Err: err}
	}

	result := entities.VerificationResult{
		Status:           mapPaystackStatus(data.Status),
		Reference:        reference,
		AmountMinorUnits: data.Amount,
		Currency:         data.Currency,
		PaidAt:           parseTimestamp(data.PaidAt),
		Metadata:         parseMetadata(data.Metadata),
		Raw:              raw,
	}
	if data.Reference != "" {
		result.Reference = data.Reference
	}
	zap.S().Infow("[payment][gateway] verify success", "provider", ProviderPaystack, "reference", reference,
		"provider_status", data.Status, "status", result.Status)
	return result, nil
}

// do performs one request and unwraps the {status, message, data} envelope.
func (g *PaystackGateway) do(ctx context.Context, secret, method, path string, payload any, op, reference string) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, &entities.ProviderError{Operation: op, Reference: reference, Message: "failed to encode request", Err: err}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return nil, &entities.ProviderError{Operation: op, Reference: reference, Message: "failed to build request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+secret)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		zap.S().Errorw("[payment][gateway] request failed", "provider", ProviderPaystack, "op", op, "reference", reference, "err", err)
		return nil, &entities.ProviderError{Operation: op, Reference: reference, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &entities.ProviderError{Operation: op, Reference: reference, StatusCode: resp.StatusCode, Message: "failed to read response", Err: err}
	}

	var env paystackEnvelope
	decodeErr := json.Unmarshal(respBody, &env)
	failed := resp.StatusCode < 200 || resp.StatusCode >= 300 || (decodeErr == nil && !env.Status)

	if failed {
		message := env.Message
		if decodeErr != nil || message == "" {
			message = strings.TrimSpace(string(respBody))
		}
		zap.S().Errorw("[payment][gateway] provider rejected request", "provider", ProviderPaystack, "op", op,
			"reference", reference, "status_code", resp.StatusCode, "message", message)
		if op == "verify" && isNotFound(resp.StatusCode, message) {
			return nil, &entities.NotFoundError{Reference: reference, Message: message}
		}
		return nil, &entities.ProviderError{Operation: op, Reference: reference, StatusCode: resp.StatusCode, Message: message}
	}
	if decodeErr != nil {
		return nil, &entities.ProviderError{Operation: op, Reference: reference, StatusCode: resp.StatusCode, Message: "malformed response", Err: decodeErr}
	}
	return env.Data, nil
}

// isNotFound only trusts the message on client errors; a 5xx stays a ProviderError
// whatever it says.
func isNotFound(statusCode int, message string) bool {
	switch statusCode {
	case http.StatusNotFound:
		return true
	case http.StatusBadRequest:
		return strings.Contains(strings.ToLower(message), "not found")
	default:
		return false
	}
}

func mapPaystackStatus(status string) entities.VerificationStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "success":
		return entities.VerificationStatusSuccess
	case "failed", "reversed", "reversal_pending":
		return entities.VerificationStatusFailed
	case "abandoned":
		return entities.VerificationStatusAbandoned
	default:
		return entities.VerificationStatusPending
	}
}

// parseMetadata accepts an object or a JSON-encoded string; anything else yields nil.
func parseMetadata(raw json.RawMessage) map[string]any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(trimmed, &m); err == nil {
		return m
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil && strings.TrimSpace(s) != "" {
		if err := json.Unmarshal([]byte(s), &m); err == nil {
			return m
		}
	}
	return nil
}

func parseTimestamp(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

func envSource(key string) func() string {
	return func() string { return strings.TrimSpace(os.Getenv(key)) }
}
