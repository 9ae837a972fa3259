package promotion

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"hlc_marketplace/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Provider metadata keys.
const (
	KeyPropertyID   = "property_id"
	KeyTierID       = "tier_id"
	KeyTierName     = "tier_name"
	KeyTierFee      = "tier_fee"
	KeyTierDuration = "tier_duration"
	KeyAgentID      = "agent_id"
	KeyPurpose      = "purpose"
	KeyCustomFields = "custom_fields"
)

// CustomField is shown by the provider on its own dashboard. It is never read back.
type CustomField struct {
	DisplayName  string `json:"display_name"`
	VariableName string `json:"variable_name"`
	Value        string `json:"value"`
}

// Encode produces the provider metadata map for a promotion.
//
// The output depends only on meta, so retries send byte-identical payloads.
func Encode(meta entities.PromotionMetadata) map[string]any {
	return map[string]any{
		KeyPropertyID:   meta.PropertyID,
		KeyTierID:       meta.TierID,
		KeyTierName:     meta.TierName,
		KeyTierFee:      meta.TierFeeMajorUnits,
		KeyTierDuration: meta.TierDurationDays,
		KeyAgentID:      meta.AgentID,
		KeyPurpose:      entities.PurposePropertyPromotion,
		KeyCustomFields: []CustomField{
			{DisplayName: "Property ID", VariableName: KeyPropertyID, Value: meta.PropertyID},
			{DisplayName: "Promotion Tier", VariableName: KeyTierName, Value: meta.TierName},
			{DisplayName: "Tier Fee", VariableName: KeyTierFee, Value: decimal.NewFromFloat(meta.TierFeeMajorUnits).StringFixed(2)},
			{DisplayName: "Duration (days)", VariableName: KeyTierDuration, Value: strconv.Itoa(meta.TierDurationDays)},
			{DisplayName: "Agent ID", VariableName: KeyAgentID, Value: meta.AgentID},
		},
	}
}

// Decode reads promotion metadata echoed back by the provider.
//
// ok is false when the payment is not a promotion payment or when any required
// field is missing, mistyped or out of range. Decode never panics on malformed input.
func Decode(raw map[string]any) (entities.PromotionMetadata, bool) {
	if raw == nil {
		return entities.PromotionMetadata{}, false
	}
	purpose, ok := stringField(raw, KeyPurpose)
	if !ok || purpose != entities.PurposePropertyPromotion {
		return entities.PromotionMetadata{}, false
	}

	propertyID, ok := uuidField(raw, KeyPropertyID)
	if !ok {
		return entities.PromotionMetadata{}, false
	}
	agentID, ok := uuidField(raw, KeyAgentID)
	if !ok {
		return entities.PromotionMetadata{}, false
	}
	tierID, ok := stringField(raw, KeyTierID)
	if !ok {
		return entities.PromotionMetadata{}, false
	}
	tierName, ok := stringField(raw, KeyTierName)
	if !ok {
		return entities.PromotionMetadata{}, false
	}
	duration, ok := CoerceDurationDays(raw[KeyTierDuration])
	if !ok {
		return entities.PromotionMetadata{}, false
	}

	var fee float64
	if v, present := raw[KeyTierFee]; present && v != nil {
		fee, ok = coerceFloat(v)
		if !ok {
			return entities.PromotionMetadata{}, false
		}
	}

	return entities.PromotionMetadata{
		PropertyID:        propertyID,
		TierID:            tierID,
		TierName:          tierName,
		TierFeeMajorUnits: fee,
		TierDurationDays:  duration,
		AgentID:           agentID,
		Purpose:           entities.PurposePropertyPromotion,
	}, true
}

// CoerceDurationDays accepts the duration as a number or a numeric string.
// Anything that is not a positive whole number is rejected; there is no default.
func CoerceDurationDays(v any) (int, bool) {
	var n int64
	switch t := v.(type) {
	case int:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	case float64:
		if t != math.Trunc(t) || t > math.MaxInt32 {
			return 0, false
		}
		n = int64(t)
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, false
		}
		n = i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 32)
		if err != nil {
			return 0, false
		}
		n = i
	default:
		return 0, false
	}
	if n <= 0 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, !math.IsNaN(t) && !math.IsInf(t, 0)
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return d.InexactFloat64(), true
	default:
		return 0, false
	}
}

func stringField(raw map[string]any, key string) (string, bool) {
	s, ok := raw[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

func uuidField(raw map[string]any, key string) (string, bool) {
	s, ok := stringField(raw, key)
	if !ok {
		return "", false
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", false
	}
	return s, true
}
