package repository

import (
	"context"
	"fmt"
	"os"
	"strings"

	"hlc_marketplace/internal/domain/entities"
	"hlc_marketplace/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const defaultPromotionTiersFile = "./configs/promotion_tiers.yaml"

type promotionTierFile struct {
	Tiers []promotionTierEntry `yaml:"tiers"`
}

type promotionTierEntry struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Fee          string `yaml:"fee"`
	Currency     string `yaml:"currency"`
	DurationDays int    `yaml:"duration_days"`
}

// PromotionTierFileRepository serves promotion tiers from a YAML file.
//
// The file is read on every call so operators can edit tiers without a restart.
type PromotionTierFileRepository struct {
	path string
}

var _ interfaces.IPromotionTierCatalog = (*PromotionTierFileRepository)(nil)

func NewPromotionTierFileRepository(path string) *PromotionTierFileRepository {
	if path == "" {
		path = getenvDefault("PROMOTION_TIERS_FILE", defaultPromotionTiersFile)
	}
	return &PromotionTierFileRepository{path: path}
}

func (r *PromotionTierFileRepository) ListTiers(ctx context.Context) ([]entities.PromotionTier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read promotion tiers: %w", err)
	}

	var file promotionTierFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse promotion tiers %s: %w", r.path, err)
	}

	tiers := make([]entities.PromotionTier, 0, len(file.Tiers))
	seen := make(map[string]struct{}, len(file.Tiers))
	for i, e := range file.Tiers {
		tier, err := e.toEntity()
		if err != nil {
			return nil, fmt.Errorf("promotion tier #%d in %s: %w", i+1, r.path, err)
		}
		if _, dup := seen[tier.ID]; dup {
			return nil, fmt.Errorf("promotion tier %q declared twice in %s", tier.ID, r.path)
		}
		seen[tier.ID] = struct{}{}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

// GetTier returns a zero tier when id is unknown.
func (r *PromotionTierFileRepository) GetTier(ctx context.Context, id string) (entities.PromotionTier, error) {
	tiers, err := r.ListTiers(ctx)
	if err != nil {
		return entities.PromotionTier{}, err
	}
	id = strings.TrimSpace(id)
	for _, t := range tiers {
		if t.ID == id {
			return t, nil
		}
	}
	return entities.PromotionTier{}, nil
}

func (e promotionTierEntry) toEntity() (entities.PromotionTier, error) {
	id := strings.TrimSpace(e.ID)
	if id == "" {
		return entities.PromotionTier{}, fmt.Errorf("id is required")
	}
	if strings.TrimSpace(e.Name) == "" {
		return entities.PromotionTier{}, fmt.Errorf("tier %q: name is required", id)
	}
	fee, err := decimal.NewFromString(strings.TrimSpace(e.Fee))
	if err != nil {
		return entities.PromotionTier{}, fmt.Errorf("tier %q: invalid fee %q: %w", id, e.Fee, err)
	}
	if fee.IsNegative() {
		return entities.PromotionTier{}, fmt.Errorf("tier %q: fee must not be negative", id)
	}
	if e.DurationDays <= 0 {
		return entities.PromotionTier{}, fmt.Errorf("tier %q: duration_days must be positive", id)
	}
	return entities.PromotionTier{
		ID:           id,
		Name:         strings.TrimSpace(e.Name),
		Fee:          fee,
		Currency:     strings.ToUpper(strings.TrimSpace(e.Currency)),
		DurationDays: e.DurationDays,
	}, nil
}
