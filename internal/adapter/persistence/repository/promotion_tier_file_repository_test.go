package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTiers(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestPromotionTierFileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("lists and finds tiers", func(t *testing.T) {
		path := writeTiers(t, `
tiers:
  - id: premium
    name: Premium Spotlight
    fee: "15000.50"
    currency: ngn
    duration_days: 14
  - id: basic
    name: Basic Boost
    fee: "5000"
    currency: NGN
    duration_days: 7
`)
		repo := NewPromotionTierFileRepository(path)

		tiers, err := repo.ListTiers(ctx)
		require.NoError(t, err)
		require.Len(t, tiers, 2)
		assert.Equal(t, "NGN", tiers[0].Currency)
		assert.EqualValues(t, 1_500_050, tiers[0].AmountMinorUnits())

		tier, err := repo.GetTier(ctx, " basic ")
		require.NoError(t, err)
		assert.Equal(t, 7, tier.DurationDays)

		missing, err := repo.GetTier(ctx, "gold")
		require.NoError(t, err)
		assert.Empty(t, missing.ID)
	})

	t.Run("reads the file on every call", func(t *testing.T) {
		path := writeTiers(t, "tiers:\n  - {id: a, name: A, fee: \"1\", duration_days: 1}\n")
		repo := NewPromotionTierFileRepository(path)

		tiers, err := repo.ListTiers(ctx)
		require.NoError(t, err)
		require.Len(t, tiers, 1)

		require.NoError(t, os.WriteFile(path, []byte("tiers:\n  - {id: a, name: A, fee: \"1\", duration_days: 1}\n  - {id: b, name: B, fee: \"2\", duration_days: 2}\n"), 0o600))
		tiers, err = repo.ListTiers(ctx)
		require.NoError(t, err)
		assert.Len(t, tiers, 2)
	})

	t.Run("invalid files", func(t *testing.T) {
		cases := map[string]string{
			"bad fee":        "tiers:\n  - {id: a, name: A, fee: abc, duration_days: 1}\n",
			"negative fee":   "tiers:\n  - {id: a, name: A, fee: \"-1\", duration_days: 1}\n",
			"zero duration":  "tiers:\n  - {id: a, name: A, fee: \"1\", duration_days: 0}\n",
			"missing id":     "tiers:\n  - {name: A, fee: \"1\", duration_days: 1}\n",
			"duplicate id":   "tiers:\n  - {id: a, name: A, fee: \"1\", duration_days: 1}\n  - {id: a, name: B, fee: \"1\", duration_days: 1}\n",
			"malformed yaml": "tiers: [",
		}
		for name, body := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := NewPromotionTierFileRepository(writeTiers(t, body)).ListTiers(ctx)
				assert.Error(t, err)
			})
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewPromotionTierFileRepository(filepath.Join(t.TempDir(), "none.yaml")).ListTiers(ctx)
		assert.Error(t, err)
	})

	t.Run("shipped catalog parses", func(t *testing.T) {
		tiers, err := NewPromotionTierFileRepository("../../../../configs/promotion_tiers.yaml").ListTiers(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, tiers)
	})
}
