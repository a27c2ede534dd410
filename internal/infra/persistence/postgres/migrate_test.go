package postgres

import (
	"sync"
	"testing"

	"marketplace/internal/infra/persistence/model"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseIndexes(t *testing.T, value any) map[string]*schema.Index {
	t.Helper()

	parsed, err := schema.Parse(value, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	return lo.SliceToMap(parsed.ParseIndexes(), func(idx *schema.Index) (string, *schema.Index) {
		return idx.Name, idx
	})
}

func TestPaymentMethodModel_SingleDefaultIndex(t *testing.T) {
	indexes := parseIndexes(t, &model.PaymentMethodModel{})

	idx, ok := indexes[idxPaymentMethodsSingleDefault]
	require.True(t, ok)
	assert.Equal(t, "UNIQUE", idx.Class)
	assert.Equal(t, "is_default", idx.Where)
	require.Len(t, idx.Fields, 1)
	assert.Equal(t, "seller_id", idx.Fields[0].DBName)

	// The plain lookup index on seller_id is still declared.
	_, ok = indexes["idx_payment_methods_seller_id"]
	assert.True(t, ok)
}

func TestPaymentSummaryModel_UniqueSeller(t *testing.T) {
	indexes := parseIndexes(t, &model.PaymentSummaryModel{})

	idx, ok := indexes["idx_payment_summaries_seller"]
	require.True(t, ok)
	assert.Equal(t, "UNIQUE", idx.Class)
	assert.Empty(t, idx.Where)
}

func TestAppliedOrderEventModel_CompositeKey(t *testing.T) {
	parsed, err := schema.Parse(&model.AppliedOrderEventModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	keys := lo.Map(parsed.PrimaryFields, func(field *schema.Field, _ int) string { return field.DBName })
	assert.ElementsMatch(t, []string{"order_id", "status"}, keys)
}
