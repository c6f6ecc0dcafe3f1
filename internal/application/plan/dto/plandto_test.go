package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codearena/arena-admin/sdk/platform"
)

func TestFormatPrice(t *testing.T) {
	assert.Contains(t, FormatPrice("9.99", "USD"), "9.99")
	assert.Contains(t, FormatPrice("9.99", "USD"), "$")
	assert.Contains(t, FormatPrice("1500", "EUR"), "€")
	assert.Equal(t, "abc USD", FormatPrice("abc", "USD"))
	assert.Equal(t, "10 XX", FormatPrice("10", "XX"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Pro", DisplayName(map[string]string{"en": "Pro", "vi": "Chuyên nghiệp"}))
	assert.Equal(t, "Chuyên nghiệp", DisplayName(map[string]string{"vi": "Chuyên nghiệp"}))
	assert.Equal(t, "", DisplayName(nil))
}

func TestToPlanDTO_SortsFeatures(t *testing.T) {
	p := platform.SubscriptionPlan{
		ID:       "pro",
		Names:    map[string]string{"en": "Pro"},
		Price:    "5",
		Currency: "USD",
		Features: []platform.SubscriptionFeature{
			{ID: "b", DisplayOrder: 2},
			{ID: "a", DisplayOrder: 1},
		},
	}

	out := ToPlanDTO(p)
	assert.Equal(t, "Pro", out.DisplayName)
	assert.Equal(t, "a", out.Features[0].ID)
	assert.Equal(t, "b", p.Features[0].ID, "input is not modified")
}
