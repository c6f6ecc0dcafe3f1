// Package dto shapes subscription plans for the console.
package dto

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/codearena/arena-admin/sdk/platform"
)

// DefaultNameLanguage is the language every plan must be named in.
const DefaultNameLanguage = "en"

type PlanDTO struct {
	platform.SubscriptionPlan
	DisplayName  string `json:"display_name"`
	PriceDisplay string `json:"price_display"`
}

var printer = message.NewPrinter(language.English)

func ToPlanDTO(p platform.SubscriptionPlan) PlanDTO {
	p.Features = SortFeatures(p.Features)
	return PlanDTO{
		SubscriptionPlan: p,
		DisplayName:      DisplayName(p.Names),
		PriceDisplay:     FormatPrice(p.Price, p.Currency),
	}
}

func ToPlanDTOList(plans []platform.SubscriptionPlan) []PlanDTO {
	out := make([]PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, ToPlanDTO(p))
	}
	return out
}

// FormatPrice renders price with the currency symbol, e.g. "$ 9.99". Values
// that cannot be parsed are returned as "<price> <currency>".
func FormatPrice(price, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return strings.TrimSpace(price + " " + code)
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return strings.TrimSpace(price + " " + code)
	}
	return printer.Sprint(currency.Symbol(unit.Amount(amount)))
}

// DisplayName picks the English name, falling back to the first name by tag.
func DisplayName(names map[string]string) string {
	if n := strings.TrimSpace(names[DefaultNameLanguage]); n != "" {
		return n
	}
	tags := make([]string, 0, len(names))
	for tag := range names {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		if n := strings.TrimSpace(names[tag]); n != "" {
			return n
		}
	}
	return ""
}

// SortFeatures returns features ordered by display order.
func SortFeatures(features []platform.SubscriptionFeature) []platform.SubscriptionFeature {
	out := make([]platform.SubscriptionFeature, len(features))
	copy(out, features)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}
