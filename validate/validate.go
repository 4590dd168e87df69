// Package validate screens wizard answers before they become part of an
// agreement draft. Checks run in a fixed order: choice membership, required
// presence, percent shape, then free-text term screening, then checks that
// only apply to particular agreement kinds.
package validate

import (
	"strings"

	"mithaq/catalog"
)

// Reason identifies why an answer was rejected.
type Reason string

const (
	ReasonChoiceRequired    Reason = "choice_required"
	ReasonFieldRequired     Reason = "field_required"
	ReasonPercentInvalid    Reason = "percent_invalid"
	ReasonUnclearTerms      Reason = "unclear_terms"
	ReasonProhibitedGoods   Reason = "prohibited_goods"
	ReasonInterestLike      Reason = "interest_like"
	ReasonReversalNotAllowed Reason = "reversal_not_allowed"
	ReasonPriceNotFixed     Reason = "price_not_fixed"
	ReasonProfitGuarantee   Reason = "profit_guarantee"
)

// Rejection describes a failed check. It is a value, not an error: a
// rejected answer is a normal wizard outcome, the caller re-prompts.
type Rejection struct {
	Field      string
	Reason     Reason
	MessageKey string
}

func reject(field string, reason Reason, messageKey string) *Rejection {
	return &Rejection{Field: field, Reason: reason, MessageKey: messageKey}
}

// Field checks one answer against its definition and the answers collected so
// far. On success it returns the normalized value to store; percent fields
// come back reformatted ("60,40" becomes "60% / 40%"). A nil Rejection means
// the answer is accepted.
func Field(kind catalog.Kind, def catalog.FieldDefinition, raw string, answers map[string]string) (string, *Rejection) {
	value := strings.TrimSpace(raw)

	if len(def.Choices) > 0 {
		if !def.HasChoice(value) {
			return "", reject(def.Key, ReasonChoiceRequired, "agreements.flow.error.choice_required")
		}
		if rej := kindSpecific(kind, def, value, answers); rej != nil {
			return "", rej
		}
		return value, nil
	}

	if value == "" {
		if def.Optional {
			return "", nil
		}
		return "", reject(def.Key, ReasonFieldRequired, "agreements.flow.error.field_required")
	}

	if def.PercentPair {
		normalized, ok := NormalizePercentPair(value)
		if !ok {
			return "", reject(def.Key, ReasonPercentInvalid, "agreements.flow.error.percent_pair")
		}
		value = normalized
	} else if def.PercentValue {
		normalized, ok := NormalizePercentValue(value)
		if !ok {
			return "", reject(def.Key, ReasonPercentInvalid, "agreements.flow.error.percent_value")
		}
		value = normalized
	}

	if rej := screenFreeText(def, value); rej != nil {
		return "", rej
	}
	if rej := kindSpecific(kind, def, value, answers); rej != nil {
		return "", rej
	}
	return value, nil
}

// screenFreeText applies the term screens in order: vague wording, prohibited
// subject matter, then interest-bearing language. Percent fields carry
// AllowPercent so their own notation does not trip the generic screen.
func screenFreeText(def catalog.FieldDefinition, value string) *Rejection {
	lowered := strings.ToLower(value)

	if matchAny(unclearPatterns, lowered) {
		return reject(def.Key, ReasonUnclearTerms, "agreements.flow.error.unclear_terms")
	}
	if matchAny(prohibitedPatterns, lowered) {
		return reject(def.Key, ReasonProhibitedGoods, "agreements.flow.error.prohibited_goods")
	}
	if matchAny(interestStrictPatterns, lowered) {
		return reject(def.Key, ReasonInterestLike, "agreements.flow.error.interest_like")
	}
	if !def.AllowPercent && matchAny(interestGenericPatterns, lowered) {
		return reject(def.Key, ReasonInterestLike, "agreements.flow.error.interest_like")
	}
	return nil
}

func kindSpecific(kind catalog.Kind, def catalog.FieldDefinition, value string, answers map[string]string) *Rejection {
	lowered := strings.ToLower(value)

	switch kind.ID {
	case "salam":
		if def.Key == "fixed_price" && matchAny(hedgedPricePatterns, lowered) {
			return reject(def.Key, ReasonPriceNotFixed, "agreements.flow.error.salam_price_not_fixed")
		}
	case "mudaraba":
		if matchAny(profitGuaranteePatterns, lowered) {
			return reject(def.Key, ReasonProfitGuarantee, "agreements.flow.error.mudaraba_profit_guarantee")
		}
		if def.Key == "profit_share_manager" {
			if investor, ok := answers["profit_share_investor"]; ok && investor != "" {
				if !sharesComplement(investor, value) {
					return reject(def.Key, ReasonPercentInvalid, "agreements.flow.error.mudaraba_shares_sum")
				}
			}
		}
	case "hiba":
		// A gift that must come back is not a gift.
		if def.Key == "return_condition" && value == "yes" {
			return reject(def.Key, ReasonReversalNotAllowed, "agreements.flow.error.hiba_return_condition")
		}
	}
	return nil
}
