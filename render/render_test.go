package render

import (
	"testing"

	"mithaq/catalog"
)

const loanTemplate = `ДОГОВОР БЕСПРОЦЕНТНОГО ЗАЙМА

Займодавец: {{lender_name}}
Заёмщик: {{borrower_name}}

Сумма займа: {{amount}}
Цель займа: {{purpose}}
Срок возврата: {{due_date}}
Порядок возврата: {{repayment_method}}

Залог: {{collateral_description}}
Дополнительные условия: {{extra_terms}}`

func TestRenderElidesEmptyLines(t *testing.T) {
	got := Render(loanTemplate, map[string]string{
		"lender_name":   "Иванов И.И.",
		"borrower_name": "Петров П.П.",
		"amount":        "100000 рублей",
		"purpose":       "",
		"due_date":      "01.06.2027",
	})

	want := `ДОГОВОР БЕСПРОЦЕНТНОГО ЗАЙМА

Займодавец: Иванов И.И.
Заёмщик: Петров П.П.

Сумма займа: 100000 рублей
Срок возврата: 01.06.2027`
	if got != want {
		t.Fatalf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderKeepsSectionHeaders(t *testing.T) {
	tmpl := `Стороны:
- {{party_one}}
- {{party_two}}`
	got := Render(tmpl, map[string]string{
		"party_one": "ООО Ромашка",
		"party_two": "ИП Васильев",
	})
	want := `Стороны:
- ООО Ромашка
- ИП Васильев`
	if got != want {
		t.Fatalf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderDropsUnknownPlaceholders(t *testing.T) {
	got := Render("Сумма: {{amount}}\nНеведомое: {{mystery}}", map[string]string{"amount": "500"})
	if got != "Сумма: 500" {
		t.Fatalf("rendered %q", got)
	}
}

func TestRenderRepeatedKey(t *testing.T) {
	got := Render("{{name}} передаёт, а {{name}} принимает", map[string]string{"name": "Сидоров"})
	if got != "Сидоров передаёт, а Сидоров принимает" {
		t.Fatalf("rendered %q", got)
	}
}

type mapLabeler map[string]string

func (m mapLabeler) Label(key string) string { return m[key] }

func TestValuesResolvesChoiceLabels(t *testing.T) {
	kind, err := catalog.KindOf("qard")
	if err != nil {
		t.Fatalf("KindOf: %v", err)
	}
	labels := mapLabeler{"agreements.flow.choice.yes": "Да", "agreements.flow.choice.no": "Нет"}

	values := Values(kind, map[string]string{
		"collateral_required": "yes",
		"amount":              "100000 рублей",
		"purpose":             "",
	}, labels)

	if values["collateral_required"] != "Да" {
		t.Fatalf("collateral_required rendered as %q", values["collateral_required"])
	}
	if values["amount"] != "100000 рублей" {
		t.Fatalf("amount rendered as %q", values["amount"])
	}
	if values["purpose"] != "" {
		t.Fatalf("empty answer became %q", values["purpose"])
	}
}
