package wizard

import (
	"testing"

	"mithaq/validate"
)

func submitOK(t *testing.T, s *Session, raw string) {
	t.Helper()
	field, ok := s.Current()
	if !ok {
		t.Fatal("session already complete")
	}
	rej, err := s.Submit(raw)
	if err != nil {
		t.Fatalf("submit %q for %s: %v", raw, field.Key, err)
	}
	if rej != nil {
		t.Fatalf("submit %q for %s rejected: %+v", raw, field.Key, rej)
	}
}

func TestUnknownKind(t *testing.T) {
	if _, err := New("no-such-kind"); err == nil {
		t.Fatal("New accepted an unknown kind")
	}
}

func TestDependencySkipped(t *testing.T) {
	s, err := New("qard")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	answers := map[string]string{
		"lender_name":         "Иванов И.И.",
		"borrower_name":       "Петров П.П.",
		"amount":              "100000 рублей",
		"due_date":            "01.06.2027",
		"collateral_required": "no",
	}
	for !s.Complete() {
		field, _ := s.Current()
		if field.Key == "collateral_description" {
			t.Fatal("collateral_description prompted although collateral_required=no")
		}
		if v, ok := answers[field.Key]; ok {
			submitOK(t, s, v)
			continue
		}
		if err := s.Skip(); err != nil {
			t.Fatalf("skip %s: %v", field.Key, err)
		}
	}

	if _, ok := s.Answers["collateral_description"]; ok {
		t.Fatal("skipped-over dependent field left an answer entry")
	}
	if s.Answers["amount"] != "100000 рублей" {
		t.Fatalf("amount = %q", s.Answers["amount"])
	}
}

func TestDependencyPrompted(t *testing.T) {
	s, err := New("qard")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	prompted := false
	for !s.Complete() {
		field, _ := s.Current()
		switch field.Key {
		case "collateral_required":
			submitOK(t, s, "yes")
		case "collateral_description":
			prompted = true
			submitOK(t, s, "автомобиль Lada Vesta 2022")
		default:
			if field.Optional {
				if err := s.Skip(); err != nil {
					t.Fatalf("skip %s: %v", field.Key, err)
				}
			} else {
				submitOK(t, s, "заполнено")
			}
		}
	}
	if !prompted {
		t.Fatal("collateral_description never prompted although collateral_required=yes")
	}
}

func TestRejectionHoldsCursor(t *testing.T) {
	s, err := New("musharaka")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for {
		field, ok := s.Current()
		if !ok {
			t.Fatal("reached end before profit_split")
		}
		if field.Key == "profit_split" {
			break
		}
		if field.Optional {
			if err := s.Skip(); err != nil {
				t.Fatalf("skip %s: %v", field.Key, err)
			}
		} else {
			submitOK(t, s, "заполнено")
		}
	}

	before := s.Cursor
	rej, err := s.Submit("70,40")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rej == nil || rej.Reason != validate.ReasonPercentInvalid {
		t.Fatalf("bad split: rejection = %+v, want percent_invalid", rej)
	}
	if s.Cursor != before {
		t.Fatal("cursor advanced on rejection")
	}
	if _, ok := s.Answers["profit_split"]; ok {
		t.Fatal("rejected answer was stored")
	}

	submitOK(t, s, "60,40")
	if s.Answers["profit_split"] != "60% / 40%" {
		t.Fatalf("profit_split stored as %q", s.Answers["profit_split"])
	}
}

func TestSkipRequiredRefused(t *testing.T) {
	s, err := New("hiba")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Skip(); err != ErrNotSkippable {
		t.Fatalf("skip on required field = %v, want ErrNotSkippable", err)
	}
}

func TestResume(t *testing.T) {
	s, err := New("sadaqa")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	submitOK(t, s, "Фонд Милосердие")
	submitOK(t, s, "Ахмедов А.А.")

	resumed, err := Resume(s.KindID, s.Cursor, s.Answers)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	field, ok := resumed.Current()
	if !ok {
		t.Fatal("resumed session complete too early")
	}
	if field.Key != "donation_description" {
		t.Fatalf("resumed at %s, want donation_description", field.Key)
	}

	done, err := Resume(s.KindID, len(s.Kind().Fields), s.Answers)
	if err != nil {
		t.Fatalf("Resume at end: %v", err)
	}
	if !done.Complete() {
		t.Fatal("session at end of field list not complete")
	}
	if _, err := done.Submit("x"); err != ErrComplete {
		t.Fatalf("submit on complete session = %v, want ErrComplete", err)
	}
}
