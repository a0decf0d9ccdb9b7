package mapping

import (
	"reflect"
	"testing"

	"payrollimport/catalog"
)

func TestCheckConflictsRequiredFieldMissing(t *testing.T) {
	cat := catalog.Default()
	mapping := ResolvedMapping{
		"Mã NV": {FieldID: "employee_id", ConfidenceScore: 90, MappingType: MappingAlias, Status: StatusValid},
	}

	conflicts := CheckConflicts(mapping, cat.RequiredFields())

	missing := map[string]bool{}
	for _, c := range conflicts {
		if c.Kind != ConflictRequiredFieldMissing {
			t.Errorf("unexpected conflict kind %q", c.Kind)
			continue
		}
		if c.Severity != SeverityError {
			t.Errorf("required_field_missing severity = %q, want error", c.Severity)
		}
		missing[c.FieldID] = true
	}

	for _, want := range []string{"full_name", "salary_month"} {
		if !missing[want] {
			t.Errorf("missing required_field_missing conflict for %q", want)
		}
	}
	if missing["employee_id"] {
		t.Error("employee_id is mapped, should not be reported as missing")
	}

	if Resolvable(conflicts) {
		t.Error("mapping with required_field_missing errors must not be resolvable")
	}
}

func TestCheckConflictsDuplicateMappingSymmetric(t *testing.T) {
	// Hai cột cùng trỏ về một trường: xung đột phải nêu đủ cả hai cột,
	// bất kể thứ tự xuất hiện trong đầu vào
	buildMapping := func(first, second string) ResolvedMapping {
		m := ResolvedMapping{}
		m[first] = ColumnMapping{FieldID: "luong_co_ban", ConfidenceScore: 80, Status: StatusValid}
		m[second] = ColumnMapping{FieldID: "luong_co_ban", ConfidenceScore: 75, Status: StatusValid}
		return m
	}

	for _, order := range [][2]string{{"Luong CB", "Luong co ban"}, {"Luong co ban", "Luong CB"}} {
		conflicts := CheckConflicts(buildMapping(order[0], order[1]), nil)

		var dup *Conflict
		for i := range conflicts {
			if conflicts[i].Kind == ConflictDuplicateMapping {
				dup = &conflicts[i]
				break
			}
		}
		if dup == nil {
			t.Fatalf("order %v: duplicate_mapping conflict not reported", order)
		}
		if dup.FieldID != "luong_co_ban" {
			t.Errorf("duplicate field = %q, want luong_co_ban", dup.FieldID)
		}
		if dup.Severity != SeverityError {
			t.Errorf("duplicate severity = %q, want error", dup.Severity)
		}
		wantColumns := []string{"Luong CB", "Luong co ban"}
		if !reflect.DeepEqual(dup.Columns, wantColumns) {
			t.Errorf("duplicate columns = %v, want %v", dup.Columns, wantColumns)
		}
	}
}

func TestResolvableWithWarningsOnly(t *testing.T) {
	conflicts := []Conflict{
		{Kind: ConflictAmbiguousMatch, Severity: SeverityWarning, Message: "mơ hồ"},
	}
	if !Resolvable(conflicts) {
		t.Error("warnings alone must not block acceptance")
	}
	if !Resolvable(nil) {
		t.Error("empty conflict list must be resolvable")
	}
}

func TestCheckConflictsCleanMapping(t *testing.T) {
	cat := catalog.Default()
	mapping := ResolvedMapping{
		"Mã NV":      {FieldID: "employee_id", ConfidenceScore: 90, Status: StatusValid},
		"Họ tên":     {FieldID: "full_name", ConfidenceScore: 85, Status: StatusValid},
		"Tháng lương": {FieldID: "salary_month", ConfidenceScore: 95, Status: StatusValid},
	}

	conflicts := CheckConflicts(mapping, cat.RequiredFields())
	if len(conflicts) != 0 {
		t.Errorf("expected no conflicts, got %v", conflicts)
	}
}
