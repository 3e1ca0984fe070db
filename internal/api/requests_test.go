package api

import (
	"encoding/json"
	"testing"
)

func TestNullableTriState(t *testing.T) {
	type payload struct {
		Description nullable[string] `json:"description"`
	}

	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValue *string
	}{
		{"absent", `{}`, false, nil},
		{"explicit null", `{"description":null}`, true, nil},
		{"value", `{"description":"hi"}`, true, strPtr("hi")},
		{"empty string is a value", `{"description":""}`, true, strPtr("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if p.Description.set != tt.wantSet {
				t.Errorf("set = %v, want %v", p.Description.set, tt.wantSet)
			}
			switch {
			case tt.wantValue == nil && p.Description.value != nil:
				t.Errorf("value = %q, want nil", *p.Description.value)
			case tt.wantValue != nil && (p.Description.value == nil || *p.Description.value != *tt.wantValue):
				t.Errorf("value = %v, want %q", p.Description.value, *tt.wantValue)
			}
		})
	}
}

func TestNullableRejectsWrongType(t *testing.T) {
	var p struct {
		Rating nullable[int] `json:"rating"`
	}
	if err := json.Unmarshal([]byte(`{"rating":"five"}`), &p); err == nil {
		t.Error("expected a type error")
	}
}

func TestPatchBrewRequestCompletedAt(t *testing.T) {
	var req patchBrewRequest
	if err := json.Unmarshal([]byte(`{"completedAt":"2026-08-30T12:00:00Z"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if errs := req.validate(); !errs.empty() {
		t.Fatalf("validate: %v", errs)
	}
	p := req.toPatch()
	if !p.CompletedAt.Set || p.CompletedAt.Value == nil {
		t.Fatal("completedAt not carried into the patch")
	}
	if p.CompletedAt.Value.UTC().Hour() != 12 {
		t.Errorf("parsed time = %v", p.CompletedAt.Value)
	}

	var bad patchBrewRequest
	if err := json.Unmarshal([]byte(`{"completedAt":"yesterday"}`), &bad); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if errs := bad.validate(); errs.empty() {
		t.Error("non-timestamp completedAt should fail validation")
	}
}

func strPtr(s string) *string { return &s }
