package builtin

import (
	"encoding/json"
	"testing"
)

func TestInt64ParamCoercion(t *testing.T) {
	params := map[string]any{
		"float":  float64(7),
		"int":    3,
		"number": json.Number("42"),
		"string": " 11 ",
		"bad":    "not a number",
	}
	for key, want := range map[string]int64{"float": 7, "int": 3, "number": 42, "string": 11} {
		got, ok := int64Param(params, key)
		if !ok || got != want {
			t.Errorf("int64Param(%q) = %d, %v; want %d, true", key, got, ok, want)
		}
	}
	if _, ok := int64Param(params, "bad"); ok {
		t.Error("int64Param accepted non-numeric string")
	}
	if _, ok := int64Param(params, "missing"); ok {
		t.Error("int64Param accepted missing key")
	}
}

func TestFloatParamCoercion(t *testing.T) {
	params := map[string]any{
		"float":  12.5,
		"number": json.Number("99.9"),
		"string": "150.25",
		"empty":  "",
	}
	for key, want := range map[string]float64{"float": 12.5, "number": 99.9, "string": 150.25} {
		got, ok := floatParam(params, key)
		if !ok || got != want {
			t.Errorf("floatParam(%q) = %v, %v; want %v, true", key, got, ok, want)
		}
	}
	if _, ok := floatParam(params, "empty"); ok {
		t.Error("floatParam accepted empty string")
	}
}

func TestOptionalStringDistinguishesAbsent(t *testing.T) {
	params := map[string]any{"present": "value", "blank": "  "}
	if got := optionalString(params, "present"); got == nil || *got != "value" {
		t.Errorf("optionalString(present) = %v", got)
	}
	if got := optionalString(params, "blank"); got != nil {
		t.Errorf("optionalString(blank) = %v, want nil", got)
	}
	if got := optionalString(params, "absent"); got != nil {
		t.Errorf("optionalString(absent) = %v, want nil", got)
	}
}

func TestObjectSchemaShape(t *testing.T) {
	raw := objectSchema(map[string]any{
		"name": strProp("The name."),
	}, "name")
	var schema map[string]any
	if err := json.Unmarshal([]byte(raw), &schema); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if schema["type"] != "object" {
		t.Fatalf("type = %v", schema["type"])
	}
	required, ok := schema["required"].([]any)
	if !ok || len(required) != 1 || required[0] != "name" {
		t.Fatalf("required = %v", schema["required"])
	}
}
