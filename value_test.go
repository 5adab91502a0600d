package fdb

import "testing"

func TestValueConstructors(t *testing.T) {
	if v := IntegerValue[string](5); v.Type != ValueInteger || v.Int32 != 5 {
		t.Errorf("IntegerValue = %+v", v)
	}
	if v := TextValue[string]("hi"); v.Type != ValueText || v.Text != "hi" {
		t.Errorf("TextValue = %+v", v)
	}
	if v := BigIntValue[string](-9); v.Type != ValueBigInt || v.Int64 != -9 {
		t.Errorf("BigIntValue = %+v", v)
	}
}

func TestMapTextCarrier(t *testing.T) {
	src := TextValue[Latin1Str](Latin1Str("hello"))
	mapped := Map[Latin1Str, string](src, MapperFunc[Latin1Str, string](func(s Latin1Str) string {
		return s.Decode()
	}))
	if mapped.Type != ValueText || mapped.Text != "hello" {
		t.Errorf("Map() = %+v", mapped)
	}
}

func TestMapLeavesNonTextArmsAlone(t *testing.T) {
	src := IntegerValue[Latin1Str](7)
	mapped := Map[Latin1Str, string](src, MapperFunc[Latin1Str, string](func(s Latin1Str) string {
		t.Fatalf("MapText should not be called for a non-text value")
		return ""
	}))
	if mapped.Int32 != 7 {
		t.Errorf("Map() = %+v, want Int32 = 7", mapped)
	}
}
