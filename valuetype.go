package fdb

// ValueType is the 32-bit code naming a field or column's value domain.
// Gaps in the numbering (2, 7) are not valid and parse as
// UnknownValueTypeError.
type ValueType uint32

const (
	// ValueNothing is the NULL type.
	ValueNothing ValueType = 0
	// ValueInteger is a 32-bit signed integer.
	ValueInteger ValueType = 1
	// ValueFloat is a 32-bit IEEE-754 float.
	ValueFloat ValueType = 3
	// ValueText is a Latin-1 string.
	ValueText ValueType = 4
	// ValueBoolean is a 32-bit boolean (any nonzero payload is true).
	ValueBoolean ValueType = 5
	// ValueBigInt is a 64-bit signed integer, stored indirectly.
	ValueBigInt ValueType = 6
	// ValueVarChar is a Latin-1 string sharing TEXT's representation,
	// distinguished only by its tag.
	ValueVarChar ValueType = 8
)

// ParseValueType validates a raw 32-bit code against the enumeration.
func ParseValueType(code uint32) (ValueType, error) {
	switch ValueType(code) {
	case ValueNothing, ValueInteger, ValueFloat, ValueText, ValueBoolean, ValueBigInt, ValueVarChar:
		return ValueType(code), nil
	default:
		return 0, &UnknownValueTypeError{Code: code}
	}
}

// String returns the static name of the type ("NULL", "INTEGER", ...),
// distinct from its SQL declaration name.
func (t ValueType) String() string {
	switch t {
	case ValueNothing:
		return "NULL"
	case ValueInteger:
		return "INTEGER"
	case ValueFloat:
		return "FLOAT"
	case ValueText:
		return "TEXT"
	case ValueBoolean:
		return "BOOLEAN"
	case ValueBigInt:
		return "BIGINT"
	case ValueVarChar:
		return "VARCHAR"
	default:
		return "UNKNOWN"
	}
}

// ToSQLiteType returns the canonical external-backend declaration name
// for this type.
func (t ValueType) ToSQLiteType() string {
	switch t {
	case ValueNothing:
		return "BLOB_NONE"
	case ValueInteger:
		return "INT32"
	case ValueFloat:
		return "REAL"
	case ValueText:
		return "TEXT4"
	case ValueBoolean:
		return "INT_BOOL"
	case ValueBigInt:
		return "INT64"
	case ValueVarChar:
		return "TEXT_XML"
	default:
		return ""
	}
}

// ValueTypeFromSQLite guesses the ValueType for an externally-produced
// column declaration, accepting enough aliases that a schema exported
// to the external backend and re-imported round-trips.
func ValueTypeFromSQLite(decl string) (ValueType, bool) {
	switch decl {
	case "BLOB_NONE", "blob_none", "none", "NULL":
		return ValueNothing, true
	case "INT32", "int32", "TINYINT", "SMALLINT":
		return ValueInteger, true
	case "real", "REAL", "FLOAT":
		return ValueFloat, true
	case "TEXT4", "text_4", "TEXT":
		return ValueText, true
	case "BIT", "INT_BOOL", "int_bool":
		return ValueBoolean, true
	case "INT64", "int64", "BIGINT", "INTEGER":
		return ValueBigInt, true
	case "XML", "TEXT_XML", "xml", "text_8", "text_xml", "VARCHAR":
		return ValueVarChar, true
	default:
		return 0, false
	}
}
