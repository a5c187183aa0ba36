package primitive

import (
	"math/big"
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the leaf kind of a type, i.e. how a value of that type is turned
// into a single form value without looking inside it.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (not a leaf) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindBool
	KindString
	KindBytes
	KindTime
	KindDuration
	KindBigInt
	KindBigFloat
	KindBigRat
	KindPrimitiveEnum // named type over any number, boolean or string

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64, KindComplex64, KindComplex128,
		KindBigInt, KindBigFloat, KindBigRat:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindBigInt:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64, KindBigFloat:
		return true
	}
}

// IsBig reports whether k is one of the arbitrary precision number kinds.
// Those are structs, yet never looked into.
func (k KindEnum) IsBig() bool {
	switch k {
	default:
		return false
	case KindBigInt, KindBigFloat, KindBigRat:
		return true
	}
}

// IsLeaf reports whether k is a valid leaf kind.
func (k KindEnum) IsLeaf() bool {
	return k > 0 && int(k) < KindTotal
}

// FromReflectType returns the leaf kind of rtype, or zero if values of rtype
// are not leaves by themselves. Pointers are not dereferenced.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// check if true primitive type
	switch rtype {
	case reflect.TypeOf(int(0)):
		return KindInt
	case reflect.TypeOf(int8(0)):
		return KindInt8
	case reflect.TypeOf(int16(0)):
		return KindInt16
	case reflect.TypeOf(int32(0)):
		return KindInt32
	case reflect.TypeOf(int64(0)):
		return KindInt64
	case reflect.TypeOf(uint(0)):
		return KindUint
	case reflect.TypeOf(uint8(0)):
		return KindUint8
	case reflect.TypeOf(uint16(0)):
		return KindUint16
	case reflect.TypeOf(uint32(0)):
		return KindUint32
	case reflect.TypeOf(uint64(0)):
		return KindUint64
	case reflect.TypeOf(float32(0)):
		return KindFloat32
	case reflect.TypeOf(float64(0)):
		return KindFloat64
	case reflect.TypeOf(complex64(0)):
		return KindComplex64
	case reflect.TypeOf(complex128(0)):
		return KindComplex128
	case reflect.TypeOf(false):
		return KindBool
	case reflect.TypeOf(""):
		return KindString
	case reflect.TypeOf([]byte(nil)):
		return KindBytes
	case reflect.TypeOf(time.Time{}):
		return KindTime
	case reflect.TypeOf(time.Duration(0)):
		return KindDuration
	case reflect.TypeOf(big.Int{}):
		return KindBigInt
	case reflect.TypeOf(big.Float{}):
		return KindBigFloat
	case reflect.TypeOf(big.Rat{}):
		return KindBigRat
	}

	// check if it's a primitive enum type
	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.Bool, reflect.String:
		return KindPrimitiveEnum
	case reflect.Slice:
		if rtype.Elem().Kind() == reflect.Uint8 {
			return KindBytes
		}
		return 0
	}
}
