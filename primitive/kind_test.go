package primitive_test

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"testing"
	"time"

	"form-flattener/primitive"

	"github.com/stretchr/testify/assert"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(big.Int{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindString
	// KindPrimitiveEnum
	// KindPrimitiveEnum
	// KindDuration
	// KindTime
	// KindBigInt
	// KindEnum(0)
}

func TestFromReflectType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  reflect.Type
		want primitive.KindEnum
	}{
		{"nil", nil, 0},
		{"bool", reflect.TypeFor[bool](), primitive.KindBool},
		{"complex", reflect.TypeFor[complex128](), primitive.KindComplex128},
		{"bytes", reflect.TypeFor[[]byte](), primitive.KindBytes},
		{"named bytes", reflect.TypeFor[json.RawMessage](), primitive.KindBytes},
		{"big float", reflect.TypeFor[big.Float](), primitive.KindBigFloat},
		{"big rat", reflect.TypeFor[big.Rat](), primitive.KindBigRat},
		{"pointer", reflect.TypeFor[*int](), 0},
		{"slice", reflect.TypeFor[[]int](), 0},
		{"byte array", reflect.TypeFor[[4]byte](), 0},
		{"map", reflect.TypeFor[map[string]int](), 0},
		{"uintptr", reflect.TypeFor[uintptr](), primitive.KindPrimitiveEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := primitive.FromReflectType(tt.typ)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != 0, got.IsLeaf())
		})
	}
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, primitive.KindBigInt.IsNumber())
	assert.True(t, primitive.KindBigInt.IsInteger())
	assert.True(t, primitive.KindBigInt.IsBig())
	assert.True(t, primitive.KindFloat32.IsFloat())
	assert.False(t, primitive.KindString.IsNumber())
	assert.False(t, primitive.KindTime.IsBig())
	assert.False(t, primitive.KindEnum(primitive.KindTotal).IsLeaf())
}
