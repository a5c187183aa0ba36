package node_test

import (
	"fmt"
	"iter"
	"math/big"
	"net/netip"
	"reflect"
	"testing"
	"time"

	"form-flattener/format"
	"form-flattener/node"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type Gender int

const (
	Male Gender = iota
	Female
)

type Diploma struct {
	Name string
	Year int
}

type Point struct{ X, Y int }

func TestClassifyType(t *testing.T) {
	t.Parallel()

	c := node.Classifier{Formatters: format.NewRegistry()}

	tests := []struct {
		typ  reflect.Type
		want node.Class
	}{
		{typ: reflect.TypeFor[int](), want: node.ClassLeaf},
		{typ: reflect.TypeFor[*int](), want: node.ClassLeaf},
		{typ: reflect.TypeFor[**string](), want: node.ClassLeaf},
		{typ: reflect.TypeFor[Gender](), want: node.ClassLeaf},
		{typ: reflect.TypeFor[complex128](), want: node.ClassLeaf},
		{typ: reflect.TypeFor[time.Time](), want: node.ClassLeaf},
		{typ: reflect.TypeFor[*big.Int](), want: node.ClassLeaf},
		{typ: reflect.TypeFor[big.Rat](), want: node.ClassLeaf},
		{typ: reflect.TypeFor[uuid.UUID](), want: node.ClassLeaf},
		{typ: reflect.TypeFor[netip.Addr](), want: node.ClassLeaf},
		{typ: reflect.TypeFor[[]byte](), want: node.ClassLeaf},
		{typ: reflect.TypeFor[any](), want: node.ClassLeaf},
		{typ: reflect.TypeFor[[]string](), want: node.ClassOrdered},
		{typ: reflect.TypeFor[[3]Diploma](), want: node.ClassOrdered},
		{typ: reflect.TypeFor[iter.Seq[int]](), want: node.ClassOrdered},
		{typ: reflect.TypeFor[map[string]int](), want: node.ClassKeyed},
		{typ: reflect.TypeFor[*map[int]Diploma](), want: node.ClassKeyed},
		{typ: reflect.TypeFor[iter.Seq2[string, int]](), want: node.ClassKeyed},
		{typ: reflect.TypeFor[Diploma](), want: node.ClassComplex},
		{typ: reflect.TypeFor[*Diploma](), want: node.ClassComplex},
		{typ: reflect.TypeFor[chan int](), want: node.ClassInvalid},
		{typ: reflect.TypeFor[func()](), want: node.ClassInvalid},
		{typ: reflect.TypeFor[func(func(int))](), want: node.ClassInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, c.ClassifyType(tt.typ))
		})
	}
}

func TestClassifyRegisteredStruct(t *testing.T) {
	t.Parallel()

	plain := node.Classifier{}
	assert.Equal(t, node.ClassComplex, plain.ClassifyType(reflect.TypeFor[Point]()))

	b := format.NewBuilder()
	format.Register(b, func(p Point) string { return "" })
	registered := node.Classifier{Formatters: b.Build()}
	assert.Equal(t, node.ClassLeaf, registered.ClassifyType(reflect.TypeFor[Point]()))
	assert.Equal(t, node.ClassLeaf, registered.ClassifyType(reflect.TypeFor[*Point]()))

	b = format.NewBuilder()
	format.Register(b, func(p *Point) string { return "" })
	pointerOnly := node.Classifier{Formatters: b.Build()}
	assert.Equal(t, node.ClassLeaf, pointerOnly.ClassifyType(reflect.TypeFor[*Point]()))
	assert.Equal(t, node.ClassComplex, pointerOnly.ClassifyType(reflect.TypeFor[Point]()))
}

func TestClassifyElementMode(t *testing.T) {
	t.Parallel()

	anyType := reflect.TypeFor[any]()
	values := []any{[]int{1}, Diploma{}, map[string]int{}, "text"}

	declared := node.Classifier{}
	runtime := node.Classifier{Elements: node.ByRuntimeType}

	for _, v := range values {
		rv := reflect.ValueOf(&v).Elem()
		assert.Equal(t, node.ClassLeaf, declared.Classify(anyType, rv), "%T", v)
	}

	assert.Equal(t, node.ClassOrdered, runtime.Classify(anyType, reflect.ValueOf(values[0])))
	assert.Equal(t, node.ClassComplex, runtime.Classify(anyType, reflect.ValueOf(values[1])))
	assert.Equal(t, node.ClassKeyed, runtime.Classify(anyType, reflect.ValueOf(values[2])))
	assert.Equal(t, node.ClassLeaf, runtime.Classify(anyType, reflect.ValueOf(values[3])))

	// roots have no declared type
	assert.Equal(t, node.ClassComplex, declared.Classify(nil, reflect.ValueOf(&Diploma{})))
	assert.Equal(t, node.ClassInvalid, declared.Classify(nil, reflect.Value{}))
}

func TestClassifyDeclaredFormatterWins(t *testing.T) {
	t.Parallel()

	stringer := reflect.TypeFor[fmt.Stringer]()
	registry := format.NewBuilder().Register(stringer, format.Default).Build()
	value := reflect.ValueOf(Point{1, 2})

	for _, mode := range []node.ElementMode{node.ByDeclaredType, node.ByRuntimeType} {
		c := node.Classifier{Formatters: registry, Elements: mode}
		assert.Equal(t, stringer, c.EffectiveType(stringer, value), mode.String())
		assert.Equal(t, node.ClassLeaf, c.Classify(stringer, value), mode.String())
	}

	runtime := node.Classifier{Elements: node.ByRuntimeType}
	assert.Equal(t, node.ClassComplex, runtime.Classify(stringer, value))
}

func TestElemType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, reflect.TypeFor[Diploma](), node.ElemType(reflect.TypeFor[[]Diploma]()))
	assert.Equal(t, reflect.TypeFor[int](), node.ElemType(reflect.TypeFor[*[2]int]()))
	assert.Equal(t, reflect.TypeFor[*Diploma](), node.ElemType(reflect.TypeFor[map[string]*Diploma]()))
	assert.Equal(t, reflect.TypeFor[string](), node.ElemType(reflect.TypeFor[iter.Seq[string]]()))
	assert.Equal(t, reflect.TypeFor[bool](), node.ElemType(reflect.TypeFor[iter.Seq2[int, bool]]()))
	assert.Nil(t, node.ElemType(reflect.TypeFor[Diploma]()))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		ptr   *Diploma
		iface any = ptr
		m     map[string]int
		s     []int
		fn    func()
	)

	for _, v := range []reflect.Value{
		{},
		reflect.ValueOf(ptr),
		reflect.ValueOf(&iface).Elem(),
		reflect.ValueOf(m),
		reflect.ValueOf(s),
		reflect.ValueOf(fn),
		reflect.ValueOf(&ptr),
	} {
		assert.True(t, node.IsNil(v), "%v", v)
	}

	for _, v := range []any{0, "", Diploma{}, &Diploma{}, []int{}, map[string]int{}} {
		assert.False(t, node.IsNil(reflect.ValueOf(v)), "%#v", v)
	}
}

func TestIndirect(t *testing.T) {
	t.Parallel()

	d := &Diploma{Name: "MIT"}
	var iface any = &d

	got := node.Indirect(reflect.ValueOf(iface))
	assert.Equal(t, reflect.Struct, got.Kind())
	assert.Equal(t, "MIT", got.Field(0).String())

	var nilPtr *Diploma
	assert.False(t, node.Indirect(reflect.ValueOf(nilPtr)).IsValid())
}
