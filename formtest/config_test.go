package formtest_test

import (
	"math/big"
	"reflect"
	"strings"
	"testing"

	"form-flattener/format"
	"form-flattener/formtest"
	"form-flattener/member"
	"form-flattener/node"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *formtest.Configuration
		want []string
	}{
		{
			name: "default",
			cfg:  formtest.Default,
			want: []string{"finalName", "name", "inner.value"},
		},
		{
			name: "exclude final",
			cfg:  formtest.ExcludeFinal,
			want: []string{"name", "transientName", "inner.value"},
		},
		{
			name: "include transient",
			cfg:  formtest.IncludeTransient,
			want: []string{"name", "transientName", "inner.value"},
		},
		{
			name: "include static",
			cfg:  formtest.IncludeStatic,
			want: []string{"STATIC_NAME", "name", "inner.value"},
		},
		{
			name: "everything",
			cfg:  formtest.NewBuilder().IncludeTransient(true).IncludeStatic(true).Build(),
			want: []string{"STATIC_NAME", "finalName", "name", "transientName", "inner.value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, flatten(t, newConfigurationForm(), tt.cfg).Paths())
		})
	}
}

func TestDefaultConfiguration(t *testing.T) {
	t.Parallel()

	cfg := formtest.Default
	assert.Equal(t, member.DefaultPolicy().IncludeFinal, cfg.Policy().IncludeFinal)
	assert.False(t, cfg.Policy().IncludeTransient)
	assert.False(t, cfg.Policy().IncludeStatic)
	assert.False(t, cfg.Policy().IncludeUnexported)
	assert.Equal(t, node.ByDeclaredType, cfg.Elements())
	assert.Equal(t, node.DefaultMaxDepth, cfg.MaxDepth())
	assert.NotNil(t, cfg.Logger())
	assert.Zero(t, cfg.Formatters().Len())
	assert.True(t, cfg.Formatters().HasFormatterFor(reflect.TypeFor[big.Int]()))
}

func TestFieldPredicate(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { formtest.NewBuilder().FieldPredicate(nil) })

	cfg := formtest.NewBuilder().
		IncludeTransient(true).
		FieldPredicate(func(m member.Member) bool { return strings.HasSuffix(m.Name, "Name") }).
		Build()
	assert.Equal(t, []string{"finalName", "transientName"}, flatten(t, newConfigurationForm(), cfg).Paths(),
		"the predicate is anded with the toggles")

	cfg = cfg.ToBuilder().
		FieldPredicate(func(m member.Member) bool { return !m.IsFinal() }).
		Build()
	assert.Equal(t, []string{"transientName"}, flatten(t, newConfigurationForm(), cfg).Paths(),
		"predicates accumulate")

	cfg = formtest.NewBuilder().
		FieldPredicate(func(m member.Member) bool { return m.Name == "transientName" }).
		Build()
	assert.Empty(t, flatten(t, newConfigurationForm(), cfg).Paths(),
		"a predicate cannot include an excluded member")
}

func TestIncludeUnexported(t *testing.T) {
	t.Parallel()

	type Account struct {
		Login    string `form:"login"`
		password string
	}

	form := Account{Login: "jdoe", password: "s3cr3t"}

	assert.Equal(t, []string{"login"}, flatten(t, form, nil).Paths())

	params := flatten(t, form, formtest.NewBuilder().IncludeUnexported(true).Build())
	assert.Equal(t, "s3cr3t", params.Get("password"))
}

func TestBuilderFormatters(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { formtest.NewBuilder().Register(reflect.TypeFor[int](), nil) })
	assert.Panics(t, func() { formtest.NewBuilder().Register(nil, format.Default) })
	assert.Panics(t, func() { formtest.NewBuilder().Register(reflect.TypeFor[int](), format.Func(nil)) })

	b := formtest.NewBuilder()
	require.ErrorIs(t, b.RegisterFunc(42), format.ErrFormatterIsNotAFunction)
	require.ErrorIs(t, b.RegisterFunc(func(int) int { return 0 }), format.ErrNotAFormatter)
	require.NoError(t, b.RegisterFunc(func(g Gender) string { return strings.ToLower(g.String()) }))
	b.Register(reflect.TypeFor[*big.Float](), format.Of(func(f *big.Float) string { return f.Text('e', 2) }))

	cfg := b.Build()
	assert.Equal(t, 2, cfg.Formatters().Len())
	assert.True(t, cfg.Formatters().HasCustomFormatterFor(reflect.TypeFor[Gender]()))

	params := flatten(t, &AddUserForm{Gender: ptr(Female), IdentificationNumber: big.NewFloat(1234)}, cfg)
	assert.Equal(t, "female", params.Get("gender"))
	assert.Equal(t, "1.23e+03", params.Get("identificationNumber"))

	noDefaults := formtest.NewBuilder().FormatterDefaults(false).Build()
	assert.False(t, noDefaults.Formatters().HasFormatterFor(reflect.TypeFor[big.Float]()))
	params = flatten(t, &AddUserForm{IdentificationNumber: big.NewFloat(10)}, noDefaults)
	assert.Equal(t, "10", params.Get("identificationNumber"), "text marshalers still format without defaults")
}

func TestToBuilderIsolation(t *testing.T) {
	t.Parallel()

	base := formtest.NewBuilder().IncludeStatic(true).Build()
	derived := base.ToBuilder().IncludeStatic(false).ClassifyElementsBy(node.ByRuntimeType).MaxDepth(4).Build()

	assert.True(t, base.Policy().IncludeStatic)
	assert.Equal(t, node.ByDeclaredType, base.Elements())
	assert.Equal(t, node.DefaultMaxDepth, base.MaxDepth())

	assert.False(t, derived.Policy().IncludeStatic)
	assert.Equal(t, node.ByRuntimeType, derived.Elements())
	assert.Equal(t, 4, derived.MaxDepth())

	assert.Equal(t, node.DefaultMaxDepth, formtest.NewBuilder().MaxDepth(-1).Build().MaxDepth())
}

func TestClassifyElementsBy(t *testing.T) {
	t.Parallel()

	type Survey struct {
		Answers []any `form:"answers"`
	}

	form := Survey{Answers: []any{"yes", Diploma{Name: "MSC"}}}

	declared := flatten(t, form, nil)
	assert.Equal(t, []string{"answers[0]", "answers[1]"}, declared.Paths())

	runtime := flatten(t, form, formtest.NewBuilder().ClassifyElementsBy(node.ByRuntimeType).Build())
	assert.Equal(t, []string{"answers[0]", "answers[1].name", "answers[1].date"}, runtime.Paths())
}

func TestCustomDiscoverer(t *testing.T) {
	t.Parallel()

	jsonTags := member.NewTagDiscoverer(member.WithTagKey("json"), member.WithCacheSize(0))
	cfg := formtest.NewBuilder().Discoverer(jsonTags).Build()

	type Payload struct {
		Title string `json:"title" form:"ignored"`
		Body  string `json:"body,omitempty"`
	}

	assert.Equal(t, []string{"title", "body"}, flatten(t, Payload{Title: "t", Body: "b"}, cfg).Paths())
}
