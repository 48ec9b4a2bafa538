package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-htwidget/pkg/attrs"
	"github.com/goliatone/go-htwidget/pkg/field"
)

func TestNewSeedsNameAndID(t *testing.T) {
	f := field.New("user[email]")

	assert.Equal(t, "user[email]", f.Name())
	assert.Equal(t, "fg-user-email", f.ID())
	assert.Equal(t, `name="user[email]" id="fg-user-email"`, f.Attrs().String())
}

func TestWithIDOverridesGeneratedID(t *testing.T) {
	f := field.New("email", field.WithID("email"), field.WithAttrs(attrs.Pair{Key: "type", Value: "email"}))

	assert.Equal(t, "email", f.ID())
	assert.Equal(t, `name="email" id="email" type="email"`, f.Attrs().String())
}

func TestContextResolvesValue(t *testing.T) {
	cases := []struct {
		name   string
		field  string
		ctx    map[string]any
		want   any
		wantOK bool
	}{
		{name: "exact key", field: "email", ctx: map[string]any{"email": "a@b.com"}, want: "a@b.com", wantOK: true},
		{name: "bracket path", field: "user[email]", ctx: map[string]any{"user": map[string]any{"email": "x@y.z"}}, want: "x@y.z", wantOK: true},
		{name: "exact key beats path", field: "user[email]", ctx: map[string]any{"user[email]": "flat", "user": map[string]any{"email": "nested"}}, want: "flat", wantOK: true},
		{name: "slice index", field: "tags[1]", ctx: map[string]any{"tags": []any{"a", "b"}}, want: "b", wantOK: true},
		{name: "missing", field: "name", ctx: map[string]any{"email": "a@b.com"}, wantOK: false},
		{name: "nil context", field: "name", ctx: nil, wantOK: false},
		{name: "malformed path", field: "user[email", ctx: map[string]any{"user": map[string]any{"email": "x"}}, wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := field.New(tc.field).Context(tc.ctx)
			got, ok := f.RawValue()
			require.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFallbackReplacesAbsentValue(t *testing.T) {
	f := field.New("amount").Fallback(1)

	assert.Equal(t, 1, f.Value())

	f.Context(map[string]any{"amount": 5})
	assert.Equal(t, 5, f.Value())
}

func TestFallbackWhenConditions(t *testing.T) {
	f := field.New("status").Fallback("draft", nil, "")

	f.Context(map[string]any{"status": ""})
	assert.Equal(t, "draft", f.Value())

	f.Context(map[string]any{"status": "published"})
	assert.Equal(t, "published", f.Value())

	got, ok := f.FallbackValue()
	require.True(t, ok)
	assert.Equal(t, "draft", got)
}

func TestFallbackAppliesOnValidationFailure(t *testing.T) {
	f := field.New("code").Fallback("000")
	f.Filters().Pattern(`^\d{3}$`, "Three digits")

	f.Context(map[string]any{"code": "abc"})
	assert.Equal(t, "000", f.Value())
	assert.Equal(t, "Three digits", f.Validate())
}

func TestRequiredValidation(t *testing.T) {
	f := field.New("name")
	f.Filters().Required("Name is required!")

	f.Context(map[string]any{"name": ""})
	assert.Contains(t, f.Validate(), "required")

	f.Context(map[string]any{"name": "   "})
	assert.Equal(t, "Name is required!", f.Validate())

	f.Context(map[string]any{"name": "Ada"})
	assert.Empty(t, f.Validate())
}

func TestRequiredDefaultMessage(t *testing.T) {
	f := field.New("name")
	f.Filters().Required("")

	assert.Equal(t, field.DefaultRequiredMessage, f.Validate())
}

func TestFiltersRunInOrder(t *testing.T) {
	f := field.New("username")
	f.Filters().Required("").MinLength(3, "").MaxLength(5, "too long")
	require.Equal(t, 3, f.Filters().Len())

	f.Context(map[string]any{"username": "ab"})
	assert.Equal(t, "Must be at least 3 characters", f.Validate())

	f.Context(map[string]any{"username": "abcdefg"})
	assert.Equal(t, "too long", f.Validate())

	f.Context(map[string]any{"username": "abcd"})
	assert.Empty(t, f.Validate())
}

func TestAddErrorTakesPrecedence(t *testing.T) {
	f := field.New("email").Context(map[string]any{"email": "a@b.com"})
	f.Filters().Required("")

	f.AddError("  Email already taken ")
	assert.Equal(t, "Email already taken", f.Validate())

	f.ClearErrors()
	assert.Empty(t, f.Validate())
}

func TestSubmitFlag(t *testing.T) {
	assert.Equal(t, "name_submit", field.New("name").SubmitFlag())
	assert.Equal(t, "user_email_submit", field.New("user[email]").SubmitFlag())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, field.IsEmpty(nil))
	assert.True(t, field.IsEmpty(" "))
	assert.True(t, field.IsEmpty([]any{}))
	assert.False(t, field.IsEmpty(0))
	assert.False(t, field.IsEmpty(false))
	assert.False(t, field.IsEmpty("x"))
}

func TestAssignRoundTripsWithResolve(t *testing.T) {
	ctx := map[string]any{"user": map[string]any{"name": "Ada"}}

	require.NoError(t, field.Assign(ctx, "user[email]", "ada@example.com"))
	require.NoError(t, field.Assign(ctx, "terms", true))

	got, ok := field.Resolve(ctx, "user[email]")
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", got)
	assert.Equal(t, map[string]any{
		"user":  map[string]any{"name": "Ada", "email": "ada@example.com"},
		"terms": true,
	}, ctx)
}

func TestAssignRejectsConflicts(t *testing.T) {
	ctx := map[string]any{"user": "flat"}

	assert.Error(t, field.Assign(ctx, "user[email]", "x"))
	assert.Error(t, field.Assign(nil, "email", "x"))
	assert.Error(t, field.Assign(ctx, "user[email", "x"))
}
