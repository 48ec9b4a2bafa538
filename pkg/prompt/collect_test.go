package prompt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-htwidget/pkg/form"
	"github.com/goliatone/go-htwidget/pkg/prompt"
	"github.com/goliatone/go-htwidget/pkg/widget"
	"github.com/goliatone/go-htwidget/pkg/widgets"
)

type stubDriver struct {
	inputs    []string
	passwords []string
	confirms  []bool
	selects   []int
	textareas []string

	asked     []string
	defaults  []string
	validated []error
	err       error
}

func (d *stubDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.record("input:"+cfg.Message, cfg.Default)
	if d.err != nil {
		return "", d.err
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		d.validated = append(d.validated, cfg.Validator(""))
	}
	return answer, nil
}

func (d *stubDriver) Password(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.record("password:"+cfg.Message, cfg.Default)
	answer := d.passwords[0]
	d.passwords = d.passwords[1:]
	return answer, nil
}

func (d *stubDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	d.record("confirm:"+cfg.Message, "")
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *stubDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	d.record("select:"+cfg.Message, cfg.Options[cfg.DefaultIndex])
	answer := d.selects[0]
	d.selects = d.selects[1:]
	return answer, nil
}

func (d *stubDriver) TextArea(_ context.Context, cfg prompt.TextAreaConfig) (string, error) {
	d.record("textarea:"+cfg.Message, cfg.Default)
	answer := d.textareas[0]
	d.textareas = d.textareas[1:]
	return answer, nil
}

func (d *stubDriver) record(question, def string) {
	d.asked = append(d.asked, question)
	d.defaults = append(d.defaults, def)
}

func newForm(t *testing.T) *form.Form {
	t.Helper()
	f, err := form.New(
		widgets.NewText("user[name]").Label("<b>Full</b> name &amp; title").Required("Name is required"),
		widgets.NewPassword("user[password]").Label("Password"),
		widgets.NewTextarea("bio", 3),
		widgets.NewSelect("role", []widgets.Option{{Value: "admin", Label: "Admin"}, {Value: "editor", Label: "Editor"}}).Label("Role"),
		widgets.NewCheckbox("terms").Label("Accept terms"),
		widgets.NewText("plan").Readonly(true),
		widgets.NewTemplate("notes", widgets.TemplateKindTextarea),
	)
	require.NoError(t, err)
	return f
}

func TestCollectAsksEachWritableWidget(t *testing.T) {
	f := newForm(t).Context(map[string]any{
		"user": map[string]any{"name": "Ada", "password": "old"},
		"role": "editor",
		"plan": "pro",
	})
	driver := &stubDriver{
		inputs:    []string{"Ada Lovelace"},
		passwords: []string{"s3cret"},
		textareas: []string{"Mathematician", "n/a"},
		selects:   []int{0},
		confirms:  []bool{true},
	}

	values, err := prompt.Collect(context.Background(), driver, f)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"input:Full name & title",
		"password:Password",
		"textarea:bio",
		"select:Role",
		"confirm:Accept terms",
		"textarea:notes",
	}, driver.asked)
	assert.Equal(t, []string{"Ada", "", "", "Editor", "", ""}, driver.defaults)
	require.Len(t, driver.validated, 1)
	assert.EqualError(t, driver.validated[0], "Name is required")

	assert.Equal(t, map[string]any{
		"user":  map[string]any{"name": "Ada Lovelace", "password": "s3cret"},
		"bio":   "Mathematician",
		"role":  "admin",
		"terms": "1",
		"plan":  "pro",
		"notes": "n/a",
	}, values)

	f.Context(values)
	assert.True(t, f.Valid(), f.Errors())
}

func TestCollectSelectPlaceholderAndUncheckedBox(t *testing.T) {
	f, err := form.New(
		widget.New("country", widgets.Select{
			Options:     []widgets.Option{{Value: "ca", Label: "Canada"}},
			Placeholder: "Pick one",
		}),
		widgets.NewCheckbox("news"),
	)
	require.NoError(t, err)

	driver := &stubDriver{selects: []int{0}, confirms: []bool{false}}
	values, err := prompt.Collect(context.Background(), driver, f)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"country": "", "news": ""}, values)
}

func TestCollectRejectsOutOfRangeSelection(t *testing.T) {
	f, err := form.New(widgets.NewSelect("role", []widgets.Option{{Value: "a"}}))
	require.NoError(t, err)

	_, err = prompt.Collect(context.Background(), &stubDriver{selects: []int{-1}}, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt: role")
}

func TestCollectPropagatesAbort(t *testing.T) {
	f, err := form.New(widgets.NewText("name"))
	require.NoError(t, err)

	_, err = prompt.Collect(context.Background(), &stubDriver{err: prompt.ErrAborted}, f)
	require.ErrorIs(t, err, prompt.ErrAborted)
}

func TestCollectValidatesArguments(t *testing.T) {
	f, err := form.New()
	require.NoError(t, err)

	_, err = prompt.Collect(context.Background(), nil, f)
	assert.Error(t, err)
	_, err = prompt.Collect(context.Background(), &stubDriver{}, nil)
	assert.Error(t, err)
}
