package widget_test

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htwidget/pkg/attrs"
	"github.com/goliatone/go-htwidget/pkg/field"
	"github.com/goliatone/go-htwidget/pkg/widget"
)

type textBody struct {
	writable int
	readonly int
	err      error
}

func (b *textBody) RenderWritable(buf *bytes.Buffer, f *field.Field) error {
	b.writable++
	if b.err != nil {
		return b.err
	}
	a := f.Attrs().Clone()
	a.Set("value", f.Value())
	buf.WriteString("<input " + a.String() + " />")
	return nil
}

func (b *textBody) RenderReadonly(buf *bytes.Buffer, f *field.Field) error {
	b.readonly++
	if b.err != nil {
		return b.err
	}
	buf.WriteString("<span " + f.Attrs().String() + ">" + html.EscapeString(attrs.Stringify(f.Value())) + "</span>")
	return nil
}

func newText(name string) (*widget.Widget, *textBody) {
	body := &textBody{}
	return widget.New(name, body, widget.WithID(name)), body
}

func mustRender(t *testing.T, w *widget.Widget) string {
	t.Helper()
	out, err := w.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func TestRenderDefaultMarkup(t *testing.T) {
	w, _ := newText("email")
	w.Context(map[string]any{"email": "a@b.com"})

	want := strings.Join([]string{
		`<div class="widget email" style="display:block">`,
		``,
		`<input name="email" id="email" value="a@b.com" />`,
		`<div style="color:yellow;background:red" class="error">`,
		``,
		`</div>`,
		`</div>`,
	}, "\n")

	if diff := cmp.Diff(want, mustRender(t, w)); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderInnerIsContainedInRender(t *testing.T) {
	configs := []func(*widget.Widget){
		func(w *widget.Widget) {},
		func(w *widget.Widget) { w.Label("Email") },
		func(w *widget.Widget) { w.Inline(true).Readonly(true) },
		func(w *widget.Widget) { w.Required("Missing").Error(true) },
	}
	for idx, configure := range configs {
		t.Run(fmt.Sprintf("config-%d", idx), func(t *testing.T) {
			w, _ := newText("email")
			configure(w)

			full := mustRender(t, w)
			inner, err := w.RenderInner()
			if err != nil {
				t.Fatalf("render inner: %v", err)
			}
			if !strings.Contains(full, inner) {
				t.Fatalf("inner markup not contained in full render:\ninner: %s\nfull: %s", inner, full)
			}
			if !strings.HasPrefix(full, `<div class="widget email"`) || !strings.HasSuffix(full, "\n</div>") {
				t.Fatalf("wrapper missing: %s", full)
			}
		})
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	w, _ := newText("name")
	w.Label(map[string]any{"text": "Name", "inline": true}).Required("Name is required!").Error(true)

	first := mustRender(t, w)
	second := mustRender(t, w)
	if first != second {
		t.Fatalf("renders differ:\n%s\n---\n%s", first, second)
	}
	if diff := cmp.Diff(map[string]any{
		"style": map[string]any{"display": "inline-block", "margin-right": "10px"},
	}, w.LabelAttrs().Map()); diff != "" {
		t.Fatalf("render mutated label attrs (-want +got):\n%s", diff)
	}
}

func TestInlineWrapper(t *testing.T) {
	w, _ := newText("username")
	w.Inline(true)

	out := mustRender(t, w)
	if !strings.Contains(out, `<div class="widget username" style="display:inline-block;vertical-align:text-top">`) {
		t.Fatalf("expected inline wrapper, got:\n%s", out)
	}
	if !w.IsInline() {
		t.Fatalf("expected inline flag")
	}
}

func TestReadonlySelectsExactlyOneBody(t *testing.T) {
	cases := []struct {
		name         string
		readonly     bool
		wantWritable int
		wantReadonly int
		contains     string
		absent       string
	}{
		{name: "writable default", readonly: false, wantWritable: 1, contains: "<input", absent: "<span"},
		{name: "readonly", readonly: true, wantReadonly: 1, contains: "<span", absent: "<input"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := newText("email")
			w.Context(map[string]any{"email": "someuser@domain.com"}).Readonly(tc.readonly)

			out := mustRender(t, w)
			if body.writable != tc.wantWritable || body.readonly != tc.wantReadonly {
				t.Fatalf("body calls: writable=%d readonly=%d", body.writable, body.readonly)
			}
			if !strings.Contains(out, tc.contains) || strings.Contains(out, tc.absent) {
				t.Fatalf("unexpected body markup:\n%s", out)
			}
			if !strings.Contains(out, "someuser@domain.com") {
				t.Fatalf("expected value in output:\n%s", out)
			}
		})
	}
}

func TestReadonlyShowsValueAsText(t *testing.T) {
	w, _ := newText("email")
	w.Context(map[string]any{"email": "a@b.com"}).Readonly(true)

	out := mustRender(t, w)
	if !strings.Contains(out, `<span name="email" id="email">a@b.com</span>`) {
		t.Fatalf("expected span with value text, got:\n%s", out)
	}
}

func TestLabelOmittedWhenEmpty(t *testing.T) {
	w, _ := newText("product_name")
	if out := mustRender(t, w); strings.Contains(out, "<label") {
		t.Fatalf("expected no label element, got:\n%s", out)
	}

	w.Label("Product Name").Label("")
	if out := mustRender(t, w); strings.Contains(out, "<label") {
		t.Fatalf("expected label removed after empty text, got:\n%s", out)
	}
}

func TestLabelText(t *testing.T) {
	w, _ := newText("product_name")
	w.Label("Product Name")

	out := mustRender(t, w)
	want := `<label style="display:block" for="product_name">Product Name</label>`
	if !strings.Contains(out, want) {
		t.Fatalf("expected %s in:\n%s", want, out)
	}
}

func TestLabelAttrs(t *testing.T) {
	w, _ := newText("product_name")
	w.Label(map[string]any{"text": "Product Name", "class": "some_class"})

	out := mustRender(t, w)
	want := `<label style="display:block" class="some_class" for="product_name">Product Name</label>`
	if !strings.Contains(out, want) {
		t.Fatalf("expected %s in:\n%s", want, out)
	}
}

func TestLabelInline(t *testing.T) {
	w, _ := newText("name")
	w.Label(map[string]any{"text": "Name", "inline": true})

	out := mustRender(t, w)
	want := `<label style="display:inline-block;margin-right:10px" for="name">Name</label>`
	if !strings.Contains(out, want) {
		t.Fatalf("expected %s in:\n%s", want, out)
	}
}

func TestLabelInlineLastWriteWins(t *testing.T) {
	w, _ := newText("name")
	w.Label(map[string]any{"inline": false})
	w.Label(map[string]any{"inline": true})

	got := w.LabelAttrs().Map()
	want := map[string]any{"style": map[string]any{"display": "inline-block", "margin-right": "10px"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("label attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelInlineFalseKeepsStaleMargin(t *testing.T) {
	w, _ := newText("name")
	w.Label(map[string]any{"inline": true})
	w.Label(map[string]any{"inline": false})

	got := w.LabelAttrs().Map()
	want := map[string]any{"style": map[string]any{"display": "block", "margin-right": "10px"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("label attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelStyleMergesLeafByLeaf(t *testing.T) {
	w, _ := newText("name")
	w.Label(map[string]any{"style": map[string]any{"color": "blue"}})
	w.Label(attrs.Pairs{
		{Key: "style", Value: map[string]string{"font-weight": "bold"}},
		{Key: "title", Value: "Your name"},
	})

	want := map[string]any{
		"style": map[string]any{"display": "block", "color": "blue", "font-weight": "bold"},
		"title": "Your name",
	}
	if diff := cmp.Diff(want, w.LabelAttrs().Map()); diff != "" {
		t.Fatalf("label attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelPairsOrderControlsConflicts(t *testing.T) {
	w, _ := newText("name")
	w.Label(attrs.Pairs{
		{Key: "style", Value: attrs.Pairs{{Key: "display", Value: "flex"}}},
		{Key: "inline", Value: true},
	})

	style, _ := w.LabelAttrs().Get("style")
	if got := attrs.Stringify(style); got != "display:inline-block;margin-right:10px" {
		t.Fatalf("unexpected style %q", got)
	}
}

func TestLabelIgnoresUnsupportedInput(t *testing.T) {
	for _, input := range []any{nil, 42, true, []string{"x"}} {
		w, _ := newText("name")
		w.Label("Name")
		before := w.LabelAttrs().String()

		w.Label(input)

		if w.LabelText() != "Name" {
			t.Fatalf("label text changed for %T input: %q", input, w.LabelText())
		}
		if after := w.LabelAttrs().String(); after != before {
			t.Fatalf("label attrs changed for %T input: %q -> %q", input, before, after)
		}
	}
}

func TestLabelSanitizesMarkup(t *testing.T) {
	w, _ := newText("terms")
	w.Label(`I <strong>agree</strong><script>alert(1)</script>`)

	out := mustRender(t, w)
	if !strings.Contains(out, "I <strong>agree</strong></label>") {
		t.Fatalf("expected sanitized label, got:\n%s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("script survived sanitizing:\n%s", out)
	}
}

func TestLabelSanitizerCanBeDisabled(t *testing.T) {
	w := widget.New("raw", &textBody{}, widget.WithLabelSanitizer(nil))
	w.Label("<em>Raw</em> & more")

	out := mustRender(t, w)
	if !strings.Contains(out, "><em>Raw</em> & more</label>") {
		t.Fatalf("expected verbatim label, got:\n%s", out)
	}
}

func TestRequiredFieldReportsError(t *testing.T) {
	w, _ := newText("name")
	w.Required("Name is required!").Context(map[string]any{"name": ""})

	if got := w.Validate(); !strings.Contains(got, "required") {
		t.Fatalf("expected required message, got %q", got)
	}
}

func TestErrorDisplay(t *testing.T) {
	w, _ := newText("name")
	w.Required("Name is required!").Context(map[string]any{"name": ""}).Error(true)

	out := mustRender(t, w)
	want := "<div style=\"color:yellow;background:red\" class=\"error\">\nName is required!\n</div>"
	if !strings.Contains(out, want) {
		t.Fatalf("expected error region %q in:\n%s", want, out)
	}
}

func TestErrorHiddenByDefault(t *testing.T) {
	w, _ := newText("name")
	w.Required("Name is required!").Context(map[string]any{"name": ""})

	out := mustRender(t, w)
	if strings.Contains(out, "Name is required") {
		t.Fatalf("message rendered without display:\n%s", out)
	}
	if !strings.Contains(out, `class="error"`) {
		t.Fatalf("error container missing:\n%s", out)
	}
}

func TestErrorAttrs(t *testing.T) {
	w, _ := newText("name")
	w.Required("Name is required!").
		Context(map[string]any{"name": ""}).
		Error(map[string]any{"display": true, "class": "errmsg", "style": map[string]any{"padding": "5px"}})

	out := mustRender(t, w)
	for _, want := range []string{"padding:5px", `class="errmsg"`, "Name is required"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, `class="error"`) {
		t.Fatalf("default error class should not be added when class is set:\n%s", out)
	}
}

func TestErrorNilClassFallsBackToDefault(t *testing.T) {
	w, _ := newText("name")
	w.Error(map[string]any{"class": nil})

	out := mustRender(t, w)
	if !strings.Contains(out, `<div style="color:yellow;background:red" class="error">`) {
		t.Fatalf("expected default error class:\n%s", out)
	}
}

func TestLabelAttrSetIsCopied(t *testing.T) {
	w, _ := newText("name")
	data := attrs.New(attrs.Pair{Key: "a", Value: "1"})
	w.Label(map[string]any{"text": "Name", "data-x": data})
	before := mustRender(t, w)

	data.Set("b", "2")
	after := mustRender(t, w)

	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("render changed after caller mutation (-before +after):\n%s", diff)
	}
	if !strings.Contains(after, `data-x="a:1"`) {
		t.Fatalf("expected copied attribute in:\n%s", after)
	}
}

func TestErrorAttrStyleIsNotOverwritten(t *testing.T) {
	w, _ := newText("name")
	w.Required("Name is required!").
		Context(map[string]any{"name": ""}).
		Error(map[string]any{"display": true, "class": "errmsg", "style": map[string]any{"padding": "5px"}}).
		Error(map[string]any{"moreStyle": "OK"})

	out := mustRender(t, w)
	for _, want := range []string{"padding:5px", `moreStyle="OK"`, "color:yellow"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestErrorDisabling(t *testing.T) {
	w, _ := newText("name")
	w.Required("Name is required!").
		Context(map[string]any{"name": ""}).
		Error(map[string]any{"display": true, "class": "errmsg", "style": map[string]any{"padding": "5px"}}).
		Error(false)

	out := mustRender(t, w)
	for _, want := range []string{"padding:5px", "errmsg"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Name is required") {
		t.Fatalf("message rendered after Error(false):\n%s", out)
	}
	if w.ErrorDisplay() {
		t.Fatalf("expected display disabled")
	}
}

func TestErrorScalarTruthiness(t *testing.T) {
	cases := []struct {
		input any
		want  bool
	}{
		{true, true}, {false, false}, {1, true}, {0, false},
		{"1", true}, {"0", false}, {"", false}, {"yes", true},
		{nil, false}, {0.5, true},
	}
	for _, tc := range cases {
		w, _ := newText("name")
		w.Error(!tc.want)
		w.Error(tc.input)
		if got := w.ErrorDisplay(); got != tc.want {
			t.Fatalf("Error(%#v): want display %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestErrorIgnoresNonScalarInput(t *testing.T) {
	w, _ := newText("name")
	w.Error(true)
	w.Error([]string{"nope"})
	if !w.ErrorDisplay() {
		t.Fatalf("non-scalar input changed error display")
	}
}

func TestErrorHasNoInlineShorthand(t *testing.T) {
	w, _ := newText("name")
	w.Error(map[string]any{"inline": true})

	want := map[string]any{
		"style":  map[string]any{"color": "yellow", "background": "red"},
		"inline": true,
	}
	if diff := cmp.Diff(want, w.ErrorAttrs().Map()); diff != "" {
		t.Fatalf("error attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorMessageIsEscaped(t *testing.T) {
	w, _ := newText("name")
	w.Field().AddError("<b>bad</b>")
	w.Error(true)

	out := mustRender(t, w)
	if !strings.Contains(out, "&lt;b&gt;bad&lt;/b&gt;") {
		t.Fatalf("expected escaped message, got:\n%s", out)
	}
}

func TestFallback(t *testing.T) {
	w, _ := newText("amount")
	w.Fallback(1)

	out := mustRender(t, w)
	if !strings.Contains(out, `value="1"`) {
		t.Fatalf("expected fallback value, got:\n%s", out)
	}
	if got, ok := w.FallbackValue(); !ok || got != 1 {
		t.Fatalf("unexpected fallback %v (%v)", got, ok)
	}
}

func TestFallbackWhenConditions(t *testing.T) {
	w, _ := newText("status")
	w.Fallback("draft", "").Context(map[string]any{"status": ""})

	if got := w.Value(); got != "draft" {
		t.Fatalf("expected fallback for empty string, got %v", got)
	}
}

func TestBodyErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	w := widget.New("broken", &textBody{err: boom})

	if _, err := w.Render(); !errors.Is(err, boom) {
		t.Fatalf("expected body error, got %v", err)
	}
	if got := w.String(); got != "" {
		t.Fatalf("expected empty string on failure, got %q", got)
	}
}

func TestNilBody(t *testing.T) {
	w := widget.New("empty", nil)
	if _, err := w.RenderInner(); !errors.Is(err, widget.ErrNoBody) {
		t.Fatalf("expected ErrNoBody, got %v", err)
	}
}

func TestWriteTo(t *testing.T) {
	w, _ := newText("email")
	var buf bytes.Buffer
	n, err := w.WriteTo(&buf)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if int(n) != buf.Len() || buf.String() != w.String() {
		t.Fatalf("WriteTo output mismatch")
	}
}

func TestDefaultID(t *testing.T) {
	w := widget.New("user[email]", &textBody{})
	if w.ID() != "fg-user-email" {
		t.Fatalf("unexpected id %q", w.ID())
	}
	if w.SubmitFlag() != "user_email_submit" {
		t.Fatalf("unexpected submit flag %q", w.SubmitFlag())
	}
	out := mustRender(t, w)
	if !strings.Contains(out, `class="widget fg-user-email"`) {
		t.Fatalf("expected wrapper class with id, got:\n%s", out)
	}
}
