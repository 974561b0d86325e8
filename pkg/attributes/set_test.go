package attributes_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ui/pkg/attributes"
	"github.com/goliatone/go-ui/pkg/safehtml"
)

func TestSetGettersAndSetters(t *testing.T) {
	set := attributes.New()

	set.SetID("myid")
	if got := set.ID(); got != "myid" {
		t.Fatalf("expected id myid, got %q", got)
	}
	set.SetID("")
	if set.Has("id") {
		t.Fatalf("expected empty id to remove the attribute")
	}

	if set.Has("random") {
		t.Fatalf("unexpected random attribute")
	}
	if got := set.Get("random", "no"); got != "no" {
		t.Fatalf("expected default, got %q", got)
	}
	set.Set("random", "test")
	if got := set.Get("random", "no"); got != "test" {
		t.Fatalf("expected test, got %q", got)
	}

	set.SetAttributes(attributes.A("test", "ran"), attributes.A("class", "test"), attributes.A("id", "four"))
	if diff := cmp.Diff([]string{"test", "class", "id"}, set.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if set.ID() != "four" {
		t.Fatalf("expected id four, got %q", set.ID())
	}

	set.AddAttributes([]attributes.Attr{attributes.A("test", "no")}, false)
	if got := set.Get("test", ""); got != "ran" {
		t.Fatalf("expected existing value to be kept, got %q", got)
	}
	set.AddAttributes([]attributes.Attr{attributes.A("test", "yes")}, true)
	if got := set.Get("test", ""); got != "yes" {
		t.Fatalf("expected overwrite, got %q", got)
	}
	set.AddAttributes([]attributes.Attr{attributes.A("test", "")}, true)
	if set.Has("test") {
		t.Fatalf("expected empty overwrite to remove the key")
	}
}

func TestSetOrRemoveEmptyValues(t *testing.T) {
	for _, value := range []any{nil, ""} {
		set := attributes.New(attributes.A("k", "v"))
		set.SetOrRemove("k", value)
		if set.Has("k") {
			t.Fatalf("SetOrRemove(%v) left the key present", value)
		}
		set.SetIgnoreEmpty("k", value)
		if set.Has("k") {
			t.Fatalf("SetIgnoreEmpty(%v) stored the key", value)
		}
	}
}

func TestClasses(t *testing.T) {
	set := attributes.New()

	set.Remove("class")
	if set.HasClass("red") {
		t.Fatalf("unexpected class red")
	}
	set.AddClass("red")
	if !set.HasClass("red") {
		t.Fatalf("expected class red")
	}
	if diff := cmp.Diff([]string{"red"}, set.Classes()); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
	set.RemoveClass("red")
	if set.HasClass("red") {
		t.Fatalf("expected red removed")
	}

	set.AddClass("red", "blue", []string{"green", "yellow"}, "orange")
	for _, token := range []string{"red", "blue", "green", "yellow", "orange"} {
		if !set.HasClass(token) {
			t.Fatalf("expected class %q", token)
		}
	}

	set.RemoveClass("yellow", []string{"blue", "green"}, "red")
	for _, token := range []string{"red", "blue", "green", "yellow"} {
		if set.HasClass(token) {
			t.Fatalf("expected class %q removed", token)
		}
	}
	if !set.HasClass("orange") {
		t.Fatalf("expected orange to remain")
	}
}

func TestClassStringAndListForms(t *testing.T) {
	set := attributes.New()

	set.AddClass("aa")
	if diff := cmp.Diff([]string{"aa"}, set.Classes()); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
	if got := set.Get("class", ""); got != "aa" {
		t.Fatalf("expected class aa, got %q", got)
	}

	set.Set("class", "xx yy")
	if diff := cmp.Diff([]string{"xx", "yy"}, set.Classes()); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
	if got := set.Get("class", ""); got != "xx yy" {
		t.Fatalf("expected class string, got %q", got)
	}

	set.AddClass("zz")
	if diff := cmp.Diff([]string{"xx", "yy", "zz"}, set.Classes()); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
	if got := set.Get("class", ""); got != "xx yy zz" {
		t.Fatalf("expected joined classes, got %q", got)
	}
}

func TestClassRoundTripIsRepresentationIndependent(t *testing.T) {
	fromString := attributes.New(attributes.A("class", "a b a c"))
	fromList := attributes.New()
	fromList.AddClass("a", "b", "c", "a")

	if fromString.String() != fromList.String() {
		t.Fatalf("serialization differs: %q vs %q", fromString.String(), fromList.String())
	}

	parsed := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(fromString.String(), ` class="`), `"`))
	if diff := cmp.Diff(fromList.Classes(), parsed); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAddRemoveClassIsIdempotent(t *testing.T) {
	set := attributes.New()
	for i := 0; i < 3; i++ {
		set.AddClass("t")
		set.AddClass("t")
		set.RemoveClass("t")
		set.RemoveClass("t")
		if set.HasClass("t") {
			t.Fatalf("iteration %d: expected class removed", i)
		}
	}
}

func TestToggleClass(t *testing.T) {
	set := attributes.New()

	steps := []struct {
		explicit []bool
		want     bool
	}{
		{want: true},
		{want: false},
		{explicit: []bool{false}, want: false},
		{want: true},
		{explicit: []bool{true}, want: true},
		{explicit: []bool{true}, want: true},
		{explicit: []bool{false}, want: false},
	}

	for i, step := range steps {
		set.ToggleClass("toggled", step.explicit...)
		if got := set.HasClass("toggled"); got != step.want {
			t.Fatalf("step %d: HasClass = %v, want %v", i, got, step.want)
		}
	}
}

func TestSerialization(t *testing.T) {
	set := attributes.New()
	set.Set("flag1", nil)
	set.Set("flag2", true)
	set.Set("flag5", 1234)
	set.Set("title", `Tom & "Jerry"`)
	set.Set("data-html", safehtml.Wrap("&amp;"))
	set.Set("ratio", 0.5)
	set.Set("off", false)

	want := ` flag1 flag2 flag5="1234" title="Tom &amp; &quot;Jerry&quot;" data-html="&amp;" ratio="0.5" off=""`
	if got := set.String(); got != want {
		t.Fatalf("unexpected serialization\nwant %s\n got %s", want, got)
	}
}

func TestOverwriteKeepsPosition(t *testing.T) {
	set := attributes.New(attributes.A("a", "1"), attributes.A("b", "2"))
	set.Set("a", "3")
	if got := set.String(); got != ` a="3" b="2"` {
		t.Fatalf("unexpected order: %q", got)
	}
}

func TestAddMapAppliesSortedKeys(t *testing.T) {
	set := attributes.New()
	set.AddMap(map[string]any{"z": "1", "a": "2", "m": nil}, false)
	if diff := cmp.Diff([]string{"a", "z"}, set.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	set := attributes.New(attributes.A("id", "x"))
	set.AddClass("a")

	clone := set.Clone()
	clone.AddClass("b")
	clone.SetID("y")

	if set.HasClass("b") || set.ID() != "x" {
		t.Fatalf("clone mutated the original: %s", set.String())
	}
}

func TestClassListCopiesAreIndependent(t *testing.T) {
	a := attributes.NewClassList("x", "y", "z")

	b := a
	b.Remove("x")
	b.Add("w")

	if diff := cmp.Diff([]string{"x", "y", "z"}, a.Tokens()); diff != "" {
		t.Fatalf("original mutated (-want +got):\n%s", diff)
	}
	if !a.Has("x") || a.Has("w") {
		t.Fatalf("original index mutated")
	}
	if diff := cmp.Diff([]string{"y", "z", "w"}, b.Tokens()); diff != "" {
		t.Fatalf("copy mismatch (-want +got):\n%s", diff)
	}

	c := a
	c.Add("v")
	if a.Has("v") || a.Len() != 3 {
		t.Fatalf("add on a copy leaked into the original")
	}
}
