package redact

import (
	"fmt"
	"strings"
	"testing"
)

type creds struct {
	user string
	pass string
}

func TestValueFormat(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{
			got:  fmt.Sprintf("%v", New(3)),
			want: "<redacted int>",
		},
		{
			got:  fmt.Sprintf("%+v", New(3)),
			want: "<redacted int>",
		},
		{
			got:  fmt.Sprintf("%#v", New(3)),
			want: "<redacted int>",
		},
		{
			got:  fmt.Sprintf("%v", New("hunter2")),
			want: "<redacted string>",
		},
		{
			got:  fmt.Sprintf("%v", New(creds{user: "u", pass: "hunter2"})),
			want: "<redacted redact.creds>",
		},
		{
			got:  fmt.Sprintf("%v", New([]byte("hunter2"))),
			want: "<redacted []uint8>",
		},
		{
			got:  fmt.Sprintf("%v", Wrap[Hidden[int]](3)),
			want: "...",
		},
		{
			got:  fmt.Sprintf("%v", Wrap[Hidden[string]]("hunter2")),
			want: "...",
		},
		{
			got:  fmt.Sprintf("%v", Wrap[Hidden[creds]](creds{user: "u", pass: "hunter2"})),
			want: "...",
		},
		{
			got:  fmt.Sprintf("%v", Wrap[Masked[string]]("hunter2")),
			want: "*******",
		},
	}

	for i, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("#%d Sprintf() = %v, want %v", i, tt.got, tt.want)
		}
	}
}

func TestValueFormatVerbs(t *testing.T) {
	w := New("hunter2")
	verbs := []string{"%v", "%+v", "%#v", "%s", "%q", "%d", "%x"}

	for i, verb := range verbs {
		got := fmt.Sprintf(verb, w)
		if got != "<redacted string>" {
			t.Errorf("#%d Sprintf(%q) = %v, want %v", i, verb, got, "<redacted string>")
		}
		if strings.Contains(got, "hunter2") {
			t.Errorf("#%d Sprintf(%q) leaked the wrapped value: %q", i, verb, got)
		}
	}

	// A pointer to the wrapper formats the same way.
	if got := fmt.Sprintf("%v", &w); got != "<redacted string>" {
		t.Errorf("Sprintf(&w) = %v, want %v", got, "<redacted string>")
	}
}

func TestValueFormatContentIndependent(t *testing.T) {
	if a, b := New("a").String(), New("b").String(); a != b {
		t.Errorf("String() depends on content: %q != %q", a, b)
	}
	if a, b := New(1).Redact(), New(1<<40).Redact(); a != b {
		t.Errorf("Redact() depends on content: %q != %q", a, b)
	}
}

func TestValueGet(t *testing.T) {
	w := New("hunter2")
	if got := w.Get(); got != "hunter2" {
		t.Errorf("Get() = %v, want %v", got, "hunter2")
	}
	// The value comes back exactly; only the wrapper hides it.
	if got := fmt.Sprintf("%q", w.Get()); got != `"hunter2"` {
		t.Errorf("Sprintf(Get()) = %v, want %v", got, `"hunter2"`)
	}

	var zero Secret[string]
	if got := zero.Get(); got != "" {
		t.Errorf("zero Get() = %q, want %q", got, "")
	}
	if got := zero.String(); got != "<redacted string>" {
		t.Errorf("zero String() = %v, want %v", got, "<redacted string>")
	}
}

func TestValuePtr(t *testing.T) {
	w := New(3)
	*w.Ptr() = 4
	if got := w.Get(); got != 4 {
		t.Errorf("Get() after Ptr write = %v, want %v", got, 4)
	}
	if got := fmt.Sprintf("%v", w); got != "<redacted int>" {
		t.Errorf("Sprintf() after Ptr write = %v, want %v", got, "<redacted int>")
	}
}

func TestValueSet(t *testing.T) {
	var w Secret[string]
	w.Set("hunter2")
	if got := w.Get(); got != "hunter2" {
		t.Errorf("Get() after Set = %v, want %v", got, "hunter2")
	}
}

func TestValueTake(t *testing.T) {
	w := New("hunter2")
	if got := w.Take(); got != "hunter2" {
		t.Errorf("Take() = %v, want %v", got, "hunter2")
	}
	if got := w.Get(); got != "" {
		t.Errorf("Get() after Take = %q, want %q", got, "")
	}
	if got := fmt.Sprintf("%v", w); got != "<redacted string>" {
		t.Errorf("Sprintf() after Take = %v, want %v", got, "<redacted string>")
	}
}

func TestValueEqual(t *testing.T) {
	a := New(3)
	b := New(3)
	if a != b {
		t.Errorf("wrappers of equal values compare unequal")
	}
	if a == New(4) {
		t.Errorf("wrappers of different values compare equal")
	}
	if a.Get() != 3 {
		t.Errorf("Get() = %v, want %v", a.Get(), 3)
	}

	// Policies play no part in Equal.
	if !Equal(a, Wrap[Hidden[int]](3)) {
		t.Errorf("Equal() across policies = false, want true")
	}
	if Equal(a, Wrap[Hidden[int]](4)) {
		t.Errorf("Equal() of different values = true, want false")
	}
}

func TestValueCompare(t *testing.T) {
	tests := []struct {
		got  int
		want int
	}{
		{
			got:  Compare(New(1), New(2)),
			want: -1,
		},
		{
			got:  Compare(New(2), New(2)),
			want: 0,
		},
		{
			got:  Compare(New(3), New(2)),
			want: 1,
		},
		{
			got:  Compare(New("a"), Wrap[Hidden[string]]("b")),
			want: -1,
		},
		{
			got:  Compare(Wrap[Masked[string]]("b"), Wrap[Hidden[string]]("b")),
			want: 0,
		},
	}

	for i, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("#%d Compare() = %v, want %v", i, tt.got, tt.want)
		}
	}
}

func TestValueMapKey(t *testing.T) {
	seen := make(map[Secret[string]]int)
	seen[New("hunter2")]++
	seen[New("hunter2")]++
	seen[New("swordfish")]++

	if len(seen) != 2 {
		t.Errorf("len(seen) = %v, want %v", len(seen), 2)
	}
	if got := seen[New("hunter2")]; got != 2 {
		t.Errorf("seen[hunter2] = %v, want %v", got, 2)
	}
}

func TestValueLogValue(t *testing.T) {
	v := New("hunter2").LogValue()
	if got := v.String(); got != "<redacted string>" {
		t.Errorf("LogValue().String() = %v, want %v", got, "<redacted string>")
	}
}

func BenchmarkValueFormat(b *testing.B) {
	b.ReportAllocs()
	w := New("hunter2")
	for i := 0; i < b.N; i++ {
		_ = fmt.Sprintf("%v", w)
	}
}

func BenchmarkValueRedact(b *testing.B) {
	b.ReportAllocs()
	w := Wrap[Hidden[string]]("hunter2")
	for i := 0; i < b.N; i++ {
		_ = w.Redact()
	}
}
