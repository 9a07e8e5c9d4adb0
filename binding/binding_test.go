package binding

import "testing"

func TestInterpolateReplacesKnownFields(t *testing.T) {
	fields := map[string]string{"name": "Alice", "phone": "123"}
	got := Interpolate("Call ${name} at ${phone}", fields)
	if got != "Call Alice at 123" {
		t.Fatalf("插值结果 %q", got)
	}
}

// 未知字段与空字段表保留原占位符。
func TestInterpolateKeepsUnknownPlaceholders(t *testing.T) {
	got := Interpolate("Hi ${nobody}", map[string]string{"name": "A"})
	if got != "Hi ${nobody}" {
		t.Fatalf("未知占位符应保留，实际 %q", got)
	}
	if got := Interpolate("Hi ${name}", nil); got != "Hi ${name}" {
		t.Fatalf("空字段表应原样返回，实际 %q", got)
	}
}

func TestInterpolateTrimsKeyWhitespace(t *testing.T) {
	got := Interpolate("${ name }", map[string]string{"name": "A"})
	if got != "A" {
		t.Fatalf("键两侧空白应被忽略，实际 %q", got)
	}
}
