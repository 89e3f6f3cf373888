package diff

import (
	"strings"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		want    []string
		notWant []string
		empty   bool
	}{
		{
			name:  "identical",
			old:   "a\nb\n",
			new:   "a\nb\n",
			want:  []string{"  a", "  b"},
			empty: true,
		},
		{
			name: "changed line",
			old:  "title\n你好World\n",
			new:  "title\n你好 World\n",
			want: []string{"  title", "- 你好World", "+ 你好 World"},
		},
		{
			name:    "long equal section collapsed",
			old:     "1\n2\n3\n4\n5\n6\n7\n8\nold\n",
			new:     "1\n2\n3\n4\n5\n6\n7\n8\nnew\n",
			want:    []string{"  1", "  ...", "  8", "- old", "+ new"},
			notWant: []string{"  4\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Compute(tt.old, tt.new, "a", "b")
			for _, w := range tt.want {
				if !strings.Contains(r.Diff, w) {
					t.Errorf("Compute() diff missing %q:\n%s", w, r.Diff)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(r.Diff, w) {
					t.Errorf("Compute() diff contains %q:\n%s", w, r.Diff)
				}
			}
			if tt.empty && (strings.Contains(r.Diff, "- ") || strings.Contains(r.Diff, "+ ")) {
				t.Errorf("Compute() of identical input has changes:\n%s", r.Diff)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	r := Compute("x\n", "y\n", "old.md", "new.md")

	plain := r.Format(false)
	if !strings.HasPrefix(plain, "--- old.md\n+++ new.md\n") {
		t.Errorf("Format(false) header = %q", plain)
	}

	coloured := r.Format(true)
	if !strings.Contains(coloured, "\033[31m- x\033[0m") {
		t.Errorf("Format(true) missing red deletion: %q", coloured)
	}
	if !strings.Contains(coloured, "\033[32m+ y\033[0m") {
		t.Errorf("Format(true) missing green insertion: %q", coloured)
	}
}
