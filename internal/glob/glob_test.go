package glob

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		// Basic patterns
		{"*", "readme.md", true},
		{"*.md", "readme.md", true},
		{"*.md", "guide/readme.md", false},
		{"readme.md", "readme.md", true},
		{"readme.md", "other.md", false},

		// Single directory patterns
		{"notes/*", "notes/todo.md", true},
		{"notes/*", "other/todo.md", false},
		{"notes/*", "notes/a/todo.md", false},

		// Double star - prefix only
		{"docs/**", "docs/api.html", true},
		{"docs/**", "docs/api/v1.html", true},
		{"docs/**", "other/api.html", false},
		{"docs/**", "docsite/api.html", false},

		// Double star - suffix only
		{"**/*.md", "readme.md", true},
		{"**/*.md", "guide/readme.md", true},
		{"**/*.md", "a/b/c/post.md", true},
		{"**/*.md", "a/b/c/post.txt", false},
		{"**/*.md", "notes.md/image.png", false},

		// Double star - both prefix and suffix
		{"posts/**/*.md", "posts/2024/hello.md", true},
		{"posts/**/*.md", "posts/hello.md", true},
		{"posts/**/*.md", "drafts/hello.md", false},

		// Question mark
		{"v?.md", "v1.md", true},
		{"v?.md", "v10.md", false},
	}

	for _, tc := range tests {
		t.Run(tc.pattern+"_"+tc.path, func(t *testing.T) {
			got, err := Match(tc.pattern, tc.path)
			if err != nil {
				t.Fatalf("Match(%q, %q) unexpected error: %v", tc.pattern, tc.path, err)
			}
			if got != tc.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
			}
		})
	}
}

func TestMatch_InvalidPattern(t *testing.T) {
	_, err := Match("[a-", "test")
	if err == nil {
		t.Error("Match with invalid pattern should return error")
	}
}
