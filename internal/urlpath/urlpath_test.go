package urlpath

import "testing"

func TestJoin(t *testing.T) {
	cases := []struct {
		prefix, path, want string
	}{
		{"/1c", "test", "/1c/test"},
		{"/1c/", "test", "/1c/test"},
		{"/1c", "/test", "/1c/test"},
		{"/1c//", "//test", "/1c/test"},
		{"/1c", "/1c/test", "/1c/test"},
		{"/1c", "", "/1c"},
		{"/", "test", "/test"},
		{"/", "", ""},
	}
	for _, tc := range cases {
		if got := Join(tc.prefix, tc.path); got != tc.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tc.prefix, tc.path, got, tc.want)
		}
	}
}

func TestJoinIdempotent(t *testing.T) {
	prefixes := []string{"/1c", "/1c/", "/", "/deep/base"}
	paths := []string{"x", "/x", "a/b", "", "/1c/x"}
	for _, p := range prefixes {
		for _, x := range paths {
			once := Join(p, x)
			if twice := Join(p, once); twice != once {
				t.Errorf("Join(%q, Join(%q, %q)) = %q, want %q", p, p, x, twice, once)
			}
		}
	}
}

func TestIsValid(t *testing.T) {
	if IsValid("") {
		t.Error("empty path reported valid")
	}
	if IsValid("a\x00b") {
		t.Error("NUL byte reported valid")
	}
	if IsValid("a\nb") {
		t.Error("control byte reported valid")
	}
	if !IsValid("/1c/test") {
		t.Error("plain path reported invalid")
	}
}

func TestIsAbsolute(t *testing.T) {
	if IsAbsolute("relative/path") {
		t.Error("relative path reported absolute")
	}
	if !IsAbsolute("/1c") {
		t.Error("absolute path not recognized")
	}
}
