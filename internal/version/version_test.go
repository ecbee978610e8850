package version

import (
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info Info
		want string
	}{
		{info: Info{Version: "v1.2.0"}, want: "v1.2.0"},
		{info: Info{Version: "v1.2.0", Commit: "abc"}, want: "v1.2.0 (abc)"},
		{info: Info{Version: "dev", Commit: "0123456789abcdef"}, want: "dev (0123456789ab)"},
	}
	for _, tc := range tests {
		if got := tc.info.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestResolveHasVersion(t *testing.T) {
	t.Parallel()
	info := Resolve()
	if info.Version == "" || info.GoVersion == "" {
		t.Fatalf("Resolve() = %+v, want version and go version", info)
	}
	d := info.Details()
	if !strings.HasPrefix(d, "version: ") || !strings.Contains(d, "go:") {
		t.Fatalf("Details() = %q", d)
	}
}
