package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestGlobalFlagsRegistered(t *testing.T) {
	flags := make(map[string]*pflag.Flag)
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		flags[f.Name] = f
	})

	for _, name := range []string{"site", "registry", "config", "state", "offline", "json"} {
		if flags[name] == nil {
			t.Errorf("persistent flag --%s not registered", name)
		}
	}

	if f := flags["site"]; f != nil && f.Shorthand != "s" {
		t.Errorf("--site shorthand = %q, want %q", f.Shorthand, "s")
	}
	for _, name := range []string{"offline", "json"} {
		if f := flags[name]; f != nil && f.Value.Type() != "bool" {
			t.Errorf("--%s type = %q, want bool", name, f.Value.Type())
		}
	}
}

func TestParsePicks(t *testing.T) {
	picked, err := parsePicks("1,3", 5)
	if err != nil {
		t.Fatalf("parsePicks: %v", err)
	}
	for i := 0; i < 5; i++ {
		want := i == 0 || i == 2
		if picked[i] != want {
			t.Errorf("picked[%d] = %v, want %v", i, picked[i], want)
		}
	}

	if _, err := parsePicks("0", 3); err == nil {
		t.Fatal("expected out-of-range error for 0")
	}
	if _, err := parsePicks("4", 3); err == nil {
		t.Fatal("expected out-of-range error for 4")
	}
	if _, err := parsePicks("two", 3); err == nil {
		t.Fatal("expected parse error")
	}

	picked, err = parsePicks(" 2 , ,2 ", 3)
	if err != nil {
		t.Fatalf("parsePicks with spaces: %v", err)
	}
	if !picked[1] || picked[0] || picked[2] {
		t.Fatalf("picked = %v", picked)
	}
}

func TestIsURLSource(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"https://example.com/registry", true},
		{"http://localhost:8080/registry", true},
		{"/path/to/registry.json", false},
		{"registry.yaml", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isURLSource(tt.source); got != tt.want {
			t.Errorf("isURLSource(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}
