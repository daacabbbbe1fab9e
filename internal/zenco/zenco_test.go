package zenco

import "testing"

func TestParseBannerVersion(t *testing.T) {
	cases := []struct {
		name   string
		output string
		want   string
		ok     bool
	}{
		{"plain banner", "Zenco AI v0.1.0", "0.1.0", true},
		{"embedded in help", "Usage: zenco [options]\n\nZenco AI v1.12.3 - AI code analysis\n", "1.12.3", true},
		{"no banner", "Usage: zenco [options]", "", false},
		{"two-part version not matched", "Zenco AI v1.2", "", false},
		{"empty output", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseBannerVersion(tc.output)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ParseBannerVersion(%q) = (%q, %v), want (%q, %v)", tc.output, got, ok, tc.want, tc.ok)
			}
		})
	}
}
