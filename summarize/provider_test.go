package summarize

import (
	"testing"

	"legiswatch/config"
)

func TestNewDefaultProviderSelection(t *testing.T) {
	cases := []struct {
		name   string
		cfg    config.Config
		expect string
	}{
		{"none configured", config.Config{}, ""},
		{"huggingface only", config.Config{HuggingFaceAPIKey: "hf"}, "huggingface"},
		{"cohere only", config.Config{CohereAPIKey: "co"}, "cohere"},
		{"huggingface preferred", config.Config{HuggingFaceAPIKey: "hf", CohereAPIKey: "co"}, "huggingface"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := NewDefaultProvider(tc.cfg)
			if tc.expect == "" {
				if provider != nil {
					t.Fatalf("expected nil provider, got %s", provider.Name())
				}
				return
			}
			if provider == nil {
				t.Fatal("expected a provider, got nil")
			}
			if provider.Name() != tc.expect {
				t.Errorf("expected %s, got %s", tc.expect, provider.Name())
			}
		})
	}
}
