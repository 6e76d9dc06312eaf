package model

import "testing"

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"en", LanguageEnglish},
		{"hi", LanguageHindi},
		{"es", LanguageSpanish},
		{"fr", LanguageFrench},
		{" FR ", LanguageFrench},
		{"xx", LanguageEnglish},
		{"", LanguageEnglish},
		{"de", LanguageEnglish},
	}

	for _, tt := range tests {
		if got := ParseLanguage(tt.in); got != tt.want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseEnvironment(t *testing.T) {
	if ParseEnvironment("production") != EnvironmentProduction {
		t.Errorf("expected production")
	}
	if ParseEnvironment("qa") != EnvironmentDevelopment {
		t.Errorf("expected unknown environment to fall back to development")
	}
	if !EnvironmentProduction.IsProduction() || EnvironmentStaging.IsProduction() {
		t.Errorf("IsProduction mismatch")
	}
}
