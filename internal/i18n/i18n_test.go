package i18n

import (
	"testing"
)

func TestT(t *testing.T) {
	tr := MustNew(English)

	tests := []struct {
		lang Language
		key  string
		want string
	}{
		{English, "menu.stories", "Stories"},
		{Spanish, "menu.stories", "Historias"},
		{Spanish, "chat_list.new_chat", "Inicia un nuevo chat en cualquier momento."},
		{English, "chat_list.empty_chat", "Oops, it looks like you don't have any saved chats."},
		{English, "chat_list.not_a_key", "chat_list.not_a_key"},
		{Spanish, "no.such.path", "no.such.path"},
		{English, "", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang)+"/"+tt.key, func(t *testing.T) {
			tr.SetLanguage(tt.lang)
			if got := tr.T(tt.key); got != tt.want {
				t.Errorf("T(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestT_FallsBackToDefaultLanguage(t *testing.T) {
	tr := MustNew(Spanish)
	tr.tables[English]["only.english"] = "English only"

	if got := tr.T("only.english"); got != "English only" {
		t.Errorf("T() = %q, want default language fallback", got)
	}
}

func TestTables_HaveSameKeys(t *testing.T) {
	tr := MustNew(English)
	for key := range tr.tables[English] {
		if _, ok := tr.tables[Spanish][key]; !ok {
			t.Errorf("es locale is missing %q", key)
		}
	}
	for key := range tr.tables[Spanish] {
		if _, ok := tr.tables[English][key]; !ok {
			t.Errorf("en locale is missing %q", key)
		}
	}
}

func TestSetLanguage_Unsupported(t *testing.T) {
	tr := MustNew(Spanish)
	tr.SetLanguage(Language("fr"))
	if tr.Language() != DefaultLanguage {
		t.Errorf("Language() = %q, want default", tr.Language())
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"en", English, true},
		{"ES", Spanish, true},
		{"es_MX.UTF-8", Spanish, true},
		{"en-GB", English, true},
		{"fr", English, false},
		{"", English, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLanguage(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseLanguage(%q) = %q, %v", tt.in, got, ok)
			}
		})
	}
}

func TestLanguage_Next(t *testing.T) {
	if English.Next() != Spanish || Spanish.Next() != English {
		t.Error("Next should alternate between en and es")
	}
	if Language("xx").Next() != DefaultLanguage {
		t.Error("unknown language should move to the default")
	}
}
