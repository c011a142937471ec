package recording

import (
	"testing"

	"golang.org/x/text/language"
)

func TestMatchLanguage(t *testing.T) {
	cases := map[string]language.Tag{
		"":                        language.English,
		"zh-CN,zh;q=0.9,en;q=0.8": language.SimplifiedChinese,
		"de-DE,de;q=0.9":          language.German,
		"fr-FR":                   language.English,
		"not a language header;;": language.English,
	}
	for header, want := range cases {
		if got := MatchLanguage(header); got != want {
			t.Errorf("MatchLanguage(%q) = %s, want %s", header, got, want)
		}
	}
}

func TestLocalize(t *testing.T) {
	items := Filter([]*Recording{
		{ID: "a", Published: FlagTrue, Protected: FlagTrue},
		{ID: "b", Published: FlagFalse, Protected: FlagUnknown},
	}, true)

	Localize(items, language.SimplifiedChinese)
	if got := items[0].ProtectedIcon.IconTitle; got != "受保护" {
		t.Fatalf("protected title = %q", got)
	}
	if got := items[0].PublishedIcon.IconTitle; got != "已发布" {
		t.Fatalf("published title = %q", got)
	}
	if items[1].ProtectedIcon != nil {
		t.Fatal("unset annotation must stay unset")
	}
	if got := items[1].PublishedIcon.IconTitle; got != "未发布" {
		t.Fatalf("unpublished title = %q", got)
	}
}

func TestLocalizeEnglish(t *testing.T) {
	items := Filter([]*Recording{{ID: "a", Published: FlagTrue, Protected: FlagFalse}}, true)
	Localize(items, language.English)
	if got := items[0].ProtectedIcon.IconTitle; got != TitleUnprotected {
		t.Fatalf("protected title = %q, want %q", got, TitleUnprotected)
	}
}
