package recording

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	supportedLanguages = []language.Tag{language.English, language.SimplifiedChinese, language.German}
	languageMatcher    = language.NewMatcher(supportedLanguages)
)

func init() {
	catalog := map[language.Tag]map[string]string{
		language.SimplifiedChinese: {
			TitleProtected:   "受保护",
			TitleUnprotected: "未保护",
			TitlePublished:   "已发布",
			TitleUnpublished: "未发布",
		},
		language.German: {
			TitleProtected:   "Geschützt",
			TitleUnprotected: "Ungeschützt",
			TitlePublished:   "Veröffentlicht",
			TitleUnpublished: "Unveröffentlicht",
		},
	}
	for tag, msgs := range catalog {
		for key, msg := range msgs {
			_ = message.SetString(tag, key, msg)
		}
	}
}

// MatchLanguage 根据 Accept-Language 选择支持的语言，默认英文
func MatchLanguage(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := languageMatcher.Match(tags...)
	return supportedLanguages[idx]
}

// Localize 翻译图标标题，未设置的图标保持不变
func Localize(items []*Recording, tag language.Tag) {
	p := message.NewPrinter(tag)
	for _, r := range items {
		if r.ProtectedIcon != nil {
			r.ProtectedIcon.IconTitle = translateTitle(p, r.ProtectedIcon.IconTitle)
		}
		if r.PublishedIcon != nil {
			r.PublishedIcon.IconTitle = translateTitle(p, r.PublishedIcon.IconTitle)
		}
	}
}

func translateTitle(p *message.Printer, title string) string {
	switch title {
	case TitleProtected:
		return p.Sprintf(TitleProtected)
	case TitleUnprotected:
		return p.Sprintf(TitleUnprotected)
	case TitlePublished:
		return p.Sprintf(TitlePublished)
	case TitleUnpublished:
		return p.Sprintf(TitleUnpublished)
	default:
		return title
	}
}
