package services

import (
	"html"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Mesorian1996/contact-backend/models"
)

// 件名の最大長（文字数）
const maxSubjectLength = 160

// 件名が未設定の場合の既定プレフィックス
const defaultSubjectPrefix = "Neue"

// reservedFields は描画対象から常に除外する内部フィールドです
var reservedFields = map[string]struct{}{
	models.SiteIDField: {},
	"consent":          {},
	"hp":               {},
	"captchaToken":     {},
	"meta":             {},
}

// RenderedMessage は送信用に描画されたメッセージです
type RenderedMessage struct {
	Subject  string
	HTMLBody string
	TextBody string
}

// RenderMessage は送信内容とサイト設定からメッセージを描画します。
// 同じ入力に対して常に同一の出力を返します。
func RenderMessage(sub *models.Submission, site *models.SiteConfig) *RenderedMessage {
	fields := orderedFields(sub, site)

	return &RenderedMessage{
		Subject:  renderSubject(site),
		HTMLBody: renderHTMLBody(sub, site, fields),
		TextBody: renderTextBody(sub, site, fields),
	}
}

// orderedFields は描画対象フィールドを表示順に並べて返します。
// fieldOrderに載っているフィールドはその位置順、載っていないフィールドは
// 入力順を維持したまま末尾に置かれます。
func orderedFields(sub *models.Submission, site *models.SiteConfig) []string {
	var candidates []string
	for _, name := range sub.Order {
		if _, reserved := reservedFields[name]; reserved {
			continue
		}
		if sub.Field(name) == "" {
			continue
		}
		candidates = append(candidates, name)
	}

	if len(site.FieldOrder) == 0 {
		return candidates
	}

	position := make(map[string]int, len(site.FieldOrder))
	for i, name := range site.FieldOrder {
		position[name] = i
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		pi, iListed := position[candidates[i]]
		pj, jListed := position[candidates[j]]
		if iListed && jListed {
			return pi < pj
		}
		// 掲載済みフィールドが未掲載フィールドより前
		return iListed && !jListed
	})

	return candidates
}

func renderHTMLBody(sub *models.Submission, site *models.SiteConfig, fields []string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n")
	b.WriteString("<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	b.WriteString("</head>\n")
	b.WriteString("<body style=\"font-family: Arial, sans-serif; line-height: 1.6; color: #333;\">\n")
	for _, name := range fields {
		b.WriteString("    <p><strong>")
		b.WriteString(html.EscapeString(site.Label(name)))
		b.WriteString(":</strong> ")
		b.WriteString(html.EscapeString(sub.Fields[name]))
		b.WriteString("</p>\n")
	}
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")
	return b.String()
}

func renderTextBody(sub *models.Submission, site *models.SiteConfig, fields []string) string {
	var b strings.Builder
	for _, name := range fields {
		b.WriteString(site.Label(name))
		b.WriteString(": ")
		b.WriteString(sub.Fields[name])
		b.WriteString("\n")
	}
	return b.String()
}

func renderSubject(site *models.SiteConfig) string {
	subject := site.Subject
	if subject == "" {
		prefix := site.SubjectPrefix
		if prefix == "" {
			prefix = defaultSubjectPrefix
		}
		subject = prefix + " Anfrage"
	}

	if utf8.RuneCountInString(subject) > maxSubjectLength {
		runes := []rune(subject)
		subject = string(runes[:maxSubjectLength])
	}
	return subject
}
