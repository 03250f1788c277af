package services

import (
	"strings"
	"testing"

	"github.com/Mesorian1996/contact-backend/models"
)

func renderSub(fields map[string]string, order []string) *models.Submission {
	return &models.Submission{Fields: fields, Order: order}
}

// TestRenderMessage_FieldOrder はfieldOrderによる並び替えを確認します
func TestRenderMessage_FieldOrder(t *testing.T) {
	sub := renderSub(map[string]string{
		"siteId":  "x",
		"message": "hello",
		"email":   "a@b.com",
		"name":    "Ann",
		"extra":   "zzz",
		"other":   "yyy",
	}, []string{"siteId", "message", "email", "name", "extra", "other"})

	site := &models.SiteConfig{FieldOrder: []string{"name", "email", "message"}}

	msg := RenderMessage(sub, site)

	// 掲載済みフィールドは指定順、未掲載は入力順のまま末尾
	want := "name: Ann\nemail: a@b.com\nmessage: hello\nextra: zzz\nother: yyy\n"
	if msg.TextBody != want {
		t.Errorf("TextBody = %q, want %q", msg.TextBody, want)
	}
}

// TestRenderMessage_SubmissionOrder はfieldOrder未設定時に入力順が保たれることを確認します
func TestRenderMessage_SubmissionOrder(t *testing.T) {
	sub := renderSub(map[string]string{
		"siteId": "x",
		"b":      "2",
		"a":      "1",
		"c":      "3",
	}, []string{"siteId", "b", "a", "c"})

	msg := RenderMessage(sub, &models.SiteConfig{})

	want := "b: 2\na: 1\nc: 3\n"
	if msg.TextBody != want {
		t.Errorf("TextBody = %q, want %q", msg.TextBody, want)
	}
}

// TestRenderMessage_ExcludesReservedAndBlank は内部フィールドと空値の除外を確認します
func TestRenderMessage_ExcludesReservedAndBlank(t *testing.T) {
	sub := renderSub(map[string]string{
		"siteId":       "x",
		"consent":      "true",
		"hp":           "",
		"captchaToken": "tok",
		"meta":         `{"ua":"x"}`,
		"name":         "Ann",
		"empty":        "   ",
	}, []string{"siteId", "consent", "hp", "captchaToken", "meta", "name", "empty"})

	msg := RenderMessage(sub, &models.SiteConfig{})

	if want := "name: Ann\n"; msg.TextBody != want {
		t.Errorf("TextBody = %q, want %q", msg.TextBody, want)
	}
	for _, banned := range []string{"consent", "captchaToken", "meta", "siteId"} {
		if strings.Contains(msg.HTMLBody, banned) {
			t.Errorf("HTMLBody contains reserved field %q", banned)
		}
	}
}

// TestRenderMessage_Escaping はHTML特殊文字のエスケープを確認します
func TestRenderMessage_Escaping(t *testing.T) {
	sub := renderSub(map[string]string{
		"siteId":  "x",
		"message": `<script>alert("x&y")</script>`,
	}, []string{"siteId", "message"})

	site := &models.SiteConfig{Labels: map[string]string{"message": "<b>Nachricht</b>"}}

	msg := RenderMessage(sub, site)

	if strings.Contains(msg.HTMLBody, "<script>") {
		t.Error("HTMLBody contains unescaped <script>")
	}
	if !strings.Contains(msg.HTMLBody, "&lt;script&gt;") {
		t.Error("HTMLBody missing escaped value")
	}
	// ラベルもエスケープされる
	if !strings.Contains(msg.HTMLBody, "&lt;b&gt;Nachricht&lt;/b&gt;") {
		t.Error("HTMLBody missing escaped label")
	}
	// テキスト本文はエスケープしない
	if !strings.Contains(msg.TextBody, `<script>alert("x&y")</script>`) {
		t.Error("TextBody should contain the raw value")
	}
}

// TestRenderMessage_Labels はラベル適用を確認します
func TestRenderMessage_Labels(t *testing.T) {
	sub := renderSub(map[string]string{
		"siteId": "x",
		"email":  "a@b.com",
	}, []string{"siteId", "email"})

	site := &models.SiteConfig{Labels: map[string]string{"email": "E-Mail"}}

	msg := RenderMessage(sub, site)

	if !strings.Contains(msg.HTMLBody, "<p><strong>E-Mail:</strong> a@b.com</p>") {
		t.Errorf("HTMLBody missing labelled row: %q", msg.HTMLBody)
	}
	if !strings.Contains(msg.TextBody, "E-Mail: a@b.com") {
		t.Errorf("TextBody missing labelled row: %q", msg.TextBody)
	}
}

// TestRenderMessage_Deterministic は同一入力で出力がバイト単位で一致することを確認します
func TestRenderMessage_Deterministic(t *testing.T) {
	sub := renderSub(map[string]string{
		"siteId":  "x",
		"name":    "Ann",
		"email":   "a@b.com",
		"message": "hello",
	}, []string{"siteId", "name", "email", "message"})

	site := &models.SiteConfig{FieldOrder: []string{"email", "name"}}

	first := RenderMessage(sub, site)
	second := RenderMessage(sub, site)

	if first.HTMLBody != second.HTMLBody {
		t.Error("HTMLBody differs between renders")
	}
	if first.TextBody != second.TextBody {
		t.Error("TextBody differs between renders")
	}
	if first.Subject != second.Subject {
		t.Error("Subject differs between renders")
	}
}

// TestRenderSubject は件名の決定と160文字への切り詰めを確認します
func TestRenderSubject(t *testing.T) {
	tests := []struct {
		name string
		site *models.SiteConfig
		want string
	}{
		{
			name: "configured subject",
			site: &models.SiteConfig{Subject: "Kontaktformular"},
			want: "Kontaktformular",
		},
		{
			name: "subject prefix",
			site: &models.SiteConfig{SubjectPrefix: "Website"},
			want: "Website Anfrage",
		},
		{
			name: "default",
			site: &models.SiteConfig{},
			want: "Neue Anfrage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderSubject(tt.site); got != tt.want {
				t.Errorf("renderSubject() = %q, want %q", got, tt.want)
			}
		})
	}

	long := &models.SiteConfig{Subject: strings.Repeat("a", 200)}
	if got := renderSubject(long); len([]rune(got)) != 160 {
		t.Errorf("truncated subject length = %d, want 160", len([]rune(got)))
	}
}
