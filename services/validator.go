package services

import (
	"regexp"

	"github.com/Mesorian1996/contact-backend/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateSubmission は送信内容をサイト設定に照らして検証します。
// 検証順序: サイト存在 → Origin許可リスト → 必須フィールド → email形式。
// 必須フィールドが複数欠けている場合は宣言順で最初のものだけを報告します。
func ValidateSubmission(sub *models.Submission, origin string, registry *models.Registry) (*models.SiteConfig, *ValidationError) {
	if sub.SiteID == "" {
		return nil, ErrUnknownSite
	}

	site, ok := registry.Lookup(sub.SiteID)
	if !ok {
		return nil, ErrUnknownSite
	}

	// Originヘッダーがなければ、または許可リストが空なら、Origin検査は行わない
	if origin != "" && len(site.AllowedOrigins) > 0 && !containsString(site.AllowedOrigins, origin) {
		return nil, ErrOriginRejected
	}

	for _, field := range site.Required() {
		if sub.Field(field) == "" {
			return nil, ErrMissingField(field)
		}
	}

	if email := sub.Field(models.EmailField); email != "" && !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	return site, nil
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
