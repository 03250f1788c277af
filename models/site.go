package models

import (
	"encoding/json"
	"fmt"
)

// EmailField は返信先として使用するフォームフィールド名です
const EmailField = "email"

// RecipientList は宛先アドレスのリストです。
// JSONでは文字列単体と配列のどちらも受け付けます。
type RecipientList []string

func (r *RecipientList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = RecipientList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("to must be a string or an array of strings")
	}
	*r = RecipientList(list)
	return nil
}

// SiteConfig は1サイト分の設定です。起動時に読み込まれ、以降は変更されません。
type SiteConfig struct {
	AllowedOrigins []string          `json:"allowedOrigins"`
	RequiredFields []string          `json:"requiredFields"`
	Labels         map[string]string `json:"labels"`
	FieldOrder     []string          `json:"fieldOrder"`
	From           string            `json:"from"`
	FromName       string            `json:"fromName"`
	To             RecipientList     `json:"to"`
	Subject        string            `json:"subject"`
	SubjectPrefix  string            `json:"subjectPrefix"`
}

// Required は必須フィールドのリストを返します。未設定の場合はemailのみ必須です。
func (c *SiteConfig) Required() []string {
	if len(c.RequiredFields) == 0 {
		return []string{EmailField}
	}
	return c.RequiredFields
}

// Label はフィールドの表示ラベルを返します。未設定の場合はフィールド名をそのまま返します。
func (c *SiteConfig) Label(field string) string {
	if label, ok := c.Labels[field]; ok && label != "" {
		return label
	}
	return field
}

// Registry はサイトキーからサイト設定への読み取り専用マッピングです
type Registry struct {
	sites map[string]*SiteConfig
}

// NewRegistry はサイト設定のマッピングからレジストリを作成します
func NewRegistry(sites map[string]*SiteConfig) *Registry {
	if sites == nil {
		sites = map[string]*SiteConfig{}
	}
	return &Registry{sites: sites}
}

// ParseRegistry はJSONからレジストリを構築します
func ParseRegistry(data []byte) (*Registry, error) {
	var sites map[string]*SiteConfig
	if err := json.Unmarshal(data, &sites); err != nil {
		return nil, fmt.Errorf("parse sites config: %w", err)
	}

	for key, site := range sites {
		if site == nil {
			return nil, fmt.Errorf("site %q: config must be an object", key)
		}
		if site.From == "" {
			return nil, fmt.Errorf("site %q: from is required", key)
		}
		if len(site.To) == 0 {
			return nil, fmt.Errorf("site %q: to is required", key)
		}
	}

	return NewRegistry(sites), nil
}

// Lookup はサイトキーに対応する設定を返します
func (r *Registry) Lookup(key string) (*SiteConfig, bool) {
	site, ok := r.sites[key]
	return site, ok
}

// Len は登録済みサイト数を返します
func (r *Registry) Len() int {
	return len(r.sites)
}
