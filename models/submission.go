package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SiteIDField はテナントを識別するフィールド名です
const SiteIDField = "siteId"

// Submission は1件のフォーム送信を表します。リクエストの間だけ存在し、永続化されません。
type Submission struct {
	SiteID string
	Fields map[string]string
	// Order はJSONボディでのフィールド出現順です。
	// Goのmapは順序を保持しないため、描画順の決定に使用します。
	Order []string
}

// Field はフィールド値を前後の空白を除いて返します
func (s *Submission) Field(name string) string {
	return strings.TrimSpace(s.Fields[name])
}

// ParseSubmission はJSONボディをフィールド出現順を保持したまま解析します
func ParseSubmission(data []byte) (*Submission, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse submission: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parse submission: body must be a JSON object")
	}

	sub := &Submission{Fields: map[string]string{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse submission: %w", err)
		}
		key := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse submission: field %q: %w", key, err)
		}

		// 重複キーは後勝ち。出現位置は最初のものを維持します。
		if _, seen := sub.Fields[key]; !seen {
			sub.Order = append(sub.Order, key)
		}
		sub.Fields[key] = stringifyValue(raw)
	}

	// 閉じカッコまで読み切れないボディは不正とみなす
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse submission: %w", err)
	}

	sub.SiteID = sub.Field(SiteIDField)
	return sub, nil
}

// stringifyValue はJSON値を描画用の文字列に変換します。
// 文字列はそのまま、nullは空文字、それ以外はJSON表現のまま扱います。
func stringifyValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return ""
	}
	return string(bytes.TrimSpace(raw))
}
