package config

import (
	"os"

	"github.com/Mesorian1996/contact-backend/logger"
	"github.com/Mesorian1996/contact-backend/models"

	"go.uber.org/zap"
)

// LoadRegistry はサイトレジストリを読み込みます。
// SITES_CONFIG（インラインJSON）を優先し、なければSITES_CONFIG_FILEのパスから読みます。
// 設定が不正・欠落の場合は空のレジストリにフォールバックします（起動は継続し、
// 全サイトがunknown siteIdとして拒否されます）。
func LoadRegistry() *models.Registry {
	data := os.Getenv("SITES_CONFIG")
	if data == "" {
		path := os.Getenv("SITES_CONFIG_FILE")
		if path == "" {
			logger.Logger.Warn("サイト設定が指定されていません（SITES_CONFIG / SITES_CONFIG_FILE）")
			return models.NewRegistry(nil)
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Logger.Error("サイト設定ファイルの読み込みに失敗しました",
				zap.String("path", path),
				zap.Error(err))
			return models.NewRegistry(nil)
		}
		data = string(raw)
	}

	registry, err := models.ParseRegistry([]byte(data))
	if err != nil {
		logger.Logger.Error("サイト設定の解析に失敗しました", zap.Error(err))
		return models.NewRegistry(nil)
	}

	logger.Logger.Info("サイト設定を読み込みました", zap.Int("sites", registry.Len()))
	return registry
}
