// Package config はアプリケーションの設定を環境変数から読み込みます。
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Settings はアプリケーションの起動時設定を保持します。
// 起動時に一度だけ読み込まれ、以降は注入によって各コンポーネントへ渡されます。
type Settings struct {
	Port           string        // HTTPサーバーのリッスンポート
	JWTSecret      string        // JWT署名用シークレット（必須）
	TokenTTL       time.Duration // アクセストークンの有効期間
	ReportCacheTTL time.Duration // 月次レポートキャッシュの有効期間
	RunMigrations  bool          // 起動時にAutoMigrateを実行するか
}

// Load は環境変数から設定を読み込みます。
// JWT_SECRETが未設定の場合はエラーを返します。
func Load() (*Settings, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	s := &Settings{
		Port:           envOr("PORT", "8080"),
		JWTSecret:      secret,
		TokenTTL:       30 * time.Minute,
		ReportCacheTTL: 60 * time.Second,
		RunMigrations:  os.Getenv("RUN_MIGRATIONS") != "false",
	}

	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return nil, errors.New("TOKEN_TTL_MINUTES must be a positive integer")
		}
		s.TokenTTL = time.Duration(minutes) * time.Minute
	}
	if v := os.Getenv("REPORT_CACHE_TTL_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds <= 0 {
			return nil, errors.New("REPORT_CACHE_TTL_SECONDS must be a positive integer")
		}
		s.ReportCacheTTL = time.Duration(seconds) * time.Second
	}

	return s, nil
}

// envOr は環境変数の値を返し、未設定の場合はフォールバック値を返します。
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
