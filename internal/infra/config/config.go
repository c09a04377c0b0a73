// internal/infra/config/config.go
package config

import "os"

// Config はアプリケーション全体の環境変数設定を保持します。
type Config struct {
	Port                     string
	FirestoreProjectID       string
	FirestoreCredentialsFile string

	// FIRESTORE_CREDENTIALS_SECRET: Secret Manager の secret ID。
	// 設定されている場合、鍵ファイルの代わりに Secret Manager から
	// サービスアカウント JSON を取得する（Cloud Run 用）。
	FirestoreCredentialsSecret string

	FirebaseProjectID string

	// AllowedOrigin はフロントの CORS オリジン。
	AllowedOrigin string
}

// Load は環境変数を読み込み Config を返します。
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "fence-calendar-dev")

	return &Config{
		Port:                       getenvDefault("PORT", "8080"),
		FirestoreProjectID:         getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile:   os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirestoreCredentialsSecret: os.Getenv("FIRESTORE_CREDENTIALS_SECRET"),
		FirebaseProjectID:          getenvDefault("FIREBASE_PROJECT_ID", defaultProject),
		AllowedOrigin:              os.Getenv("ALLOWED_ORIGIN"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
