package dto

import "time"

// UserResp はユーザー登録成功時のレスポンスボディを表します。
// パスワードハッシュは決して含まれません。
type UserResp struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
