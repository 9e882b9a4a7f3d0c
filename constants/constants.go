package constants

// セッションクッキー
const (
	AuthCookieName   = "auth_user_id"
	AuthCookieMaxAge = 86400 // 24時間
)

// 在庫僅少とみなす数量の境界
const LowStockThreshold = 10

// エラーメッセージ
const (
	ErrItemNotFound       = "Item not found"
	ErrUnexpected         = "Unexpected error"
	ErrInvalidID          = "Invalid id"
	ErrInvalidInput       = "Invalid input"
	ErrUnauthorized       = "Unauthorized"
	ErrInvalidCredentials = "Invalid username or password"
	ErrDuplicateUser      = "Username or email already taken"
	ErrDuplicateSKU       = "SKU already exists"
	ErrPasswordTooShort   = "Password must be at least 6 characters"
)
