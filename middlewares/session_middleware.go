package middlewares

import (
	"net/http"
	"strconv"
	"strings"

	"gin-inventory/constants"

	"github.com/gin-gonic/gin"
)

// SessionRequired はAPIルート用のゲート。クッキーの存在と形式のみを確認し、
// 値をストアと突き合わせることはしない。実際の認可は各ハンドラが
// userIDで所有者スコープをかけることで担保される。
func SessionRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookie, err := ctx.Cookie(constants.AuthCookieName)
		if err != nil || cookie == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrUnauthorized})
			return
		}

		userID, err := strconv.ParseUint(cookie, 10, 64)
		if err != nil || userID == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrUnauthorized})
			return
		}

		ctx.Set("userID", uint(userID))
		ctx.Next()
	}
}

// PageGate はブラウザ向けページのゲート。
//   - /dashboard配下はクッキーなしなら/loginへ
//   - /loginと/registerはクッキーありなら/dashboardへ
//   - それ以外は素通し
func PageGate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookie, err := ctx.Cookie(constants.AuthCookieName)
		hasCookie := err == nil && cookie != ""

		path := ctx.Request.URL.Path
		isAuthPage := strings.HasPrefix(path, "/login") || strings.HasPrefix(path, "/register")
		isDashboard := strings.HasPrefix(path, "/dashboard")

		switch {
		case isDashboard && !hasCookie:
			ctx.Redirect(http.StatusFound, "/login")
			ctx.Abort()
		case isAuthPage && hasCookie:
			ctx.Redirect(http.StatusFound, "/dashboard")
			ctx.Abort()
		default:
			ctx.Next()
		}
	}
}
