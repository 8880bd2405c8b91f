package middleware

import (
	"net/http"
	"strings"

	"omgagents.ai/web/internal/httpx"
)

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) || httpx.WantsJSON(r) {
		httpx.WriteError(r.Context(), w, httpx.NewError(errorCode(code), msg, code))
		return
	}
	http.Error(w, msg, code)
}

func errorCode(status int) string {
	return strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
}
