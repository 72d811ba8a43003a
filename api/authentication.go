package api

import (
	"context"
	"net/http"
	"strings"

	errs "github.com/etalab/catalogue-api/apierrors"
	"github.com/etalab/catalogue-api/models"

	"github.com/ONSdigital/log.go/v2/log"
)

type contextKey string

const accountContextKey = contextKey("account")

// isIdentified wraps a http.HandlerFunc in another http.HandlerFunc that
// resolves the Authorization bearer token to an account. The wrapped handler
// is only called when the caller is identified; the account is available via
// getAccount.
func (api *CatalogueAPI) isIdentified(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := bearerToken(r)
		if token == "" {
			log.Warn(ctx, "request without authentication header", log.Data{"path": r.URL.Path})
			handleErrorType(ctx, errs.ErrNoAuthHeader, w)
			return
		}

		account, err := api.dataStore.Backend.GetAccountByToken(ctx, token)
		if err != nil {
			handleErrorType(ctx, err, w)
			return
		}

		handler(w, r.WithContext(context.WithValue(ctx, accountContextKey, account)))
	}
}

// getAccount returns the identified account stored on the request context,
// or nil when the request was not identified.
func getAccount(ctx context.Context) *models.Account {
	account, _ := ctx.Value(accountContextKey).(*models.Account)
	return account
}

// bearerToken extracts the token from the Authorization header. Only the
// Bearer scheme is accepted; anything else counts as no token.
func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
