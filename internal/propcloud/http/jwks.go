package http

import (
	"net/http"

	"github.com/aussiebroadwan/propcloud/pkg/httpx"
	"github.com/aussiebroadwan/propcloud/pkg/jwtx"
	"github.com/aussiebroadwan/propcloud/pkg/propcloudsdk"
)

// JWKSHandler publishes the session verification keys so the site's edge
// can check sessions without calling back.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set that verifies session tokens.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	propcloudsdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jwks := keys.PublicJWKS()
		resp := propcloudsdk.JWKSResponse{Keys: make([]propcloudsdk.JWK, 0, len(jwks))}
		for _, k := range jwks {
			resp.Keys = append(resp.Keys, propcloudsdk.JWK(k))
		}
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}
