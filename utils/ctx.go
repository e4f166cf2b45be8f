package utils

import (
	"github.com/SARVESHYOGI/store-rating-system/pkg/authz"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

func SetIdentity(c *gin.Context, ident authz.Identity) {
	c.Set(identityKey, ident)
}

// CurrentIdentity returns the identity the auth middleware resolved
// for this request.
func CurrentIdentity(c *gin.Context) (authz.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return authz.Identity{}, false
	}
	ident, ok := v.(authz.Identity)
	return ident, ok
}
