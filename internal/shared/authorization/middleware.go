package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/shared/constants"
)

// SetTier records the tier granted to the current request.
func SetTier(c *gin.Context, tier Tier) {
	c.Set(constants.ContextKeyTier, string(tier))
}

// TierFromContext returns the tier granted to the current request, or
// TierRejected when the route was not guarded.
func TierFromContext(c *gin.Context) Tier {
	tier := Tier(c.GetString(constants.ContextKeyTier))
	if !tier.IsValid() {
		return TierRejected
	}
	return tier
}
