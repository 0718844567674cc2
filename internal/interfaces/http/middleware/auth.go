package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/shared/authorization"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
	"github.com/tinytickets/tinytickets/internal/shared/utils"
)

// TokenClassifier maps request headers onto a tier.
type TokenClassifier interface {
	Classify(header http.Header) (authorization.Tier, error)
}

// TierPolicy decides whether a granted tier satisfies a required one.
type TierPolicy interface {
	Allows(granted, required authorization.Tier) (bool, error)
}

type AuthMiddleware struct {
	classifier TokenClassifier
	policy     TierPolicy
	logger     logger.Interface
}

func NewAuthMiddleware(classifier TokenClassifier, policy TierPolicy, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		classifier: classifier,
		policy:     policy,
		logger:     logger,
	}
}

// RequireTier rejects requests whose X-TOKEN does not grant at least min.
func (m *AuthMiddleware) RequireTier(min authorization.Tier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tier, err := m.classifier.Classify(c.Request.Header)
		if err != nil {
			m.logger.Warnw("request rejected",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"client_ip", c.ClientIP(),
				"error", err,
			)
			utils.AbortWithError(c, err)
			return
		}

		allowed, err := m.policy.Allows(tier, min)
		if err != nil {
			utils.AbortWithError(c, errors.NewInternalError("tier check failed").Wrap(err))
			return
		}
		if !allowed {
			m.logger.Warnw("insufficient tier",
				"path", c.Request.URL.Path,
				"granted", tier.String(),
				"required", min.String(),
			)
			utils.AbortWithError(c, errors.NewAccessDeniedError())
			return
		}

		authorization.SetTier(c, tier)
		c.Next()
	}
}
