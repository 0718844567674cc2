package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/tinytickets/tinytickets/internal/shared/authorization"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// tierModel asks whether a granted tier (sub) satisfies the tier a route
// requires (obj). Role inheritance carries admin into user.
const tierModel = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj
`

// TierEnforcer decides whether a granted tier may use a route guarded by a
// minimum tier. Policies live in memory and are fixed at startup.
type TierEnforcer struct {
	enforcer *casbin.Enforcer
	logger   logger.Interface
}

func NewTierEnforcer(log logger.Interface) (*TierEnforcer, error) {
	m, err := model.NewModelFromString(tierModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tier model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	policies := [][]string{
		{string(authorization.TierUser), string(authorization.TierUser)},
		{string(authorization.TierAdmin), string(authorization.TierAdmin)},
	}
	for _, policy := range policies {
		if _, err := enforcer.AddPolicy(policy[0], policy[1]); err != nil {
			return nil, fmt.Errorf("failed to add policy [%s, %s]: %w", policy[0], policy[1], err)
		}
	}

	// Admin implies user.
	if _, err := enforcer.AddGroupingPolicy(string(authorization.TierAdmin), string(authorization.TierUser)); err != nil {
		return nil, fmt.Errorf("failed to add tier inheritance: %w", err)
	}

	return &TierEnforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// Allows reports whether granted satisfies required.
func (e *TierEnforcer) Allows(granted, required authorization.Tier) (bool, error) {
	if !granted.IsValid() || !required.IsValid() {
		return false, nil
	}

	allowed, err := e.enforcer.Enforce(string(granted), string(required))
	if err != nil {
		e.logger.Errorw("tier check failed", "error", err, "granted", granted, "required", required)
		return false, fmt.Errorf("tier check failed: %w", err)
	}

	return allowed, nil
}
