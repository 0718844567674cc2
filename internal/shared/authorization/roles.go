package authorization

// Tier is the access level a request is granted by its X-TOKEN header.
type Tier string

const (
	TierRejected Tier = ""
	TierUser     Tier = "user"
	TierAdmin    Tier = "admin"
)

func (t Tier) String() string {
	if t == TierRejected {
		return "rejected"
	}
	return string(t)
}

func (t Tier) IsValid() bool {
	return t == TierAdmin || t == TierUser
}

func (t Tier) IsAdmin() bool {
	return t == TierAdmin
}
