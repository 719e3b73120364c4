package model

type LoyaltyTier string

const (
	LoyaltyTierBronze LoyaltyTier = "Bronze"
	LoyaltyTierSilver LoyaltyTier = "Silver"
	LoyaltyTierGold   LoyaltyTier = "Gold"
	LoyaltyTierVIP    LoyaltyTier = "VIP"
)

var LoyaltyTiers = []LoyaltyTier{LoyaltyTierBronze, LoyaltyTierSilver, LoyaltyTierGold, LoyaltyTierVIP}

func (t LoyaltyTier) Valid() bool { return oneOf(t, LoyaltyTiers) }

type Customer struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Phone           string      `json:"phone"`
	Email           string      `json:"email,omitempty"`
	LoyaltyTier     LoyaltyTier `json:"loyaltyTier"`
	PurchaseHistory []string    `json:"purchaseHistory"` // sale ids
}
