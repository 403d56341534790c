package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// TierPolicy names the spend thresholds and the anniversary rule so the
// calculator is independent of the specific numeric policy.
type TierPolicy struct {
	// Thresholds are the monotonically increasing tier boundaries.
	// Spend below Thresholds[0] is tier 0; spend at or above the last entry
	// is the maximum tier.
	Thresholds []decimal.Decimal
	// AnniversaryYears is the calendar-year horizon reported in the snapshot.
	AnniversaryYears int
}

// DefaultTierPolicy mirrors the platform's published membership bands.
func DefaultTierPolicy() TierPolicy {
	return TierPolicy{
		Thresholds: []decimal.Decimal{
			decimal.NewFromInt(20000),
			decimal.NewFromInt(40000),
			decimal.NewFromInt(70000),
			decimal.NewFromInt(100000),
		},
		AnniversaryYears: 3,
	}
}

// MaxTier is the highest tier index under this policy.
func (p TierPolicy) MaxTier() int { return len(p.Thresholds) }

// TierFor classifies total spend into an ordinal band. Boundaries are
// inclusive-lower/exclusive-upper: spend equal to a threshold belongs to the
// band above it.
func (p TierPolicy) TierFor(totalSpent decimal.Decimal) int {
	tier := 0
	for _, boundary := range p.Thresholds {
		if totalSpent.LessThan(boundary) {
			break
		}
		tier++
	}
	return tier
}

// AmountToNextTier is the positive gap to the next threshold strictly above
// totalSpent. At the maximum tier there is no further progress and the gap is
// zero, never negative.
func (p TierPolicy) AmountToNextTier(totalSpent decimal.Decimal) decimal.Decimal {
	tier := p.TierFor(totalSpent)
	if tier >= p.MaxTier() {
		return decimal.Zero
	}
	return p.Thresholds[tier].Sub(totalSpent)
}

// MembershipSnapshot is a point-in-time derived view over orders and the
// account's age. It is never persisted.
type MembershipSnapshot struct {
	UserID           string
	TotalSpent       decimal.Decimal
	Tier             int
	AmountToNextTier decimal.Decimal
	AccountAgeDays   int
	DaysToThreeYears int
	CreatedAt        time.Time
}

// NewMembershipSnapshot derives the snapshot for an account created at
// createdAt with the given cumulative spend, evaluated at now.
func (p TierPolicy) NewMembershipSnapshot(userID string, createdAt time.Time, totalSpent decimal.Decimal, now time.Time) MembershipSnapshot {
	return MembershipSnapshot{
		UserID:           userID,
		TotalSpent:       totalSpent,
		Tier:             p.TierFor(totalSpent),
		AmountToNextTier: p.AmountToNextTier(totalSpent),
		AccountAgeDays:   wholeDaysSince(createdAt, now),
		DaysToThreeYears: p.daysToAnniversary(createdAt, now),
		CreatedAt:        createdAt,
	}
}

// wholeDaysSince counts fully elapsed days between from and now.
func wholeDaysSince(from, now time.Time) int {
	if now.Before(from) {
		return 0
	}
	return int(now.Sub(from).Hours() / 24)
}

// daysToAnniversary is the ceiling of days remaining until the policy
// anniversary of createdAt. Negative once the anniversary has passed; callers
// treat that as "already past", not an error.
func (p TierPolicy) daysToAnniversary(createdAt, now time.Time) int {
	anniversary := createdAt.AddDate(p.AnniversaryYears, 0, 0)
	return int(math.Ceil(anniversary.Sub(now).Hours() / 24))
}
