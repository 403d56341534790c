package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/gurushop/commerce-ledger/internal/domain"
)

// ComputeMembership derives the user's tier snapshot from order totals and
// account age. Pure query; nothing is written.
func (s *Service) ComputeMembership(ctx context.Context, userID uuid.UUID) (domain.MembershipSnapshot, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.MembershipSnapshot{}, err
	}

	totalSpent, err := s.orders.SumAmountByUser(ctx, userID)
	if err != nil {
		return domain.MembershipSnapshot{}, err
	}

	return s.cfg.TierPolicy.NewMembershipSnapshot(user.UserID.String(), user.CreatedAt, totalSpent, s.nowFn()), nil
}
