package ports

import (
	"context"

	"github.com/avelins/slotkeeper/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, member *domain.Member, schedule *domain.Schedule)
	NotifyBookingCancelled(ctx context.Context, member *domain.Member, schedule *domain.Schedule)
}
