package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus_LegalTransitions(t *testing.T) {
	cases := []struct {
		from  BookingStatus
		event BookingEvent
		want  BookingStatus
	}{
		{BookingStatusPending, EventConfirm, BookingStatusConfirmed},
		{BookingStatusPending, EventCancel, BookingStatusCancelled},
		{BookingStatusConfirmed, EventCancel, BookingStatusCancelled},
		{BookingStatusConfirmed, EventCheckIn, BookingStatusCheckedIn},
		{BookingStatusConfirmed, EventNoShow, BookingStatusNoShow},
		{BookingStatusCheckedIn, EventCheckOut, BookingStatusCompleted},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_"+string(tc.event), func(t *testing.T) {
			got, err := NextStatus(tc.from, tc.event)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNextStatus_IllegalTransitions(t *testing.T) {
	statuses := []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCheckedIn,
		BookingStatusCompleted,
		BookingStatusCancelled,
		BookingStatusNoShow,
	}
	events := []BookingEvent{EventConfirm, EventCheckIn, EventCheckOut, EventCancel, EventNoShow}

	legal := map[BookingStatus]map[BookingEvent]bool{
		BookingStatusPending:   {EventConfirm: true, EventCancel: true},
		BookingStatusConfirmed: {EventCancel: true, EventCheckIn: true, EventNoShow: true},
		BookingStatusCheckedIn: {EventCheckOut: true},
	}

	for _, from := range statuses {
		for _, ev := range events {
			if legal[from][ev] {
				continue
			}
			t.Run(string(from)+"_"+string(ev), func(t *testing.T) {
				_, err := NextStatus(from, ev)
				require.Error(t, err)

				var invalid *InvalidTransitionError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, from, invalid.Current)
				assert.Equal(t, ev, invalid.Event)
			})
		}
	}
}

func TestNextStatus_CheckInFromPendingFails(t *testing.T) {
	_, err := NextStatus(BookingStatusPending, EventCheckIn)

	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Error(), "check_in")
	assert.Contains(t, invalid.Error(), "pending")
}

func TestNextStatus_CheckOutFromConfirmedFails(t *testing.T) {
	_, err := NextStatus(BookingStatusConfirmed, EventCheckOut)

	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}

func TestNextStatus_TerminalStatesHaveNoExits(t *testing.T) {
	events := []BookingEvent{EventConfirm, EventCheckIn, EventCheckOut, EventCancel, EventNoShow}

	for _, terminal := range []BookingStatus{BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow} {
		for _, ev := range events {
			_, err := NextStatus(terminal, ev)
			assert.Error(t, err, "terminal status %s must reject %s", terminal, ev)
		}
	}
}

func TestReleasesCapacity(t *testing.T) {
	assert.True(t, BookingStatusCancelled.ReleasesCapacity())
	assert.True(t, BookingStatusNoShow.ReleasesCapacity())
	assert.False(t, BookingStatusPending.ReleasesCapacity())
	assert.False(t, BookingStatusConfirmed.ReleasesCapacity())
	assert.False(t, BookingStatusCheckedIn.ReleasesCapacity())
	assert.False(t, BookingStatusCompleted.ReleasesCapacity())
}

func TestActiveStatuses_ExcludeReleased(t *testing.T) {
	for _, s := range ActiveStatuses {
		assert.False(t, s.ReleasesCapacity())
	}
	assert.NotContains(t, ActiveStatuses, BookingStatusCancelled)
	assert.NotContains(t, ActiveStatuses, BookingStatusNoShow)
}
