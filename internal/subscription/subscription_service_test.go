package subscription

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viztube/internal/common"
	"viztube/internal/domain"
	"viztube/internal/query"
	"viztube/internal/storetest"
)

func TestSubscriptionService_Toggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSubRepo := NewMockSubscriptionRepository(ctrl)
	svc := NewSubscriptionService(mockSubRepo, query.NumericIDs{})
	ctx := context.Background()

	t.Run("self subscription is rejected before any lookup", func(t *testing.T) {
		_, err := svc.Toggle(ctx, "3", "003")
		assert.True(t, common.IsKind(err, common.KindValidation))
	})

	t.Run("channel must exist", func(t *testing.T) {
		mockSubRepo.EXPECT().UserExists(ctx, "9").Return(false, nil)
		_, err := svc.Toggle(ctx, "3", "9")
		assert.True(t, common.IsKind(err, common.KindNotFound))
	})

	t.Run("concurrent insert counts as subscribed", func(t *testing.T) {
		mockSubRepo.EXPECT().UserExists(ctx, "4").Return(true, nil)
		mockSubRepo.EXPECT().DeleteSubscription(ctx, "3", "4").Return(false, nil)
		mockSubRepo.EXPECT().CreateSubscription(ctx, "3", "4").Return(domain.ErrDuplicate)
		res, err := svc.Toggle(ctx, "3", "4")
		require.NoError(t, err)
		assert.True(t, res.IsSubscribed)
	})
}

func TestSubscriptionService_Lists(t *testing.T) {
	store := storetest.NewMemoryStore()
	svc := NewSubscriptionService(store, query.NumericIDs{})
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, domain.UserRecord{Username: "alice", Email: "a@example.com"})
	require.NoError(t, err)
	bob, err := store.CreateUser(ctx, domain.UserRecord{Username: "bob", Email: "b@example.com"})
	require.NoError(t, err)
	carol, err := store.CreateUser(ctx, domain.UserRecord{Username: "carol", Email: "c@example.com"})
	require.NoError(t, err)

	for _, sub := range []string{bob.ID, carol.ID} {
		res, err := svc.Toggle(ctx, sub, alice.ID)
		require.NoError(t, err)
		assert.True(t, res.IsSubscribed)
	}

	subs, err := svc.Subscribers(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 2)

	channels, err := svc.SubscribedChannels(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "alice", channels[0].Username)
	assert.Equal(t, int64(2), channels[0].SubscribersCount)

	res, err := svc.Toggle(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, res.IsSubscribed)

	channels, err = svc.SubscribedChannels(ctx, bob.ID)
	require.NoError(t, err)
	assert.NotNil(t, channels)
	assert.Empty(t, channels)

	_, err = svc.Subscribers(ctx, "abc")
	assert.True(t, common.IsKind(err, common.KindInvalidIdentifier))
}
