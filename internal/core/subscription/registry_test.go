package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"floodaware.app/internal/core/location"
	mocks "floodaware.app/internal/mocks"
	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

var registryNow = time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)

func newRegistry(t *testing.T) (*Registry, *mocks.SubscriptionRepository) {
	repo := mocks.NewSubscriptionRepository(t)
	r, err := NewRegistry(RegistryDependencies{
		Repository: repo,
		Logger:     newQuietLogger(t),
		Clock:      clockwork.NewFakeClockAt(registryNow),
	})
	require.NoError(t, err)
	return r, repo
}

func TestRegistry_Subscribe_New(t *testing.T) {
	r, repo := newRegistry(t)

	repo.EXPECT().FindByEmail(mock.Anything, "a@b.com").
		Return(nil, errors.NewNotFoundError("subscription not found")).Once()
	repo.EXPECT().Save(mock.Anything, &ports.SubscriptionData{
		Email:     "a@b.com",
		Latitude:  4.8156,
		Longitude: 7.0498,
		Active:    true,
		CreatedAt: registryNow,
		UpdatedAt: registryNow,
	}).Return(nil).Once()

	res, err := r.Subscribe(context.Background(), "a@b.com", &location.Coordinates{Latitude: 4.8156, Longitude: 7.0498})

	require.NoError(t, err)
	assert.Equal(t, &Result{Success: true, Message: MessageSubscribed}, res)
}

func TestRegistry_Subscribe_AlreadyActive(t *testing.T) {
	r, repo := newRegistry(t)

	repo.EXPECT().FindByEmail(mock.Anything, "a@b.com").
		Return(&ports.SubscriptionData{ID: 3, Email: "a@b.com", Active: true}, nil).Once()

	res, err := r.Subscribe(context.Background(), "a@b.com", &location.Coordinates{Latitude: 1, Longitude: 1})

	require.NoError(t, err)
	assert.Equal(t, &Result{Success: false, Error: "Email already subscribed"}, res)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegistry_Subscribe_ReactivatesWithNewLocation(t *testing.T) {
	r, repo := newRegistry(t)
	existing := &ports.SubscriptionData{ID: 7, Email: "a@b.com", Latitude: 1, Longitude: 1, Active: false}

	repo.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(existing, nil).Once()
	repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(d *ports.SubscriptionData) bool {
		return d.ID == 7 && d.Active && d.Latitude == 12.0022 && d.UpdatedAt.Equal(registryNow)
	})).Return(nil).Once()

	res, err := r.Subscribe(context.Background(), "a@b.com", &location.Coordinates{Latitude: 12.0022, Longitude: 8.591})

	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestRegistry_Subscribe_RejectsAbsentCoordinates(t *testing.T) {
	r, repo := newRegistry(t)

	_, err := r.Subscribe(context.Background(), "a@b.com", nil)

	assert.True(t, errors.IsValidationError(err))
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestRegistry_Unsubscribe_Idempotent(t *testing.T) {
	r, repo := newRegistry(t)
	existing := &ports.SubscriptionData{ID: 2, Email: "a@b.com", Active: true}

	repo.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(existing, nil).Twice()
	repo.EXPECT().Update(mock.Anything, existing).Return(nil).Once()

	first, err := r.Unsubscribe(context.Background(), "a@b.com")
	require.NoError(t, err)
	second, err := r.Unsubscribe(context.Background(), "a@b.com")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.False(t, existing.Active)
}

func TestRegistry_Unsubscribe_UnknownEmail(t *testing.T) {
	r, repo := newRegistry(t)

	repo.EXPECT().FindByEmail(mock.Anything, "ghost@b.com").
		Return(nil, errors.NewNotFoundError("subscription not found")).Once()

	res, err := r.Unsubscribe(context.Background(), "ghost@b.com")

	require.NoError(t, err)
	assert.True(t, res.Success)

	_, err = r.Unsubscribe(context.Background(), "")
	assert.True(t, errors.IsValidationError(err))
}

func TestRegistry_Check(t *testing.T) {
	r, repo := newRegistry(t)

	repo.EXPECT().FindByEmail(mock.Anything, "on@b.com").
		Return(&ports.SubscriptionData{Email: "on@b.com", Active: true}, nil).Once()
	repo.EXPECT().FindByEmail(mock.Anything, "off@b.com").
		Return(&ports.SubscriptionData{Email: "off@b.com", Active: false}, nil).Once()
	repo.EXPECT().FindByEmail(mock.Anything, "none@b.com").
		Return(nil, errors.NewNotFoundError("subscription not found")).Once()
	repo.EXPECT().FindByEmail(mock.Anything, "broken@b.com").
		Return(nil, errors.NewDatabaseError("connection lost", nil)).Once()

	res, err := r.Check(context.Background(), "on@b.com")
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, err = r.Check(context.Background(), "off@b.com")
	require.NoError(t, err)
	assert.False(t, res.Success)

	res, err = r.Check(context.Background(), "none@b.com")
	require.NoError(t, err)
	assert.False(t, res.Success)

	_, err = r.Check(context.Background(), "broken@b.com")
	assert.True(t, errors.IsDatabaseError(err))
}

func TestRegistry_ActiveCount(t *testing.T) {
	r, repo := newRegistry(t)

	repo.EXPECT().CountActive(mock.Anything).Return(int64(4), nil).Once()

	count, err := r.ActiveCount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
