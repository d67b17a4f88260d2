package realtime

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type mockBroker struct {
	mock.Mock
}

func (m *mockBroker) Publish(ctx context.Context, channel string, eventType string, payload interface{}) error {
	args := m.Called(ctx, channel, eventType, payload)
	return args.Error(0)
}

func (m *mockBroker) Subscribe(ctx context.Context, channel string, handler Handler) (Subscription, error) {
	args := m.Called(ctx, channel, handler)
	sub, _ := args.Get(0).(Subscription)
	return sub, args.Error(1)
}

func (m *mockBroker) Close() error {
	return m.Called().Error(0)
}

type mockSubscription struct {
	mock.Mock
}

func (m *mockSubscription) Close() error {
	return m.Called().Error(0)
}

// SubscriptionManagerTestSuite exercises Sync diffing against a real in-memory broker
type SubscriptionManagerTestSuite struct {
	suite.Suite
	ctx     context.Context
	broker  *MemoryBroker
	rec     *recorder
	manager *SubscriptionManager
}

func (suite *SubscriptionManagerTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.broker = NewMemoryBroker()
	suite.rec = &recorder{}
	suite.manager = NewSubscriptionManager(suite.broker, suite.rec.handle)
}

func (suite *SubscriptionManagerTestSuite) TestSyncOpensAndCloses() {
	suite.Require().NoError(suite.manager.Sync(suite.ctx, []string{"a", "b"}))
	suite.Equal([]string{"a", "b"}, suite.manager.Keys())

	suite.Require().NoError(suite.manager.Sync(suite.ctx, []string{"b", "c"}))
	suite.Equal([]string{"b", "c"}, suite.manager.Keys())
	suite.Equal(0, suite.broker.Subscribers("a"))
	suite.Equal(1, suite.broker.Subscribers("b"))
	suite.Equal(1, suite.broker.Subscribers("c"))
}

func (suite *SubscriptionManagerTestSuite) TestSyncIsIdempotent() {
	suite.Require().NoError(suite.manager.Sync(suite.ctx, []string{"a", "a"}))
	suite.Require().NoError(suite.manager.Sync(suite.ctx, []string{"a"}))
	suite.Equal(1, suite.broker.Subscribers("a"))
}

func (suite *SubscriptionManagerTestSuite) TestEventsFunnelToOneHandler() {
	suite.Require().NoError(suite.manager.Sync(suite.ctx, []string{"a", "b"}))
	suite.Require().NoError(suite.broker.Publish(suite.ctx, "a", EventMessage, 1))
	suite.Require().NoError(suite.broker.Publish(suite.ctx, "b", EventNotification, 2))

	events := suite.rec.all()
	suite.Require().Len(events, 2)
	suite.Equal("a", events[0].Channel)
	suite.Equal("b", events[1].Channel)
}

func (suite *SubscriptionManagerTestSuite) TestCloseTearsDownAll() {
	suite.Require().NoError(suite.manager.Sync(suite.ctx, []string{"a", "b"}))
	suite.Require().NoError(suite.manager.Close())
	suite.Empty(suite.manager.Keys())
	suite.Equal(0, suite.broker.Subscribers("a"))

	suite.Error(suite.manager.Sync(suite.ctx, []string{"a"}))
	suite.NoError(suite.manager.Close())
}

func TestSubscriptionManagerTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionManagerTestSuite))
}

func TestSyncRetriesFailedKeys(t *testing.T) {
	ctx := context.Background()
	broker := new(mockBroker)
	sub := new(mockSubscription)
	m := NewSubscriptionManager(broker, func(Event) {})

	broker.On("Subscribe", ctx, "a", mock.Anything).Return(nil, errors.New("redis down")).Once()
	err := m.Sync(ctx, []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
	assert.Empty(t, m.Keys())

	broker.On("Subscribe", ctx, "a", mock.Anything).Return(sub, nil).Once()
	require.NoError(t, m.Sync(ctx, []string{"a"}))
	assert.Equal(t, []string{"a"}, m.Keys())

	sub.On("Close").Return(errors.New("already gone")).Once()
	err = m.Sync(ctx, nil)
	assert.Error(t, err)
	assert.Empty(t, m.Keys())

	broker.AssertExpectations(t)
	sub.AssertExpectations(t)
}
