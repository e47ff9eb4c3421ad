package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJourney(t *testing.T) {
	t.Run("starts the first stage", func(t *testing.T) {
		j := fullJourney(t)

		assert.Equal(t, 0, j.CurrentIndex())
		assert.Equal(t, order.StageFulfillmentProcessing, j.Current().Name())
		require.NotNil(t, j.Current().StartedAt())
		assert.Equal(t, baseTime.Add(5*time.Hour), j.EstimatedDelivery())
		assertJourneyInvariant(t, &j)
	})

	t.Run("rejects empty and unordered plans", func(t *testing.T) {
		_, err := order.NewJourney(nil, baseTime)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		late, _ := order.NewStage(order.StageFulfillmentProcessing, "", "", baseTime.Add(3*time.Hour), "")
		early, _ := order.NewStage(order.StageOutForDelivery, "", "", baseTime.Add(time.Hour), "")
		_, err = order.NewJourney([]order.Stage{late, early}, baseTime)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreJourney(t *testing.T) {
	done := baseTime

	completed, _ := order.RestoreStage(order.StageFulfillmentProcessing, "", "", order.StageCompleted, baseTime, &done, &done, "")
	inProgress, _ := order.RestoreStage(order.StageLocalStationArrival, "", "", order.StageInProgress, baseTime, &done, nil, "")
	pending, _ := order.RestoreStage(order.StageOutForDelivery, "", "", order.StagePending, baseTime, nil, nil, "")

	t.Run("accepts a consistent journey", func(t *testing.T) {
		j, err := order.RestoreJourney([]order.Stage{completed, inProgress, pending}, 1)

		require.NoError(t, err)
		assertJourneyInvariant(t, &j)
	})

	t.Run("rejects inconsistent progress", func(t *testing.T) {
		testCases := []struct {
			name    string
			stages  []order.Stage
			current int
		}{
			{"current out of range", []order.Stage{completed, inProgress}, 2},
			{"two in progress", []order.Stage{inProgress, inProgress, pending}, 1},
			{"pending before current", []order.Stage{pending, inProgress}, 1},
			{"completed after current", []order.Stage{inProgress, completed}, 0},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.RestoreJourney(tc.stages, tc.current)

				require.Error(t, err)
			})
		}
	})
}

func TestStageName_OrderStatus(t *testing.T) {
	testCases := map[order.StageName]order.Status{
		order.StageRegionalTransit:       order.RegionalTransit,
		order.StageLocalStationArrival:   order.LocalStation,
		order.StageAgentAssignment:       order.WaitingForAgent,
		order.StageOutForDelivery:        order.OutForDelivery,
		order.StageFulfillmentProcessing: order.InTransit,
		"customs_check":                  order.InTransit,
	}

	for name, want := range testCases {
		assert.Equal(t, want, name.OrderStatus(), string(name))
	}
}

func TestOrder_PlanJourney(t *testing.T) {
	t.Run("moves to fulfillment processing", func(t *testing.T) {
		o := newOrder(t)
		s := stations(t)

		err := o.PlanJourney(fullJourney(t), s, baseTime)

		require.NoError(t, err)
		assert.Equal(t, order.FulfillmentProcessing, o.Status())
		assert.Equal(t, s, *o.AssignedStations())
		assertJourneyInvariant(t, o.Journey())
	})

	t.Run("rejects planning twice", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.PlanJourney(fullJourney(t), stations(t), baseTime))

		err := o.PlanJourney(fullJourney(t), stations(t), baseTime)

		require.ErrorIs(t, err, order.ErrNotReady)
	})

	t.Run("rejects planning again after a manual reset", func(t *testing.T) {
		o := newOrder(t)
		first := stations(t)
		require.NoError(t, o.PlanJourney(fullJourney(t), first, baseTime))
		_, err := o.AdvanceStage(baseTime.Add(time.Hour))
		require.NoError(t, err)
		_, err = o.UpdateStatus(order.OrderPlaced, "", baseTime.Add(2*time.Hour))
		require.NoError(t, err)

		_, err = o.RoutingCity()
		require.ErrorIs(t, err, order.ErrNotReady)

		err = o.PlanJourney(fullJourney(t), stations(t), baseTime.Add(3*time.Hour))

		require.ErrorIs(t, err, order.ErrNotReady)
		assert.Equal(t, first, *o.AssignedStations())
		assert.Equal(t, 1, o.Journey().CurrentIndex())
	})

	t.Run("assigned stations require a local station", func(t *testing.T) {
		_, err := order.NewAssignedStations(kernel.NewUUID(), nil, kernel.UUID{})

		require.ErrorIs(t, err, order.ErrNoLocalStation)
	})
}

func TestOrder_AdvanceStage(t *testing.T) {
	t.Run("walks the journey keeping the invariant", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.PlanJourney(fullJourney(t), stations(t), baseTime))

		want := []order.Status{order.RegionalTransit, order.LocalStation, order.WaitingForAgent, order.OutForDelivery}
		for i, status := range want {
			tr, err := o.AdvanceStage(baseTime.Add(time.Duration(i+1) * time.Minute))

			require.NoError(t, err)
			assert.Equal(t, status, tr.NewStatus)
			assert.Equal(t, status, o.Status())
			assert.Equal(t, i+1, tr.Index)
			assert.Equal(t, order.StageCompleted, o.Journey().Stages()[i].Status())
			assertJourneyInvariant(t, o.Journey())
		}
	})

	t.Run("fails at the final stage and leaves state unchanged", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.PlanJourney(fullJourney(t), stations(t), baseTime))
		for range 4 {
			_, err := o.AdvanceStage(baseTime)
			require.NoError(t, err)
		}
		before := o.Journey().Stages()
		history := len(o.StatusHistory())

		_, err := o.AdvanceStage(baseTime.Add(time.Hour))

		require.ErrorIs(t, err, order.ErrAlreadyFinal)
		assert.Equal(t, before, o.Journey().Stages())
		assert.Equal(t, 4, o.Journey().CurrentIndex())
		assert.Len(t, o.StatusHistory(), history)
	})

	t.Run("fails without a journey", func(t *testing.T) {
		_, err := newOrder(t).AdvanceStage(baseTime)

		require.ErrorIs(t, err, order.ErrNoJourney)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("fails while an agent holds the order", func(t *testing.T) {
		o := plannedOrder(t)
		contact, _ := order.NewAgentContact(kernel.NewUUID(), "Sam", "555")
		require.NoError(t, o.AssignAgent(contact, baseTime))

		_, err := o.AdvanceStage(baseTime)

		require.ErrorIs(t, err, order.ErrNotReady)
		assert.Equal(t, 3, o.Journey().CurrentIndex())
	})
}
