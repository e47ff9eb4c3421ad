package order

import (
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Journey is the ordered plan of stages an order passes through.
//
// Invariant: stages[current] is in_progress, stages before it are completed and
// stages after it are pending.
type Journey struct {
	stages  []Stage
	current int
}

// NewJourney starts a journey at its first stage. The stages must be pending and
// their estimated times must not decrease.
func NewJourney(stages []Stage, now time.Time) (Journey, error) {
	if len(stages) == 0 {
		return Journey{}, errs.NewValueIsRequiredError("journey stages")
	}

	planned := make([]Stage, len(stages))
	copy(planned, stages)
	for i, s := range planned {
		if s.status != StagePending {
			return Journey{}, errs.NewValueIsInvalidErrorWithCause(
				"journey stages", fmt.Errorf("stage %d (%s) is %s, want pending", i, s.name, s.status))
		}
		if i > 0 && s.estimatedTime.Before(planned[i-1].estimatedTime) {
			return Journey{}, errs.NewValueIsInvalidErrorWithCause(
				"journey stages", fmt.Errorf("stage %d (%s) is estimated before stage %d", i, s.name, i-1))
		}
	}
	planned[0] = planned[0].start(now)

	return Journey{stages: planned}, nil
}

// RestoreJourney rebuilds a journey from storage and checks the progress invariant.
func RestoreJourney(stages []Stage, current int) (Journey, error) {
	j := Journey{stages: append([]Stage(nil), stages...), current: current}
	if err := j.validate(); err != nil {
		return Journey{}, err
	}
	return j, nil
}

func (j Journey) validate() error {
	if len(j.stages) == 0 {
		return errs.NewValueIsRequiredError("journey stages")
	}
	if j.current < 0 || j.current >= len(j.stages) {
		return errs.NewValueIsOutOfRangeError("current stage", j.current, 0, len(j.stages)-1)
	}
	for i, s := range j.stages {
		want := StagePending
		switch {
		case i < j.current:
			want = StageCompleted
		case i == j.current:
			want = StageInProgress
		}
		if s.status != want {
			return errs.NewValueIsInvalidErrorWithCause(
				"journey stages", fmt.Errorf("stage %d (%s) is %s, want %s", i, s.name, s.status, want))
		}
	}
	return nil
}

// Stages returns a copy of the stages.
func (j Journey) Stages() []Stage {
	return append([]Stage(nil), j.stages...)
}

// CurrentIndex returns the index of the in-progress stage.
func (j Journey) CurrentIndex() int {
	return j.current
}

// Current returns the in-progress stage.
func (j Journey) Current() Stage {
	return j.stages[j.current]
}

// IsAtFinal reports whether the current stage is the last one.
func (j Journey) IsAtFinal() bool {
	return j.current == len(j.stages)-1
}

// EstimatedDelivery returns the estimated time of the last stage.
func (j Journey) EstimatedDelivery() time.Time {
	return j.stages[len(j.stages)-1].estimatedTime
}

// advance completes the current stage and starts the next one. The receiver is
// left untouched when it fails.
func (j Journey) advance(now time.Time) (Journey, error) {
	if j.IsAtFinal() {
		return j, errs.NewValueIsInvalidErrorWithCause("current stage",
			fmt.Errorf("%w: stage %d of %d", ErrAlreadyFinal, j.current+1, len(j.stages)))
	}

	next := Journey{stages: j.Stages(), current: j.current + 1}
	next.stages[j.current] = next.stages[j.current].complete(now)
	next.stages[next.current] = next.stages[next.current].start(now)
	return next, nil
}

// AssignedStations references the stations chosen at planning time.
type AssignedStations struct {
	fulfillmentCenter kernel.UUID
	regionalHub       *kernel.UUID
	localStation      kernel.UUID
}

// NewAssignedStations checks that the mandatory stations are set.
func NewAssignedStations(fulfillmentCenter kernel.UUID, regionalHub *kernel.UUID, localStation kernel.UUID) (AssignedStations, error) {
	if err := fulfillmentCenter.Validate(); err != nil {
		return AssignedStations{}, errs.NewValueIsRequiredErrorWithCause("fulfillment center", err)
	}
	if err := localStation.Validate(); err != nil {
		return AssignedStations{}, errs.NewValueIsRequiredErrorWithCause("local station",
			fmt.Errorf("%w: %w", ErrNoLocalStation, err))
	}
	if regionalHub != nil {
		if err := regionalHub.Validate(); err != nil {
			return AssignedStations{}, errs.NewValueIsInvalidErrorWithCause("regional hub", err)
		}
	}

	return AssignedStations{
		fulfillmentCenter: fulfillmentCenter,
		regionalHub:       regionalHub,
		localStation:      localStation,
	}, nil
}

func (a AssignedStations) FulfillmentCenter() kernel.UUID { return a.fulfillmentCenter }
func (a AssignedStations) RegionalHub() *kernel.UUID      { return a.regionalHub }
func (a AssignedStations) LocalStation() kernel.UUID      { return a.localStation }

// StageTransition describes one successful advance.
type StageTransition struct {
	From      Stage
	To        Stage
	Index     int
	NewStatus Status
}
