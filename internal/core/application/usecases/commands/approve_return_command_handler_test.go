package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/restock"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// orderWithReturn returns a placed order of a mug (2 x 1250) and a lamp (2 x 4000)
// with a requested return for the lamp.
func orderWithReturn(t *testing.T) (*order.Order, kernel.UUID) {
	t.Helper()
	mug := newProduct(t, "Mug", 1250, 5)
	lamp := newProduct(t, "Lamp", 4000, 5)
	o := placedOrder(t, kernel.NewUUID(), address(t, "Austin", nil), mug, lamp)
	_, err := o.RequestReturn(lamp.ID(), fixtureTime)
	require.NoError(t, err)
	return o, lamp.ID()
}

func TestApproveReturnCommandHandler_Handle_ApprovesAndRestocks(t *testing.T) {
	ctx := t.Context()
	o, lampID := orderWithReturn(t)
	cmd, err := commands.NewApproveReturnCommand(o.ID(), lampID)
	require.NoError(t, err)
	taskID := restock.TaskID(o.ID(), lampID)

	approveUoW, restockUoW := new(MockUoW), new(MockUoW)
	orders, tasks, ledger := new(MockOrderRepository), new(MockRestockRepository), new(MockInventoryLedger)
	factory := new(MockUoWFactory)
	factory.On("create").Return(approveUoW).Once()
	factory.On("create").Return(restockUoW).Once()
	for _, uow := range []*MockUoW{approveUoW, restockUoW} {
		uow.On("OrderRepository").Return(orders).Maybe()
		uow.On("RestockRepository").Return(tasks).Maybe()
		uow.On("InventoryLedger").Return(ledger).Maybe()
	}

	var stored *restock.Task
	mock.InOrder(
		approveUoW.On("Begin", ctx).Return(nil).Once(),
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orders.On("Update", ctx, o).Return(nil).Once(),
		tasks.On("Add", ctx, mock.AnythingOfType("*restock.Task")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*restock.Task) }).
			Return(nil).Once(),
		approveUoW.On("Commit", ctx).Return(nil).Once(),
		approveUoW.On("Rollback", ctx).Return(nil).Once(),
		restockUoW.On("Begin", ctx).Return(nil).Once(),
		tasks.On("MarkApplied", ctx, taskID, mock.AnythingOfType("time.Time")).Return(true, nil).Once(),
		ledger.On("RestoreStock", ctx, lampID, 2).Return(nil).Once(),
		restockUoW.On("Commit", ctx).Return(nil).Once(),
		restockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	outcome, err := commands.NewApproveReturnCommandHandler(factory.Return(), zap.NewNop()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, lampID, outcome.ProductID)
	assert.Equal(t, "Lamp", outcome.ItemName)
	assert.Equal(t, 2, outcome.Quantity)
	assert.Equal(t, kernel.Money(8000), outcome.RefundAmount)
	assert.Equal(t, kernel.Money(2500), o.TotalAmount())
	require.Len(t, o.Items(), 1)
	assert.Equal(t, order.ReturnApproved, o.Returns()[0].Status())

	require.NotNil(t, stored)
	assert.Equal(t, taskID, stored.ID())
	assert.Equal(t, restock.Pending, stored.Status())
	assert.Equal(t, 2, stored.Quantity())

	factory.AssertExpectations(t)
	approveUoW.AssertExpectations(t)
	restockUoW.AssertExpectations(t)
	orders.AssertExpectations(t)
	tasks.AssertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestApproveReturnCommandHandler_Handle_RestockFailureKeepsApproval(t *testing.T) {
	ctx := t.Context()
	o, lampID := orderWithReturn(t)
	cmd, err := commands.NewApproveReturnCommand(o.ID(), lampID)
	require.NoError(t, err)
	taskID := restock.TaskID(o.ID(), lampID)

	approveUoW, restockUoW, failureUoW := new(MockUoW), new(MockUoW), new(MockUoW)
	orders, tasks, ledger := new(MockOrderRepository), new(MockRestockRepository), new(MockInventoryLedger)
	factory := new(MockUoWFactory)
	factory.On("create").Return(approveUoW).Once()
	factory.On("create").Return(restockUoW).Once()
	factory.On("create").Return(failureUoW).Once()
	for _, uow := range []*MockUoW{approveUoW, restockUoW, failureUoW} {
		uow.On("OrderRepository").Return(orders).Maybe()
		uow.On("RestockRepository").Return(tasks).Maybe()
		uow.On("InventoryLedger").Return(ledger).Maybe()
		uow.On("Commit", ctx).Return(nil).Maybe()
		uow.On("Rollback", ctx).Return(nil).Maybe()
		uow.On("Begin", ctx).Return(nil).Once()
	}

	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("Update", ctx, o).Return(nil).Once()
	tasks.On("Add", ctx, mock.AnythingOfType("*restock.Task")).Return(nil).Once()
	tasks.On("MarkApplied", ctx, taskID, mock.AnythingOfType("time.Time")).Return(true, nil).Once()
	ledger.On("RestoreStock", ctx, lampID, 2).Return(errors.New("connection reset")).Once()
	tasks.On("RecordFailure", ctx, taskID, "connection reset").Return(nil).Once()

	outcome, err := commands.NewApproveReturnCommandHandler(factory.Return(), zap.NewNop()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.Money(8000), outcome.RefundAmount)
	tasks.AssertExpectations(t)
	ledger.AssertExpectations(t)
	factory.AssertExpectations(t)
	restockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestApproveReturnCommandHandler_Handle_AlreadyApplied(t *testing.T) {
	ctx := t.Context()
	o, lampID := orderWithReturn(t)
	cmd, err := commands.NewApproveReturnCommand(o.ID(), lampID)
	require.NoError(t, err)

	uow := new(MockUoW)
	orders, tasks, ledger := new(MockOrderRepository), new(MockRestockRepository), new(MockInventoryLedger)
	factory := new(MockUoWFactory)
	factory.On("create").Return(uow).Twice()
	uow.On("OrderRepository").Return(orders).Maybe()
	uow.On("RestockRepository").Return(tasks).Maybe()
	uow.On("InventoryLedger").Return(ledger).Maybe()
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("Update", ctx, o).Return(nil).Once()
	tasks.On("Add", ctx, mock.AnythingOfType("*restock.Task")).Return(nil).Once()
	tasks.On("MarkApplied", ctx, mock.Anything, mock.Anything).Return(false, nil).Once()

	_, err = commands.NewApproveReturnCommandHandler(factory.Return(), zap.NewNop()).Handle(ctx, cmd)

	require.NoError(t, err)
	ledger.AssertNotCalled(t, "RestoreStock", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNumberOfCalls(t, "Commit", 1)
}

func TestApproveReturnCommandHandler_Handle_DomainErrors(t *testing.T) {
	testCases := []struct {
		name      string
		prepare   func(t *testing.T, o *order.Order, productID kernel.UUID)
		productID func(productID kernel.UUID) kernel.UUID
		expectErr []error
	}{
		{
			name:      "no return requested",
			productID: func(kernel.UUID) kernel.UUID { return kernel.NewUUID() },
			expectErr: []error{order.ErrReturnNotFound, errs.ErrObjectNotFound},
		},
		{
			name: "already approved",
			prepare: func(t *testing.T, o *order.Order, productID kernel.UUID) {
				_, err := o.ApproveReturn(productID, fixtureTime)
				require.NoError(t, err)
			},
			expectErr: []error{order.ErrAlreadyApproved},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			o, lampID := orderWithReturn(t)
			if tc.prepare != nil {
				tc.prepare(t, o, lampID)
			}
			productID := lampID
			if tc.productID != nil {
				productID = tc.productID(lampID)
			}
			totalBefore := o.TotalAmount()
			cmd, err := commands.NewApproveReturnCommand(o.ID(), productID)
			require.NoError(t, err)

			uow, orders, tasks := new(MockUoW), new(MockOrderRepository), new(MockRestockRepository)
			factory := new(MockUoWFactory)
			factory.On("create").Return(uow).Once()
			uow.On("OrderRepository").Return(orders).Once()
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			_, err = commands.NewApproveReturnCommandHandler(factory.Return(), zap.NewNop()).Handle(ctx, cmd)

			for _, want := range tc.expectErr {
				require.ErrorIs(t, err, want)
			}
			assert.Equal(t, totalBefore, o.TotalAmount())
			orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			tasks.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			uow.AssertExpectations(t)
		})
	}
}

func TestApproveReturnCommandHandler_Handle_ConcurrentApprovalLoses(t *testing.T) {
	ctx := t.Context()
	o, lampID := orderWithReturn(t)
	cmd, err := commands.NewApproveReturnCommand(o.ID(), lampID)
	require.NoError(t, err)

	uow, orders, tasks := new(MockUoW), new(MockOrderRepository), new(MockRestockRepository)
	factory := new(MockUoWFactory)
	factory.On("create").Return(uow).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("RestockRepository").Return(tasks).Maybe()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orders.On("Update", ctx, o).Return(errs.NewVersionIsInvalidError("order")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewApproveReturnCommandHandler(factory.Return(), zap.NewNop()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	tasks.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	factory.AssertExpectations(t)
}
