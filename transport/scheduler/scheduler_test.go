package scheduler_test

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"hotel/config"
	inventoryMocks "hotel/internal/domains/inventory/mocks"
	"hotel/transport/scheduler"
)

func TestSweepHolds(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventory := inventoryMocks.NewMockInventory(ctrl)

	inventory.EXPECT().SweepExpiredHolds(gomock.Any()).Return(int64(3), nil)

	scheduler.New(&config.Config{}, inventory).SweepHolds()
}

func TestSweepHolds_ErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventory := inventoryMocks.NewMockInventory(ctrl)

	inventory.EXPECT().SweepExpiredHolds(gomock.Any()).Return(int64(0), errors.New("connection refused"))

	scheduler.New(&config.Config{}, inventory).SweepHolds()
}
