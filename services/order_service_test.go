package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
	"github.com/shstksdbs/ERP-Project-sub001/repository"
)

func newOrderService(t *testing.T) *OrderService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// a second pooled connection would see a fresh in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Branch{}, &entity.Menu{}, &entity.Option{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{}, &entity.OrderItemOption{},
	))

	for _, name := range []string{"Pending", "Preparing", "Completed", "Cancelled"} {
		require.NoError(t, db.Create(&entity.OrderStatus{StatusName: name}).Error)
	}
	require.NoError(t, db.Create(&entity.Branch{BranchName: "Gangnam", Status: "open"}).Error)

	burger := entity.Menu{MenuName: "Classic Burger", Category: entity.CategoryBurger, Price: 5000}
	require.NoError(t, db.Create(&burger).Error)
	require.NoError(t, db.Create(&entity.Option{
		OptionName: "Cheese", Category: entity.OptionTopping, Price: 500, QuantityPriced: true, MaxQuantity: 5,
	}).Error)

	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		repository.NewOptionRepository(db),
		repository.NewBranchRepository(db),
		"test-secret",
	)
}

func validRequest(t *testing.T, svc *OrderService) *OrderRequest {
	t.Helper()
	req := &OrderRequest{
		BranchID:    1,
		TotalAmount: 6000,
		Items: []OrderRequestItem{{
			MenuID:      1,
			MenuName:    "Classic Burger",
			Quantity:    1,
			UnitPrice:   6000, // 5000 + cheese 500x2
			TotalPrice:  6000,
			DisplayName: "Classic Burger",
			Options: []OrderRequestOption{{
				OptionID: 1, OptionName: "Cheese", Quantity: 2, UnitPrice: 500, Action: "add",
			}},
			ItemType: entity.CategoryBurger,
		}},
		CustomerName:  "Kim",
		CustomerPhone: "010-1234-5678",
		OrderType:     "takeout",
		PaymentMethod: "card",
		Timestamp:     1700000000000,
	}
	req.SecurityHash = SecurityHash(req, svc.Secret)
	return req
}

func TestOrderCreate(t *testing.T) {
	svc := newOrderService(t)

	notified := 0
	svc.SetNotify(func(o *entity.Order) {
		notified++
		assert.NotEmpty(t, o.OrderNo)
		assert.Equal(t, uint(1), o.BranchID)
	})

	res, err := svc.Create(validRequest(t, svc))
	require.NoError(t, err)
	assert.Regexp(t, `^ORD-\d{8}-\d{6}$`, res.OrderNo)
	assert.Equal(t, int64(6000), res.TotalAmount)
	assert.Equal(t, 1, notified)

	got, err := svc.DetailForBranch(1, res.ID)
	require.NoError(t, err)
	assert.Equal(t, svc.Status.Pending, got.OrderStatusID)
	require.Len(t, got.Items, 1)
	require.Len(t, got.Items[0].Selections, 1)
	assert.Equal(t, "Cheese", got.Items[0].Selections[0].OptionName)
}

func TestOrderCreateUnknownBranch(t *testing.T) {
	svc := newOrderService(t)
	req := validRequest(t, svc)
	req.BranchID = 99
	req.SecurityHash = SecurityHash(req, svc.Secret)

	_, err := svc.Create(req)
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestOrderCreateRejectsBadHash(t *testing.T) {
	svc := newOrderService(t)

	req := validRequest(t, svc)
	req.CustomerName = "Lee" // mutate after hashing
	_, err := svc.Create(req)
	assert.ErrorIs(t, err, ErrInvalidSecurityHash)

	req = validRequest(t, svc)
	req.SecurityHash = "deadbeef"
	_, err = svc.Create(req)
	assert.ErrorIs(t, err, ErrInvalidSecurityHash)
}

func TestOrderCreateRejectsPriceMismatch(t *testing.T) {
	svc := newOrderService(t)

	req := validRequest(t, svc)
	req.Items[0].UnitPrice = 100
	req.Items[0].TotalPrice = 100
	req.TotalAmount = 100
	req.SecurityHash = SecurityHash(req, svc.Secret)
	_, err := svc.Create(req)
	assert.ErrorIs(t, err, ErrPriceMismatch)

	// Correct item prices but a wrong grand total still fails.
	req = validRequest(t, svc)
	req.TotalAmount = 9999
	req.SecurityHash = SecurityHash(req, svc.Secret)
	_, err = svc.Create(req)
	assert.ErrorIs(t, err, ErrPriceMismatch)
}

func TestOrderTransitions(t *testing.T) {
	svc := newOrderService(t)
	res, err := svc.Create(validRequest(t, svc))
	require.NoError(t, err)

	// Completing a pending order skips a step and is refused.
	assert.ErrorIs(t, svc.Complete(1, res.ID), ErrInvalidTransition)

	require.NoError(t, svc.Accept(1, res.ID))
	got, _ := svc.DetailForBranch(1, res.ID)
	assert.Equal(t, svc.Status.Preparing, got.OrderStatusID)

	// Preparing orders can no longer be cancelled.
	assert.ErrorIs(t, svc.Cancel(1, res.ID), ErrInvalidTransition)

	require.NoError(t, svc.Complete(1, res.ID))
	got, _ = svc.DetailForBranch(1, res.ID)
	assert.Equal(t, svc.Status.Completed, got.OrderStatusID)
}

func TestOrderTransitionsScopedToBranch(t *testing.T) {
	svc := newOrderService(t)
	res, err := svc.Create(validRequest(t, svc))
	require.NoError(t, err)

	// Another branch cannot touch the order; HQ (branch 0) can.
	assert.ErrorIs(t, svc.Accept(2, res.ID), ErrOrderNotFound)
	require.NoError(t, svc.Accept(0, res.ID))
}

func TestOrderListForBranch(t *testing.T) {
	svc := newOrderService(t)
	for i := 0; i < 3; i++ {
		_, err := svc.Create(validRequest(t, svc))
		require.NoError(t, err)
	}

	out, err := svc.ListForBranch(1, nil, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Total)
	assert.Len(t, out.Items, 2)

	pending := svc.Status.Pending
	out, err = svc.ListForBranch(1, &pending, 1, 10)
	require.NoError(t, err)
	assert.Len(t, out.Items, 3)

	completed := svc.Status.Completed
	out, err = svc.ListForBranch(1, &completed, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}
