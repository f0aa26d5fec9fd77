package order

import (
	"context"
	"fmt"
	"sync"

	"redmedicos-be/internal/logger"
	"redmedicos-be/internal/payment"
	"redmedicos-be/internal/product"
	"redmedicos-be/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Orders below the manufacturing minimum are bumped up to it when the
// redirect comes back without a quantity.
const defaultQuantity = 100

type ReconcileInput struct {
	PaymentKey string
	OrderID    string
	Amount     int64
	ProductID  string
	Quantity   int
	UserID     uint
	UserEmail  string
}

type Outcome string

const (
	// OutcomeConfirmed: the gateway approved the charge and the order was written.
	OutcomeConfirmed Outcome = "confirmed"
	// OutcomeAlreadyReconciled: an order for this id already exists; no gateway call.
	OutcomeAlreadyReconciled Outcome = "already_reconciled"
	// OutcomeRecoveredDuplicate: the gateway reported already-processed; treated as success.
	OutcomeRecoveredDuplicate Outcome = "recovered_duplicate"
)

type ReconcileResult struct {
	Outcome Outcome
	Order   *Order
}

// flowState is the reconciliation state per order id, owned by the service
// instance. done absorbs same-instance replays without a store read or a
// gateway call; in-flight invocations are collapsed by the singleflight
// group below.
type flowState int

const (
	stateIdle flowState = iota
	stateInFlight
	stateDone
)

type Service interface {
	Reconcile(ctx context.Context, in ReconcileInput) (*ReconcileResult, error)
	PrepareCheckout(ctx context.Context, productID string, quantity int) (*Checkout, error)
	GetOrders(ctx context.Context) ([]Order, error)
	GetUserOrders(ctx context.Context, userID uint) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
}

type service struct {
	repo     Repository
	gateway  payment.Gateway
	products product.Repository

	mu     sync.Mutex
	states map[string]flowState
	group  singleflight.Group
}

func NewService(repo Repository, gateway payment.Gateway, products product.Repository) Service {
	return &service{
		repo:     repo,
		gateway:  gateway,
		products: products,
		states:   make(map[string]flowState),
	}
}

func (s *service) state(orderID string) flowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[orderID]
}

func (s *service) setState(orderID string, st flowState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st == stateIdle {
		delete(s.states, orderID)
		return
	}
	s.states[orderID] = st
}

// Reconcile turns a provider-side approval into a durable order row exactly
// once. Duplicate invocations are absorbed at three levels: the done state
// (same instance), the existence check (across instances and reloads), and
// the provider's own already-processed signal.
func (s *service) Reconcile(ctx context.Context, in ReconcileInput) (*ReconcileResult, error) {
	if in.PaymentKey == "" || in.OrderID == "" || in.Amount <= 0 {
		return nil, ErrMissingParameters
	}

	if s.state(in.OrderID) == stateDone {
		return &ReconcileResult{Outcome: OutcomeAlreadyReconciled}, nil
	}

	// Concurrent calls for the same order share one execution and one result.
	v, err, _ := s.group.Do(in.OrderID, func() (interface{}, error) {
		return s.reconcileOnce(ctx, in)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ReconcileResult), nil
}

func (s *service) reconcileOnce(ctx context.Context, in ReconcileInput) (*ReconcileResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", in.OrderID),
		zap.Int64("amount", in.Amount),
	)

	s.setState(in.OrderID, stateInFlight)
	done := false
	defer func() {
		if done {
			s.setState(in.OrderID, stateDone)
		} else {
			s.setState(in.OrderID, stateIdle)
		}
	}()

	// Existence check short-circuits duplicate redirects and page reloads.
	// A failing read is logged and the flow proceeds optimistically.
	existing, err := s.repo.GetByID(ctx, in.OrderID)
	if err != nil {
		log.Warn("order lookup failed, proceeding with confirmation", zap.Error(err))
	} else if existing != nil {
		log.Info("order already reconciled, skipping gateway call")
		done = true
		return &ReconcileResult{Outcome: OutcomeAlreadyReconciled, Order: existing}, nil
	}

	outcome := OutcomeConfirmed
	_, err = s.gateway.Confirm(ctx, in.PaymentKey, in.OrderID, in.Amount)
	if err != nil {
		if !payment.IsDuplicate(err) {
			return nil, err
		}
		log.Info("provider reports payment already processed, recovering as success")
		outcome = OutcomeRecoveredDuplicate
	}

	quantity := in.Quantity
	if quantity <= 0 {
		quantity = defaultQuantity
	}

	o := &Order{
		ID:         in.OrderID,
		UserID:     in.UserID,
		ProductID:  in.ProductID,
		Quantity:   quantity,
		Amount:     in.Amount,
		Status:     StatusPaid,
		PaymentKey: in.PaymentKey,
	}
	if in.UserEmail != "" {
		o.UserEmail = utils.StrPtr(in.UserEmail)
	}

	if err := s.repo.Upsert(ctx, o); err != nil {
		if outcome == OutcomeRecoveredDuplicate {
			// A concurrent writer already persisted this order; the merge
			// write losing changes nothing.
			log.Warn("order write after duplicate recovery failed", zap.Error(err))
			done = true
			return &ReconcileResult{Outcome: outcome, Order: o}, nil
		}
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	log.Info("order reconciled", zap.String("outcome", string(outcome)))
	done = true
	return &ReconcileResult{Outcome: outcome, Order: o}, nil
}

// PrepareCheckout issues the order id and the server-computed total the
// storefront hands to the provider SDK.
func (s *service) PrepareCheckout(ctx context.Context, productID string, quantity int) (*Checkout, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		quantity = defaultQuantity
	}

	return &Checkout{
		OrderID:   NewOrderID(),
		OrderName: fmt.Sprintf("%s %d개", p.Name, quantity),
		Amount:    p.Price * int64(quantity),
		Quantity:  quantity,
	}, nil
}

func (s *service) GetOrders(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *service) GetUserOrders(ctx context.Context, userID uint) ([]Order, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus validates enum membership only. Any state may be set at any
// time; the operator is trusted to jump states on purpose.
func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("status", string(status)),
	)
	return nil
}
