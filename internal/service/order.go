package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vitrine-store/vitrine/internal/domain"
	"github.com/vitrine-store/vitrine/internal/notify"
)

// orderService composes the order notification from cart contents and submits
// it to the webhook. The cart is cleared and the catalog cache invalidated
// only when the endpoint accepts the notification; any failure leaves the
// cart exactly as it was so the customer can resubmit.
type orderService struct {
	cart     domain.CartService
	products domain.ProductService
	notifier notify.Notifier
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

// NewOrderService creates an OrderService.
func NewOrderService(cart domain.CartService, products domain.ProductService, notifier notify.Notifier, logger *slog.Logger) domain.OrderService {
	if logger == nil {
		logger = slog.Default()
	}

	return &orderService{
		cart:     cart,
		products: products,
		notifier: notifier,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// Submit validates the request, composes the notification message and sends
// it. No network call is made when validation fails.
func (s *orderService) Submit(ctx context.Context, req domain.OrderRequest) (*domain.OrderConfirmation, error) {
	req.CustomerCode = strings.TrimSpace(req.CustomerCode)
	req.Notes = strings.TrimSpace(req.Notes)

	if err := s.validate.Struct(req); err != nil {
		return nil, domain.NewValidationError("order.submit", "customer_code", "Customer code or CNPJ is required")
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	total := s.cart.TotalCents()
	submittedAt := s.now()
	text := ComposeMessage(req, items, total, submittedAt)

	err := s.notifier.Send(ctx, notify.Message{
		Text:     text,
		UserName: req.CustomerCode,
	})
	if err != nil {
		s.logger.Error("order notification failed", "customer_code", req.CustomerCode, "error", err)
		var werr *notify.WebhookError
		if errors.As(err, &werr) {
			message := werr.Message
			if message == "" {
				message = "The notification service rejected the order"
			}
			return nil, domain.Unavailable(err, "order.submit", message)
		}
		return nil, domain.Unavailable(err, "order.submit", "Could not reach the notification service")
	}

	var count int64
	for _, item := range items {
		count += item.Quantity
	}

	s.cart.Clear(ctx)
	s.products.Invalidate()
	s.logger.Info("order submitted", "customer_code", req.CustomerCode, "lines", len(items), "total_cents", total)

	return &domain.OrderConfirmation{
		ItemCount:   count,
		TotalCents:  total,
		SubmittedAt: submittedAt,
	}, nil
}
