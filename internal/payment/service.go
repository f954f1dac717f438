package payment

import (
	"context"
	"fmt"
	"time"

	"gymdesk/internal/access"
	"gymdesk/internal/apperr"
	"gymdesk/internal/logger"
	"gymdesk/internal/metrics"
)

const notificationTypePayment = "payment"

var errMembershipNotOfMember = apperr.Validation(apperr.Field("membershipId", "membershipId must reference a membership of this member"))

// Notifier tells the gym owner about a recorded payment.
type Notifier interface {
	Notify(ctx context.Context, userID int, notificationType, title, message string) error
}

// Mailer queues the receipt email for the member.
type Mailer interface {
	SendPaymentReceipt(ctx context.Context, to, name, gymName string, amount float64, method string, paidAt time.Time) error
}

type Service interface {
	ListByGym(ctx context.Context, userID, gymID int) ([]Payment, error)
	ListByMember(ctx context.Context, userID, memberID int) ([]Payment, error)
	Create(ctx context.Context, userID, memberID int, req CreatePaymentRequest) (*Payment, error)
	Get(ctx context.Context, userID, id int) (*Payment, error)
	Update(ctx context.Context, userID, id int, req UpdatePaymentRequest) (*Payment, error)
	Delete(ctx context.Context, userID, id int) error
}

type service struct {
	repo     Repository
	gate     access.Gate
	notifier Notifier
	mailer   Mailer
	now      func() time.Time
}

// NewService wires the payment service. notifier and mailer may be nil.
func NewService(repo Repository, gate access.Gate, notifier Notifier, mailer Mailer) Service {
	return &service{
		repo:     repo,
		gate:     gate,
		notifier: notifier,
		mailer:   mailer,
		now:      time.Now,
	}
}

func (s *service) ListByGym(ctx context.Context, userID, gymID int) ([]Payment, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}
	return s.repo.ListByGym(ctx, gymID)
}

func (s *service) ListByMember(ctx context.Context, userID, memberID int) ([]Payment, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindMember, memberID); err != nil {
		return nil, err
	}
	return s.repo.ListByMember(ctx, memberID)
}

func (s *service) checkMembership(ctx context.Context, membershipID *int, memberID int) error {
	if membershipID == nil {
		return nil
	}
	ok, err := s.repo.MembershipBelongsTo(ctx, *membershipID, memberID)
	if err != nil {
		return err
	}
	if !ok {
		return errMembershipNotOfMember
	}
	return nil
}

func (s *service) Create(ctx context.Context, userID, memberID int, req CreatePaymentRequest) (*Payment, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindMember, memberID); err != nil {
		return nil, err
	}
	if err := s.checkMembership(ctx, req.MembershipID, memberID); err != nil {
		return nil, err
	}

	p := &Payment{
		MembershipID:  req.MembershipID,
		Amount:        *req.Amount,
		PaymentDate:   s.now(),
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		Status:        StatusPaid,
	}
	if req.PaymentDate != nil {
		p.PaymentDate = *req.PaymentDate
	}
	if req.Status != "" {
		p.Status = req.Status
	}

	created, err := s.repo.Create(ctx, memberID, p)
	if err != nil {
		return nil, err
	}

	metrics.RecordPayment(created.Status, created.PaymentMethod)
	s.announce(ctx, created)

	return created, nil
}

// announce notifies the owner and mails a receipt. Failures are logged only;
// the payment itself is already stored.
func (s *service) announce(ctx context.Context, p *Payment) {
	if s.notifier == nil && s.mailer == nil {
		return
	}

	payer, err := s.repo.GetPayer(ctx, p.MemberID)
	if err != nil {
		logger.Warn("payment recorded but payer lookup failed", "payment_id", p.ID, "error", err)
		return
	}

	if s.notifier != nil {
		title := "Payment " + p.Status
		message := fmt.Sprintf("%s: %.2f via %s", payer.Name, p.Amount, p.PaymentMethod)
		if err := s.notifier.Notify(ctx, payer.OwnerID, notificationTypePayment, title, message); err != nil {
			logger.Warn("failed to create payment notification", "payment_id", p.ID, "error", err)
		}
	}

	if s.mailer != nil && p.Status == StatusPaid && payer.Email != nil && *payer.Email != "" {
		err := s.mailer.SendPaymentReceipt(ctx, *payer.Email, payer.Name, payer.GymName, p.Amount, p.PaymentMethod, p.PaymentDate)
		if err != nil {
			logger.Warn("failed to queue payment receipt", "payment_id", p.ID, "error", err)
		}
	}
}

func (s *service) Get(ctx context.Context, userID, id int) (*Payment, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindPayment, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, userID, id int, req UpdatePaymentRequest) (*Payment, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindPayment, id); err != nil {
		return nil, err
	}

	if req.MembershipID != nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.checkMembership(ctx, req.MembershipID, current.MemberID); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, userID, id int) error {
	if err := s.gate.Authorize(ctx, userID, access.KindPayment, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
