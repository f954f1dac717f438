package email

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"time"

	"gymdesk/internal/logger"
	"gymdesk/internal/metrics"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	queueKey       = "emails"
	failedQueueKey = "emails:failed"
	maxTries       = 3

	TypePaymentReceipt     = "payment_receipt"
	TypeMembershipExpiring = "membership_expiring"
	TypeGeneral            = "general"
)

type EmailJob struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Config struct {
	From     string
	FromName string
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
}

type sendFunc func(job EmailJob) error

// Service queues emails in a Redis list and delivers them over SMTP from
// Start. Delivery goes through a circuit breaker so a dead SMTP server does
// not burn every job's retries.
type Service struct {
	redis      *redis.Client
	cfg        Config
	breaker    *gobreaker.CircuitBreaker[struct{}]
	send       sendFunc
	retryDelay time.Duration
}

func New(client *redis.Client, cfg Config) *Service {
	s := &Service{
		redis:      client,
		cfg:        cfg,
		retryDelay: 5 * time.Second,
	}
	s.send = s.sendSMTP
	s.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "smtp",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("email circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return s
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	return s.enqueue(ctx, EmailJob{To: to, Name: name, Type: TypeGeneral, Subject: subject, Body: body})
}

func (s *Service) enqueue(ctx context.Context, job EmailJob) error {
	job.Created = time.Now()

	data, err := json.Marshal(job)
	if err != nil {
		logger.Error("failed to marshal email job", "error", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Error("failed to queue email", "to", job.To, "error", err)
		return err
	}

	logger.Info("email queued", "type", job.Type, "to", job.To)
	return nil
}

// Start drains the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			logger.Warn("email queue read failed", "error", err)
		}
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Error("bad email job", "error", err)
		return
	}

	job.Tries++
	_, err = s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, s.send(job)
	})
	if err == nil {
		metrics.RecordEmail(job.Type, "success")
		logger.Info("email sent", "type", job.Type, "to", job.To, "attempt", job.Tries)
		return
	}

	logger.Error("failed to send email", "to", job.To, "attempt", job.Tries, "error", err)

	if job.Tries >= maxTries {
		metrics.RecordEmail(job.Type, "failed")
		s.saveFailed(ctx, job, err)
		return
	}

	select {
	case <-ctx.Done():
	case <-time.After(s.retryDelay):
	}

	// requeue with a fresh context so a shutdown does not drop the job
	data, _ := json.Marshal(job)
	if err := s.redis.LPush(context.Background(), queueKey, data).Err(); err != nil {
		logger.Error("failed to requeue email", "to", job.To, "error", err)
	}
}

func (s *Service) sendSMTP(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.cfg.SMTPUser != "" && s.cfg.SMTPPass != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	}

	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort
	return smtp.SendMail(addr, auth, s.cfg.From, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(ctx context.Context, job EmailJob, cause error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": cause.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	if err := s.redis.LPush(context.Background(), failedQueueKey, data).Err(); err != nil {
		logger.Error("failed to store dead email", "to", job.To, "error", err)
		return
	}
	logger.Error("email moved to failed queue", "to", job.To, "tries", job.Tries)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, err := s.redis.LLen(ctx, queueKey).Result()
	if err != nil {
		return 0
	}
	metrics.SetEmailQueueLength(length)
	return length
}

func (s *Service) BreakerState() string {
	return s.breaker.State().String()
}

func (s *Service) SendPaymentReceipt(ctx context.Context, to, name, gymName string, amount float64, method string, paidAt time.Time) error {
	subject := "Payment received - " + gymName
	body := fmt.Sprintf(`Hi %s,

We have received your payment.

Amount: %.2f
Method: %s
Date: %s

Thank you for training with us!

- %s`, name, amount, method, paidAt.Format("Jan 2, 2006"), gymName)

	return s.enqueue(ctx, EmailJob{To: to, Name: name, Type: TypePaymentReceipt, Subject: subject, Body: body})
}

func (s *Service) SendMembershipExpiring(ctx context.Context, to, name, gymName, planName string, endsAt time.Time) error {
	subject := "Your membership is expiring soon"
	body := fmt.Sprintf(`Hi %s,

Your %s membership at %s ends on %s.

Renew at the front desk to keep training without interruption.

- %s`, name, planName, gymName, endsAt.Format("Jan 2, 2006"), gymName)

	return s.enqueue(ctx, EmailJob{To: to, Name: name, Type: TypeMembershipExpiring, Subject: subject, Body: body})
}
