package notification

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/notification"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/metrics"
	"logistics/internal/pkg/resilience"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

const (
	ServiceName    = "email"
	DefaultTimeout = 10 * time.Second
)

// Sender is the subset of the SES v2 client used to deliver mail.
type Sender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type Config struct {
	From    string
	Timeout time.Duration
}

// Notifier implements ports.Notifier on top of SES. Each send is bounded by
// Config.Timeout and guarded by a circuit breaker.
type Notifier struct {
	sender   Sender
	renderer *Renderer
	from     string
	timeout  time.Duration
	breaker  *resilience.CircuitBreaker
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewNotifier(sender Sender, renderer *Renderer, config Config, logger *slog.Logger, m *metrics.Metrics) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	return &Notifier{
		sender:   sender,
		renderer: renderer,
		from:     config.From,
		timeout:  config.Timeout,
		breaker:  resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig(ServiceName), logger, m),
		logger:   logger.With("component", "notification.Notifier"),
		metrics:  m,
	}
}

// Send renders and delivers n. Render failures are returned as is; delivery failures
// are wrapped in errs.UpstreamFailureError.
func (s *Notifier) Send(ctx context.Context, n notification.Notification) error {
	html, err := s.renderer.Render(n)
	if err != nil {
		s.metrics.RecordNotification(n.Template, metrics.OutcomeFailure)
		return err
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination:      &types.Destination{ToAddresses: []string{n.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(n.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(html), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var messageID string
	err = s.breaker.Execute(ctx, func(ctx context.Context) error {
		out, err := s.sender.SendEmail(ctx, input)
		if err != nil {
			return err
		}
		messageID = aws.ToString(out.MessageId)
		return nil
	})
	if err != nil {
		s.metrics.RecordNotification(n.Template, metrics.OutcomeFailure)
		return errs.NewUpstreamFailureErrorWithCause(ServiceName, err)
	}

	s.metrics.RecordNotification(n.Template, metrics.OutcomeSuccess)
	s.logger.InfoContext(ctx, "email sent", "template", n.Template, "messageId", messageID)
	return nil
}
