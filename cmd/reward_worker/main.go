package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growthpoints/config"
	"github.com/oksasatya/growthpoints/pkg/helpers"
	"github.com/oksasatya/growthpoints/pkg/mailer"
)

// sender is the part of mailer.Mailgun the worker needs.
type sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

type worker struct {
	send       sender
	appName    string
	supportURL string
	logger     *logrus.Logger
	now        func() time.Time
}

// ack decisions for one delivery
type outcome int

const (
	ack outcome = iota
	drop
	retry
)

// handle renders and sends one reward job. Undecodable or incomplete jobs are
// dropped; send failures are retried.
func (w *worker) handle(ctx context.Context, body []byte) outcome {
	var job mailer.RewardJob
	if err := json.Unmarshal(body, &job); err != nil {
		helpers.LogError(w.logger, "bad message", err, nil)
		return drop
	}
	fields := logrus.Fields{"task_id": job.TaskID, "user_id": job.UserID}
	if !job.Valid() {
		helpers.LogError(w.logger, "incomplete reward job", nil, fields)
		return drop
	}

	subject, text, html, err := mailer.ComposeReward(job, w.appName, w.supportURL, w.now())
	if err != nil {
		helpers.LogError(w.logger, "render reward email failed", err, fields)
		return drop
	}

	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := w.send.Send(c, job.To, subject, text, html); err != nil {
		helpers.LogError(w.logger, "send failed", err, fields)
		return retry
	}
	helpers.LogInfo(w.logger, "reward email sent", fields)
	return ack
}

func settle(msg amqp.Delivery, o outcome) {
	switch o {
	case ack:
		_ = msg.Ack(false)
	case drop:
		_ = msg.Nack(false, false)
	case retry:
		_ = msg.Nack(false, true)
	}
}

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName+"-reward-worker", cfg.Env, cfg.LogLevel)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; reward worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQRewardQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}
	if !cfg.MailgunConfigured() {
		logger.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		logger.Fatalf("qos: %v", err)
	}
	if err := helpers.DeclareQueue(ch, cfg.RabbitMQRewardQueue); err != nil {
		logger.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQRewardQueue, "", false, false, false, false, nil)
	if err != nil {
		logger.Fatalf("consume: %v", err)
	}

	w := &worker{
		send:       mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender),
		appName:    cfg.AppName,
		supportURL: cfg.SupportURL,
		logger:     logger,
		now:        time.Now,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			settle(msg, w.handle(ctx, msg.Body))
		}
		close(done)
	}()

	logger.Infof("reward worker listening on queue=%s", cfg.RabbitMQRewardQueue)
	<-stop
	logger.Info("shutting down...")
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
