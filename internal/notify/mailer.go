package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/gomail.v2"

	"home_relay/internal/config"
)

const dateLayout = "02-01-2006"

// DeliveryError wraps any SMTP connection, auth or transmission failure.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver report to %s: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// dialer is the part of *gomail.Dialer the Mailer needs.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends daily reports through one authenticated SMTP relay.
type Mailer struct {
	dialer dialer
	sender string

	inflight sync.WaitGroup
}

func NewMailer(cfg config.MailConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Sender, cfg.Password),
		sender: cfg.Sender,
	}
}

// Subject returns the subject line of the report mail for day.
func Subject(day time.Time) string {
	return "Daily report " + day.Format(dateLayout)
}

// SendReport mails the workbook as an attachment and the chart inline.
// There is a single attempt; ctx only bounds how long the caller waits.
// Both files are read before the send starts, so the caller may remove
// them as soon as SendReport returns.
func (m *Mailer) SendReport(ctx context.Context, recipient, xlsxPath, pngPath string, day time.Time) error {
	if err := ctx.Err(); err != nil {
		return &DeliveryError{Recipient: recipient, Err: err}
	}

	msg, err := m.compose(recipient, xlsxPath, pngPath, day)
	if err != nil {
		return &DeliveryError{Recipient: recipient, Err: err}
	}

	done := make(chan error, 1)
	m.inflight.Add(1)
	go func() {
		defer m.inflight.Done()
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return &DeliveryError{Recipient: recipient, Err: err}
		}
		return nil
	case <-ctx.Done():
		return &DeliveryError{Recipient: recipient, Err: ctx.Err()}
	}
}

// Wait blocks until sends abandoned by a canceled SendReport have returned.
func (m *Mailer) Wait() {
	m.inflight.Wait()
}

func (m *Mailer) compose(recipient, xlsxPath, pngPath string, day time.Time) (*gomail.Message, error) {
	chart, err := inMemory(pngPath)
	if err != nil {
		return nil, err
	}
	workbook, err := inMemory(xlsxPath)
	if err != nil {
		return nil, err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", Subject(day))

	msg.Embed(pngPath, chart)
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>Temperature and humidity report for %s.</p><p><img src="cid:%s" alt="chart"></p><p>The relay log is in the attached workbook.</p>`,
		day.Format(dateLayout), filepath.Base(pngPath),
	))
	msg.Attach(xlsxPath, workbook)
	return msg, nil
}

// inMemory reads path now and serves the bytes whenever gomail writes the part.
func inMemory(path string) (gomail.FileSetting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}), nil
}
