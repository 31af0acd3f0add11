package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements the Sender interface using a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) SendAssignmentCreatedEmail(ctx context.Context, notice AssignmentCreatedNotice) error {
	subject := fmt.Sprintf(subjectAssignmentCreatedFmt, notice.LeadName)
	content, err := renderEmailTemplate("assignment_created.html", assignmentCreatedEmailData{
		baseEmailData: baseEmailData{
			Title:   "New lead assigned",
			Heading: "New lead assigned",
		},
		ExecutiveName: notice.ExecutiveName,
		LeadName:      notice.LeadName,
		Priority:      notice.Priority,
		DueDate:       formatDueDate(notice.DueDate),
	})
	if err != nil {
		return err
	}
	return s.send(ctx, notice.ExecutiveEmail, subject, content)
}

func (s *SMTPSender) SendAssignmentDueReminderEmail(ctx context.Context, reminder AssignmentDueReminder) error {
	subject := fmt.Sprintf(subjectDueReminderFmt, reminder.LeadName)
	content, err := renderEmailTemplate("assignment_due_reminder.html", dueReminderEmailData{
		baseEmailData: baseEmailData{
			Title:   "Assignment due",
			Heading: "Assignment due",
		},
		ExecutiveName: reminder.ExecutiveName,
		LeadName:      reminder.LeadName,
		Priority:      reminder.Priority,
		DueDate:       formatDueDate(reminder.DueDate),
	})
	if err != nil {
		return err
	}
	return s.send(ctx, reminder.ExecutiveEmail, subject, content)
}

var _ Sender = (*SMTPSender)(nil)
