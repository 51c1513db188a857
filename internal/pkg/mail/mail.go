package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
)

// Config holds mail relay settings.
type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	From string `yaml:"from"`
}

// Message is a single email to send.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender sends transactional email via SMTP. Calls are synchronous and
// fire-and-forget: a failure propagates to the caller and nothing is retried.
type Sender struct {
	cfg Config
}

func New(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

// Send dispatches an email over SMTP.
func (s *Sender) Send(msg Message) error {
	host := s.cfg.Host
	port := s.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("From: %s\r\n", from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", ")))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	body.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, host)
	return smtp.SendMail(addr, auth, from, msg.To, body.Bytes())
}

const otpTpl = `<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#0a0a0a;padding:20px">
<div style="max-width:480px;margin:0 auto;background:#161616;border:1px solid #D4AF37;border-radius:8px;padding:24px;color:#eee">
  <h2 style="color:#D4AF37;margin-top:0">Admin Access Code</h2>
  <p style="font-size:32px;letter-spacing:8px;text-align:center;margin:24px 0"><strong>{{.Code}}</strong></p>
  <p style="color:#999;font-size:13px">This code expires in 30 seconds. If you did not request it, ignore this email.</p>
</div>
</body>
</html>`

const contactTpl = `<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;color:#333">
<div style="max-width:600px;margin:0 auto">
  <h2 style="color:#D4AF37">New Inquiry: {{.Category}}</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <hr />
  <p style="font-size:16px;white-space:pre-wrap">{{.Message}}</p>
</div>
</body>
</html>`

// ContactInquiryData is the data for contact-form notification emails.
type ContactInquiryData struct {
	Name     string
	Email    string
	Category string
	Message  string
}

func renderTemplate(tpl string, data interface{}) (string, error) {
	t, err := template.New("").Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendOTP mails a one-time login code to the admin.
func (s *Sender) SendOTP(to, code string) error {
	html, err := renderTemplate(otpTpl, struct{ Code string }{Code: code})
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: fmt.Sprintf("Your Access Code: %s", code),
		HTML:    html,
	})
}

// SendContactInquiry forwards a contact-form submission to the admin inbox.
func (s *Sender) SendContactInquiry(to string, data ContactInquiryData) error {
	html, err := renderTemplate(contactTpl, data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: fmt.Sprintf("[%s] New Message from %s", strings.ToUpper(data.Category), data.Name),
		HTML:    html,
	})
}
