package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for links in notification emails
	NotifyTo    string // Workshop inbox for internal notifications
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendBudgetSentEmail notifies a client that the repair quote for their
// ticket is ready.
func (s *SMTPEmailService) SendBudgetSentEmail(to string, ticketNumber int64, amount, link string) error {
	subject := fmt.Sprintf("Presupuesto del ticket #%d", ticketNumber)

	linkHTML := ""
	linkPlain := ""
	if link != "" {
		linkHTML = fmt.Sprintf(`<p><a href="%s">Ver presupuesto</a></p>`, link)
		linkPlain = fmt.Sprintf("\nPodés ver el presupuesto en:\n%s\n", link)
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Presupuesto listo</h2>
			<p>Ya tenemos el presupuesto para la reparación del ticket <strong>#%d</strong>.</p>
			<p>Monto: <strong>%s</strong></p>
			%s
			<p>Ante cualquier duda respondé este correo.</p>
		</body>
		</html>
	`, ticketNumber, amount, linkHTML)

	plainBody := fmt.Sprintf(`
Presupuesto listo

Ya tenemos el presupuesto para la reparación del ticket #%d.
Monto: %s
%s
Ante cualquier duda respondé este correo.
	`, ticketNumber, amount, linkPlain)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendTicketCreatedEmail notifies the workshop inbox about a new service
// ticket. Skipped silently when no inbox is configured.
func (s *SMTPEmailService) SendTicketCreatedEmail(ticketNumber int64, clientName, model string) error {
	if s.config.NotifyTo == "" {
		return nil
	}

	subject := fmt.Sprintf("Nuevo ticket #%d", ticketNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Nuevo ticket de servicio</h2>
			<p>Ticket <strong>#%d</strong></p>
			<p>Cliente: %s</p>
			<p>Máquina: %s</p>
		</body>
		</html>
	`, ticketNumber, clientName, model)

	plainBody := fmt.Sprintf(`
Nuevo ticket de servicio

Ticket #%d
Cliente: %s
Máquina: %s
	`, ticketNumber, clientName, model)

	return s.sendEmail(s.config.NotifyTo, subject, htmlBody, plainBody)
}

// SendMachineReadyEmail notifies a client that their machine is ready for
// pickup.
func (s *SMTPEmailService) SendMachineReadyEmail(to string, ticketNumber int64, model string) error {
	subject := fmt.Sprintf("Tu máquina está lista - ticket #%d", ticketNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Máquina lista</h2>
			<p>La reparación del ticket <strong>#%d</strong> (%s) está terminada.</p>
			<p>Ya podés pasar a retirarla o coordinar la entrega.</p>
		</body>
		</html>
	`, ticketNumber, model)

	plainBody := fmt.Sprintf(`
Máquina lista

La reparación del ticket #%d (%s) está terminada.
Ya podés pasar a retirarla o coordinar la entrega.
	`, ticketNumber, model)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
