package email

import (
	"crypto/tls"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wneessen/go-mail"
)

// Client is the SMTP email client.
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient creates a new email client instance.
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail sends a single HTML email.
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}

// BookingInfo carries the booking data rendered into lifecycle emails.
type BookingInfo struct {
	ID           int
	GuestName    string
	GuestEmail   string
	RoomNumber   string
	RoomType     string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Nights       int
	Total        decimal.Decimal
	Paid         decimal.Decimal
	Due          decimal.Decimal
	Services     []ServiceLineInfo
}

// ServiceLineInfo is one purchased add-on shown on the receipt.
type ServiceLineInfo struct {
	Name     string
	Quantity int
	Total    decimal.Decimal
}

// SendBookingConfirmation sends the confirmation email fired by the confirm
// transition.
func (c *Client) SendBookingConfirmation(booking BookingInfo) error {
	subject := fmt.Sprintf("Booking Confirmation #%d - %s", booking.ID, c.fromName)
	return c.SendEmail(booking.GuestEmail, subject, confirmationHTML(booking))
}

// SendCheckoutReceipt sends the stay receipt fired by the checkout
// transition.
func (c *Client) SendCheckoutReceipt(booking BookingInfo) error {
	subject := fmt.Sprintf("Stay Receipt #%d - %s", booking.ID, c.fromName)
	return c.SendEmail(booking.GuestEmail, subject, receiptHTML(booking))
}

func confirmationHTML(b BookingInfo) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="padding: 20px;">
		<tr><td align="center">
			<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
				<tr>
					<td style="background-color: #4CAF50; padding: 30px 20px; text-align: center;">
						<h1 style="color: #ffffff; margin: 0;">Booking Confirmed!</h1>
						<p style="color: #ffffff; margin: 10px 0 0 0;">Thank you for booking with us</p>
					</td>
				</tr>
				<tr>
					<td style="padding: 30px;">
						<p>Dear %s,</p>
						<p>Your booking has been confirmed. The details are below:</p>
						<div style="background-color: #f8f9fa; border-left: 4px solid #4CAF50; padding: 20px; margin: 20px 0;">
							<table width="100%%" cellpadding="0" cellspacing="0">
								<tr><td style="padding: 6px 0;"><strong>Booking ID:</strong></td><td style="text-align: right;">#%d</td></tr>
								<tr><td style="padding: 6px 0;"><strong>Room:</strong></td><td style="text-align: right;">%s (%s)</td></tr>
								<tr><td style="padding: 6px 0;"><strong>Check-in:</strong></td><td style="text-align: right;">%s</td></tr>
								<tr><td style="padding: 6px 0;"><strong>Check-out:</strong></td><td style="text-align: right;">%s</td></tr>
								<tr><td style="padding: 6px 0;"><strong>Nights:</strong></td><td style="text-align: right;">%d</td></tr>
								<tr><td style="padding: 6px 0;"><strong>Total:</strong></td><td style="text-align: right;">₹%s</td></tr>
								<tr><td style="padding: 6px 0;"><strong>Due:</strong></td><td style="text-align: right;">₹%s</td></tr>
							</table>
						</div>
						<p>Present this email at check-in. We look forward to welcoming you.</p>
					</td>
				</tr>
				<tr>
					<td style="background-color: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #999;">
						This is an automated email, please do not reply.
					</td>
				</tr>
			</table>
		</td></tr>
	</table>
</body>
</html>`,
		b.GuestName,
		b.ID,
		b.RoomNumber,
		b.RoomType,
		b.CheckInDate.Format("02/01/2006"),
		b.CheckOutDate.Format("02/01/2006"),
		b.Nights,
		b.Total.StringFixed(2),
		b.Due.StringFixed(2),
	)
}

func receiptHTML(b BookingInfo) string {
	servicesHTML := ""
	for _, svc := range b.Services {
		servicesHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;">%s</td>
				<td style="padding: 10px; border-bottom: 1px solid #e0e0e0; text-align: center;">%d</td>
				<td style="padding: 10px; border-bottom: 1px solid #e0e0e0; text-align: right;">₹%s</td>
			</tr>`,
			svc.Name,
			svc.Quantity,
			svc.Total.StringFixed(2),
		)
	}
	if servicesHTML == "" {
		servicesHTML = `<tr><td colspan="3" style="padding: 10px; color: #999;">No additional services</td></tr>`
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="padding: 20px;">
		<tr><td align="center">
			<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
				<tr>
					<td style="background-color: #667eea; padding: 30px 20px; text-align: center;">
						<h1 style="color: #ffffff; margin: 0;">Thank you for staying with us!</h1>
					</td>
				</tr>
				<tr>
					<td style="padding: 30px;">
						<p>Dear %s,</p>
						<p>Your stay is complete. Here is your receipt:</p>
						<table width="100%%" cellpadding="0" cellspacing="0" style="margin: 20px 0;">
							<tr><td style="padding: 6px 0;"><strong>Booking ID:</strong></td><td style="text-align: right;">#%d</td></tr>
							<tr><td style="padding: 6px 0;"><strong>Room:</strong></td><td style="text-align: right;">%s (%s)</td></tr>
							<tr><td style="padding: 6px 0;"><strong>Stay:</strong></td><td style="text-align: right;">%s — %s (%d nights)</td></tr>
						</table>
						<h3 style="color: #333;">Services</h3>
						<table width="100%%" cellpadding="0" cellspacing="0" style="border: 1px solid #e0e0e0; border-radius: 8px;">
							<thead>
								<tr style="background-color: #667eea; color: #ffffff;">
									<th style="padding: 10px; text-align: left;">Service</th>
									<th style="padding: 10px; text-align: center;">Qty</th>
									<th style="padding: 10px; text-align: right;">Amount</th>
								</tr>
							</thead>
							<tbody>%s</tbody>
						</table>
						<div style="margin-top: 20px; padding: 20px; background-color: #f8f9fa; border-radius: 8px;">
							<table width="100%%" cellpadding="0" cellspacing="0">
								<tr><td style="padding: 6px 0;"><strong>Total:</strong></td><td style="text-align: right;">₹%s</td></tr>
								<tr><td style="padding: 6px 0;"><strong>Paid:</strong></td><td style="text-align: right;">₹%s</td></tr>
								<tr style="border-top: 2px solid #667eea;"><td style="padding: 10px 0 0 0;"><strong>Balance due:</strong></td><td style="padding: 10px 0 0 0; text-align: right;"><strong style="color: #667eea;">₹%s</strong></td></tr>
							</table>
						</div>
					</td>
				</tr>
				<tr>
					<td style="background-color: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #999;">
						This is an automated email, please do not reply.
					</td>
				</tr>
			</table>
		</td></tr>
	</table>
</body>
</html>`,
		b.GuestName,
		b.ID,
		b.RoomNumber,
		b.RoomType,
		b.CheckInDate.Format("02/01/2006"),
		b.CheckOutDate.Format("02/01/2006"),
		b.Nights,
		servicesHTML,
		b.Total.StringFixed(2),
		b.Paid.StringFixed(2),
		b.Due.StringFixed(2),
	)
}
