package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"path/filepath"

	"github.com/gulzar-store/gulzar-api/models"
)

type EmailData struct {
	Name        string
	OrderNumber string
	Total       string
	Message     string
	LogoURL     string
}

func SendEmail(emailTo string, emailSubject string, data EmailData, templatePath string) error {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		os.Getenv("FROM_EMAIL"),
		emailSubject,
		body.String(),
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	if err := smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendOrderConfirmationEmail mails the customer after a successful
// checkout. Card data never reaches the template.
func SendOrderConfirmationEmail(user models.User, order *models.Order) error {
	emailData := EmailData{
		Name:        user.Fullname,
		OrderNumber: order.OrderNumber,
		Total:       order.Total.StringFixed(2),
		Message:     "Thank you for your order! Your flowers are being prepared for delivery.",
		LogoURL:     os.Getenv("FRONTEND_URL") + "/images/logo.png",
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return SendEmail(user.Email, "Gulzar Order "+order.OrderNumber, emailData, templatePath)
}
