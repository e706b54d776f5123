package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendReservationCreated(ctx context.Context, email, name, equipmentName string, amountCents int32) error {
	body := fmt.Sprintf("Hello %s,\n\nYour reservation for %s has been created and is awaiting approval.\nTotal: $%.2f\n\nThe EngineRent Team",
		name, equipmentName, float64(amountCents)/100)
	return s.send(email, name, "Reservation received", body)
}

func (s *emailService) SendReservationDecision(ctx context.Context, email, name, equipmentName string, approved bool) error {
	decision := "approved"
	if !approved {
		decision = "rejected"
	}
	body := fmt.Sprintf("Hello %s,\n\nYour reservation for %s has been %s.\n\nThe EngineRent Team", name, equipmentName, decision)
	return s.send(email, name, fmt.Sprintf("Reservation %s", decision), body)
}

func (s *emailService) SendMaintenanceReminder(ctx context.Context, email, name, equipmentName, scheduledDate string) error {
	body := fmt.Sprintf("Hello %s,\n\nReminder: maintenance for %s is scheduled on %s.\n\nThe EngineRent Team", name, equipmentName, scheduledDate)
	return s.send(email, name, "Upcoming maintenance", body)
}
