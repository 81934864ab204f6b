// Package mailer builds the transactional emails sent by the membership flows.
package mailer

import (
	"context"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/email"
)

const fromName = "Org Members"

// InvitationTemplateData contains data for the invitation email template
type InvitationTemplateData struct {
	OrganizationName string
	InviterName      string
	PositionTitle    string
	InvitationLink   string
	ExpiresAt        time.Time
}

// SendInvitation sends the invitation link to the invited address.
func SendInvitation(ctx context.Context, s email.Sender, to string, data InvitationTemplateData) error {
	return s.SendEmail(ctx, email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "You're invited to join " + data.OrganizationName,
		TemplateName: "invitation",
		TemplateData: data,
	})
}

// RecoveryTemplateData contains data for the password recovery template
type RecoveryTemplateData struct {
	FullName     string
	RecoveryLink string
}

// SendPasswordRecovery sends a password setup or reset link.
func SendPasswordRecovery(ctx context.Context, s email.Sender, to string, data RecoveryTemplateData) error {
	return s.SendEmail(ctx, email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "Set your password",
		TemplateName: "password_recovery",
		TemplateData: data,
	})
}

// JoinRequestTemplateData contains data for the owner notification template
type JoinRequestTemplateData struct {
	OrganizationName string
	RequesterName    string
	RequesterEmail   string
	Message          string
	ReviewLink       string
}

// SendJoinRequestNotification tells an owner that someone asked to join.
func SendJoinRequestNotification(ctx context.Context, s email.Sender, to string, data JoinRequestTemplateData) error {
	return s.SendEmail(ctx, email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "New request to join " + data.OrganizationName,
		TemplateName: "join_request_notification",
		TemplateData: data,
	})
}

// ConfirmationTemplateData contains data for the account confirmation template
type ConfirmationTemplateData struct {
	FullName         string
	ConfirmationLink string
}

// SendAccountConfirmation welcomes a self-registered member.
func SendAccountConfirmation(ctx context.Context, s email.Sender, to string, data ConfirmationTemplateData) error {
	return s.SendEmail(ctx, email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "Confirm your account",
		TemplateName: "account_confirmation",
		TemplateData: data,
	})
}
