package service

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"clubmanager_backend/internals/configs"
)

// SendPasswordResetEmail mengirim link reset via SendGrid. Tanpa API key
// (dev lokal) link cukup di-log, flow tetap jalan.
func SendPasswordResetEmail(toEmail, rawToken string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", configs.FrontendURL, rawToken)

	if configs.SendgridAPIKey == "" {
		log.Printf("[INFO] SENDGRID_API_KEY kosong, reset link untuk %s: %s", toEmail, resetLink)
		return nil
	}

	from := mail.NewEmail("Club Manager", configs.SendgridFrom)
	to := mail.NewEmail("", toEmail)
	subject := "Restablecer contraseña"
	plain := fmt.Sprintf(
		"Recibimos una solicitud para restablecer tu contraseña.\n\n"+
			"Abrí este enlace para elegir una nueva (válido por 1 hora):\n%s\n\n"+
			"Si no fuiste vos, ignorá este mensaje.", resetLink)
	html := fmt.Sprintf(
		`<p>Recibimos una solicitud para restablecer tu contraseña.</p>`+
			`<p><a href="%s">Elegir nueva contraseña</a> (válido por 1 hora)</p>`+
			`<p>Si no fuiste vos, ignorá este mensaje.</p>`, resetLink)

	msg := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(configs.SendgridAPIKey)

	resp, err := client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid menolak email: status %d", resp.StatusCode)
	}
	return nil
}
