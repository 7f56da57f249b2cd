package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type PasswordResetData struct {
	FullName  string
	ResetLink string
}

var resetTemplate = template.Must(template.New("reset").Parse(`
<p>Hello {{.FullName}},</p>
<p>We received a request to reset the password for your hotel booking account.</p>
<p><a href="{{.ResetLink}}">Click here to reset your password</a></p>
<p>The link expires in 30 minutes. If you did not request this, you can ignore this email.</p>
`))

// SendPasswordResetEmail gửi email đặt lại mật khẩu (async)
func SendPasswordResetEmail(to string, data PasswordResetData) {
	go func() {
		var body bytes.Buffer
		if err := resetTemplate.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Reset your password")
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email: %v", err)
		}
	}()
}
