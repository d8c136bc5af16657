package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendVerificationEmail mails the link that marks an anonymous review as
// coming from a verified student address.
func SendVerificationEmail(to, token string) error {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	link := fmt.Sprintf("%s/reviews/verify/%s", baseURL, token)

	subject := "Verify your advisor review"
	body := fmt.Sprintf(`
		<p>Thanks for submitting a review.</p>
		<p>Click the link below to confirm your university email address.
		Verified reviews display a verified-student badge once approved.</p>
		<p><a href="%s">%s</a></p>
		<p>The link expires in 24 hours. If you did not submit a review,
		ignore this email.</p>
	`, link, link)

	return SendEmail(to, subject, body)
}
