package infrastructure

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

type SMTP struct {
	Server     string
	Port       int
	User       string
	Password   string
	SenderName string
}

func (s *SMTP) Send(address, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.SenderName, s.User))
	m.SetHeader("To", address)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Server, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		log.Println(err)
		return err
	}

	return nil
}

func (s *SMTP) From() string {
	return s.User
}
