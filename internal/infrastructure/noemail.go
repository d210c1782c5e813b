package infrastructure

// NoEmail is used when no SMTP server has been configured; approvals
// still succeed, just without the outbound pass email.
type NoEmail struct {
}

func (s *NoEmail) Send(address, subject, body string) error {
	return nil
}

func (s *NoEmail) From() string {
	return ""
}
