package transport

import (
	"net/smtp"

	"github.com/pkg/errors"
)

// loginAuth implements the (obsolete but still widespread) LOGIN authentication mechanism.
type loginAuth struct {
	username string
	password string
}

func LoginAuth(username string, password string) smtp.Auth {
	return &loginAuth{username, password}
}

func (a *loginAuth) Start(_ *smtp.ServerInfo) (string, []byte, error) {
	return "LOGIN", []byte(a.username), nil
}

func (a *loginAuth) Next(fromServer []byte, more bool) ([]byte, error) {
	if !more {
		return nil, nil
	}

	switch string(fromServer) {
	case "Username:":
		return []byte(a.username), nil
	case "Password:":
		return []byte(a.password), nil
	default:
		return nil, errors.Errorf("unknown message from server: %s", string(fromServer))
	}
}
