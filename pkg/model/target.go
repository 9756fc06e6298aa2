package model

import (
	"net"
	"strconv"
)

// ConnectionTarget is the destination and port given on the command line.
type ConnectionTarget struct {
	Destination string `json:"destination"`
	Port        uint16 `json:"port"`
}

// Address returns the dialable host:port form, bracketing IPv6 literals.
func (t ConnectionTarget) Address() string {
	return net.JoinHostPort(t.Destination, strconv.Itoa(int(t.Port)))
}
