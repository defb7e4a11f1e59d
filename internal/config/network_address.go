package config

import (
	"fmt"
	"strconv"
	"strings"
)

// NetworkAddress — адрес HTTP сервера вида host:port, задаваемый
// переменной окружения или флагом -a
type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set разбирает строку host:port; host может быть пустым
func (a *NetworkAddress) Set(value string) error {
	host, portStr, ok := strings.Cut(value, ":")
	if !ok {
		return fmt.Errorf("invalid network address format: %s", value)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port out of range: %d", port)
	}

	a.Host = host
	a.Port = port

	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
