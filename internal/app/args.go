package app

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pranshuparmar/conndiag/pkg/model"
)

// ParseTarget validates the two positional arguments.
func ParseTarget(destination, port string) (model.ConnectionTarget, error) {
	if strings.TrimSpace(destination) == "" {
		return model.ConnectionTarget{}, errors.New("destination must not be empty")
	}
	p, err := strconv.ParseUint(strings.TrimSpace(port), 10, 16)
	if err != nil {
		return model.ConnectionTarget{}, errors.Errorf("invalid port %q: must be an integer between 0 and 65535", port)
	}
	return model.ConnectionTarget{Destination: destination, Port: uint16(p)}, nil
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}
	_, err := ParseTarget(args[0], args[1])
	return err
}
