package diagnose

import (
	"fmt"

	"github.com/pranshuparmar/conndiag/pkg/model"
)

// Advise returns the narration for a failed attempt of the given class.
func Advise(class model.ErrorClass, target model.ConnectionTarget, raw *model.RawError) model.Advice {
	switch class {
	case model.ClassRefused:
		return model.Advice{
			Title: "Connection refused",
			Explanation: fmt.Sprintf(
				"The connection was actively refused by %s. The server is up and reachable, but nothing accepted the connection on port %d.",
				target.Destination, target.Port),
			Causes: []string{
				"No process on the server is listening on that port.",
				"A firewall on the server rejected the connection.",
			},
			NextSteps: []string{
				"Take a packet capture on the server using Wireshark or tcpdump.",
				fmt.Sprintf("Ensure the server is listening on port %d (ss -ltn, netstat -an).", target.Port),
				"Ensure the server is not behind a firewall that rejects the port.",
			},
		}
	case model.ClassTimedOut:
		return model.Advice{
			Title: "Connection timed out",
			Explanation: fmt.Sprintf(
				"No answer came back from %s before the connect timeout. This could be a lot of things.",
				target.Address()),
			Causes: []string{
				"The server is down.",
				"The server is up, but silently dropped the connection.",
				"The server is behind a firewall.",
			},
			NextSteps: []string{
				"Take a packet capture on the server using tcpdump.",
				fmt.Sprintf("Validate DNS resolution is correct using nslookup %s.", target.Destination),
			},
		}
	case model.ClassHostUnresolved:
		return model.Advice{
			Title:       "Host not found",
			Explanation: fmt.Sprintf("Could not resolve %s.", target.Destination),
			NextSteps: []string{
				"Check the destination for typos.",
			},
		}
	}

	detail := "no error detail"
	if raw != nil {
		detail = raw.Message
		if raw.HasCode {
			detail = fmt.Sprintf("%s (code %d)", raw.Message, raw.Code)
		}
	}
	return model.Advice{
		Title: "Unknown error",
		Explanation: fmt.Sprintf("Unknown error occurred when connecting to %s port %d: %s",
			target.Destination, target.Port, detail),
	}
}
