package assembler

import (
	"encoding/json"
	"fmt"

	"github.com/alexisbeaulieu97/nuxtvuetify/pkg/diff"
)

// Parity compares a client and a server payload with the ssr flag set aside.
// It returns a unified diff of their JSON forms, empty when they agree.
func Parity(client, server Payload) (string, error) {
	client.SSR, server.SSR = false, false

	left, err := json.MarshalIndent(client, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode client payload: %w", err)
	}
	right, err := json.MarshalIndent(server, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode server payload: %w", err)
	}
	return diff.GenerateUnifiedDiff(append(left, '\n'), append(right, '\n'), string(Client), string(Server)), nil
}
