package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// ScanCommander sends scan commands.
type ScanCommander struct {
	sender Sender
}

// NewScanCommander returns new ScanCommander using provided sender for sending messages.
func NewScanCommander(sender Sender) ScanCommander {
	return ScanCommander{
		sender: sender,
	}
}

// SendScanCommand sends scan command for the tracked url.
func (c ScanCommander) SendScanCommand(ctx context.Context, urlID, url string) error {
	cmd := ScanCommand{
		URLID: urlID,
		URL:   url,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal scan command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
