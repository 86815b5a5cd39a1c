package feed

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-market/internal/api/shared/dto"
	"github.com/feral-file/ff-market/internal/marketplace"
	"github.com/feral-file/ff-market/internal/wallet"
)

// MessageType names the kinds of feed messages
type MessageType string

const (
	MessageTypeTransaction MessageType = "transaction"
	MessageTypeToast       MessageType = "toast"
	MessageTypeStatus      MessageType = "status"
	MessageTypeSession     MessageType = "session"
)

// Message is one websocket frame
type Message struct {
	Type        MessageType               `json:"type"`
	Transaction *dto.TransactionResponse  `json:"transaction,omitempty"`
	Toast       *Toast                    `json:"toast,omitempty"`
	Status      *marketplace.StatusUpdate `json:"status,omitempty"`
	Session     *wallet.SessionState      `json:"session,omitempty"`
}

// Toast is a transient notification shown for a new transaction
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// toastFor builds the notification of a transaction. Rows without an asset get none.
func toastFor(tx *dto.TransactionResponse) *Toast {
	if tx.AssetName == nil {
		return nil
	}
	return &Toast{
		Title:       fmt.Sprintf("New %s: %s", tx.Kind, *tx.AssetName),
		Description: fmt.Sprintf("%s → %s", shortAddress(tx.FromAddress), shortAddress(tx.ToAddress)),
	}
}

// shortAddress renders 0x1234...abcd
func shortAddress(address string) string {
	if len(address) <= 10 || !strings.HasPrefix(address, "0x") {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
