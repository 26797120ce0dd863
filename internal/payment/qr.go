package payment

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRPayload renders the payment payload shown when the QR / digital method is
// selected. The payload is a PNG; the terminal displays it for the customer
// to scan.
func QRPayload(req ChargeRequest) ([]byte, error) {
	content := fmt.Sprintf("abarrotes-pos://pay?session=%s&amount=%.2f&currency=%s",
		req.SessionID, req.Amount, req.Currency)
	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr payload: %w", err)
	}
	return png, nil
}
