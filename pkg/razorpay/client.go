// Package razorpay is a minimal client for the Razorpay Orders API plus
// the checkout signature-verification scheme.
package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.razorpay.com"

// Order is a remote gateway order as returned by POST /v1/orders.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Client talks to the Razorpay REST API with key id/secret basic auth.
type Client struct {
	keyID     string
	keySecret string
	http      *resty.Client
}

// NewClient creates a Razorpay client. Requests time out after 30 seconds;
// there is no retry, a failed gateway call surfaces to the caller.
func NewClient(keyID, keySecret string) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		http: resty.New().
			SetBaseURL(defaultBaseURL).
			SetBasicAuth(keyID, keySecret).
			SetTimeout(30 * time.Second),
	}
}

// SetBaseURL overrides the API endpoint, for tests.
func (c *Client) SetBaseURL(url string) {
	c.http.SetBaseURL(url)
}

// KeyID returns the public key id clients need to open the checkout widget.
func (c *Client) KeyID() string {
	return c.keyID
}

// CreateOrder creates a gateway order. Amount is in the smallest currency
// unit (paise for INR); receipt is the merchant-side order number.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error) {
	var order Order
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":   amount,
			"currency": currency,
			"receipt":  receipt,
		}).
		SetResult(&order).
		Post("/v1/orders")
	if err != nil {
		return nil, fmt.Errorf("razorpay order request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("razorpay order request failed with status %d: %s", resp.StatusCode(), resp.Body())
	}
	if order.ID == "" {
		return nil, fmt.Errorf("razorpay order response missing order id")
	}
	return &order, nil
}

// VerifySignature checks a checkout callback signature: HMAC-SHA256 over
// "<orderID>|<paymentID>" keyed with the API secret, hex encoded. The
// comparison is constant-time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
