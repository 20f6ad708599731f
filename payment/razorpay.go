// Package payment holds the Razorpay gateway client. Only order
// creation and signature verification are implemented; refund execution
// is out of scope.
package payment

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

const defaultBaseURL = "https://api.razorpay.com"

// Order is the gateway-side payment intent returned by Razorpay.
type Order struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"` // paise
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	http      *http.Client
}

// NewClient builds a client against the given endpoint. An empty baseURL
// selects the production API.
func NewClient(keyID, keySecret, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		http:      &http.Client{},
	}
}

// NewClientFromEnv reads RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET, falling
// back to the sandbox test credentials.
func NewClientFromEnv() *Client {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	if keyID == "" {
		keyID = "rzp_test_1234567890"
	}
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keySecret == "" {
		keySecret = "test_secret_key"
	}
	return NewClient(keyID, keySecret, os.Getenv("RAZORPAY_API_URL"))
}

type orderError struct {
	Error *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// CreateOrder registers a payment intent with the gateway. Amount is in
// paise.
func (c *Client) CreateOrder(amountPaise int, receipt string, notes map[string]string) (Order, error) {
	payload := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  receipt,
		"notes":    notes,
	}
	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", c.baseURL+"/v1/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return Order{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return Order{}, fmt.Errorf("failed to reach Razorpay: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		var apiErr orderError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != nil {
			return Order{}, fmt.Errorf("razorpay error: %s", apiErr.Error.Description)
		}
		return Order{}, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return Order{}, fmt.Errorf("failed to parse Razorpay response: %v", err)
	}
	if order.ID == "" {
		return Order{}, fmt.Errorf("razorpay returned empty order id")
	}
	return order, nil
}

// VerifySignature recomputes the checkout signature from the shared key
// secret and compares it in constant time. The signed payload is
// "<order_id>|<payment_id>".
func (c *Client) VerifySignature(razorpayOrderID, razorpayPaymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(razorpayOrderID + "|" + razorpayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
