// Package gateway talks to the SSLCommerz-compatible payment gateway.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	intconfig "tourtravel/internal/config"
	"tourtravel/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	initiatePath = "/gwprocess/v4/api.php"
	validatePath = "/validator/api/validationserverAPI.php"

	StatusValid = "VALID"
)

// InitiateRequest is the per-payment part of a session request. Merchant
// credentials, callback URLs and address placeholders come from config.
type InitiateRequest struct {
	TransactionID string
	Amount        decimal.Decimal
	Currency      string
	CusName       string
	CusEmail      string
	CusPhone      string
}

type InitiateResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

type ValidationResponse struct {
	Status        string `json:"status"`
	TranID        string `json:"tran_id"`
	ValID         string `json:"val_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	BankTranID    string `json:"bank_tran_id"`
	CardType      string `json:"card_type"`
	TranDate      string `json:"tran_date"`
	FailedReason  string `json:"failedreason,omitempty"`
	APIConnect    string `json:"APIConnect,omitempty"`
	RiskLevel     string `json:"risk_level,omitempty"`
	RiskTitle     string `json:"risk_title,omitempty"`
	CurrencyType  string `json:"currency_type,omitempty"`
	CurrencyValue string `json:"currency_amount,omitempty"`
}

// Valid reports whether the gateway vouches for the transaction.
func (v ValidationResponse) Valid() bool {
	return strings.EqualFold(strings.TrimSpace(v.Status), StatusValid)
}

type Client struct {
	cfg  intconfig.GatewayConfig
	http *http.Client
}

func NewClient(cfg intconfig.GatewayConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, http: httpClient}
}

func (c *Client) form(req InitiateRequest) url.Values {
	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = c.cfg.DefaultCurrency
	}
	f := url.Values{}
	f.Set("store_id", c.cfg.StoreID)
	f.Set("store_passwd", c.cfg.StorePasswd)
	f.Set("total_amount", req.Amount.StringFixed(2))
	f.Set("currency", currency)
	f.Set("tran_id", req.TransactionID)
	f.Set("success_url", c.cfg.SuccessURL)
	f.Set("fail_url", c.cfg.FailURL)
	f.Set("cancel_url", c.cfg.CancelURL)
	f.Set("ipn_url", c.cfg.IPNURL)
	f.Set("shipping_method", "NO")
	f.Set("product_name", "Tour Package")
	f.Set("product_category", "Travel")
	f.Set("product_profile", "general")
	f.Set("cus_name", req.CusName)
	f.Set("cus_email", req.CusEmail)
	f.Set("cus_phone", req.CusPhone)
	f.Set("cus_add1", c.cfg.City)
	f.Set("cus_city", c.cfg.City)
	f.Set("cus_state", c.cfg.City)
	f.Set("cus_postcode", c.cfg.Postcode)
	f.Set("cus_country", c.cfg.Country)
	f.Set("ship_name", req.CusName)
	f.Set("ship_add1", c.cfg.City)
	f.Set("ship_city", c.cfg.City)
	f.Set("ship_state", c.cfg.City)
	f.Set("ship_postcode", c.cfg.Postcode)
	f.Set("ship_country", c.cfg.Country)
	return f
}

// Initiate opens a gateway session. A transport failure or non-2xx reply is
// GatewayUnreachable; a reply without GatewayPageURL is GatewayInitiationFailed.
func (c *Client) Initiate(ctx context.Context, req InitiateRequest) (InitiateResponse, error) {
	body := c.form(req).Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+initiatePath, strings.NewReader(body))
	if err != nil {
		return InitiateResponse{}, domain.GatewayError{Kind: domain.GatewayUnreachable, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out InitiateResponse
	if err := c.do(httpReq, &out); err != nil {
		return InitiateResponse{}, err
	}
	if strings.TrimSpace(out.GatewayPageURL) == "" {
		reason := out.FailedReason
		if reason == "" {
			reason = "no GatewayPageURL in response"
		}
		return out, domain.GatewayError{Kind: domain.GatewayInitiationFailed, Err: fmt.Errorf("%s", reason)}
	}
	return out, nil
}

// Validate asks the gateway whether valID belongs to a completed transaction.
func (c *Client) Validate(ctx context.Context, valID string) (ValidationResponse, error) {
	q := url.Values{}
	q.Set("val_id", valID)
	q.Set("store_id", c.cfg.StoreID)
	q.Set("store_passwd", c.cfg.StorePasswd)
	q.Set("format", "json")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+validatePath+"?"+q.Encode(), nil)
	if err != nil {
		return ValidationResponse{}, domain.GatewayError{Kind: domain.GatewayUnreachable, Err: err}
	}

	var out ValidationResponse
	if err := c.do(httpReq, &out); err != nil {
		return ValidationResponse{}, err
	}
	return out, nil
}

func (c *Client) do(req *http.Request, dst any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.GatewayError{Kind: domain.GatewayUnreachable, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.GatewayError{Kind: domain.GatewayUnreachable, Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.GatewayError{Kind: domain.GatewayUnreachable, Err: fmt.Errorf("%s returned %d", req.URL.Path, resp.StatusCode)}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return domain.GatewayError{Kind: domain.GatewayUnreachable, Err: fmt.Errorf("decode %s: %w", req.URL.Path, err)}
	}
	return nil
}
