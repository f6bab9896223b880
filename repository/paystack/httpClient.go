package paystackrepo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Dayo-Adewuyi/Books-API/util/httpx"
)

type httpRepo struct {
	baseURL    string
	secretKey  string
	payerEmail string
	client     *http.Client
}

func NewHTTP(baseURL, secretKey, payerEmail string) Repo {
	return &httpRepo{
		baseURL:    baseURL,
		secretKey:  secretKey,
		payerEmail: payerEmail,
		client:     httpx.Client(),
	}
}

func (r *httpRepo) Initialize(ctx context.Context, userID, amount string) (*InitializeResp, error) {
	body := map[string]any{
		"email":    r.payerEmail,
		"amount":   amount,
		"metadata": map[string]any{"user_id": userID},
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"transaction/initialize", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+r.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("paystack initialize failed: %s", resp.Status)
	}

	var out struct {
		Status  bool           `json:"status"`
		Message string         `json:"message"`
		Data    InitializeResp `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Data.Reference == "" {
		return nil, errors.New("paystack: empty transaction reference")
	}
	return &out.Data, nil
}

func (r *httpRepo) VerifyPayment(ctx context.Context, reference string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"transaction/verify/"+reference, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+r.secretKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("paystack verify failed: %s", resp.Status)
	}

	var out struct {
		Status bool `json:"status"`
		Data   struct {
			Status    string `json:"status"`
			Reference string `json:"reference"`
			Amount    int64  `json:"amount"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Data.Status, nil
}
