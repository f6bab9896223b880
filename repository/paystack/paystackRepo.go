package paystackrepo

import "context"

// InitializeResp is the payload Paystack returns when a transaction is
// initialized. The caller redirects the end user to AuthorizationURL and
// keeps Reference for later verification.
type InitializeResp struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type Repo interface {
	// Initialize starts a transaction for amount (minor units, as a string).
	Initialize(ctx context.Context, userID, amount string) (*InitializeResp, error)
	// VerifyPayment resolves a reference to the gateway's status string.
	VerifyPayment(ctx context.Context, reference string) (string, error)
}

// stubRepo answers with fixed values and never calls out. Used when
// APP_ENV=test so the purchase flow stays deterministic.
type stubRepo struct{}

func NewStub() Repo { return stubRepo{} }

func (stubRepo) Initialize(ctx context.Context, userID, amount string) (*InitializeResp, error) {
	return &InitializeResp{
		AuthorizationURL: "https://test.authorization.url",
		AccessCode:       "test-access-code",
		Reference:        "test-reference",
	}, nil
}

func (stubRepo) VerifyPayment(ctx context.Context, reference string) (string, error) {
	return "success", nil
}
