package smoketest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/justice-chain/classifier/internal/model"
)

type Credentials struct {
	Email    string
	Password string
}

type Options struct {
	BackendURL string
	FIRURL     string
	RelayURL   string
	Citizen    Credentials
	Admin      Credentials
	SkipFIR    bool
	SkipRelay  bool
	// ClassifySample 은 /classify 에 보낼 사건 설명
	ClassifySample string
}

// Checks builds the check list: auth backend first, then the FIR store, then
// the classification relay.
func Checks(opts Options) []Check {
	backend := strings.TrimRight(opts.BackendURL, "/")
	checks := []Check{
		{
			Name:           "Citizen Login",
			Method:         http.MethodPost,
			URL:            backend + "/api/auth/citizen/login",
			ExpectedStatus: http.StatusOK,
			Body:           map[string]string{"email": opts.Citizen.Email, "password": opts.Citizen.Password},
		},
		{
			Name:           "Admin Login",
			Method:         http.MethodPost,
			URL:            backend + "/api/auth/admin/login",
			ExpectedStatus: http.StatusOK,
			Body:           map[string]string{"email": opts.Admin.Email, "password": opts.Admin.Password},
		},
	}

	if !opts.SkipFIR {
		fir := strings.TrimRight(opts.FIRURL, "/")
		checks = append(checks,
			Check{Name: "FIR Store Health", Method: http.MethodGet, URL: fir + "/", ExpectedStatus: http.StatusOK},
			Check{Name: "List FIRs", Method: http.MethodGet, URL: fir + "/api/getAllFIRs", ExpectedStatus: http.StatusOK},
		)
	}

	if !opts.SkipRelay {
		relay := strings.TrimRight(opts.RelayURL, "/")
		sample := opts.ClassifySample
		if sample == "" {
			sample = "Armed robbery at a bank"
		}
		checks = append(checks,
			Check{Name: "Relay Health", Method: http.MethodGet, URL: relay + "/", ExpectedStatus: http.StatusOK},
			Check{
				Name:           "Classify Incident",
				Method:         http.MethodPost,
				URL:            relay + "/classify",
				ExpectedStatus: http.StatusOK,
				Body:           model.ClassifyRequest{IncidentDescription: sample},
				Verify:         verifyPriority,
			},
		)
	}

	return checks
}

func verifyPriority(body []byte) error {
	var resp model.ClassifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to parse classify response: %w", err)
	}
	if !resp.Priority.Valid() {
		return fmt.Errorf("unexpected priority %q", resp.Priority)
	}
	return nil
}
