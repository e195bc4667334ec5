// Package smoketest runs a fixed, sequential list of HTTP checks against the
// JusticeChain services and prints a console report.
package smoketest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxSnippet 는 리포트에 출력할 응답 본문 최대 길이
const maxSnippet = 200

// Check 는 단일 HTTP 요청과 기대 상태 코드
type Check struct {
	Name           string
	Method         string
	URL            string
	ExpectedStatus int
	Body           any
	// Verify 는 상태 코드가 일치할 때 응답 본문을 추가 검증
	Verify func(body []byte) error
}

type Result struct {
	Check      Check
	Passed     bool
	StatusCode int
	Body       string
	Err        error
}

type Report struct {
	Run     int
	Passed  int
	Results []Result
}

func (r Report) OK() bool {
	return r.Run == r.Passed
}

type Runner struct {
	httpClient *http.Client
	out        io.Writer
}

func NewRunner(timeout time.Duration, out io.Writer) *Runner {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Runner{httpClient: &http.Client{Timeout: timeout}, out: out}
}

// Run 은 check를 순서대로 실행. 실패해도 다음 check를 계속 진행
func (r *Runner) Run(ctx context.Context, checks []Check) Report {
	var report Report
	for _, check := range checks {
		res := r.runOne(ctx, check)
		report.Run++
		if res.Passed {
			report.Passed++
		}
		report.Results = append(report.Results, res)
	}
	fmt.Fprintf(r.out, "\nTests passed: %d/%d\n", report.Passed, report.Run)
	return report
}

func (r *Runner) runOne(ctx context.Context, check Check) Result {
	fmt.Fprintf(r.out, "\nTesting %s...\n", check.Name)
	res := Result{Check: check}

	var reqBody io.Reader
	if check.Body != nil {
		payload, err := json.Marshal(check.Body)
		if err != nil {
			res.Err = fmt.Errorf("failed to marshal request: %w", err)
			fmt.Fprintf(r.out, "FAIL - Error: %v\n", res.Err)
			return res
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, check.Method, check.URL, reqBody)
	if err != nil {
		res.Err = fmt.Errorf("failed to create request: %w", err)
		fmt.Fprintf(r.out, "FAIL - Error: %v\n", res.Err)
		return res
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		res.Err = err
		fmt.Fprintf(r.out, "FAIL - Error: %v\n", err)
		return res
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Err = fmt.Errorf("failed to read response: %w", err)
	}
	res.StatusCode = resp.StatusCode
	res.Body = snippet(body)

	if resp.StatusCode != check.ExpectedStatus {
		fmt.Fprintf(r.out, "FAIL - Expected %d, got %d\nResponse: %s\n", check.ExpectedStatus, resp.StatusCode, res.Body)
		return res
	}
	if res.Err == nil && check.Verify != nil {
		res.Err = check.Verify(body)
	}
	if res.Err != nil {
		fmt.Fprintf(r.out, "FAIL - Status: %d, Error: %v\n", resp.StatusCode, res.Err)
		return res
	}

	res.Passed = true
	fmt.Fprintf(r.out, "PASS - Status: %d\nResponse: %s\n", resp.StatusCode, res.Body)
	return res
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxSnippet {
		return s[:maxSnippet] + "..."
	}
	return s
}
