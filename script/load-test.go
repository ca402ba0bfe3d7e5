package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Scenario is one kind of request the workers fire
type Scenario struct {
	Name   string
	Type   string
	Amount string
}

// Result contains metrics for a single request
type Result struct {
	Scenario     Scenario
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Err          error
}

// Stats contains aggregated test statistics
type Stats struct {
	mu            sync.Mutex
	Total         int
	Successful    int
	Failed        int
	ResponseTimes []time.Duration
	ErrorCounts   map[string]int
	ScenarioStats map[string]int
	Deposited     decimal.Decimal
}

type client struct {
	http    *http.Client
	baseURL string
	token   string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of transaction requests")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	username := flag.String("user", "", "KYC-approved user to trade as")
	password := flag.String("password", "", "Password of -user")
	adminUser := flag.String("admin", "admin", "Admin account used to decide withdrawals")
	adminPassword := flag.String("admin-password", "", "Password of -admin")
	delayMs := flag.Int("delay", 50, "Delay between requests in milliseconds")
	flag.Parse()

	if *username == "" || *password == "" || *adminPassword == "" {
		fmt.Fprintln(os.Stderr, "-user, -password and -admin-password are required")
		os.Exit(2)
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}
	user := &client{http: httpClient, baseURL: *baseURL}
	admin := &client{http: httpClient, baseURL: *baseURL}
	if err := user.login(*username, *password); err != nil {
		fail("user login", err)
	}
	if err := admin.login(*adminUser, *adminPassword); err != nil {
		fail("admin login", err)
	}

	startBalance, err := user.balance()
	if err != nil {
		fail("read balance", err)
	}

	scenarios := []Scenario{
		{"Deposit Small", "deposit", "10.00"},
		{"Deposit Large", "deposit", "50.00"},
		{"Withdraw Small", "withdrawal", "5.00"},
		{"Withdraw Medium", "withdrawal", "15.00"},
	}

	fmt.Printf("Starting balance:  %s\n", startBalance)
	fmt.Printf("Concurrency:       %d goroutines\n", *concurrency)
	fmt.Printf("Total requests:    %d\n", *totalRequests)

	stats := &Stats{
		Total:         *totalRequests,
		ErrorCounts:   map[string]int{},
		ScenarioStats: map[string]int{},
		Deposited:     decimal.Zero,
	}

	jobs := make(chan Scenario, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- scenarios[rand.Intn(len(scenarios))]
	}
	close(jobs)

	started := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for scenario := range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				stats.record(user.create(scenario))
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(started)

	approved, conflicts, err := decidePending(admin, *concurrency)
	if err != nil {
		fail("decide withdrawals", err)
	}

	endBalance, err := user.balance()
	if err != nil {
		fail("read balance", err)
	}

	printResults(stats, elapsed)

	expected := startBalance.Add(stats.Deposited).Sub(approved)
	fmt.Println("\n----------------- LEDGER CHECK -----------------")
	fmt.Printf("Deposited:           %s\n", stats.Deposited.StringFixed(2))
	fmt.Printf("Withdrawals approved: %s\n", approved.StringFixed(2))
	fmt.Printf("Duplicate decisions refused: %d\n", conflicts)
	fmt.Printf("Expected balance:    %s\n", expected.StringFixed(2))
	fmt.Printf("Actual balance:      %s\n", endBalance.StringFixed(2))
	if !expected.Equal(endBalance) {
		fmt.Println("LEDGER MISMATCH")
		os.Exit(1)
	}
	fmt.Println("Ledger consistent")
}

func (s *Stats) record(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ScenarioStats[r.Scenario.Name]++
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	if !r.Success {
		s.Failed++
		msg := "unknown"
		if r.Err != nil {
			msg = r.Err.Error()
		}
		s.ErrorCounts[msg]++
		return
	}
	s.Successful++
	if r.Scenario.Type == "deposit" {
		s.Deposited = s.Deposited.Add(decimal.RequireFromString(r.Scenario.Amount))
	}
}

func (c *client) do(method, path string, body, out any) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	if out != nil {
		return resp.StatusCode, json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode, nil
}

func (c *client) login(username, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	if _, err := c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &out); err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

func (c *client) balance() (decimal.Decimal, error) {
	var out struct {
		Balance string `json:"balance"`
	}
	if _, err := c.do(http.MethodGet, "/api/wallet", nil, &out); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(out.Balance)
}

func (c *client) create(s Scenario) Result {
	started := time.Now()
	status, err := c.do(http.MethodPost, "/api/transactions", map[string]string{
		"type":   s.Type,
		"amount": s.Amount,
	}, nil)
	return Result{
		Scenario:     s,
		Success:      err == nil,
		ResponseTime: time.Since(started),
		StatusCode:   status,
		Err:          err,
	}
}

// decidePending approves every pending withdrawal twice in parallel. Exactly one
// decision per record may succeed; the loser must see 409.
func decidePending(admin *client, concurrency int) (decimal.Decimal, int, error) {
	var pending []struct {
		ID     uint64 `json:"id"`
		Amount string `json:"amount"`
	}
	if _, err := admin.do(http.MethodGet, "/api/admin/transactions/pending?limit=200", nil, &pending); err != nil {
		return decimal.Zero, 0, err
	}

	var (
		mu        sync.Mutex
		approved  = decimal.Zero
		conflicts int
		wg        sync.WaitGroup
		sem       = make(chan struct{}, concurrency)
	)

	for _, tx := range pending {
		for attempt := 0; attempt < 2; attempt++ {
			wg.Add(1)
			sem <- struct{}{}
			go func(id uint64, amount string) {
				defer wg.Done()
				defer func() { <-sem }()

				path := fmt.Sprintf("/api/admin/transactions/%d", id)
				status, err := admin.do(http.MethodPut, path, map[string]string{"status": "completed"}, nil)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					approved = approved.Add(decimal.RequireFromString(amount))
				case status == http.StatusConflict:
					conflicts++
				}
			}(tx.ID, tx.Amount)
		}
	}
	wg.Wait()

	return approved, conflicts, nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *Stats, elapsed time.Duration) {
	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.Total)
	fmt.Printf("Successful Requests: %d\n", stats.Successful)
	fmt.Printf("Failed Requests:     %d\n", stats.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("TPS:                 %.2f\n", float64(stats.Successful)/elapsed.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", name, count)
	}

	if stats.Failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
