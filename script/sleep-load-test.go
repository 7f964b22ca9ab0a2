package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"
)

// sleepRequest is the POST /clock/sleep payload
type sleepRequest struct {
	Secs  int64 `json:"secs"`
	Nanos int32 `json:"nanos"`
}

// durationBody mirrors the server's duration JSON
type durationBody struct {
	Secs  int64 `json:"secs"`
	Nanos int32 `json:"nanos"`
}

func (d durationBody) std() time.Duration {
	return time.Duration(d.Secs)*time.Second + time.Duration(d.Nanos)
}

// sleepResponse is the subset of the sleep record the probe reads
type sleepResponse struct {
	ID        uint64       `json:"id"`
	Overshoot durationBody `json:"overshoot"`
	Yields    uint64       `json:"yields"`
}

// sleepScenario names one requested span
type sleepScenario struct {
	Name  string
	Nanos int32
}

// probeResult holds the outcome of one request
type probeResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	Overshoot    time.Duration
	Yields       uint64
	Error        error
}

// probeStats aggregates results across workers
type probeStats struct {
	TotalRequests  int
	Successful     int
	Failed         int
	TotalTime      time.Duration
	ResponseTimes  []time.Duration
	Overshoots     []time.Duration
	TotalYields    uint64
	ErrorCounts    map[string]int
	ScenarioCounts map[string]int
	Lock           sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 4, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of sleep requests")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	scenarios := []sleepScenario{
		{"1ms", 1_000_000},
		{"10ms", 10_000_000},
		{"50ms", 50_000_000},
		{"250ms", 250_000_000},
	}

	fmt.Printf("Probing %s/clock/sleep with %d goroutines, %d requests\n", *baseURL, *concurrency, *totalRequests)

	stats := &probeStats{
		TotalRequests:  *totalRequests,
		ResponseTimes:  make([]time.Duration, 0, *totalRequests),
		Overshoots:     make([]time.Duration, 0, *totalRequests),
		ErrorCounts:    make(map[string]int),
		ScenarioCounts: make(map[string]int),
	}

	results := make(chan probeResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, scenarios, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	var collected sync.WaitGroup
	collected.Add(1)
	go func() {
		defer collected.Done()
		for result := range results {
			stats.record(result)
		}
	}()

	wg.Wait()
	close(results)
	collected.Wait()
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func (s *probeStats) record(r probeResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ScenarioCounts[r.Scenario]++
	if !r.Success {
		s.Failed++
		s.ErrorCounts[r.Error.Error()]++
		return
	}

	s.Successful++
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	s.Overshoots = append(s.Overshoots, r.Overshoot)
	s.TotalYields += r.Yields
}

func worker(baseURL string, delayMs int, scenarios []sleepScenario, jobs <-chan int, results chan<- probeResult) {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := scenarios[rand.Intn(len(scenarios))]
		result := probeResult{Scenario: scenario.Name}

		body, err := json.Marshal(sleepRequest{Nanos: scenario.Nanos})
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		startTime := time.Now()
		resp, err := client.Post(baseURL+"/clock/sleep", "application/json", bytes.NewReader(body))
		result.ResponseTime = time.Since(startTime)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		var decoded sleepResponse
		switch {
		case resp.StatusCode != http.StatusOK:
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		default:
			if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
				result.Error = fmt.Errorf("decode response: %w", err)
			} else {
				result.Success = true
				result.Overshoot = decoded.Overshoot.std()
				result.Yields = decoded.Yields
			}
		}
		resp.Body.Close()

		results <- result
	}
}

// percentile expects sorted input
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func sortedCopy(values []time.Duration) []time.Duration {
	out := make([]time.Duration, len(values))
	copy(out, values)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func printResults(stats *probeStats) {
	responses := sortedCopy(stats.ResponseTimes)
	overshoots := sortedCopy(stats.Overshoots)

	fmt.Println("\n================= SLEEP PROBE RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d\n", stats.Successful)
	fmt.Printf("Failed Requests:     %d\n", stats.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50 Response:        %v\n", percentile(responses, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(responses, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(responses, 99))

	fmt.Println("\n----------------- OVERSHOOT -----------------")
	fmt.Printf("P50 Overshoot:       %v\n", percentile(overshoots, 50))
	fmt.Printf("P90 Overshoot:       %v\n", percentile(overshoots, 90))
	fmt.Printf("P99 Overshoot:       %v\n", percentile(overshoots, 99))
	if stats.Successful > 0 {
		fmt.Printf("Average Yields:      %.1f\n", float64(stats.TotalYields)/float64(stats.Successful))
	}

	fmt.Println("\n----------------- SCENARIOS -----------------")
	for name, count := range stats.ScenarioCounts {
		fmt.Printf("%-8s: %d requests\n", name, count)
	}

	if stats.Failed > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
