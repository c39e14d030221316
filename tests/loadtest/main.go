package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	numWorkers   = 50
	testDuration = 10 * time.Second
)

var memberNames = []string{"Maya", "Jonah", "Priya", "Theo", "Lena", "Marcus", "Aoife", "Diego"}
var memberRoles = []string{"Crew Lead", "Tide Spotter", "Logistics", "Volunteer"}
var eventTitles = []string{"Sunrise Sweep", "Dune Restoration", "Pier Patrol", "Kelp Count"}
var eventSpots = []string{"North Pier", "Breakwater Dunes", "South Jetty", "Harbor Mouth"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== ShoreCrew Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n\n", numWorkers, testDuration)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Phase 1: Write-heavy roster churn. Every add persists synchronously,
	// so this phase is effectively a persistence benchmark.
	fmt.Println("\n--- Phase 1: Roster churn (70% POST, 30% DELETE) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.40:
			return doAddCrew(rng)
		case r < 0.70:
			return doAddEvent(rng)
		case r < 0.85:
			return doRemoveCrew(rng)
		default:
			return doRemoveEvent(rng)
		}
	})

	// Phase 2: Mixed read/write load
	fmt.Println("\n--- Phase 2: Mixed load (40% POST, 60% GET) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.25:
			return doAddCrew(rng)
		case r < 0.40:
			return doAddEvent(rng)
		case r < 0.65:
			return doGetCrew()
		case r < 0.90:
			return doGetEvents()
		default:
			return doGetWeather()
		}
	})

	// Phase 3: Read-heavy load against the view cache
	fmt.Println("\n--- Phase 3: Read-heavy load (5% POST, 95% GET) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.05:
			return doAddCrew(rng)
		case r < 0.45:
			return doGetCrew()
		case r < 0.85:
			return doGetEvents()
		default:
			return doGetWeather()
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

// seenIDs collects ids returned by add calls so delete calls can target real
// entries part of the time.
var (
	seenMu   sync.Mutex
	crewIDs  []int64
	eventIDs []int64
)

func rememberID(ids *[]int64, id int64) {
	seenMu.Lock()
	defer seenMu.Unlock()
	*ids = append(*ids, id)
	if len(*ids) > 2000 {
		*ids = (*ids)[1000:]
	}
}

func randomID(rng *rand.Rand, ids *[]int64) int64 {
	seenMu.Lock()
	defer seenMu.Unlock()
	if len(*ids) == 0 {
		return rng.Int63n(1 << 40)
	}
	idx := rng.Intn(len(*ids))
	id := (*ids)[idx]
	*ids = append((*ids)[:idx], (*ids)[idx+1:]...)
	return id
}

func doAddCrew(rng *rand.Rand) result {
	body := map[string]interface{}{
		"name": fmt.Sprintf("%s %d", memberNames[rng.Intn(len(memberNames))], rng.Intn(10000)),
		"role": memberRoles[rng.Intn(len(memberRoles))],
	}
	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/crew", "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /crew", 0, lat, true}
	}
	var created struct {
		ID int64 `json:"id"`
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if json.Unmarshal(raw, &created) == nil && created.ID != 0 {
		rememberID(&crewIDs, created.ID)
	}
	return result{"POST /crew", resp.StatusCode, lat, resp.StatusCode != 201}
}

func doAddEvent(rng *rand.Rand) result {
	body := map[string]interface{}{
		"title":    fmt.Sprintf("%s %d", eventTitles[rng.Intn(len(eventTitles))], rng.Intn(10000)),
		"date":     fmt.Sprintf("2026-%02d-%02d", rng.Intn(12)+1, rng.Intn(28)+1),
		"location": eventSpots[rng.Intn(len(eventSpots))],
	}
	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/events", "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /events", 0, lat, true}
	}
	var created struct {
		ID int64 `json:"id"`
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if json.Unmarshal(raw, &created) == nil && created.ID != 0 {
		rememberID(&eventIDs, created.ID)
	}
	return result{"POST /events", resp.StatusCode, lat, resp.StatusCode != 201}
}

func doRemoveCrew(rng *rand.Rand) result {
	url := fmt.Sprintf("%s/crew?id=%d", baseURL, randomID(rng, &crewIDs))
	req, _ := http.NewRequest(http.MethodDelete, url, nil)
	start := time.Now()
	resp, err := httpClient.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{"DELETE /crew", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"DELETE /crew", resp.StatusCode, lat, resp.StatusCode != 204}
}

func doRemoveEvent(rng *rand.Rand) result {
	url := fmt.Sprintf("%s/events?id=%d", baseURL, randomID(rng, &eventIDs))
	req, _ := http.NewRequest(http.MethodDelete, url, nil)
	start := time.Now()
	resp, err := httpClient.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{"DELETE /events", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"DELETE /events", resp.StatusCode, lat, resp.StatusCode != 204}
}

func doGetCrew() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/crew")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /crew", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /crew", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetEvents() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/events")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /events", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /events", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetWeather() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/weather")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /weather", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /weather", resp.StatusCode, lat, resp.StatusCode != 200}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
