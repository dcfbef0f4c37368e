package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Drives complete booking flows against a running api-server: register a
// fake patient, walk the wizard step by step using only the options the
// server offers, and confirm. Useful as a smoke test and as demo traffic.

type simConfig struct {
	BaseURL string
	Users   int
	Workers int
}

type metrics struct {
	registered int64
	confirmed  int64
	failed     int64

	mu        sync.Mutex
	latencies []time.Duration
}

func (m *metrics) recordLatency(d time.Duration) {
	m.mu.Lock()
	m.latencies = append(m.latencies, d)
	m.mu.Unlock()
}

func (m *metrics) report() {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sum, max time.Duration
	for _, l := range m.latencies {
		sum += l
		if l > max {
			max = l
		}
	}
	avg := time.Duration(0)
	if len(m.latencies) > 0 {
		avg = sum / time.Duration(len(m.latencies))
	}

	log.Printf("registered=%d confirmed=%d failed=%d", m.registered, m.confirmed, m.failed)
	log.Printf("flow latency avg=%s max=%s", avg, max)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := simConfig{
		BaseURL: getEnv("API_BASE_URL", "http://127.0.0.1:8080"),
		Users:   getEnvInt("SIM_USERS", 20),
		Workers: getEnvInt("SIM_WORKERS", 4),
	}

	log.Printf("simulating %d booking flows against %s with %d workers", cfg.Users, cfg.BaseURL, cfg.Workers)

	gofakeit.Seed(time.Now().UnixNano())

	client := &http.Client{Timeout: 15 * time.Second}
	var m metrics

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				start := time.Now()
				if err := runFlow(client, cfg.BaseURL, &m); err != nil {
					atomic.AddInt64(&m.failed, 1)
					log.Printf("flow failed: %v", err)
					continue
				}
				atomic.AddInt64(&m.confirmed, 1)
				m.recordLatency(time.Since(start))
			}
		}()
	}

	for i := 0; i < cfg.Users; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	m.report()
}

type sessionResponse struct {
	Token string `json:"token"`
}

type draftResponse struct {
	Step      string `json:"step"`
	Reviewing bool   `json:"reviewing"`
	Options   struct {
		Specialties []struct {
			Value string `json:"value"`
		} `json:"specialties"`
		Practitioners []struct {
			ID string `json:"id"`
		} `json:"practitioners"`
		Days  []string `json:"days"`
		Slots []string `json:"slots"`
	} `json:"options"`
}

func runFlow(client *http.Client, baseURL string, m *metrics) error {
	token, err := register(client, baseURL)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	atomic.AddInt64(&m.registered, 1)

	var draft draftResponse

	// Start the wizard.
	if err := call(client, http.MethodPost, baseURL+"/appointments/new", token, nil, &draft); err != nil {
		return fmt.Errorf("start draft: %w", err)
	}

	// Step 1: specialty.
	if len(draft.Options.Specialties) == 0 {
		return fmt.Errorf("no specialties offered")
	}
	specialty := draft.Options.Specialties[rand.Intn(len(draft.Options.Specialties))].Value
	if err := call(client, http.MethodPut, baseURL+"/appointments/new", token,
		map[string]any{"specialty": specialty}, &draft); err != nil {
		return fmt.Errorf("set specialty: %w", err)
	}
	if err := call(client, http.MethodPost, baseURL+"/appointments/new/next", token, nil, &draft); err != nil {
		return fmt.Errorf("advance to practitioner: %w", err)
	}

	// Step 2: practitioner.
	if len(draft.Options.Practitioners) == 0 {
		return fmt.Errorf("no practitioners for %s", specialty)
	}
	practitioner := draft.Options.Practitioners[rand.Intn(len(draft.Options.Practitioners))].ID
	if err := call(client, http.MethodPut, baseURL+"/appointments/new", token,
		map[string]any{"practitioner_id": practitioner}, &draft); err != nil {
		return fmt.Errorf("set practitioner: %w", err)
	}
	if err := call(client, http.MethodPost, baseURL+"/appointments/new/next", token, nil, &draft); err != nil {
		return fmt.Errorf("advance to datetime: %w", err)
	}

	// Step 3: first offered day and slot. Look one month ahead when the
	// current month has nothing left.
	day, slot, err := pickDaySlot(client, baseURL, token, &draft)
	if err != nil {
		return err
	}
	if err := call(client, http.MethodPut, baseURL+"/appointments/new", token,
		map[string]any{"date": day, "time": slot, "notes": gofakeit.Sentence(8)}, &draft); err != nil {
		return fmt.Errorf("set date/time: %w", err)
	}
	if err := call(client, http.MethodPost, baseURL+"/appointments/new/next", token, nil, &draft); err != nil {
		return fmt.Errorf("enter review: %w", err)
	}
	if !draft.Reviewing {
		return fmt.Errorf("expected review state, got step=%s", draft.Step)
	}

	if err := call(client, http.MethodPost, baseURL+"/appointments/new/confirm", token, nil, nil); err != nil {
		return fmt.Errorf("confirm: %w", err)
	}
	return nil
}

func pickDaySlot(client *http.Client, baseURL, token string, draft *draftResponse) (string, string, error) {
	months := []string{
		time.Now().Format("2006-01"),
		time.Now().AddDate(0, 1, 0).Format("2006-01"),
	}

	for _, month := range months {
		if err := call(client, http.MethodGet, baseURL+"/appointments/new?month="+month, token, nil, draft); err != nil {
			return "", "", fmt.Errorf("load days: %w", err)
		}
		for _, day := range draft.Options.Days {
			if err := call(client, http.MethodPut, baseURL+"/appointments/new", token,
				map[string]any{"date": day}, draft); err != nil {
				continue
			}
			if len(draft.Options.Slots) > 0 {
				return day, draft.Options.Slots[rand.Intn(len(draft.Options.Slots))], nil
			}
		}
	}
	return "", "", fmt.Errorf("no available day with open slots")
}

func register(client *http.Client, baseURL string) (string, error) {
	body := map[string]any{
		"name":        gofakeit.Name(),
		"email":       gofakeit.Email(),
		"password":    gofakeit.Password(true, true, true, false, false, 10),
		"national_id": gofakeit.Numerify("###.###.###-##"),
	}

	var resp sessionResponse
	if err := call(client, http.MethodPost, baseURL+"/register", "", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("empty session token")
	}
	return resp.Token, nil
}

func call(client *http.Client, method, url, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: status %d: %s", method, url, resp.StatusCode, data)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
