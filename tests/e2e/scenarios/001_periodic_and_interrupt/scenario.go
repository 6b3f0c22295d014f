package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic input and must match the expected reports.
const (
	totalLines  = 1050 // every 7th line is malformed, so 900 lines are accepted
	reportEvery = 100
)

var (
	statuses = []string{"200", "301", "400", "401", "403", "404", "405", "500", "418"}
	paths    = []string{"/", "/projects/260", "/about", "/careers"}
)

// ### End - fixed configs

// main runs the e2e scenario: 001_periodic_and_interrupt
//
// It drives a built logstats binary twice over the same deterministic input.
//
// What it tests:
//   - periodic reports every reportEvery accepted lines, cumulative counts
//   - malformed lines are skipped and unknown status codes only add bytes
//   - the final report at end of input
//   - GET /stats returns the last emitted report while stdin is still open
//   - SIGINT prints exactly one final report and exits 0
func main() {
	// these configs can be changed to run the scenario
	binPath := getEnv("LOGSTATS_BIN", "./bin/logstats") // built with: go build -o ./bin/logstats ./cmd/logstats
	port := getEnv("LOGSTATS_PORT", "19090")            // port of the read-only http surface in the interrupt phase

	fmt.Println("Starting e2e scenario: 001_periodic_and_interrupt")
	fmt.Printf("LOGSTATS_BIN: %s\n", binPath)
	fmt.Printf("TOTAL_LINES: %d\n", totalLines)
	fmt.Printf("REPORT_EVERY: %d\n", reportEvery)
	fmt.Println()

	lines := generateLines()
	expected := expectedReports(lines)
	fmt.Printf("Generated %d lines, expecting %d reports\n", len(lines), len(expected))

	if err := runEndOfInput(binPath, lines, expected); err != nil {
		fail("end-of-input phase: %v", err)
	}
	fmt.Println("End-of-input phase passed")

	if err := runInterrupt(binPath, port, lines, expected); err != nil {
		fail("interrupt phase: %v", err)
	}
	fmt.Println("Interrupt phase passed")
	fmt.Println("Scenario completed successfully")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func generateLines() []string {
	lines := make([]string, 0, totalLines)
	for i := 0; i < totalLines; i++ {
		if i%7 == 6 {
			lines = append(lines, fmt.Sprintf("malformed entry %d", i))
			continue
		}
		lines = append(lines, fmt.Sprintf(`10.0.%d.%d - [2025-12-28 18:%02d:%02d.%06d] "GET %s HTTP/1.1" %s %d`,
			i/256, i%256, (i/60)%60, i%60, i*17%1000000,
			paths[i%len(paths)], statuses[i%len(statuses)], 100+i%900))
	}
	return lines
}

type totals struct {
	bytes  uint64
	counts map[string]uint64
}

func (t totals) render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "File size: %d\n", t.bytes)
	codes := make([]string, 0, len(t.counts))
	for code := range t.counts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Fprintf(&b, "%s: %d\n", code, t.counts[code])
	}
	return b.String()
}

// expectedReports returns the periodic reports followed by the final one.
func expectedReports(lines []string) []totals {
	t := totals{counts: map[string]uint64{}}
	var reports []totals
	accepted := 0
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 9 {
			continue
		}
		size, _ := strconv.ParseUint(fields[8], 10, 64)
		t.bytes += size
		if fields[7] != "418" {
			t.counts[fields[7]]++
		}
		accepted++
		if accepted%reportEvery == 0 {
			reports = append(reports, t.snapshot())
		}
	}
	return append(reports, t.snapshot())
}

func (t totals) snapshot() totals {
	counts := make(map[string]uint64, len(t.counts))
	for code, n := range t.counts {
		counts[code] = n
	}
	return totals{bytes: t.bytes, counts: counts}
}

func renderAll(reports []totals) string {
	var b strings.Builder
	for _, r := range reports {
		b.WriteString(r.render())
	}
	return b.String()
}

func runEndOfInput(binPath string, lines []string, expected []totals) error {
	cmd := exec.Command(binPath, "--report-every", strconv.Itoa(reportEvery))
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n") + "\n")
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("logstats failed: %w", err)
	}
	if got, want := string(out), renderAll(expected); got != want {
		return fmt.Errorf("unexpected output\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
	return nil
}

// runInterrupt feeds every line but keeps stdin open, waits until GET /stats shows the
// last periodic report, then sends SIGINT. The accepted line count is a multiple of
// reportEvery, so the final report repeats the last periodic one.
func runInterrupt(binPath, port string, lines []string, expected []totals) error {
	cmd := exec.Command(binPath,
		"--report-every", strconv.Itoa(reportEvery),
		"--server-enabled",
		"--server-port", port,
	)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start logstats: %w", err)
	}
	defer stdin.Close()

	output := make(chan string, 1)
	go func() {
		out, _ := io.ReadAll(stdout)
		output <- string(out)
	}()

	if _, err := io.WriteString(stdin, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write input: %w", err)
	}

	lastPeriodic := expected[len(expected)-2]
	if err := waitForStatsFileSize("http://localhost:"+port+"/stats", lastPeriodic.bytes); err != nil {
		return err
	}
	fmt.Printf("GET /stats fileSize: %d\n", lastPeriodic.bytes)

	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		return fmt.Errorf("failed to signal logstats: %w", err)
	}
	got := <-output
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("logstats did not exit cleanly: %w", err)
	}

	if want := renderAll(expected); got != want {
		return fmt.Errorf("unexpected output\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
	return nil
}

func waitForStatsFileSize(url string, want uint64) error {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastSeen uint64
	for attempt := 0; attempt < 50; attempt++ {
		resp, err := client.Get(url)
		if err == nil {
			var body struct {
				FileSize uint64 `json:"fileSize"`
			}
			decodeErr := json.NewDecoder(resp.Body).Decode(&body)
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK && decodeErr == nil {
				lastSeen = body.FileSize
				if lastSeen == want {
					return nil
				}
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("GET /stats never reported fileSize %d (last seen %d)", want, lastSeen)
}
