package blas1

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// BenchmarkResult captures the result of a single benchmark run
type BenchmarkResult struct {
	Name       string    `json:"name"`
	Status     string    `json:"status"` // "pass" or "fail"
	Operations int64     `json:"operations,omitempty"`
	NsPerOp    float64   `json:"ns_per_op,omitempty"`
	MBPerSec   float64   `json:"mb_per_sec,omitempty"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// BenchmarkSession is the on-disk log format. CPU holds the feature report
// from GetCPUInfo so numbers stay attributable to the machine that produced
// them.
type BenchmarkSession struct {
	Session string            `json:"session"`
	CPU     string            `json:"cpu"`
	Started time.Time         `json:"started"`
	Results []BenchmarkResult `json:"results"`
}

// BenchmarkLogger manages logging of benchmark results to file
type BenchmarkLogger struct {
	mu          sync.Mutex
	session     BenchmarkSession
	logDir      string
	sessionFile string
}

var globalLogger = &BenchmarkLogger{
	logDir: "benchmark_logs",
}

// SetBenchmarkLogDir overrides the directory benchmark sessions are written
// to. Must be called before InitBenchmarkLogger.
func SetBenchmarkLogDir(dir string) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.logDir = dir
}

// InitBenchmarkLogger initializes the logger for a new benchmark session
func InitBenchmarkLogger(sessionName string) error {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	if err := os.MkdirAll(globalLogger.logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	globalLogger.sessionFile = filepath.Join(globalLogger.logDir,
		fmt.Sprintf("%s_%s.json", sessionName, timestamp))

	globalLogger.session = BenchmarkSession{
		Session: sessionName,
		CPU:     GetCPUInfo(),
		Started: time.Now(),
	}

	return globalLogger.flush()
}

// LogBenchmarkResult logs a single benchmark result
func LogBenchmarkResult(result BenchmarkResult) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	result.Timestamp = time.Now()
	globalLogger.session.Results = append(globalLogger.session.Results, result)

	// Flush to disk immediately to avoid losing data on crash
	globalLogger.flush()
}

// LogBenchmarkPass logs a successful benchmark
func LogBenchmarkPass(name string, nsPerOp float64, mbPerSec float64, ops int64) {
	LogBenchmarkResult(BenchmarkResult{
		Name:       name,
		Status:     "pass",
		Operations: ops,
		NsPerOp:    nsPerOp,
		MBPerSec:   mbPerSec,
	})
}

// LogBenchmarkFail logs a failed benchmark
func LogBenchmarkFail(name string, err error) {
	LogBenchmarkResult(BenchmarkResult{
		Name:   name,
		Status: "fail",
		Error:  err.Error(),
	})
}

// flush writes the session to disk
func (bl *BenchmarkLogger) flush() error {
	if bl.sessionFile == "" {
		return nil // Not initialized
	}

	data, err := json.MarshalIndent(bl.session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	return os.WriteFile(bl.sessionFile, data, 0644)
}

// GetLatestLogFile returns the path to the most recent log file
func GetLatestLogFile() (string, error) {
	files, err := filepath.Glob(filepath.Join(globalLogger.logDir, "*.json"))
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no log files found")
	}

	var latest string
	var latestTime time.Time
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latest = file
			latestTime = info.ModTime()
		}
	}

	return latest, nil
}

// PrintBenchmarkSummary prints a summary of the latest benchmark session
func PrintBenchmarkSummary() error {
	logFile, err := GetLatestLogFile()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		return err
	}

	var session BenchmarkSession
	if err := json.Unmarshal(data, &session); err != nil {
		return err
	}

	fmt.Printf("\nBenchmark Summary from %s (%s):\n", filepath.Base(logFile), session.CPU)
	fmt.Println(strings.Repeat("=", 62))

	passed, failed := 0, 0
	for _, r := range session.Results {
		switch r.Status {
		case "pass":
			passed++
			fmt.Printf("✓ %-40s %10.2f ns/op", r.Name, r.NsPerOp)
			if r.MBPerSec > 0 {
				fmt.Printf(" %10.2f MB/s", r.MBPerSec)
			}
			fmt.Println()
		case "fail":
			failed++
			fmt.Printf("✗ %-40s FAILED: %s\n", r.Name, r.Error)
		}
	}

	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("Total: %d | Passed: %d | Failed: %d\n",
		len(session.Results), passed, failed)

	return nil
}
