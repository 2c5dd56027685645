// Package security guards message content against leaking credentials
package security

import (
	"fmt"
	"strings"
	"sync"

	"github.com/zricethezav/gitleaks/v8/detect"
	"github.com/zricethezav/gitleaks/v8/report"
)

// LeakScanner provides secret detection capabilities
type LeakScanner struct {
	mu       sync.Mutex
	detector *detect.Detector
}

// ScanResult contains the results of a leak scan
type ScanResult struct {
	Findings []Finding
	HasLeaks bool
}

// Finding represents a detected secret
type Finding struct {
	RuleID      string
	Description string
	Line        int
	Secret      string // Redacted
}

// NewLeakScanner creates a new leak scanner with default gitleaks rules
func NewLeakScanner() (*LeakScanner, error) {
	detector, err := detect.NewDetectorDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load gitleaks config: %w", err)
	}

	detector.Redact = 80 // Redact 80% of the secret

	return &LeakScanner{
		detector: detector,
	}, nil
}

// ScanContent scans a message body for secrets
func (s *LeakScanner) ScanContent(content string) *ScanResult {
	s.mu.Lock()
	findings := s.detector.DetectString(content)
	s.mu.Unlock()

	return buildResult(findings)
}

// ContainsSecret reports whether content trips any rule
func (s *LeakScanner) ContainsSecret(content string) bool {
	return s.ScanContent(content).HasLeaks
}

func buildResult(findings []report.Finding) *ScanResult {
	result := &ScanResult{
		HasLeaks: len(findings) > 0,
		Findings: make([]Finding, 0, len(findings)),
	}

	for _, f := range findings {
		result.Findings = append(result.Findings, Finding{
			RuleID:      f.RuleID,
			Description: f.Description,
			Line:        f.StartLine,
			Secret:      f.Secret, // Already redacted by detector
		})
	}

	return result
}

// FormatFindings formats findings for display
func FormatFindings(findings []Finding) string {
	if len(findings) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n⚠️  Found %d potential secret(s):\n\n", len(findings)))

	for i, f := range findings {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, f.Description))
		sb.WriteString(fmt.Sprintf("     Rule: %s\n", f.RuleID))
		sb.WriteString(fmt.Sprintf("     Secret: %s\n", f.Secret))
		sb.WriteString("\n")
	}

	return sb.String()
}
