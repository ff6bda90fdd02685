package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/xmwu0124/predocker/config"
	"github.com/xmwu0124/predocker/models"
)

const cvScriptTimeout = 45 * time.Second

// Keywords are the field and skill terms extracted from an uploaded CV.
type Keywords struct {
	Fields []string `json:"fields"`
	Skills []string `json:"skills"`
}

// MatchResult is the parsed output of the CV parser script.
type MatchResult struct {
	Keywords     Keywords     `json:"keywords"`
	MatchedJobs  []models.Job `json:"matched_jobs"`
	TotalMatches int          `json:"total_matches"`
}

// Analyzer extracts keywords from a CV file and matches them against the job
// catalog. The production implementation shells out to a python script;
// handlers depend on this interface so tests can inject a fake.
type Analyzer interface {
	Analyze(ctx context.Context, cvPath string) (*MatchResult, error)
}

// ScriptAnalyzer runs: <python> <script> <cvPath> and parses JSON from the
// script's stdout. Interpreter and script paths come from VENV_PY and
// CV_SCRIPT with sensible defaults.
type ScriptAnalyzer struct {
	Python string
	Script string
}

func NewScriptAnalyzer() *ScriptAnalyzer {
	return &ScriptAnalyzer{
		Python: config.PythonBinary(),
		Script: config.CVScriptPath(),
	}
}

func (a *ScriptAnalyzer) Analyze(ctx context.Context, cvPath string) (*MatchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, cvScriptTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.Python, a.Script, cvPath)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("cv parser failed: %w", err)
	}

	var result MatchResult
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("cv parser returned invalid JSON: %w", err)
	}
	return &result, nil
}
