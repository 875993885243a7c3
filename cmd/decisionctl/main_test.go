package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bibbank/decisioning/internal/domain/model"
)

const sampleManifest = "../../artifacts/manifest.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--manifest", sampleManifest}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "customer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const loanCustomer = `
Credit_History: 750
Family_Credit_History: 650
Risk_Rating: 3
Age: 40
Customer_Relationship_Years: 5
Past_Transactions: Positive
Market_Trends: Neutral
`

func TestEvaluateCommand(t *testing.T) {
	t.Run("approves the sample loan customer", func(t *testing.T) {
		out, err := run(t, "evaluate", "--profile", "loan", "--input", writeInput(t, loanCustomer))
		require.NoError(t, err)

		var resp struct {
			Profile      string `json:"profile"`
			Eligible     *bool  `json:"eligible"`
			InterestRate string `json:"interest_rate"`
			MaxAmount    string `json:"max_amount"`
			Confidence   string `json:"confidence"`
			Tier         struct {
				Label string `json:"label"`
			} `json:"tier"`
			ReasonsTable []struct {
				Factor string `json:"factor"`
			} `json:"reasons_table"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, "LOAN", resp.Profile)
		require.NotNil(t, resp.Eligible)
		assert.True(t, *resp.Eligible)
		assert.Equal(t, "9.5", resp.InterestRate)
		assert.Equal(t, "675000", resp.MaxAmount)
		assert.Equal(t, "97.65", resp.Confidence)
		assert.Equal(t, "High-Value", resp.Tier.Label)
		assert.Len(t, resp.ReasonsTable, 7)
	})

	t.Run("yaml output", func(t *testing.T) {
		out, err := run(t, "evaluate", "--profile", "loan", "--input", writeInput(t, loanCustomer), "-o", "yaml")
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
		assert.Equal(t, "LOAN", doc["profile"])
	})

	t.Run("unknown categorical is an input error", func(t *testing.T) {
		body := strings.Replace(loanCustomer, "Market_Trends: Neutral", "Market_Trends: Bullish", 1)
		_, err := run(t, "evaluate", "--profile", "loan", "--input", writeInput(t, body))
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrEncoding)
	})

	t.Run("missing feature is an input error", func(t *testing.T) {
		_, err := run(t, "evaluate", "--profile", "fd", "--input", writeInput(t, "Age: 40\n"))
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("profile flag is required", func(t *testing.T) {
		_, err := run(t, "evaluate", "--input", writeInput(t, loanCustomer))
		assert.Error(t, err)
	})
}

func TestCalculatorCommands(t *testing.T) {
	t.Run("repayment", func(t *testing.T) {
		out, err := run(t, "repayment", "--amount", "120000", "--rate", "0", "--years", "1")
		require.NoError(t, err)

		var resp struct {
			EMI      string `json:"emi"`
			Schedule []struct {
				ClosingBalance string `json:"closing_balance"`
			} `json:"schedule"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, "10000", resp.EMI)
		require.Len(t, resp.Schedule, 1)
		assert.Equal(t, "0", resp.Schedule[0].ClosingBalance)
	})

	t.Run("repayment rejects a bad amount", func(t *testing.T) {
		_, err := run(t, "repayment", "--amount", "lots", "--rate", "9", "--years", "1")
		assert.ErrorContains(t, err, "invalid --amount")
	})

	t.Run("maturity", func(t *testing.T) {
		out, err := run(t, "maturity", "--amount", "100000", "--rate", "8", "--period", "1", "--start", "2026-01-01")
		require.NoError(t, err)

		var resp struct {
			MaturityAmount string `json:"maturity_amount"`
			MaturityDate   string `json:"maturity_date"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, "108000", resp.MaturityAmount)
		assert.Equal(t, "2027-01-01T00:00:00Z", resp.MaturityDate)
	})
}

func TestArtifactsVerifyCommand(t *testing.T) {
	out, err := run(t, "artifacts", "verify")
	require.NoError(t, err)

	var report artifactReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Contains(t, report.Version, "2026.10.1+")
	require.Len(t, report.Profiles, 2)
	assert.Equal(t, "FD", report.Profiles[0].Profile)
	assert.Equal(t, []string{"rate"}, report.Profiles[0].Models)
	assert.Equal(t, []string{"eligibility", "rate", "amount"}, report.Profiles[1].Models)
	assert.Equal(t, []string{"Favorable", "Neutral", "Unfavorable"}, report.Profiles[1].Encoders["Market_Trends"])
}

func TestDevCommands(t *testing.T) {
	out, err := run(t, "dev", "token", "--role", "operator", "--tenant", "tenant-9")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	dir := t.TempDir()
	out, err = run(t, "dev", "certs", "--out", dir, "--host", "decisiond.local")
	require.NoError(t, err)
	assert.Contains(t, out, "TLS_CLIENT_CA_FILE="+filepath.Join(dir, "ca.pem"))
	assert.FileExists(t, filepath.Join(dir, "server.pem"))
	assert.FileExists(t, filepath.Join(dir, "client-key.pem"))
}
