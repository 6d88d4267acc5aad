//go:build integration
// +build integration

package integration

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

var otpPattern = regexp.MustCompile(`\b\d{6}\b`)

// TestDataGenerator generates test data for integration tests
type TestDataGenerator struct {
	rand *rand.Rand
}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator() *TestDataGenerator {
	return &TestDataGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *TestDataGenerator) Email(prefix string) string {
	return fmt.Sprintf("%s-%d@test.com", prefix, g.rand.Intn(1000000))
}

func (g *TestDataGenerator) Business(email string) map[string]any {
	return map[string]any{
		"business_name": fmt.Sprintf("Business %d", g.rand.Intn(10000)),
		"email":         email,
		"phone":         "+1-555-0100",
		"address":       "1 Main St",
		"city":          "Austin",
		"state":         "TX",
		"zip_code":      "73301",
		"country":       "US",
	}
}

func (g *TestDataGenerator) User(email, role string) map[string]any {
	return map[string]any{
		"first_name": "Test",
		"last_name":  role,
		"email":      email,
		"password":   "password123",
		"phone":      "555-0101",
		"gender":     "other",
		"user_role":  role,
	}
}

func (g *TestDataGenerator) Job(salary int64) map[string]any {
	return map[string]any{
		"title":             fmt.Sprintf("Shift %d", g.rand.Intn(10000)),
		"description":       "Integration shift",
		"email":             "jobs@test.com",
		"phone":             "555-0102",
		"minimum_education": "None",
		"job_category":      "part_time",
		"tone_requirement":  "friendly",
		"workers_required":  2,
		"salary":            salary,
		"salary_type":       "fixed",
	}
}

// ExtractOTP finds the six digit code in a message body.
func ExtractOTP(text string) (string, error) {
	otp := otpPattern.FindString(text)
	if otp == "" {
		return "", fmt.Errorf("no otp in %q", text)
	}
	return otp, nil
}
