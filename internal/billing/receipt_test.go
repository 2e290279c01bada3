package billing

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/syncromed/syncromed-api/internal/domain"
	"github.com/syncromed/syncromed-api/internal/domain/patient"
)

func TestBuildReceipt(t *testing.T) {
	p := &patient.Patient{
		User: domain.User{
			ID:    "pat1",
			Name:  "John Doe",
			Email: "john@gmail.com",
		},
		PendingBills: 4500,
	}
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	r := BuildReceipt(p, now, 100042)

	assert.Equal(t, fmt.Sprintf("Receipt_pat1_%d.txt", now.UnixMilli()), r.Filename)

	assert.True(t, strings.HasPrefix(r.Content, "SYNCROMED AI HOSPITAL - OFFICIAL RECEIPT\n"))
	assert.Contains(t, r.Content, "Date: 2024-06-01 09:30:00")
	assert.Contains(t, r.Content, "Receipt ID: #100042")
	assert.Contains(t, r.Content, "Name: John Doe")
	assert.Contains(t, r.Content, "ID: pat1")
	assert.Contains(t, r.Content, "Email: john@gmail.com")
	assert.Contains(t, r.Content, "Hospital Services           ₹4500")
	assert.Contains(t, r.Content, "TOTAL PAID:                 ₹4500")
	assert.Contains(t, r.Content, "Status: PAID")
	assert.Contains(t, r.Content, "Payment Mode: Online (Demo)")
	assert.True(t, strings.HasSuffix(r.Content, "Thank you for trusting SyncroMed AI.\n"))
}

func TestBuildReceiptZeroBalance(t *testing.T) {
	p := &patient.Patient{
		User: domain.User{ID: "pat2", Name: "Jane Smith", Email: "jane@gmail.com"},
	}

	r := BuildReceipt(p, time.Now(), 100001)
	assert.Contains(t, r.Content, "TOTAL PAID:                 ₹0")
}
