// Package billing renders the payment receipt artifact. Paying a bill only
// produces this document; the patient's pending-bills accumulator is never
// reduced and no record of the payment is retained.
package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/syncromed/syncromed-api/internal/domain/patient"
)

// Receipt is the downloadable plain-text artifact plus its filename.
type Receipt struct {
	Filename string
	Content  string
}

const divider = "----------------------------------------"

// BuildReceipt lays out the fixed-format receipt for a patient's current
// pending total. receiptID is caller-supplied so the artifact stays
// reproducible in tests.
func BuildReceipt(p *patient.Patient, now time.Time, receiptID int) Receipt {
	var b strings.Builder
	b.WriteString("SYNCROMED AI HOSPITAL - OFFICIAL RECEIPT\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Date: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Receipt ID: #%d\n\n", receiptID)
	b.WriteString("Patient Details:\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "ID: %s\n", p.ID)
	fmt.Fprintf(&b, "Email: %s\n\n", p.Email)
	b.WriteString(divider + "\n")
	b.WriteString("DESCRIPTION                  AMOUNT\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Hospital Services           ₹%d\n", p.PendingBills)
	b.WriteString("Consultation Fees           Included\n")
	b.WriteString("Pharmacy Charges            Included\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "TOTAL PAID:                 ₹%d\n", p.PendingBills)
	b.WriteString(divider + "\n")
	b.WriteString("Status: PAID\n")
	b.WriteString("Payment Mode: Online (Demo)\n\n")
	b.WriteString("Thank you for trusting SyncroMed AI.\n")

	return Receipt{
		Filename: fmt.Sprintf("Receipt_%s_%d.txt", p.ID, now.UnixMilli()),
		Content:  b.String(),
	}
}
