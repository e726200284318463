package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/stayfront/hms_backend/internal/application"
	"github.com/stayfront/hms_backend/internal/domain"
)

// BuildInvoice renders a booking invoice as a PDF and returns the document
// bytes together with a download filename.
func BuildInvoice(b *domain.Booking) ([]byte, string, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Invoice", false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 10, "INVOICE")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 7, fmt.Sprintf("Invoice No : INV-%d", b.ID))
	doc.Ln(7)
	doc.Cell(0, 7, "Date       : "+time.Now().Format("2006-01-02 15:04"))
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 7, "Billed to:")
	doc.Ln(7)

	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 7, fmt.Sprintf("Name  : %s", safe(b.GuestName, "-")))
	doc.Ln(7)
	doc.Cell(0, 7, fmt.Sprintf("Phone : %s", safe(b.Phone, "-")))
	doc.Ln(7)
	doc.Cell(0, 7, fmt.Sprintf("Email : %s", safe(b.Email, "-")))
	doc.Ln(10)

	nights := application.StayNights(b.CheckInDate, b.CheckOutDate)
	roomLabel := "Room"
	if b.Room != nil {
		roomLabel = fmt.Sprintf("Room %s (%s)", b.Room.Number, b.Room.Type)
	}

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 7, "Charges:")
	doc.Ln(8)

	doc.SetFont("Helvetica", "", 11)
	stay := fmt.Sprintf("%s, %s to %s (%d nights)",
		roomLabel,
		b.CheckInDate.Format("2006-01-02"),
		b.CheckOutDate.Format("2006-01-02"),
		nights,
	)
	doc.MultiCell(0, 6, "1) "+stay, "", "", false)
	doc.Cell(0, 6, "    Amount: "+rupees(b.RoomCost))
	doc.Ln(8)

	for i, line := range b.Services {
		desc := fmt.Sprintf("%d) %s x%d @ %s", i+2, safe(line.Name, "-"), line.Quantity, rupees(line.UnitPrice))
		doc.MultiCell(0, 6, desc, "", "", false)
		doc.Cell(0, 6, "    Amount: "+rupees(line.TotalPrice))
		doc.Ln(8)
	}

	doc.Ln(2)
	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, "Total: "+rupees(b.TotalAmount))
	doc.Ln(8)

	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 7, "Paid : "+rupees(b.PaidAmount))
	doc.Ln(7)
	doc.Cell(0, 7, "Due  : "+rupees(b.DueAmount))
	doc.Ln(12)

	doc.SetFont("Helvetica", "I", 10)
	doc.MultiCell(0, 6, "Thank you for staying with us.", "", "", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", b.ID, filenamePart(b.GuestName))
	return buf.Bytes(), filename, nil
}

func rupees(v decimal.Decimal) string {
	return "Rs. " + v.StringFixed(2)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func filenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
