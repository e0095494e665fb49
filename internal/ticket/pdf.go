package ticket

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

// Details is everything printed on a ticket.
type Details struct {
	BookingID    string
	MonumentName string
	Location     string
	GuestName    string
	GuestEmail   string
	VisitAt      time.Time
	Pax          int
	TotalAmount  float64
}

type PDFOptions struct {
	Currency     string
	SupportEmail string
	Location     *time.Location
	GeneratedAt  time.Time
}

const qrImageName = "ticket-qr"

// FormatVisit renders the visit as a short date plus a 12-hour clock.
func FormatVisit(t time.Time) string {
	return t.Format("1/2/2006") + " at " + t.Format("03:04 PM")
}

// FormatAmount prints an amount the way the booking form shows it: no
// trailing zeros, prefixed by the currency.
func FormatAmount(currency string, amount float64) string {
	value := strconv.FormatFloat(amount, 'f', -1, 64)
	if currency == "" {
		return value
	}
	return currency + " " + value
}

// RenderPDF lays out a single A4 portrait ticket and embeds qrPNG at the top
// right. The whole document is rendered into memory, so a failure never
// yields a partial file.
func RenderPDF(d Details, qrPNG []byte, opts PDFOptions) ([]byte, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	generatedAt := opts.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	supportEmail := opts.SupportEmail
	if supportEmail == "" {
		supportEmail = "support@monuments.com"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, pageH := pdf.GetPageSize()

	// header band
	pdf.SetFillColor(249, 115, 22)
	pdf.Rect(0, 0, pageW, 40, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	textCentered(pdf, tr("MONUMENT TICKET"), pageW/2, 25)

	// labelled fields
	pdf.SetTextColor(0, 0, 0)
	fields := []struct {
		label string
		value string
		y     float64
	}{
		{"Booking Reference:", "#" + Reference(d.BookingID), 60},
		{"Monument:", d.MonumentName, 75},
		{"Location:", d.Location, 85},
		{"Guest Name:", d.GuestName, 100},
		{"Email:", d.GuestEmail, 110},
		{"Date & Time:", FormatVisit(d.VisitAt.In(loc)), 120},
		{"Number of People:", strconv.Itoa(d.Pax), 130},
		{"Total Amount:", FormatAmount(opts.Currency, d.TotalAmount), 140},
	}
	for _, f := range fields {
		pdf.SetFont("Helvetica", "B", 12)
		label := tr(f.label)
		pdf.Text(20, f.y, label)
		labelW := pdf.GetStringWidth(label)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(20+labelW+3, f.y, tr(f.value))
	}

	// QR code
	imgOpts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrImageName, imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions(qrImageName, pageW-60, 60, 40, 40, false, imgOpts, 0, "")
	pdf.SetFontSize(10)
	pdf.Text(pageW-60, 110, tr("Scan for Entry"))

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, 160, pageW-20, 160)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, 175, tr("Instructions:"))

	pdf.SetFont("Helvetica", "", 10)
	instructions := []string{
		"• Please arrive 15 minutes before your scheduled time",
		"• Show this ticket and the QR code at the entrance",
		"• Valid ID may be required for verification",
		"• This ticket is non-transferable and non-refundable",
		"• Contact " + supportEmail + " for any assistance",
	}
	for i, line := range instructions {
		pdf.Text(20, 185+float64(i)*8, tr(line))
	}

	// footer band
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(0, pageH-30, pageW, 30, "F")
	pdf.SetFontSize(8)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(20, pageH-20, tr("Generated on: "+generatedAt.In(loc).Format("1/2/2006, 3:04:05 PM")))
	textCentered(pdf, tr("Thank you for choosing our monument experience!"), pageW/2, pageH-12)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func textCentered(pdf *fpdf.Fpdf, s string, centerX, y float64) {
	pdf.Text(centerX-pdf.GetStringWidth(s)/2, y, s)
}
