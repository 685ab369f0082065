package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"airbooking/internal/booking"
	"airbooking/internal/domain"
	"airbooking/internal/domain/models"
	"airbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders PDFs from a finalized booking snapshot: one e-ticket
// per booking and, once cancelled, the cancellation notice with the
// fee/refund split.
type DocsService struct {
	Store     BookingStore
	RequestID string
	Loader    func(ref string) (models.Booking, error)
}

func (s DocsService) load(ref string) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(ref)
	}
	return s.Store.FindByReference(ref)
}

func (s DocsService) GenerateETicket(ref string) ([]byte, string, error) {
	b, err := s.load(ref)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "reference="+b.Reference)
	return buildETicketPDF(b)
}

func (s DocsService) GenerateCancellationNotice(ref string) ([]byte, string, error) {
	b, err := s.load(ref)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_cancellation_notice", "reference="+b.Reference)
	return buildCancellationPDF(b)
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking reference : %s", safe(b.Reference, "-")),
		fmt.Sprintf("Flight            : %s", safe(b.FlightSummary, "-")),
		fmt.Sprintf("Status            : %s", safe(string(b.Status), "-")),
		fmt.Sprintf("Total paid        : %s", utils.FormatAmount(b.TotalAmount, b.Currency)),
	}
	if !b.CreatedAt.IsZero() {
		lines = append(lines, fmt.Sprintf("Issued            : %s", utils.FormatDate(b.CreatedAt)))
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range b.Passengers {
		seat := "-"
		if s, ok := b.Seats[p.ID]; ok {
			seat = s.ID
		}
		pdf.Cell(0, 6, fmt.Sprintf("%s %s (%s) seat %s",
			safe(p.FirstName, "-"), safe(p.LastName, "-"), safe(string(p.Category), "-"), seat))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this e-ticket with a valid ID at check-in.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(b.Reference))
	return buf.Bytes(), filename, nil
}

func buildCancellationPDF(b models.Booking) ([]byte, string, error) {
	quote, err := cancelledQuote(b)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Cancellation Notice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "CANCELLATION NOTICE")
	pdf.Ln(12)

	name := "-"
	if primary, ok := b.PrimaryPassenger(); ok {
		name = utils.NormalizeSpace(primary.FirstName + " " + primary.LastName)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking reference : %s", safe(b.Reference, "-")),
		fmt.Sprintf("Passenger         : %s", name),
		fmt.Sprintf("Flight            : %s", safe(b.FlightSummary, "-")),
		fmt.Sprintf("Total paid        : %s", utils.FormatAmount(b.TotalAmount, b.Currency)),
		fmt.Sprintf("Cancellation fee  : %s", utils.FormatAmount(quote.Fee, quote.Currency)),
		fmt.Sprintf("Refund            : %s", utils.FormatAmount(quote.Refund, quote.Currency)),
	}
	if b.CancelledAt != nil {
		lines = append(lines, fmt.Sprintf("Cancelled at      : %s", utils.FormatDateTime(*b.CancelledAt)))
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "The refund will be issued to the original payment method.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("CANCELLATION_%s.pdf", safeFilenamePart(b.Reference))
	return buf.Bytes(), filename, nil
}

// cancelledQuote reproduces the fee/refund split for a booking that already
// completed the transition. ComputeCancellation wants the pre-transition
// status, so flip it back for the pure computation.
func cancelledQuote(b models.Booking) (booking.CancellationQuote, error) {
	if b.Status != models.StatusCancelled {
		return booking.CancellationQuote{}, domain.ValidationError{
			Fields: []domain.FieldError{{Field: "status", Reason: "not_cancelled"}},
		}
	}
	snapshot := b
	snapshot.Status = models.StatusConfirmed
	return booking.ComputeCancellation(snapshot)
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}

var filenameRe = regexp.MustCompile(`[^A-Za-z0-9_\-]+`)

func safeFilenamePart(s string) string {
	s = filenameRe.ReplaceAllString(strings.TrimSpace(s), "_")
	if s == "" {
		return "booking"
	}
	return s
}
