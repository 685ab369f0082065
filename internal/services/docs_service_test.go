package services

import (
	"testing"

	"airbooking/internal/domain/models"
)

func TestDocsServiceGenerate(t *testing.T) {
	loader := func(ref string) (models.Booking, error) {
		b := storedBooking()
		b.Seats = map[string]models.Seat{"p1": {ID: "12A", Price: 1500}}
		return b, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateETicket("AB12CD")
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateETicket returned empty data")
	}
}

func TestCancellationNoticeRequiresCancelledBooking(t *testing.T) {
	loader := func(ref string) (models.Booking, error) {
		return storedBooking(), nil // still confirmed
	}
	svc := DocsService{Loader: loader}

	if _, _, err := svc.GenerateCancellationNotice("AB12CD"); err == nil {
		t.Fatalf("expected error for non-cancelled booking")
	}

	loader = func(ref string) (models.Booking, error) {
		b := storedBooking()
		b.Status = models.StatusCancelled
		return b, nil
	}
	svc = DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateCancellationNotice("AB12CD")
	if err != nil {
		t.Fatalf("GenerateCancellationNotice returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateCancellationNotice returned empty data")
	}
}
