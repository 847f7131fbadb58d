package interfaces

import (
	"bytes"
	"errors"
	"testing"
	"time"

	analytics "ispdesk/internal/analytics/domain"
	catalog "ispdesk/internal/catalog/domain"
	clients "ispdesk/internal/clients/domain"
)

func populatedClient(t *testing.T) *clients.Client {
	t.Helper()
	c, err := clients.NewClient("Alice", "alice@example.com", clients.ClassVIP)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	internet, err := catalog.NewInternetService(100)
	if err != nil {
		t.Fatalf("new internet: %v", err)
	}
	if err := c.AddService(internet); err != nil {
		t.Fatalf("add service: %v", err)
	}
	at := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	p, err := clients.NewPaymentRecord(120.5, at, "monthly")
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	if err := c.AddPayment(p); err != nil {
		t.Fatalf("add payment: %v", err)
	}
	return c
}

func TestBuildClientStatementPDF(t *testing.T) {
	c := populatedClient(t)
	data, err := BuildClientStatementPDF(c, "USD", time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("build pdf: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty pdf output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a pdf")
	}
}

func TestBuildClientStatementPDFNilClient(t *testing.T) {
	if _, err := BuildClientStatementPDF(nil, "USD", time.Now()); !errors.Is(err, clients.ErrNilClient) {
		t.Fatalf("expected ErrNilClient, got %v", err)
	}
}

func TestBuildRegistryXLSX(t *testing.T) {
	c := populatedClient(t)
	snap := analytics.Compute([]*clients.Client{c}, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))

	data, err := BuildRegistryXLSX([]*clients.Client{c}, snap)
	if err != nil {
		t.Fatalf("build xlsx: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty xlsx output")
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("output is not a zip archive")
	}
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	c := populatedClient(t)
	takenAt := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	snap := analytics.Compute([]*clients.Client{c}, takenAt)

	data, err := MarshalSnapshot(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Contains(data, []byte("total_revenue")) {
		t.Fatalf("serialized snapshot missing fields: %s", data)
	}

	got, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.TotalClients != snap.TotalClients || got.TotalRevenue != snap.TotalRevenue {
		t.Fatalf("round trip mismatch: got=%+v want=%+v", got, snap)
	}
	if !got.TakenAt.Equal(takenAt) {
		t.Fatalf("taken at mismatch: got=%v want=%v", got.TakenAt, takenAt)
	}
}
