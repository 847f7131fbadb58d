package interfaces

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	analytics "ispdesk/internal/analytics/domain"
	catalog "ispdesk/internal/catalog/domain"
	clients "ispdesk/internal/clients/domain"
)

// BuildClientStatementPDF renders an account statement for one client:
// a header with the account details followed by the subscribed services
// and the full payment history.
func BuildClientStatementPDF(c *clients.Client, currency string, generatedAt time.Time) ([]byte, error) {
	if c == nil {
		return nil, clients.ErrNilClient
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Account Statement")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Client: %s", c.Name()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Email: %s", c.Email()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Class: %s (%d%% discount)", c.Class(), c.DiscountPercent()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Active: %t", c.Active()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Balance (%s): %.2f", currency, c.Balance()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format(time.RFC3339)))
	pdf.Ln(8)

	// Services table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 6, "Service", "1", 0, "C", false, 0, "")
	pdf.CellFormat(90, 6, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Price", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, svc := range c.Services() {
		pdf.CellFormat(40, 6, svc.Name(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 6, svc.Description(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", svc.Price()), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	// Payments table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Amount", "1", 0, "C", false, 0, "")
	pdf.CellFormat(80, 6, "Description", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, p := range c.Payments() {
		pdf.CellFormat(50, 6, p.At().Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", p.Amount()), "1", 0, "R", false, 0, "")
		pdf.CellFormat(80, 6, p.Description(), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildRegistryXLSX renders the registry as a workbook with a clients
// sheet and a statistics sheet.
func BuildRegistryXLSX(list []*clients.Client, snap analytics.Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	clientsSheet := "clients"
	statsSheet := "statistics"
	f.SetSheetName("Sheet1", clientsSheet)
	f.NewSheet(statsSheet)

	_ = f.SetCellValue(clientsSheet, "A1", "Name")
	_ = f.SetCellValue(clientsSheet, "B1", "Email")
	_ = f.SetCellValue(clientsSheet, "C1", "Class")
	_ = f.SetCellValue(clientsSheet, "D1", "Discount %")
	_ = f.SetCellValue(clientsSheet, "E1", "Active")
	_ = f.SetCellValue(clientsSheet, "F1", "Services")
	_ = f.SetCellValue(clientsSheet, "G1", "Balance")
	for i, c := range list {
		if c == nil {
			continue
		}
		row := i + 2
		_ = f.SetCellValue(clientsSheet, fmt.Sprintf("A%d", row), c.Name())
		_ = f.SetCellValue(clientsSheet, fmt.Sprintf("B%d", row), c.Email())
		_ = f.SetCellValue(clientsSheet, fmt.Sprintf("C%d", row), string(c.Class()))
		_ = f.SetCellValue(clientsSheet, fmt.Sprintf("D%d", row), c.DiscountPercent())
		_ = f.SetCellValue(clientsSheet, fmt.Sprintf("E%d", row), c.Active())
		_ = f.SetCellValue(clientsSheet, fmt.Sprintf("F%d", row), len(c.Services()))
		_ = f.SetCellValue(clientsSheet, fmt.Sprintf("G%d", row), c.Balance())
	}

	_ = f.SetCellValue(statsSheet, "A1", "Taken At")
	_ = f.SetCellValue(statsSheet, "B1", snap.TakenAt.Format(time.RFC3339))
	_ = f.SetCellValue(statsSheet, "A2", "Total Clients")
	_ = f.SetCellValue(statsSheet, "B2", snap.TotalClients)
	_ = f.SetCellValue(statsSheet, "A3", "Active Clients")
	_ = f.SetCellValue(statsSheet, "B3", snap.ActiveClients)
	_ = f.SetCellValue(statsSheet, "A4", "Inactive Clients")
	_ = f.SetCellValue(statsSheet, "B4", snap.InactiveClients)
	_ = f.SetCellValue(statsSheet, "A5", "Total Revenue")
	_ = f.SetCellValue(statsSheet, "B5", snap.TotalRevenue)
	_ = f.SetCellValue(statsSheet, "A6", "Average Balance")
	_ = f.SetCellValue(statsSheet, "B6", snap.AverageBalance)

	row := 8
	for _, class := range []clients.AccountClass{clients.ClassHome, clients.ClassBusiness, clients.ClassVIP} {
		_ = f.SetCellValue(statsSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("Clients %s", class))
		_ = f.SetCellValue(statsSheet, fmt.Sprintf("B%d", row), snap.ClientsByClass[class])
		row++
	}
	for _, kind := range []catalog.ServiceKind{catalog.ServiceInternet, catalog.ServiceTV, catalog.ServicePhone} {
		_ = f.SetCellValue(statsSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("Subscriptions %s", kind))
		_ = f.SetCellValue(statsSheet, fmt.Sprintf("B%d", row), snap.ServicesByKind[kind])
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
