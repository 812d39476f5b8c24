package report

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"Setpoint/internal/energy"

	"github.com/phpdave11/gofpdf"
)

type Handler struct {
	Savings *energy.Handler
}

// Generate serves GET /api/report with the same query as /api and returns
// the two savings breakdowns as a PDF.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	res, status, msg := h.Savings.Run(r)
	if status != http.StatusOK {
		energy.WriteError(w, status, msg)
		return
	}
	req, _ := energy.ParseQuery(r.URL.Query())

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"savings-report.pdf\"")
	if err := Write(w, req, res, time.Now()); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func Write(out io.Writer, req energy.Request, res energy.Response, date time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "HVAC Setpoint Savings")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Climate: %s", req.Climate))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Heating", req.HeatingFrom, req.HeatingTo, res.Heating)
	section(pdf, "Cooling", req.CoolingFrom, req.CoolingTo, res.Cooling)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Existing VAV system with low, auto-adjusting minimums. "+
		"Setpoints outside the simulated range are pinned to its nearest end.", "", "L", false)
	return pdf.Output(out)
}

func section(pdf *gofpdf.Fpdf, title string, from, to float64, res energy.Result) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("%s: %.1f F -> %.1f F", title, toFahrenheit(from), toFahrenheit(to)))
	pdf.Ln(9)

	rows := []struct {
		label string
		value float64
	}{
		{"Terminal heating", res.ChartData.TerminalHeating},
		{"Central heating", res.ChartData.CentralHeating},
		{"Cooling", res.ChartData.Cooling},
		{"Fans", res.ChartData.Fans},
		{"Total HVAC", res.HVAC},
		{"Electricity", res.TableData.Electric},
		{"Natural gas", res.TableData.NaturalGas},
	}
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(70, 7, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f %%", row.value), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func toFahrenheit(c float64) float64 {
	return c*9/5 + 32
}
