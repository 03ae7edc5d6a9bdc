package export

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/offerdesk/internal/format"
	"github.com/sells-group/offerdesk/internal/state"
)

// WriteXLSX writes the quote as a spreadsheet: one row per line item plus a
// totals block. The layout mirrors what sales reps paste into offers.
func WriteXLSX(w io.Writer, s state.State) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Oferta")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"Pozycja", "Kategoria", "Ilość", "Cena jedn.", "Wartość"} {
		header.AddCell().SetString(h)
	}

	for _, it := range s.LineItems() {
		row := sheet.AddRow()
		row.AddCell().SetString(it.Name)
		row.AddCell().SetString(it.Category)
		row.AddCell().SetInt(it.Quantity)
		row.AddCell().SetString(format.Grosz(it.UnitPriceGrosz))
		row.AddCell().SetString(format.Grosz(it.TotalGrosz()))
	}

	sheet.AddRow() // spacer

	license := s.LicenseTotals()
	totals := []struct {
		label string
		value int64
	}{
		{"Licencje przed rabatem", license.BeforeDiscountGrosz},
		{"Rabat", license.DiscountGrosz},
		{"Licencje po rabacie", license.AfterDiscountGrosz},
		{"Wdrożenie", s.ImplementationTotal()},
		{"Ustalenia dodatkowe", s.ExtrasTotal()},
		{"Razem projekt", s.ProjectCostTotal()},
		{"Opieka (rozliczana osobno)", s.SupportPrice()},
	}
	for _, row := range totals {
		r := sheet.AddRow()
		r.AddCell().SetString(row.label)
		r.AddCell()
		r.AddCell()
		r.AddCell()
		r.AddCell().SetString(format.Grosz(row.value))
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "export: write xlsx")
	}
	return nil
}
