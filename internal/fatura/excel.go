package fatura

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportarXLSX monta a planilha do demonstrativo: itens da fatura, taxa de
// administração, retenções e o repasse final.
func ExportarXLSX(d *Demonstrativo) (*excelize.File, error) {
	f := excelize.NewFile()
	const planilha = "Sheet1"

	f.SetCellValue(planilha, "A1", fmt.Sprintf("Demonstrativo do contrato %d", d.ContratoID))
	f.SetCellValue(planilha, "A3", "Descrição")
	f.SetCellValue(planilha, "B3", "Valor (R$)")

	linha := 4
	for _, item := range d.Linhas {
		f.SetCellValue(planilha, fmt.Sprintf("A%d", linha), item.Descricao)
		f.SetCellValue(planilha, fmt.Sprintf("B%d", linha), item.Valor.InexactFloat64())
		linha++
	}

	f.SetCellValue(planilha, fmt.Sprintf("A%d", linha), "Total da fatura")
	f.SetCellValue(planilha, fmt.Sprintf("B%d", linha), d.TotalFatura.InexactFloat64())
	linha += 2

	f.SetCellValue(planilha, fmt.Sprintf("A%d", linha), "Taxa de administração")
	f.SetCellValue(planilha, fmt.Sprintf("B%d", linha), d.TaxaAdministracao.Neg().InexactFloat64())
	linha++

	for _, r := range d.Retencoes {
		f.SetCellValue(planilha, fmt.Sprintf("A%d", linha), "Retido: "+r.Descricao)
		f.SetCellValue(planilha, fmt.Sprintf("B%d", linha), r.Valor.Neg().InexactFloat64())
		linha++
	}

	f.SetCellValue(planilha, fmt.Sprintf("A%d", linha), "Total antecipado")
	f.SetCellValue(planilha, fmt.Sprintf("B%d", linha), d.TotalAntecipado.InexactFloat64())
	linha++

	linha++
	f.SetCellValue(planilha, fmt.Sprintf("A%d", linha), "Repasse aos locadores")
	f.SetCellValue(planilha, fmt.Sprintf("B%d", linha), d.RepasseLocadores.InexactFloat64())

	return f, nil
}
