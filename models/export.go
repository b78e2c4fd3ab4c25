package models

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExportProductsExcel writes the full filtered product list as an xlsx
// workbook, one row per product plus a heading row. Pagination does not
// apply to exports.
func ExportProductsExcel(ctx context.Context, w io.Writer, filter ProductFilter) error {

	page, err := PaginateProducts(ctx, 0, 0, filter)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	sheetName := "Products"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headings := []string{
		"Code", "Name", "Brand", "Description", "CategoryId", "DistributorId",
		"PurchasePrice", "MarginPct", "NetPrice", "Tax", "SalePrice", "Stock",
		"VehicleType", "OilType", "FuelType", "FilterType",
	}
	for i, h := range headings {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, h)
	}

	for i, p := range page.Items {
		row := fmt.Sprint(i + 2)
		f.SetCellValue(sheetName, "A"+row, p.Code)
		f.SetCellValue(sheetName, "B"+row, p.Name)
		f.SetCellValue(sheetName, "C"+row, p.Brand)
		f.SetCellValue(sheetName, "D"+row, p.Description)
		f.SetCellValue(sheetName, "E"+row, p.CategoryId)
		f.SetCellValue(sheetName, "F"+row, p.DistributorId)
		f.SetCellValue(sheetName, "G"+row, p.PurchasePrice.InexactFloat64())
		f.SetCellValue(sheetName, "H"+row, p.MarginPct.InexactFloat64())
		f.SetCellValue(sheetName, "I"+row, p.NetPrice.InexactFloat64())
		f.SetCellValue(sheetName, "J"+row, p.Tax.InexactFloat64())
		f.SetCellValue(sheetName, "K"+row, p.SalePrice.InexactFloat64())
		f.SetCellValue(sheetName, "L"+row, p.Stock)
		f.SetCellValue(sheetName, "M"+row, p.VehicleType)
		f.SetCellValue(sheetName, "N"+row, p.OilType)
		f.SetCellValue(sheetName, "O"+row, p.FuelType)
		f.SetCellValue(sheetName, "P"+row, p.FilterType)
	}

	return f.Write(w)
}
