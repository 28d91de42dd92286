package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/xuri/excelize/v2"
)

var taskHeader = []string{
	"Name",
	"Description",
	"Status",
	"Priority",
	"Start Date",
	"Due Date",
	"Assignees",
}

var allocationHeader = []string{
	"Material",
	"Unit",
	"Quantity",
	"Allocated Date",
	"Received Date",
	"Received Quantity",
}

// ProjectWorkbook renders a project's tasks and resource allocations as
// an xlsx workbook.
func ProjectWorkbook(project *model.Project) ([]byte, error) {
	f := excelize.NewFile()

	if err := writeTaskSheet(f, project.Tasks); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeAllocationSheet(f, project.ResourceAllocations); err != nil {
		f.Close()
		return nil, err
	}

	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeTaskSheet(f *excelize.File, tasks []model.Task) error {
	const sheet = "Tasks"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	if err := writeHeader(f, sheet, taskHeader); err != nil {
		return err
	}

	for i, task := range tasks {
		assignees := make([]string, 0, len(task.Assignees))
		for _, a := range task.Assignees {
			assignees = append(assignees, a.Username)
		}

		row := []any{
			task.Name,
			task.Description,
			string(task.Status),
			string(task.Priority),
			formatDate(&task.StartDate),
			formatDate(&task.DueDate),
			strings.Join(assignees, ", "),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

func writeAllocationSheet(f *excelize.File, allocations []model.ResourceAllocation) error {
	const sheet = "Resource Allocations"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeHeader(f, sheet, allocationHeader); err != nil {
		return err
	}

	for i, alloc := range allocations {
		received := ""
		if alloc.ReceivedQuantity != nil {
			received = fmt.Sprintf("%.2f", *alloc.ReceivedQuantity)
		}

		row := []any{
			alloc.Material.Name,
			string(alloc.Material.Unit),
			fmt.Sprintf("%.2f", alloc.Quantity),
			formatDate(&alloc.AllocatedDate),
			formatDate(alloc.ReceivedDate),
			received,
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}

	return nil
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return t.Format("2006-01-02")
}
