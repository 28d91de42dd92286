package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestProjectWorkbook(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	received := 40.0

	project := &model.Project{
		Name: "Riverside Mall",
		Tasks: []model.Task{
			{
				Name:        "Pour foundation",
				Description: "Phase one slab",
				Status:      constant.TaskStatusInProgress,
				Priority:    constant.TaskPriorityHigh,
				StartDate:   start,
				DueDate:     due,
				Assignees: []model.User{
					{Username: "foreman1"},
					{Username: "worker2"},
				},
			},
		},
		ResourceAllocations: []model.ResourceAllocation{
			{
				Material:         model.Material{Name: "Cement", Unit: constant.MaterialUnitBag},
				Quantity:         50,
				AllocatedDate:    start,
				ReceivedDate:     &due,
				ReceivedQuantity: &received,
			},
		},
	}

	data, err := ProjectWorkbook(project)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.NotContains(t, f.GetSheetList(), "Sheet1")

	name, err := f.GetCellValue("Tasks", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Pour foundation", name)

	assignees, err := f.GetCellValue("Tasks", "G2")
	require.NoError(t, err)
	assert.Equal(t, "foreman1, worker2", assignees)

	startCell, err := f.GetCellValue("Tasks", "E2")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", startCell)

	material, err := f.GetCellValue("Resource Allocations", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Cement", material)

	qty, err := f.GetCellValue("Resource Allocations", "C2")
	require.NoError(t, err)
	assert.Equal(t, "50.00", qty)

	receivedCell, err := f.GetCellValue("Resource Allocations", "F2")
	require.NoError(t, err)
	assert.Equal(t, "40.00", receivedCell)
}

func TestProjectWorkbookEmptyProject(t *testing.T) {
	data, err := ProjectWorkbook(&model.Project{Name: "Empty"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Tasks", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Name", header)

	header, err = f.GetCellValue("Resource Allocations", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Material", header)
}
