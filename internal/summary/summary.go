// Package summary renders a layer-by-layer description of a sequential
// network.
package summary

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/born-ml/seqnet/internal/nn"
	"github.com/born-ml/seqnet/internal/tensor"
)

// Rows returns one row per unit: index, name, type, input shape, output
// shape and parameter count.
func Rows(units []nn.Unit) [][]string {
	rows := make([][]string, 0, len(units))
	for i, unit := range units {
		rows = append(rows, []string{
			strconv.Itoa(i),
			unit.Name(),
			typeName(unit),
			formatShape(unit.InputShape()),
			formatShape(unit.OutputShape()),
			strconv.Itoa(unit.ParamCount()),
		})
	}
	return rows
}

// Total returns the total number of trainable scalars across units.
func Total(units []nn.Unit) int {
	var total int
	for _, unit := range units {
		total += unit.ParamCount()
	}
	return total
}

// Render writes the summary table followed by the total parameter count.
func Render(w io.Writer, units []nn.Unit) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "LAYER", "TYPE", "INPUT", "OUTPUT", "PARAMS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(Rows(units))
	table.Render()

	fmt.Fprintf(w, "Total params: %d\n", Total(units))
}

func typeName(unit nn.Unit) string {
	switch unit.(type) {
	case *nn.Dense:
		return "Dense"
	case *nn.ReLU:
		return "ReLU"
	case *nn.Sigmoid:
		return "Sigmoid"
	case *nn.BatchNorm:
		return "BatchNorm"
	case *nn.Dropout:
		return "Dropout"
	default:
		return fmt.Sprintf("%T", unit)
	}
}

// formatShape prints an unknown batch dimension as "?".
func formatShape(s tensor.Shape) string {
	if s.Rows() == 0 && s.Cols() == 0 {
		return "-"
	}
	if s.Rows() == 0 {
		return fmt.Sprintf("(?, %d)", s.Cols())
	}
	return s.String()
}
