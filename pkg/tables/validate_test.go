package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pyhub-apps/pdfprocessor-golang/pkg/pdf"
)

func TestValidateAcceptsRectangularTable(t *testing.T) {
	table := tableWithRows(pdf.BoundingBox{X0: 0, Y0: 0, X1: 100, Y1: 50},
		rowOf("a", "b"), rowOf("c", "d"))

	assert.True(t, Validate(table, DefaultMetrics()))
}

func TestValidateRejections(t *testing.T) {
	bigEnough := pdf.BoundingBox{X0: 0, Y0: 0, X1: 100, Y1: 50}

	tests := []struct {
		name  string
		table *Table
	}{
		{"no rows", tableWithRows(bigEnough)},
		{"single row", tableWithRows(bigEnough, rowOf("a", "b"))},
		{"row with one cell", tableWithRows(bigEnough, rowOf("a", "b"), rowOf("c"))},
		{"ragged rows", tableWithRows(bigEnough, rowOf("a", "b"), rowOf("c", "d", "e"))},
		{"too narrow", tableWithRows(pdf.BoundingBox{X0: 0, Y0: 0, X1: 30, Y1: 50},
			rowOf("a", "b"), rowOf("c", "d"))},
		{"too short", tableWithRows(pdf.BoundingBox{X0: 0, Y0: 0, X1: 100, Y1: 10},
			rowOf("a", "b"), rowOf("c", "d"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Validate(tt.table, DefaultMetrics()))
		})
	}
}
