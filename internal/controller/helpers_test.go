package controller

import (
	m "github.com/mouse-blink/linecov/internal/model"
)

func sampleCoverages() []m.FileCoverage {
	app := m.NewFile("src/app.go", []byte("package app\n\nfunc Add() {}\n\nfunc Sub() {}\n"), false)

	return []m.FileCoverage{
		{Path: "src/app.go", TotalLines: 5, UncoveredLines: []int{5}, Percentage: 80, Source: app},
		{Path: "lib/empty.go", TotalLines: 0, UncoveredLines: []int{1}, Percentage: 100},
	}
}
