package main

import (
	"fmt"
	"os"

	"github.com/openfloor/planner/internal/server"
	"github.com/openfloor/planner/pkg/config"
	"github.com/openfloor/planner/pkg/editor"
	"github.com/openfloor/planner/pkg/export"
	"github.com/openfloor/planner/pkg/plan"
	"github.com/openfloor/planner/pkg/validation"
)

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func loadPlan(path string) ([]*plan.Floor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project: %w", err)
	}
	floors, err := export.LoadProject(data)
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}
	return floors, nil
}

func runExport(projectPath, configPath, format, out string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	floors, err := loadPlan(projectPath)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "png":
		data, err = export.PNG(floors, cfg.Render)
	case "dxf":
		data = export.DXF(floors)
	case "project":
		data, err = export.ProjectJSON(floors)
	case "vertices":
		data, err = export.VerticesJSON(floors)
	default:
		return fmt.Errorf("unknown format %q (want png, dxf, project, or vertices)", format)
	}
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(out, data, 0o644)
}

func runValidate(projectPath string) error {
	floors, err := loadPlan(projectPath)
	if err != nil {
		return err
	}

	report := validation.ValidatePlan(floors)
	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runServe(projectPath, configPath string, port int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	fp := editor.New(defaultHistoryLimit)
	fp.GridStep = cfg.Grid.Step
	fp.SnapTolerance = cfg.Grid.Tolerance
	if projectPath != "" {
		floors, err := loadPlan(projectPath)
		if err != nil {
			return err
		}
		fp.Load(floors)
	}

	srv := server.New(fp, cfg, port)
	return srv.Start()
}
