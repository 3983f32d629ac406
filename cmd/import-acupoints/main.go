package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"tcmcare-data/internal/assessment"
	"tcmcare-data/internal/config"
	"tcmcare-data/internal/domain"
	"tcmcare-data/internal/repository"
	"tcmcare-data/internal/service"
	"tcmcare-data/pkg/database"
)

// 导入表头（中文模板，与运营侧整理的穴位表一致）
var importHeader = []string{
	"穴位名",
	"拼音",
	"代码",
	"经络",
	"部位",
	"定位",
	"功效",
	"主治",
	"按摩方法",
	"适宜体质",
	"图片",
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <acupoints.xlsx> [image_dir]", os.Args[0])
	}
	xlsxPath := os.Args[1]
	imageDir := ""
	if len(os.Args) > 2 {
		imageDir = os.Args[2]
	}

	cfg := config.Load()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", cfg.Database.Database, err)
	}
	defer db.Close()
	fmt.Printf("Connected to database: %s\n", cfg.Database.Database)

	repo := repository.NewPostgresAcupointsRepository(db)
	assets := service.NewAssetClient(cfg.Assets, zap.NewNop())

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		log.Fatalf("Failed to open Excel file: %v", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		log.Fatalf("Excel file has no sheets")
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		log.Fatalf("Failed to read rows: %v", err)
	}
	if len(rows) < 2 {
		log.Fatalf("Excel file has no data rows")
	}

	headerMap := make(map[string]int)
	for i, h := range rows[0] {
		headerMap[strings.TrimSpace(h)] = i
	}
	for _, h := range []string{"穴位名", "代码", "经络"} {
		if _, ok := headerMap[h]; !ok {
			log.Fatalf("Missing required column %q (expected header: %s)", h, strings.Join(importHeader, " / "))
		}
	}

	ctx := context.Background()
	successCount := 0
	var failures []string

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cell := func(name string) string {
			idx, ok := headerMap[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		name := cell("穴位名")
		if name == "" {
			continue
		}

		acupoint := &domain.Acupoint{
			Name:        name,
			Pinyin:      cell("拼音"),
			Code:        cell("代码"),
			Meridian:    cell("经络"),
			BodyPart:    cell("部位"),
			Location:    cell("定位"),
			Functions:   cell("功效"),
			Indications: cell("主治"),
			Technique:   cell("按摩方法"),
		}

		// 适宜体质列为体质代码，逗号/顿号分隔
		if raw := cell("适宜体质"); raw != "" {
			for _, part := range strings.FieldsFunc(raw, func(r rune) bool {
				return r == ',' || r == '，' || r == '、'
			}) {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				if _, err := assessment.ParseConstitution(part); err != nil {
					failures = append(failures, fmt.Sprintf("row %d: unknown constitution %q", rowIdx+1, part))
					continue
				}
				acupoint.SuitableConstitutions = append(acupoint.SuitableConstitutions, part)
			}
		}

		// 图片列：本地文件名，可选上传到资源服务
		if img := cell("图片"); img != "" {
			acupoint.ImageURL = img
			if assets.Enabled() && imageDir != "" {
				data, err := os.ReadFile(filepath.Join(imageDir, img))
				if err != nil {
					failures = append(failures, fmt.Sprintf("row %d: read image %s: %v", rowIdx+1, img, err))
				} else {
					uploadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
					path, err := assets.Upload(uploadCtx, img, data)
					cancel()
					if err != nil {
						failures = append(failures, fmt.Sprintf("row %d: upload image %s: %v", rowIdx+1, img, err))
					} else {
						acupoint.ImageURL = path
					}
				}
			}
		}

		id, err := repo.InsertAcupoint(ctx, acupoint)
		if err != nil {
			failures = append(failures, fmt.Sprintf("row %d (%s): %v", rowIdx+1, name, err))
			continue
		}
		fmt.Printf("  ✓ %s (%s) -> acupoint_id=%d\n", name, acupoint.Code, id)
		successCount++
	}

	fmt.Printf("\nImported %d acupoints, %d failed\n", successCount, len(failures))
	for _, msg := range failures {
		fmt.Printf("  ✗ %s\n", msg)
	}
	if len(failures) > 0 {
		os.Exit(1)
	}
}
