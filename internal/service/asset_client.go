package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tcmcare-data/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// AssetUploadResponse 资源服务上传接口响应
type AssetUploadResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path"` // 存储后的相对路径
}

// AssetClient 静态资源（图片 CDN）客户端
// 目录表里只存相对路径，出接口时在这里补全；未配置 BaseURL 时原样返回
type AssetClient struct {
	httpClient     *resty.Client
	baseURL        string
	uploadEndpoint string
	logger         *zap.Logger
}

// NewAssetClient 创建资源客户端
func NewAssetClient(cfg config.AssetsConfig, logger *zap.Logger) *AssetClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Accept", "application/json")

	return &AssetClient{
		httpClient:     client,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		uploadEndpoint: cfg.UploadEndpoint,
		logger:         logger,
	}
}

// Enabled 是否配置了资源服务
func (c *AssetClient) Enabled() bool { return c.baseURL != "" }

// PublicURL 相对路径补全为可访问地址
func (c *AssetClient) PublicURL(relative string) string {
	if relative == "" || c.baseURL == "" {
		return relative
	}
	if strings.HasPrefix(relative, "http://") || strings.HasPrefix(relative, "https://") {
		return relative
	}
	return c.baseURL + "/" + strings.TrimLeft(relative, "/")
}

// Upload 上传一张图片，返回存储后的相对路径（导入工具用）
func (c *AssetClient) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("asset service is not configured")
	}

	var response AssetUploadResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFileReader("file", filename, strings.NewReader(string(data))).
		SetResult(&response).
		Post(c.uploadEndpoint)
	if err != nil {
		c.logger.Error("Asset upload failed",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to upload asset: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("asset service returned status %d", resp.StatusCode())
	}
	if response.Code != 0 {
		return "", fmt.Errorf("asset service error: %s (code: %d)", response.Message, response.Code)
	}

	c.logger.Info("Asset uploaded",
		zap.String("filename", filename),
		zap.String("path", response.Path),
	)
	return response.Path, nil
}

// Ping 探活资源服务
func (c *AssetClient) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	resp, err := c.httpClient.R().SetContext(ctx).Get("/ping")
	if err != nil {
		return fmt.Errorf("failed to ping asset service: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("asset service ping returned status %d", resp.StatusCode())
	}
	return nil
}
