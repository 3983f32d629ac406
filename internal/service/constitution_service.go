package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"tcmcare-data/internal/assessment"
	"tcmcare-data/internal/domain"
	"tcmcare-data/internal/repository"
	"tcmcare-data/internal/store"

	"go.uber.org/zap"
)

// 结果缓存：详情页与分享页会反复拉同一条结果
const (
	resultCachePrefix = "result:"
	resultCacheTTL    = 24 * time.Hour

	// 食材宜忌几乎不变，缓存减轻目录表压力
	foodCachePrefix = "food:"
	foodCacheTTL    = time.Hour
)

// ConstitutionService 体质测试服务
type ConstitutionService struct {
	results     repository.ResultsRepository
	ingredients repository.IngredientsRepository
	cache       store.KV
	logger      *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewConstitutionService 创建体质测试服务
// now/newID 注入时钟与 ID 生成器，测试中可固定
func NewConstitutionService(
	results repository.ResultsRepository,
	ingredients repository.IngredientsRepository,
	cache store.KV,
	logger *zap.Logger,
	now func() time.Time,
	newID func() string,
) *ConstitutionService {
	return &ConstitutionService{
		results:     results,
		ingredients: ingredients,
		cache:       cache,
		logger:      logger,
		now:         now,
		newID:       newID,
	}
}

// SubmitTestRequest 提交问卷请求
type SubmitTestRequest struct {
	UserID  string `json:"user_id"`
	Answers []any  `json:"answers"`

	// 提交上下文（handler 层填充）
	Platform  string `json:"platform"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// SecondaryItem 次要体质（前端格式）
type SecondaryItem struct {
	Type  string  `json:"type"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// TestResultResponse 测试结果（前端格式）
type TestResultResponse struct {
	ResultID       string                   `json:"result_id"`
	Primary        string                   `json:"primary"`
	PrimaryName    string                   `json:"primary_name"`
	PrimaryIsPeace bool                     `json:"primary_is_peace"`
	Secondary      []SecondaryItem          `json:"secondary"`
	Scores         map[string]float64       `json:"scores"`
	ReasonCode     string                   `json:"reason_code"`
	SchemaVersion  int                      `json:"schema_version"`
	Info           *domain.ConstitutionInfo `json:"constitution_info,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
}

// SubmitTest 提交 30 题问卷，判定体质并持久化结果
func (s *ConstitutionService) SubmitTest(ctx context.Context, req SubmitTestRequest) (*TestResultResponse, error) {
	schema := assessment.CanonicalSchema()

	answers, verr := assessment.ParseAnswers(req.Answers)
	if verr != nil {
		return nil, verr
	}
	validated, verr := assessment.Validate(answers, schema)
	if verr != nil {
		return nil, verr
	}

	raw := assessment.Score(validated, schema)
	normalized := assessment.Normalize(raw, schema)
	classification := assessment.Classify(normalized)
	assembled := assessment.Assemble(classification, validated, schema.Version, s.now, s.newID)

	record, err := s.toRecord(assembled, req)
	if err != nil {
		return nil, err
	}
	if err := s.results.SaveResult(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	resp := s.toResponse(assembled)
	s.cacheResponse(ctx, resp)

	s.logger.Info("Constitution test submitted",
		zap.String("result_id", assembled.ResultID),
		zap.String("primary", classification.Primary.Code()),
		zap.String("reason_code", string(classification.ReasonCode)),
	)
	return resp, nil
}

// GetResult 按 ID 查询测试结果，优先走缓存
func (s *ConstitutionService) GetResult(ctx context.Context, resultID string) (*TestResultResponse, error) {
	if resultID == "" {
		return nil, fmt.Errorf("result_id is required")
	}

	if cached, err := s.cache.Get(ctx, resultCachePrefix+resultID); err == nil {
		var resp TestResultResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
		// 缓存损坏则穿透到库
	}

	record, err := s.results.GetResult(ctx, resultID)
	if err != nil {
		return nil, err
	}
	resp, err := s.recordToResponse(record)
	if err != nil {
		return nil, err
	}
	s.cacheResponse(ctx, resp)
	return resp, nil
}

// ResultSummary 历史结果列表项
type ResultSummary struct {
	ResultID    string    `json:"result_id"`
	Primary     string    `json:"primary"`
	PrimaryName string    `json:"primary_name"`
	ReasonCode  string    `json:"reason_code"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListResults 查询用户历史测试结果
func (s *ConstitutionService) ListResults(ctx context.Context, userID string, limit int) ([]ResultSummary, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	records, err := s.results.ListResultsByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	summaries := make([]ResultSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, ResultSummary{
			ResultID:    r.ResultID,
			Primary:     r.Primary,
			PrimaryName: r.PrimaryName,
			ReasonCode:  r.ReasonCode,
			CreatedAt:   r.CreatedAt,
		})
	}
	return summaries, nil
}

// QuestionItem 问卷题目（前端格式）
type QuestionItem struct {
	Number       int    `json:"number"`
	Constitution string `json:"constitution"`
	Content      string `json:"content"`
}

// QuestionsResponse 问卷定义
type QuestionsResponse struct {
	Version   int            `json:"version"`
	Questions []QuestionItem `json:"questions"`
	Options   map[int]string `json:"options"`
}

// Questions 返回当前问卷定义
func (s *ConstitutionService) Questions() *QuestionsResponse {
	schema := assessment.CanonicalSchema()
	items := make([]QuestionItem, 0, schema.QuestionCount())
	for _, q := range schema.Questions {
		items = append(items, QuestionItem{
			Number:       q.Number,
			Constitution: q.Type.Code(),
			Content:      q.Content,
		})
	}
	return &QuestionsResponse{
		Version:   schema.Version,
		Questions: items,
		Options:   assessment.AnswerOptions,
	}
}

// FoodRecommendation 按体质的饮食推荐
type FoodRecommendation struct {
	Constitution     string               `json:"constitution"`
	ConstitutionName string               `json:"constitution_name"`
	DietPrinciples   []string             `json:"diet_principles"`
	Suitable         []*domain.Ingredient `json:"suitable"`
	Avoid            []*domain.Ingredient `json:"avoid"`
}

// RecommendFood 按体质返回饮食原则与宜忌食材，结果按体质+limit 缓存
func (s *ConstitutionService) RecommendFood(ctx context.Context, constitution string, limit int) (*FoodRecommendation, error) {
	t, err := assessment.ParseConstitution(constitution)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("%s%s:%d", foodCachePrefix, constitution, limit)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var rec FoodRecommendation
		if err := json.Unmarshal([]byte(cached), &rec); err == nil {
			return &rec, nil
		}
	}

	suitable, avoid, err := s.ingredients.RecommendForConstitution(ctx, constitution, limit)
	if err != nil {
		return nil, err
	}

	rec := &FoodRecommendation{
		Constitution:     constitution,
		ConstitutionName: t.Name(),
		Suitable:         suitable,
		Avoid:            avoid,
	}
	if info, ok := domain.InfoFor(constitution); ok {
		rec.DietPrinciples = info.Diet
	}

	if payload, err := json.Marshal(rec); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(payload), foodCacheTTL); err != nil {
			s.logger.Warn("Failed to cache food recommendation", zap.String("constitution", constitution), zap.Error(err))
		}
	}
	return rec, nil
}

func (s *ConstitutionService) toResponse(a assessment.AssembledResult) *TestResultResponse {
	c := a.Classification
	secondary := make([]SecondaryItem, 0, len(c.Secondary))
	for _, sec := range c.Secondary {
		secondary = append(secondary, SecondaryItem{
			Type:  sec.Type.Code(),
			Name:  sec.Name,
			Score: sec.Score,
		})
	}
	// 分数对外固定两位小数
	scores := make(map[string]float64, len(c.Scores))
	for t, v := range c.Scores {
		scores[t.Code()] = round2(v)
	}

	resp := &TestResultResponse{
		ResultID:       a.ResultID,
		Primary:        c.Primary.Code(),
		PrimaryName:    c.Primary.Name(),
		PrimaryIsPeace: c.PrimaryIsPeace,
		Secondary:      secondary,
		Scores:         scores,
		ReasonCode:     string(c.ReasonCode),
		SchemaVersion:  a.SchemaVersion,
		CreatedAt:      a.CreatedAt,
	}
	if info, ok := domain.InfoFor(resp.Primary); ok {
		resp.Info = &info
	}
	return resp
}

func (s *ConstitutionService) toRecord(a assessment.AssembledResult, req SubmitTestRequest) (*domain.AssessmentResult, error) {
	resp := s.toResponse(a)

	secondary, err := json.Marshal(resp.Secondary)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal secondary: %w", err)
	}
	scores, err := json.Marshal(resp.Scores)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scores: %w", err)
	}
	answers, err := json.Marshal(a.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal answers: %w", err)
	}

	return &domain.AssessmentResult{
		ResultID:      a.ResultID,
		UserID:        req.UserID,
		Primary:       resp.Primary,
		PrimaryName:   resp.PrimaryName,
		Secondary:     secondary,
		Scores:        scores,
		ReasonCode:    resp.ReasonCode,
		Answers:       answers,
		SchemaVersion: a.SchemaVersion,
		Platform:      req.Platform,
		IPAddress:     req.IPAddress,
		UserAgent:     req.UserAgent,
		CreatedAt:     a.CreatedAt,
	}, nil
}

func (s *ConstitutionService) recordToResponse(r *domain.AssessmentResult) (*TestResultResponse, error) {
	resp := &TestResultResponse{
		ResultID:      r.ResultID,
		Primary:       r.Primary,
		PrimaryName:   r.PrimaryName,
		ReasonCode:    r.ReasonCode,
		SchemaVersion: r.SchemaVersion,
		CreatedAt:     r.CreatedAt,
	}
	resp.PrimaryIsPeace = r.Primary == assessment.Peace.Code()

	if len(r.Secondary) > 0 {
		if err := json.Unmarshal(r.Secondary, &resp.Secondary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal secondary: %w", err)
		}
	}
	if len(r.Scores) > 0 {
		if err := json.Unmarshal(r.Scores, &resp.Scores); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
		}
	}
	if info, ok := domain.InfoFor(r.Primary); ok {
		resp.Info = &info
	}
	return resp, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *ConstitutionService) cacheResponse(ctx context.Context, resp *TestResultResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, resultCachePrefix+resp.ResultID, string(payload), resultCacheTTL); err != nil {
		s.logger.Warn("Failed to cache result", zap.String("result_id", resp.ResultID), zap.Error(err))
	}
}
