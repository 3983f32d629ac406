package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tcmcare-data/internal/assessment"
	"tcmcare-data/internal/domain"
	"tcmcare-data/internal/repository"

	"go.uber.org/zap"
)

// TongueService 舌诊服务
type TongueService struct {
	records repository.TongueRecordsRepository
	results repository.ResultsRepository
	logger  *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewTongueService 创建舌诊服务
func NewTongueService(
	records repository.TongueRecordsRepository,
	results repository.ResultsRepository,
	logger *zap.Logger,
	now func() time.Time,
	newID func() string,
) *TongueService {
	return &TongueService{
		records: records,
		results: results,
		logger:  logger,
		now:     now,
		newID:   newID,
	}
}

// AnalyzeTongueRequest 舌象分析请求
type AnalyzeTongueRequest struct {
	UserID      string                       `json:"user_id"`
	ResultID    string                       `json:"result_id"` // 可选，关联此前的问卷结果
	Observation assessment.TongueObservation `json:"observation"`
}

// TongueAnalysisResponse 舌象分析结果（前端格式）
type TongueAnalysisResponse struct {
	RecordID         string                       `json:"record_id"`
	Constitution     string                       `json:"constitution"`
	ConstitutionName string                       `json:"constitution_name"`
	Confidence       float64                      `json:"confidence"`
	Scores           map[string]int               `json:"scores"`
	Observation      assessment.TongueObservation `json:"observation"`
	Advice           domain.Advice                `json:"advice"`
	Comparison       *ConsistencyResponse         `json:"comparison,omitempty"`
	CreatedAt        time.Time                    `json:"created_at"`
}

// ConsistencyResponse 问卷与舌象一致性结论（前端格式）
type ConsistencyResponse struct {
	IsConsistent   bool   `json:"is_consistent"`
	TestType       string `json:"test_constitution"`
	TestTypeName   string `json:"test_constitution_name"`
	TongueType     string `json:"tongue_constitution"`
	TongueTypeName string `json:"tongue_constitution_name"`
	MessageKey     string `json:"message_key"`
}

// AnalyzeTongue 四项舌象特征判定体质倾向并存诊
func (s *TongueService) AnalyzeTongue(ctx context.Context, req AnalyzeTongueRequest) (*TongueAnalysisResponse, error) {
	if err := assessment.ValidateObservation(req.Observation); err != nil {
		return nil, err
	}

	classification := assessment.ClassifyTongue(req.Observation)
	advice := domain.AdviceFor(classification.Type.Code())

	scores := make(map[string]int, len(classification.PerTypeScores))
	for t, v := range classification.PerTypeScores {
		scores[t.Code()] = v
	}

	resp := &TongueAnalysisResponse{
		RecordID:         s.newID(),
		Constitution:     classification.Type.Code(),
		ConstitutionName: classification.Type.Name(),
		Confidence:       classification.Confidence,
		Scores:           scores,
		Observation:      req.Observation,
		Advice:           advice,
		CreatedAt:        s.now(),
	}

	// 关联了问卷结果就顺带给出跨模态一致性结论
	if req.ResultID != "" {
		comparison, err := s.compareWithResult(ctx, req.ResultID, classification.Type)
		if err != nil {
			return nil, err
		}
		resp.Comparison = comparison
	}

	record, err := s.toRecord(resp, req)
	if err != nil {
		return nil, err
	}
	if err := s.records.SaveRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save tongue record: %w", err)
	}

	s.logger.Info("Tongue observation analyzed",
		zap.String("record_id", resp.RecordID),
		zap.String("constitution", resp.Constitution),
		zap.Float64("confidence", resp.Confidence),
	)
	return resp, nil
}

// TongueOptionsResponse 四项特征的候选值
type TongueOptionsResponse struct {
	TongueColors     []string `json:"tongue_colors"`
	TongueShapes     []string `json:"tongue_shapes"`
	CoatingColors    []string `json:"coating_colors"`
	CoatingThickness []string `json:"coating_thickness"`
}

// Options 返回舌象录入的候选值
func (s *TongueService) Options() *TongueOptionsResponse {
	return &TongueOptionsResponse{
		TongueColors:     assessment.TongueColors,
		TongueShapes:     assessment.TongueShapes,
		CoatingColors:    assessment.CoatingColors,
		CoatingThickness: assessment.CoatingThickness,
	}
}

// TongueRecordSummary 舌诊历史列表项
type TongueRecordSummary struct {
	RecordID         string        `json:"record_id"`
	Constitution     string        `json:"constitution"`
	ConstitutionName string        `json:"constitution_name"`
	Confidence       float64       `json:"confidence"`
	TongueColor      string        `json:"tongue_color"`
	TongueShape      string        `json:"tongue_shape"`
	CoatingColor     string        `json:"coating_color"`
	CoatingThickness string        `json:"coating_thickness"`
	Advice           domain.Advice `json:"advice"`
	CreatedAt        time.Time     `json:"created_at"`
}

// ListRecords 查询用户舌诊历史
func (s *TongueService) ListRecords(ctx context.Context, userID string, limit int) ([]TongueRecordSummary, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	records, err := s.records.ListRecordsByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]TongueRecordSummary, 0, len(records))
	for _, r := range records {
		summary := TongueRecordSummary{
			RecordID:         r.RecordID,
			Constitution:     r.ConstitutionTendency,
			ConstitutionName: assessment.ConstitutionName(r.ConstitutionTendency),
			Confidence:       r.Confidence,
			TongueColor:      r.TongueColor,
			TongueShape:      r.TongueShape,
			CoatingColor:     r.CoatingColor,
			CoatingThickness: r.CoatingThickness,
			CreatedAt:        r.CreatedAt,
		}
		if len(r.Advice) > 0 {
			_ = json.Unmarshal(r.Advice, &summary.Advice)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Compare 比较指定问卷结果与舌象体质标签
func (s *TongueService) Compare(ctx context.Context, resultID, tongueConstitution string) (*ConsistencyResponse, error) {
	if resultID == "" {
		return nil, fmt.Errorf("result_id is required")
	}
	tongueType, err := assessment.ParseConstitution(tongueConstitution)
	if err != nil {
		return nil, err
	}
	return s.compareWithResult(ctx, resultID, tongueType)
}

func (s *TongueService) compareWithResult(ctx context.Context, resultID string, tongueType assessment.ConstitutionType) (*ConsistencyResponse, error) {
	result, err := s.results.GetResult(ctx, resultID)
	if err != nil {
		return nil, err
	}
	testType, err := assessment.ParseConstitution(result.Primary)
	if err != nil {
		return nil, fmt.Errorf("stored result %s has invalid constitution %q: %w", resultID, result.Primary, err)
	}

	verdict := assessment.Compare(testType, tongueType)
	return &ConsistencyResponse{
		IsConsistent:   verdict.IsConsistent,
		TestType:       verdict.TestType.Code(),
		TestTypeName:   verdict.TestType.Name(),
		TongueType:     verdict.TongueType.Code(),
		TongueTypeName: verdict.TongueType.Name(),
		MessageKey:     verdict.MessageKey,
	}, nil
}

func (s *TongueService) toRecord(resp *TongueAnalysisResponse, req AnalyzeTongueRequest) (*domain.TongueRecord, error) {
	scores, err := json.Marshal(resp.Scores)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tongue scores: %w", err)
	}
	advice, err := json.Marshal(resp.Advice)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal advice: %w", err)
	}

	return &domain.TongueRecord{
		RecordID:             resp.RecordID,
		UserID:               req.UserID,
		ResultID:             req.ResultID,
		TongueColor:          req.Observation.TongueColor,
		TongueShape:          req.Observation.TongueShape,
		CoatingColor:         req.Observation.CoatingColor,
		CoatingThickness:     req.Observation.CoatingThickness,
		ConstitutionTendency: resp.Constitution,
		Confidence:           resp.Confidence,
		Scores:               scores,
		Advice:               advice,
		CreatedAt:            resp.CreatedAt,
	}, nil
}
