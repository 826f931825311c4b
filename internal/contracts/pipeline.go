package contracts

// Pipeline Stage 정의 (SSOT)
// 모든 로그와 스테이지 결과에서 이 상수를 사용해야 함
//
// 파이프라인 흐름:
//   S0 → S1 → {S2, S3, S4}
//   Data  View   Positions / Ranking / Growth

// Stage represents a pipeline stage
type Stage string

const (
	// StageData S0: 데이터셋 로드 및 정제
	// 책임: 소스 읽기, 계약 만료/시장가치 없음 제외, Overall 내림차순 정렬
	// 위치: internal/s0_data/
	StageData Stage = "S0_DATA"

	// StageView S1: 필터 적용 (View)
	// 책임: 포지션/국적/나이 필터, 필터 옵션, 개요 지표
	// 위치: internal/s1_view/
	StageView Stage = "S1_VIEW"

	// StagePositions S2: 포지션 그룹 집계
	// 책임: 그룹별 평균, 임금 표준편차, Tukey 이상치, 분포
	// 위치: internal/s2_positions/
	StagePositions Stage = "S2_POSITIONS"

	// StageRanking S3: 지표별 순위 및 가성비 선수
	// 위치: internal/s3_ranking/
	StageRanking Stage = "S3_RANKING"

	// StageGrowth S4: 잠재력 격차 분석
	// 위치: internal/s4_growth/
	StageGrowth Stage = "S4_GROWTH"
)

// String returns the stage name
func (s Stage) String() string {
	return string(s)
}

// ShortName returns abbreviated stage name (e.g., "S0", "S1")
func (s Stage) ShortName() string {
	switch s {
	case StageData:
		return "S0"
	case StageView:
		return "S1"
	case StagePositions:
		return "S2"
	case StageRanking:
		return "S3"
	case StageGrowth:
		return "S4"
	default:
		return "UNKNOWN"
	}
}

// Description returns a short description of the stage
func (s Stage) Description() string {
	switch s {
	case StageData:
		return "dataset load"
	case StageView:
		return "filtered view"
	case StagePositions:
		return "position aggregation"
	case StageRanking:
		return "ranking"
	case StageGrowth:
		return "potential gap"
	default:
		return "unknown"
	}
}

// AllStages returns all pipeline stages in order
func AllStages() []Stage {
	return []Stage{
		StageData,
		StageView,
		StagePositions,
		StageRanking,
		StageGrowth,
	}
}

// IsValidStage checks if a stage string is valid
func IsValidStage(s string) bool {
	for _, stage := range AllStages() {
		if string(stage) == s {
			return true
		}
	}
	return false
}

// PipelineResult represents the result of a pipeline stage execution
type PipelineResult struct {
	Stage       Stage                  `json:"stage"`
	InputCount  int                    `json:"input_count"`
	OutputCount int                    `json:"output_count"`
	Duration    int64                  `json:"duration_us"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}
