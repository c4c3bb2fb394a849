package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"milletsurvey/internal/cache"
	"milletsurvey/internal/catalog"
	"milletsurvey/internal/model"
	"milletsurvey/internal/repository"
)

// challengeQuestionID is the free-text answer mined for keyword themes.
const challengeQuestionID = "E1_challenge"

// likertSubjects maps each 1-5 perception question to its chart label.
var likertSubjects = []struct {
	id    string
	label string
}{
	{"C1_barrier", "Fertilizer Cost"},
	{"C2_access", "Manure Access"},
	{"C3_knowledge", "Knowledge"},
	{"C4_willing", "Willingness"},
	{"C5_climate", "Climate Risk"},
}

// AnalyticsService computes the dashboard aggregates over the persisted
// response collection. All metric functions are pure; the only state is the
// short-TTL Redis snapshot in front of them.
type AnalyticsService struct {
	responseRepo repository.ResponseRepo
	snapshots    cache.SnapshotCache
	catalog      *catalog.Catalog
	keywords     []string
	logger       *zap.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	responseRepo repository.ResponseRepo,
	snapshots cache.SnapshotCache,
	cat *catalog.Catalog,
	keywords []string,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		responseRepo: responseRepo,
		snapshots:    snapshots,
		catalog:      cat,
		keywords:     keywords,
		logger:       logger,
	}
}

// Dashboard returns the aggregate snapshot, serving a cached copy when fresh
// enough and recomputing from the record store otherwise.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*model.DashboardSnapshot, error) {
	cached, err := s.snapshots.Get(ctx)
	if err != nil {
		s.logger.Warn("snapshot cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	responses, err := s.responseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := s.BuildSnapshot(responses)
	if err := s.snapshots.Set(ctx, snapshot); err != nil {
		s.logger.Warn("snapshot cache write failed", zap.Error(err))
	}
	return snapshot, nil
}

// BuildSnapshot computes every dashboard metric from the given responses.
func (s *AnalyticsService) BuildSnapshot(responses []*model.SurveyResponse) *model.DashboardSnapshot {
	return &model.DashboardSnapshot{
		TotalResponses: len(responses),
		Quality:        s.QualityMetrics(responses),
		Adoption:       PracticeAdoption(responses),
		Demographics:   DemographicInsights(responses),
		Perceptions:    PerceptionScores(responses),
		Geography:      GeographicCounts(responses),
		Extension:      ExtensionImpact(responses),
		Challenges:     ChallengeThemes(responses, s.keywords),
		GeneratedAt:    time.Now().UTC(),
	}
}

// QualityMetrics reports the share of responses answering at least 80% of
// the answerable questions, and buckets the challenge text by length.
func (s *AnalyticsService) QualityMetrics(responses []*model.SurveyResponse) model.QualityMetrics {
	if len(responses) == 0 {
		return model.QualityMetrics{}
	}

	threshold := 0.8 * float64(s.catalog.AnswerableCount())
	var metrics model.QualityMetrics
	highCompletion := 0
	for _, r := range responses {
		if float64(len(r.Answers)) >= threshold {
			highCompletion++
		}
		switch n := len(r.Answers.String(challengeQuestionID)); {
		case n > 50:
			metrics.TextQuality.Detailed++
		case n > 0:
			metrics.TextQuality.Brief++
		default:
			metrics.TextQuality.Skipped++
		}
	}
	metrics.CompletionRate = 100 * float64(highCompletion) / float64(len(responses))
	return metrics
}

// PracticeAdoption counts tillage methods, soil fertility methods and INM
// awareness across all responses.
func PracticeAdoption(responses []*model.SurveyResponse) model.PracticeAdoption {
	tillage := []model.NamedCount{
		{Name: "Conventional"},
		{Name: "Conservation"},
		{Name: "Zero Tillage"},
		{Name: "Other"},
	}
	tillageValues := []string{"conventional", "conservation", "zero", "other"}

	nutrients := map[string]int{}
	inm := []model.NamedCount{{Name: "Heard of INM"}, {Name: "Not Heard"}}

	for _, r := range responses {
		method := r.Answers.String("B1_1_method")
		for i, v := range tillageValues {
			if method == v {
				tillage[i].Count++
			}
		}
		for _, m := range r.Answers.List("B2_2_methods") {
			nutrients[m]++
		}
		switch r.Answers.String("B2_5_inm_heard") {
		case "yes":
			inm[0].Count++
		case "no":
			inm[1].Count++
		}
	}

	return model.PracticeAdoption{Tillage: tillage, Nutrients: nutrients, INMAwareness: inm}
}

// DemographicInsights breaks respondents down by education level, landholding
// size and livestock ownership.
func DemographicInsights(responses []*model.SurveyResponse) model.Demographics {
	education := []model.NamedCount{
		{Name: "None"}, {Name: "Primary"}, {Name: "Secondary"}, {Name: "Tertiary"},
	}
	educationValues := []string{"none", "primary", "secondary", "tertiary"}

	landSize := []model.NamedCount{
		{Name: "< 2ha"}, {Name: "2-5ha"}, {Name: "> 5ha"},
	}

	var livestock model.LivestockOwnership

	for _, r := range responses {
		level := r.Answers.String("A3_education")
		for i, v := range educationValues {
			if level == v {
				education[i].Count++
			}
		}

		switch size := r.Answers.Number("A9_land_size"); {
		case size < 2:
			landSize[0].Count++
		case size < 5:
			landSize[1].Count++
		default:
			landSize[2].Count++
		}

		cattle := r.Answers.Number("A11_cattle") > 0
		goats := r.Answers.Number("A11_goats") > 0
		if cattle {
			livestock.Cattle++
		}
		if goats {
			livestock.Goats++
		}
		if cattle && goats {
			livestock.Both++
		}
	}

	return model.Demographics{Education: education, LandSize: landSize, Livestock: livestock}
}

// PerceptionScores averages each 1-5 likert question over the responses that
// answered it.
func PerceptionScores(responses []*model.SurveyResponse) []model.PerceptionScore {
	scores := make([]model.PerceptionScore, 0, len(likertSubjects))
	for _, subject := range likertSubjects {
		sum, n := 0.0, 0
		for _, r := range responses {
			if _, ok := r.Answers[subject.id]; !ok {
				continue
			}
			if v := r.Answers.Number(subject.id); v > 0 {
				sum += v
				n++
			}
		}
		avg := 0.0
		if n > 0 {
			avg = math.Round(sum/float64(n)*100) / 100
		}
		scores = append(scores, model.PerceptionScore{
			Subject:  subject.label,
			Average:  avg,
			FullMark: 5,
		})
	}
	return scores
}

// GeographicCounts groups responses by ward, most responses first.
func GeographicCounts(responses []*model.SurveyResponse) []model.NamedCount {
	byWard := map[string]int{}
	for _, r := range responses {
		ward := r.Ward
		if ward == "" {
			ward = "Unknown"
		}
		byWard[ward]++
	}

	counts := make([]model.NamedCount, 0, len(byWard))
	for ward, n := range byWard {
		counts = append(counts, model.NamedCount{Name: ward, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
	return counts
}

// ExtensionImpact reports the extension-officer contact rate and how the
// contacted respondents rated the advice.
func ExtensionImpact(responses []*model.SurveyResponse) model.ExtensionImpact {
	relevance := []model.NamedCount{
		{Name: "Not Relevant"}, {Name: "Slightly"}, {Name: "Moderately"}, {Name: "Very Relevant"},
	}
	relevanceValues := []string{"1", "2", "3", "4"}

	contacted := 0
	for _, r := range responses {
		if r.Answers.String("D1_contact") != "yes" {
			continue
		}
		contacted++
		rating := r.Answers.String("D3_relevance")
		for i, v := range relevanceValues {
			if rating == v {
				relevance[i].Count++
			}
		}
	}

	rate := 0.0
	if len(responses) > 0 {
		rate = math.Round(1000*float64(contacted)/float64(len(responses))) / 10
	}
	return model.ExtensionImpact{ContactRate: rate, Relevance: relevance}
}

// ChallengeThemes counts keyword mentions in the free-text challenge answers,
// most mentioned first.
func ChallengeThemes(responses []*model.SurveyResponse, keywords []string) []model.ChallengeTheme {
	var challenges []string
	for _, r := range responses {
		if text := r.Answers.String(challengeQuestionID); text != "" {
			challenges = append(challenges, strings.ToLower(text))
		}
	}

	themes := make([]model.ChallengeTheme, 0, len(keywords))
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		mentions := 0
		needle := strings.ToLower(keyword)
		for _, text := range challenges {
			if strings.Contains(text, needle) {
				mentions++
			}
		}
		themes = append(themes, model.ChallengeTheme{
			Keyword:  strings.ToUpper(keyword[:1]) + keyword[1:],
			Mentions: mentions,
		})
	}
	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].Mentions > themes[j].Mentions
	})
	return themes
}
