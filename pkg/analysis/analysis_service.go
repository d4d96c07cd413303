package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"DermaGlow-Backend/domain"
	"DermaGlow-Backend/entities"
	"DermaGlow-Backend/internal/utils/storage"

	"github.com/google/uuid"
)

// Number of analyses shown on the dashboard.
const dashboardRecentLimit = 3

type (
	AnalysisService interface {
		AnalyzeSkin(ctx context.Context, req domain.AnalyzeSkinRequest, userID string) (domain.AnalyzeSkinResponse, error)
		GetHistory(ctx context.Context, userID string) (domain.AnalysisHistoryResponse, error)
		GetRecentAnalyses(ctx context.Context, userID string) ([]domain.AnalysisRecordResponse, error)
	}

	analysisService struct {
		analysisRepository AnalysisRepository
		s3                 storage.AwsS3
		endpoint           string
	}
)

func NewAnalysisService(analysisRepository AnalysisRepository, s3 storage.AwsS3, endpoint string) AnalysisService {
	return &analysisService{
		analysisRepository: analysisRepository,
		s3:                 s3,
		endpoint:           endpoint,
	}
}

// AnalyzeSkin performs exactly one outbound analysis request, normalizes the
// response, and persists the record. A failed save is not retried: the
// normalized result is still returned with a warning so the caller sees the
// analysis even though it is missing from history.
func (s *analysisService) AnalyzeSkin(ctx context.Context, req domain.AnalyzeSkinRequest, userID string) (domain.AnalyzeSkinResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AnalyzeSkinResponse{}, domain.ErrParseUUID
	}

	if req.Image == nil {
		return domain.AnalyzeSkinResponse{}, domain.ErrNoImageUploaded
	}

	if contentType := req.Image.Header.Get("Content-Type"); contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return domain.AnalyzeSkinResponse{}, domain.ErrInvalidImageFormat
	}

	raw, err := s.requestAnalysis(ctx, req.Image)
	if err != nil {
		return domain.AnalyzeSkinResponse{}, err
	}

	summary := BuildSummary(raw)
	response := domain.AnalyzeSkinResponse{
		Summary: summary,
		Result:  raw.Result,
	}

	fullResult, err := json.Marshal(raw.Result)
	if err != nil {
		response.Warning = domain.MessageWarningSaveAnalysis
		return response, nil
	}

	recordID := uuid.New()

	var imageURL string
	fileName := fmt.Sprintf("analysis-%s", recordID.String())
	objectKey, uploadErr := s.s3.UploadFile(fileName, req.Image, "analyses", storage.AllowImage...)
	if uploadErr == nil {
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	record := &entities.AnalysisRecord{
		ID:            recordID,
		UserID:        userUUID,
		ResultSummary: summary,
		FullResult:    string(fullResult),
		ImageURL:      imageURL,
	}

	if err := s.analysisRepository.CreateAnalysisRecord(ctx, record); err != nil {
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
		response.Warning = domain.MessageWarningSaveAnalysis
		return response, nil
	}

	response.ID = recordID.String()
	response.ImageURL = imageURL
	response.Saved = true
	return response, nil
}

// requestAnalysis submits the image as multipart form data to the analysis
// endpoint. No retry, no backoff: a failure is terminal for this request.
func (s *analysisService) requestAnalysis(ctx context.Context, imageFile *multipart.FileHeader) (domain.RawAnalysis, error) {
	if s.endpoint == "" {
		return domain.RawAnalysis{}, domain.ErrAnalysisNotConfigured
	}

	file, err := imageFile.Open()
	if err != nil {
		return domain.RawAnalysis{}, err
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", imageFile.Filename)
	if err != nil {
		return domain.RawAnalysis{}, err
	}

	if _, err = io.Copy(part, file); err != nil {
		return domain.RawAnalysis{}, err
	}

	if err = writer.Close(); err != nil {
		return domain.RawAnalysis{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.endpoint, body)
	if err != nil {
		return domain.RawAnalysis{}, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	httpClient := &http.Client{Timeout: 30 * time.Second}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return domain.RawAnalysis{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The endpoint reports failures as {"detail": "..."}; surface that
		// text verbatim when present.
		bodyBytes, _ := io.ReadAll(resp.Body)
		var failure struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(bodyBytes, &failure); err == nil && failure.Detail != "" {
			return domain.RawAnalysis{}, errors.New(failure.Detail)
		}
		return domain.RawAnalysis{}, domain.ErrAnalysisFailed
	}

	var raw domain.RawAnalysis
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return domain.RawAnalysis{}, domain.ErrAnalysisFailed
	}

	return raw, nil
}

func (s *analysisService) GetHistory(ctx context.Context, userID string) (domain.AnalysisHistoryResponse, error) {
	records, err := s.analysisRepository.GetAnalysesByUser(ctx, userID)
	if err != nil {
		return domain.AnalysisHistoryResponse{}, err
	}
	return BuildHistory(records), nil
}

func (s *analysisService) GetRecentAnalyses(ctx context.Context, userID string) ([]domain.AnalysisRecordResponse, error) {
	records, err := s.analysisRepository.GetRecentAnalysesByUser(ctx, userID, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.AnalysisRecordResponse, 0, len(records))
	for _, record := range records {
		response = append(response, domain.AnalysisRecordResponse{
			ID:        record.ID.String(),
			Summary:   record.ResultSummary,
			ImageURL:  record.ImageURL,
			CreatedAt: record.CreatedAt.Format(tableDateFormat),
		})
	}

	return response, nil
}
