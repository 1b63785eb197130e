package finetune

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"linkedopt/internal/config"
	linkedoptErrors "linkedopt/internal/errors"
	"linkedopt/internal/types"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// BaseModel is the default base model submitted for fine-tuning jobs.
const BaseModel = "meta-llama-3-8b-instruct"

// DefaultJobSuffix tags fine-tuned models produced by this pipeline.
const DefaultJobSuffix = "linkedin_optimizer_finetune"

// Hyperparameters for fine-tuning jobs. The training sets collected
// from section feedback are small, so a few epochs at a conservative
// learning rate is enough.
const (
	trainEpochs  = 3
	batchSize    = 4
	learningRate = 1e-5
	costPer1KTok = 0.0008 // approximate Llama 3 8B fine-tune pricing
)

// Client orchestrates fine-tuning jobs against a Together-style API:
// dataset upload, job creation, status polling and smoke-testing the
// resulting model.
type Client struct {
	client *resty.Client
	config config.TogetherConfig
	logger *linkedoptErrors.Logger
}

// NewClient creates a fine-tuning client. The Together API key is
// required; the fine-tuned model ID is not, since fine-tuning is how
// that ID gets created in the first place.
func NewClient(cfg config.TogetherConfig, logger *linkedoptErrors.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, linkedoptErrors.NewConfigError(linkedoptErrors.ErrCodeMissingAPIKey,
			"Together API key is required for fine-tuning operations", nil)
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetTimeout(cfg.Timeout)

	return &Client{
		client: client,
		config: cfg,
		logger: logger,
	}, nil
}

// UploadDataset uploads a JSONL training file and returns its file ID.
func (c *Client) UploadDataset(ctx context.Context, datasetPath string) (string, error) {
	if _, err := os.Stat(datasetPath); err != nil {
		return "", linkedoptErrors.NewIOError(linkedoptErrors.ErrCodeFileNotFound,
			fmt.Sprintf("Dataset file not found: %s", datasetPath), err)
	}

	c.logger.Info("Uploading dataset", "path", datasetPath)

	resp, err := c.client.R().
		SetContext(ctx).
		SetFile("file", datasetPath).
		SetFormData(map[string]string{
			"purpose":   "fine-tune",
			"file_name": filepath.Base(datasetPath),
		}).
		Post("/files")
	if err != nil {
		return "", linkedoptErrors.NewNetworkError(linkedoptErrors.ErrCodeNetworkTimeout,
			"Dataset upload request failed", err)
	}
	if resp.IsError() {
		return "", c.apiError("Dataset upload", resp)
	}

	fileID := gjson.Get(resp.String(), "id").String()
	if fileID == "" {
		return "", linkedoptErrors.NewAIError(linkedoptErrors.ErrCodeFineTuneFailed,
			"Upload response contained no file ID", nil)
	}

	c.logger.Info("Dataset uploaded", "file_id", fileID)
	return fileID, nil
}

// StartJob uploads the dataset and creates a fine-tuning job, returning
// the job ID. An empty model selects the default base model.
func (c *Client) StartJob(ctx context.Context, datasetPath, model string) (string, error) {
	if model == "" {
		model = BaseModel
	}

	fileID, err := c.UploadDataset(ctx, datasetPath)
	if err != nil {
		return "", err
	}

	c.logger.Info("Starting fine-tuning job", "model", model, "training_file", fileID)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":         model,
			"training_file": fileID,
			"n_epochs":      trainEpochs,
			"batch_size":    batchSize,
			"learning_rate": learningRate,
			"suffix":        DefaultJobSuffix,
		}).
		Post("/fine-tunes")
	if err != nil {
		return "", linkedoptErrors.NewNetworkError(linkedoptErrors.ErrCodeNetworkTimeout,
			"Fine-tune creation request failed", err)
	}
	if resp.IsError() {
		return "", c.apiError("Fine-tune creation", resp)
	}

	jobID := gjson.Get(resp.String(), "id").String()
	if jobID == "" {
		return "", linkedoptErrors.NewAIError(linkedoptErrors.ErrCodeFineTuneFailed,
			"Fine-tune response contained no job ID", nil)
	}

	c.logger.Info("Fine-tuning job started", "job_id", jobID)
	return jobID, nil
}

// JobStatus retrieves the current state of a fine-tuning job.
func (c *Client) JobStatus(ctx context.Context, jobID string) (types.FineTuneJob, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/fine-tunes/" + jobID)
	if err != nil {
		return types.FineTuneJob{}, linkedoptErrors.NewNetworkError(linkedoptErrors.ErrCodeNetworkTimeout,
			"Fine-tune status request failed", err)
	}
	if resp.IsError() {
		return types.FineTuneJob{}, c.apiError("Fine-tune status", resp)
	}

	body := resp.String()
	job := types.FineTuneJob{
		ID:             jobID,
		Status:         gjson.Get(body, "status").String(),
		Model:          gjson.Get(body, "model").String(),
		FineTunedModel: gjson.Get(body, "fine_tuned_model").String(),
		TrainedEpochs:  int(gjson.Get(body, "trained_epochs").Int()),
		TotalEpochs:    int(gjson.Get(body, "n_epochs").Int()),
		Error:          gjson.Get(body, "error").String(),
	}
	if job.Status == "" {
		job.Status = "unknown"
	}
	return job, nil
}

// WaitForCompletion polls the job until it reaches a terminal state or
// the timeout elapses. Transient status errors are logged and retried
// on the next tick.
func (c *Client) WaitForCompletion(ctx context.Context, jobID string, checkInterval, timeout time.Duration) (types.FineTuneJob, error) {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for {
		job, err := c.JobStatus(ctx, jobID)
		if err != nil {
			c.logger.Warn("Fine-tune status check failed, retrying",
				"job_id", jobID, "error", err.Error())
		} else {
			switch job.Status {
			case "completed":
				c.logger.Info("Fine-tuning job completed",
					"job_id", jobID, "fine_tuned_model", job.FineTunedModel)
				return job, nil
			case "failed":
				return job, linkedoptErrors.NewAIError(linkedoptErrors.ErrCodeFineTuneFailed,
					fmt.Sprintf("Fine-tuning job %s failed: %s", jobID, job.Error), nil)
			default:
				c.logger.Debug("Fine-tuning job in progress",
					"job_id", jobID,
					"status", job.Status,
					"trained_epochs", job.TrainedEpochs,
					"total_epochs", job.TotalEpochs)
			}
		}

		if time.Now().After(deadline) {
			return types.FineTuneJob{}, linkedoptErrors.NewAIError(linkedoptErrors.ErrCodeAITimeout,
				fmt.Sprintf("Fine-tuning job %s did not complete within %s", jobID, timeout), nil)
		}

		select {
		case <-ctx.Done():
			return types.FineTuneJob{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// TestModel sends a short completion request to a fine-tuned model and
// returns the generated text. Used as a smoke test after deployment.
func (c *Client) TestModel(ctx context.Context, modelID, prompt string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":       modelID,
			"prompt":      prompt,
			"max_tokens":  500,
			"temperature": 0.7,
			"stop":        []string{"<|eot_id|>"},
		}).
		Post("/completions")
	if err != nil {
		return "", linkedoptErrors.NewNetworkError(linkedoptErrors.ErrCodeNetworkTimeout,
			"Model test request failed", err)
	}
	if resp.IsError() {
		return "", c.apiError("Model test", resp)
	}

	text := gjson.Get(resp.String(), "choices.0.text").String()
	if text == "" {
		return "", linkedoptErrors.NewAIError(linkedoptErrors.ErrCodeMalformedReply,
			"Model test response contained no generated text", nil)
	}
	return text, nil
}

// apiError converts an error HTTP response into an AppError.
func (c *Client) apiError(operation string, resp *resty.Response) error {
	c.logger.Warn("Together API returned an error status",
		"operation", operation,
		"status", resp.StatusCode(),
		"body", resp.String())
	return linkedoptErrors.NewAIError(linkedoptErrors.ErrCodeFineTuneFailed,
		fmt.Sprintf("%s returned status %d", operation, resp.StatusCode()), nil)
}
