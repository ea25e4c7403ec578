package jobcontext

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type KeyContext string

var (
	keyJobID        KeyContext = "job_id"
	keyJobType      KeyContext = "job_type"
	keyJobStartTime KeyContext = "job_start_time"
	keyStage        KeyContext = "stage"
)

// JobMetadata holds metadata for one pipeline run
type JobMetadata struct {
	JobID     string
	JobType   string
	Stage     string
	StartTime time.Time
}

// JobBegin attaches job metadata to ctx. No deadline is added: the caller's
// context decides how long a job may run.
func JobBegin(parentCtx context.Context, jobID, jobType string) context.Context {
	ctx := context.WithValue(parentCtx, keyJobID, jobID)
	ctx = context.WithValue(ctx, keyJobType, jobType)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())
	return ctx
}

// WithStage records the stage a job is in
func WithStage(ctx context.Context, stage string) context.Context {
	return context.WithValue(ctx, keyStage, stage)
}

// GetJobID extracts job ID from context
func GetJobID(ctx context.Context) (string, bool) {
	jobID, ok := ctx.Value(keyJobID).(string)
	return jobID, ok
}

// GetJobType extracts job type from context
func GetJobType(ctx context.Context) (string, bool) {
	jobType, ok := ctx.Value(keyJobType).(string)
	return jobType, ok
}

// GetStage extracts the current stage from context
func GetStage(ctx context.Context) (string, bool) {
	stage, ok := ctx.Value(keyStage).(string)
	return stage, ok
}

// GetJobStartTime extracts job start time from context
func GetJobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyJobStartTime).(time.Time)
	return startTime, ok
}

// Elapsed returns the time since JobBegin, or zero outside a job
func Elapsed(ctx context.Context) time.Duration {
	start, ok := GetJobStartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(start)
}

// GetJobMetadata extracts all job metadata from context
func GetJobMetadata(ctx context.Context) *JobMetadata {
	jobID, _ := GetJobID(ctx)
	jobType, _ := GetJobType(ctx)
	stage, _ := GetStage(ctx)
	startTime, _ := GetJobStartTime(ctx)

	return &JobMetadata{
		JobID:     jobID,
		JobType:   jobType,
		Stage:     stage,
		StartTime: startTime,
	}
}

// LogFields returns the job metadata as zap fields
func LogFields(ctx context.Context) []zap.Field {
	meta := GetJobMetadata(ctx)
	fields := make([]zap.Field, 0, 4)
	if meta.JobID != "" {
		fields = append(fields, zap.String("job_id", meta.JobID))
	}
	if meta.JobType != "" {
		fields = append(fields, zap.String("job_type", meta.JobType))
	}
	if meta.Stage != "" {
		fields = append(fields, zap.String("stage", meta.Stage))
	}
	if !meta.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", time.Since(meta.StartTime)))
	}
	return fields
}
