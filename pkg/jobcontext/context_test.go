package jobcontext

import (
	"context"
	"testing"
)

func TestJobBegin(t *testing.T) {
	ctx := JobBegin(context.Background(), "job-1", "upload")
	ctx = WithStage(ctx, "transcribe")

	meta := GetJobMetadata(ctx)
	if meta.JobID != "job-1" || meta.JobType != "upload" || meta.Stage != "transcribe" {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	if meta.StartTime.IsZero() {
		t.Fatal("start time not set")
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		t.Error("JobBegin must not add a deadline")
	}
	if got := len(LogFields(ctx)); got != 4 {
		t.Errorf("LogFields returned %d fields, want 4", got)
	}
}

func TestOutsideJob(t *testing.T) {
	ctx := context.Background()
	if _, ok := GetJobID(ctx); ok {
		t.Error("unexpected job id")
	}
	if Elapsed(ctx) != 0 {
		t.Error("Elapsed outside a job should be zero")
	}
	if len(LogFields(ctx)) != 0 {
		t.Error("LogFields outside a job should be empty")
	}
}
