package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	"github.com/johnquangdev/meeting-scribe/internal/domain/repositories"
)

// meetingRecord is the row shape of the meetings table. A NULL column is an
// artifact that has not been written.
type meetingRecord struct {
	ID         string    `gorm:"column:id;primaryKey"`
	Title      *string   `gorm:"column:title"`
	Summary    *string   `gorm:"column:summary"`
	Transcript *string   `gorm:"column:transcript"`
	Provider   *string   `gorm:"column:provider"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (meetingRecord) TableName() string {
	return "meetings"
}

var artifactColumns = map[entities.Artifact]string{
	entities.ArtifactTitle:      "title",
	entities.ArtifactSummary:    "summary",
	entities.ArtifactTranscript: "transcript",
	entities.ArtifactProvider:   "provider",
}

// MeetingPostgresRepository stores meetings as rows of the meetings table
type MeetingPostgresRepository struct {
	db *gorm.DB
}

var _ repositories.MeetingRepository = (*MeetingPostgresRepository)(nil)

// NewMeetingPostgresRepository creates a new repository
func NewMeetingPostgresRepository(db *gorm.DB) *MeetingPostgresRepository {
	return &MeetingPostgresRepository{db: db}
}

// Create inserts an empty row, ignoring an existing one
func (r *MeetingPostgresRepository) Create(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&meetingRecord{ID: id}).Error
}

// Write sets a column only while it is still NULL
func (r *MeetingPostgresRepository) Write(ctx context.Context, id string, artifact entities.Artifact, content string) error {
	if err := validID(id); err != nil {
		return err
	}
	column, ok := artifactColumns[artifact]
	if !ok {
		return fmt.Errorf("%w: %q", entities.ErrUnknownField, artifact)
	}

	res := r.db.WithContext(ctx).
		Model(&meetingRecord{}).
		Where("id = ?", id).
		Where(column + " IS NULL").
		Update(column, content)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&meetingRecord{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("meeting %s has no storage location", id)
	}
	return fmt.Errorf("%s of %s: %w", artifact, id, repositories.ErrArtifactExists)
}

// Get loads a meeting row
func (r *MeetingPostgresRepository) Get(ctx context.Context, id string) (*entities.Meeting, error) {
	m := entities.NewMeeting(id)
	if validID(id) != nil {
		return m, nil
	}

	var rec meetingRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, nil
		}
		return nil, err
	}

	created := rec.CreatedAt
	m.CreatedAt = &created
	values := map[entities.Artifact]*string{
		entities.ArtifactTitle:      rec.Title,
		entities.ArtifactSummary:    rec.Summary,
		entities.ArtifactTranscript: rec.Transcript,
		entities.ArtifactProvider:   rec.Provider,
	}
	for _, artifact := range entities.Artifacts {
		if v := values[artifact]; v != nil {
			applyArtifact(m, artifact, *v)
		}
	}
	return m, nil
}

// ListIDs returns all meeting ids
func (r *MeetingPostgresRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&meetingRecord{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
