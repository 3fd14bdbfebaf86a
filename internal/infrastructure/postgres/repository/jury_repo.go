package repository

import (
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultJuryAssignmentRepository struct {
	db *gorm.DB
}

func NewDefaultJuryAssignmentRepository(db *gorm.DB) *DefaultJuryAssignmentRepository {
	return &DefaultJuryAssignmentRepository{db: db}
}

func (r *DefaultJuryAssignmentRepository) CreateAssignments(assignments []*domain.JuryAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	assignmentModels := make([]models.JuryAssignmentModel, len(assignments))
	for i, assignment := range assignments {
		assignmentModels[i] = models.JuryAssignmentModel{
			DisputeID:  assignment.DisputeID,
			JurorID:    assignment.JurorID,
			AssignedAt: assignment.AssignedAt,
		}
	}
	return r.db.Create(&assignmentModels).Error
}

func (r *DefaultJuryAssignmentRepository) ListJurorIDs(disputeID string) ([]string, error) {
	var ids []string
	if err := r.db.Model(&models.JuryAssignmentModel{}).
		Where("dispute_id = ?", disputeID).
		Pluck("juror_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *DefaultJuryAssignmentRepository) IsJuror(disputeID, jurorID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.JuryAssignmentModel{}).
		Where("dispute_id = ? AND juror_id = ?", disputeID, jurorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
