package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/mappers"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDisputeRepository struct {
	db *gorm.DB
}

func NewDefaultDisputeRepository(db *gorm.DB) *DefaultDisputeRepository {
	return &DefaultDisputeRepository{db: db}
}

func (r *DefaultDisputeRepository) CreateDispute(dispute *domain.Dispute) error {
	disputeModel := mappers.ToGORMDispute(dispute)
	if err := r.db.Create(disputeModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultDisputeRepository) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	if err := r.db.Where("id = ?", disputeID).First(&disputeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}

	return mappers.ToDomainDispute(&disputeModel), nil
}

func (r *DefaultDisputeRepository) GetDisputeByOrderID(orderID string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	if err := r.db.Where("order_id = ?", orderID).Order("created_at DESC").First(&disputeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}

	return mappers.ToDomainDispute(&disputeModel), nil
}

// FindActiveByOrderID returns nil when the order has no OPEN or VOTING
// dispute.
func (r *DefaultDisputeRepository) FindActiveByOrderID(orderID string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	err := r.db.
		Where("order_id = ?", orderID).
		Where("status IN ?", []string{string(domain.DisputeOpen), string(domain.DisputeVoting)}).
		First(&disputeModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mappers.ToDomainDispute(&disputeModel), nil
}

func (r *DefaultDisputeRepository) MarkVoting(disputeID string) (bool, error) {
	res := r.db.Model(&models.DisputeModel{}).
		Where("id = ? AND status = ?", disputeID, string(domain.DisputeOpen)).
		Update("status", string(domain.DisputeVoting))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Reopen only matches while both tallies are still zero, so it can
// never undo a dispute that collected votes after the sweep read it.
func (r *DefaultDisputeRepository) Reopen(disputeID string) (bool, error) {
	res := r.db.Model(&models.DisputeModel{}).
		Where("id = ? AND status = ? AND votes_for_buyer = 0 AND votes_for_seller = 0",
			disputeID, string(domain.DisputeVoting)).
		Update("status", string(domain.DisputeOpen))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SubmitVote inserts the vote row and bumps the matching tally column
// in one transaction; both writes commit or neither does. The tally
// update is conditional on VOTING so a vote can never land on a dispute
// that got resolved between the read and the write.
func (r *DefaultDisputeRepository) SubmitVote(vote *domain.DisputeVote) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var disputeModel models.DisputeModel
		if err := tx.Where("id = ?", vote.DisputeID).First(&disputeModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrDisputeNotFound
			}
			return err
		}
		if disputeModel.Status != string(domain.DisputeVoting) {
			return domain.ErrNotVotingState
		}

		var existing int64
		if err := tx.Model(&models.DisputeVoteModel{}).
			Where("dispute_id = ? AND voter_id = ?", vote.DisputeID, vote.VoterID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return domain.ErrDuplicateVote
		}

		voteModel := mappers.ToGORMDisputeVote(vote)
		if err := tx.Create(voteModel).Error; err != nil {
			// Concurrent duplicate caught by the unique index.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateVote
			}
			return err
		}

		column := "votes_for_buyer"
		if vote.VoteFor == domain.VoteForSeller {
			column = "votes_for_seller"
		}
		res := tx.Model(&models.DisputeModel{}).
			Where("id = ? AND status = ?", vote.DisputeID, string(domain.DisputeVoting)).
			Update(column, gorm.Expr(column+" + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotVotingState
		}
		return nil
	})
}

// ResolveAndSettle flips the dispute to RESOLVED and applies the
// order/payment settlement in a single transaction. The status flip is
// a conditional update, so when a vote-triggered check and the timeout
// sweep race, exactly one writer resolves and the other sees a no-op.
func (r *DefaultDisputeRepository) ResolveAndSettle(disputeID, orderID string, buyerRefundRate int, outcome domain.SettlementOutcome, resolvedAt time.Time) (bool, error) {
	resolved := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.DisputeModel{}).
			Where("id = ? AND status = ?", disputeID, string(domain.DisputeVoting)).
			Updates(map[string]interface{}{
				"status":            string(domain.DisputeResolved),
				"buyer_refund_rate": buyerRefundRate,
				"resolved_at":       resolvedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		resolved = true

		if _, err := applySettlement(tx, orderID, outcome, resolvedAt); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("resolve dispute %s: %w", disputeID, err)
	}
	return resolved, nil
}

func (r *DefaultDisputeRepository) FindExpiredVotings(before time.Time) ([]*domain.Dispute, error) {
	var disputeModels []models.DisputeModel
	if err := r.db.
		Where("status = ?", string(domain.DisputeVoting)).
		Where("updated_at < ?", before).
		Find(&disputeModels).Error; err != nil {
		return nil, err
	}
	disputes := make([]*domain.Dispute, len(disputeModels))
	for i, disputeModel := range disputeModels {
		disputes[i] = mappers.ToDomainDispute(&disputeModel)
	}

	return disputes, nil
}

func (r *DefaultDisputeRepository) ListVotes(disputeID string) ([]*domain.DisputeVote, error) {
	var voteModels []models.DisputeVoteModel
	if err := r.db.
		Where("dispute_id = ?", disputeID).
		Order("created_at ASC").
		Find(&voteModels).Error; err != nil {
		return nil, err
	}
	votes := make([]*domain.DisputeVote, len(voteModels))
	for i, voteModel := range voteModels {
		votes[i] = mappers.ToDomainDisputeVote(&voteModel)
	}

	return votes, nil
}

func (r *DefaultDisputeRepository) GetDisputes(filter domain.GetDisputesFilter) ([]*domain.Dispute, int64, error) {
	query := r.db.Model(&models.DisputeModel{})

	if filter.OrderID != nil {
		query = query.Where("order_id = ?", *filter.OrderID)
	}
	if filter.InitiatorID != nil {
		query = query.Where("initiator_id = ?", *filter.InitiatorID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query = query.Order("created_at DESC").Offset(offset).Limit(filter.Limit)

	var disputeModels []models.DisputeModel
	if err := query.Find(&disputeModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find dispute models: %w", err)
	}

	disputes := make([]*domain.Dispute, len(disputeModels))
	for i, disputeModel := range disputeModels {
		disputes[i] = mappers.ToDomainDispute(&disputeModel)
	}

	return disputes, total, nil
}
