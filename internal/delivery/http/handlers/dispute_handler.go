package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/domain"
	disputedto "github.com/jinwoo-93/crossdeal-dispute-service/internal/usecase/dto/dispute"
	usecase "github.com/jinwoo-93/crossdeal-dispute-service/internal/usecase/dispute"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/usecase/jury"
)

type DisputeHandler struct {
	disputeUc    usecase.DisputeUsecase
	jurySelector jury.JurySelector
}

func NewDisputeHandler(disputeUc usecase.DisputeUsecase, jurySelector jury.JurySelector) *DisputeHandler {
	return &DisputeHandler{
		disputeUc:    disputeUc,
		jurySelector: jurySelector,
	}
}

type openDisputeRequest struct {
	OrderID     string   `json:"order_id" binding:"required"`
	Reason      string   `json:"reason" binding:"required"`
	Description string   `json:"description"`
	Evidence    []string `json:"evidence"`
}

type submitVoteRequest struct {
	VoteFor string `json:"vote_for" binding:"required"`
	Comment string `json:"comment"`
}

// The platform gateway authenticates callers and injects X-User-ID;
// this service trusts it.
func callerID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}

func (h *DisputeHandler) OpenDispute(c *gin.Context) {
	var req openDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	initiatorID := callerID(c)
	if initiatorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID"})
		return
	}

	dispute, err := h.disputeUc.OpenDispute(&disputedto.OpenDisputeInput{
		OrderID:     req.OrderID,
		InitiatorID: initiatorID,
		Reason:      req.Reason,
		Description: req.Description,
		Evidence:    req.Evidence,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// Jury selection runs right after the dispute is recorded; a
	// failure here leaves the dispute OPEN for a later retry.
	jurors, selErr := h.jurySelector.SelectJury(dispute.ID, nil)

	c.JSON(http.StatusCreated, gin.H{
		"dispute":        dispute,
		"jurors_invited": len(jurors),
		"jury_error":     errString(selErr),
	})
}

func (h *DisputeHandler) SubmitVote(c *gin.Context) {
	var req submitVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	voterID := callerID(c)
	if voterID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID"})
		return
	}

	err := h.disputeUc.SubmitVote(&disputedto.SubmitVoteInput{
		DisputeID: c.Param("id"),
		VoterID:   voterID,
		VoteFor:   domain.VoteSide(req.VoteFor),
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "vote recorded"})
}

func (h *DisputeHandler) GetDispute(c *gin.Context) {
	dispute, err := h.disputeUc.GetDisputeByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dispute)
}

func (h *DisputeHandler) ListVotes(c *gin.Context) {
	votes, err := h.disputeUc.ListVotes(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"votes": votes})
}

func (h *DisputeHandler) ListDisputes(c *gin.Context) {
	var input disputedto.GetDisputesInput
	input.Page = 1
	input.Limit = 20
	if page, ok := parsePositive(c.Query("page")); ok {
		input.Page = page
	}
	if limit, ok := parsePositive(c.Query("limit")); ok {
		input.Limit = limit
	}
	if status := c.Query("status"); status != "" {
		input.Status = &status
	}
	if orderID := c.Query("order_id"); orderID != "" {
		input.OrderID = &orderID
	}

	output, err := h.disputeUc.GetDisputes(&input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDisputeNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateVote),
		errors.Is(err, domain.ErrDisputeAlreadyActive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotVotingState),
		errors.Is(err, domain.ErrDisputeNotOpen),
		errors.Is(err, domain.ErrDisputeNotResolved):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrPartyCannotVote),
		errors.Is(err, domain.ErrNotJuror),
		errors.Is(err, domain.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidVoteSide):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func parsePositive(raw string) (int64, bool) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
