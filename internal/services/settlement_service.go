package services

import (
	"strings"
	"sync"

	"kalahaat/internal/models"

	"github.com/sirupsen/logrus"
)

// SettlementService holds the marketplace payout account. The record is
// process-lifetime like the session itself; both reads and writes are
// admin only, which is stricter than the rest of the staff console.
type SettlementService struct {
	mu      sync.RWMutex
	details *models.BankDetails
}

// NewSettlementService creates a new SettlementService with no account
// configured yet.
func NewSettlementService() *SettlementService {
	return &SettlementService{}
}

// BankDetails returns a copy of the configured payout account, or nil
// when none has been saved.
func (s *SettlementService) BankDetails(actor *models.User) (*models.BankDetails, error) {
	if !models.ActorCan(actor, models.PermViewBankDetails) {
		return nil, ErrPermissionDenied
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.details == nil {
		return nil, nil
	}
	d := *s.details
	return &d, nil
}

// SaveBankDetails replaces the payout account wholesale. The IFSC code
// is stored uppercased.
func (s *SettlementService) SaveBankDetails(actor *models.User, details models.BankDetails) error {
	if !models.ActorCan(actor, models.PermViewBankDetails) {
		return ErrPermissionDenied
	}
	details.IFSC = strings.ToUpper(details.IFSC)

	s.mu.Lock()
	s.details = &details
	s.mu.Unlock()

	logrus.WithField("bank", details.BankName).Info("settlement account updated")
	return nil
}
