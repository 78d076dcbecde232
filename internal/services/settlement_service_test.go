package services_test

import (
	"testing"

	"kalahaat/internal/models"
	"kalahaat/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementService_SaveAndGet(t *testing.T) {
	service := services.NewSettlementService()

	// Nothing configured yet.
	details, err := service.BankDetails(adminActor)
	require.NoError(t, err)
	assert.Nil(t, details)

	err = service.SaveBankDetails(adminActor, models.BankDetails{
		AccountName:   "Tribal Heritage Association",
		BankName:      "State Bank of India",
		AccountNumber: "000011112222",
		IFSC:          "sbin0001234",
		UPI:           "heritage@upi",
	})
	require.NoError(t, err)

	details, err = service.BankDetails(adminActor)
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, "Tribal Heritage Association", details.AccountName)
	// IFSC codes are stored uppercased.
	assert.Equal(t, "SBIN0001234", details.IFSC)

	// Saving replaces the record wholesale.
	err = service.SaveBankDetails(adminActor, models.BankDetails{
		AccountName:   "Tribal Heritage Association",
		BankName:      "Bank of Maharashtra",
		AccountNumber: "999911112222",
		IFSC:          "MAHB0000001",
	})
	require.NoError(t, err)
	details, err = service.BankDetails(adminActor)
	require.NoError(t, err)
	assert.Equal(t, "Bank of Maharashtra", details.BankName)
	assert.Empty(t, details.UPI)
}

func TestSettlementService_AdminOnly(t *testing.T) {
	service := services.NewSettlementService()
	payload := models.BankDetails{AccountName: "X", BankName: "Y", AccountNumber: "123456", IFSC: "SBIN0001234"}

	// The team role shares the staff console but never sees the payout
	// account, on either side of the operation.
	_, err := service.BankDetails(staffActor)
	assert.ErrorIs(t, err, services.ErrPermissionDenied)
	assert.ErrorIs(t, service.SaveBankDetails(staffActor, payload), services.ErrPermissionDenied)

	_, err = service.BankDetails(&models.User{ID: "cust-1", Role: models.RoleCustomer})
	assert.ErrorIs(t, err, services.ErrPermissionDenied)
	_, err = service.BankDetails(nil)
	assert.ErrorIs(t, err, services.ErrPermissionDenied)

	// A rejected save leaves nothing behind for the admin to see.
	details, err := service.BankDetails(adminActor)
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestSettlementService_ReturnsCopy(t *testing.T) {
	service := services.NewSettlementService()
	require.NoError(t, service.SaveBankDetails(adminActor, models.BankDetails{
		AccountName: "Original", BankName: "B", AccountNumber: "123456", IFSC: "SBIN0001234",
	}))

	details, err := service.BankDetails(adminActor)
	require.NoError(t, err)
	details.AccountName = "Mutated"

	again, err := service.BankDetails(adminActor)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.AccountName)
}
