package gift__test

import (
	"context"
	"log"
	"net/http"
	"os"
	"testing"

	"gotest.tools/assert"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	helper_test "github.com/pawpawapp/pawpaw-backend/test/helper"
)

var globalResources *helper_test.TestServerResources

func TestMain(m *testing.M) {
	resources, err := helper_test.SetupTestServer(context.TODO())
	var code int

	if err != nil {
		log.Printf("Failed to set up test server: %s", err)
		code = 1
	} else {
		globalResources = resources
		code = m.Run()
	}

	resources.CleanupTestServer()
	os.Exit(code)
}

// A fresh account gets the starting balance on first wallet read.
func TestWalletStartsWithDefaultBalance(t *testing.T) {
	_, token := helper_test.SignUpAndSignIn(t, "wallet_fresh")

	wallet := helper_test.GetWallet(t, token)
	assert.Equal(t, entity.DefaultWalletBalance, wallet.Balance)
	assert.Equal(t, int64(0), wallet.TotalEarned)
}

// Run the whole economy once: spend down a wallet gift by gift, hit the
// insufficient-funds wall, and verify the receiver's side of the ledger.
func TestGiftTransfer(t *testing.T) {
	_, senderToken := helper_test.SignUpAndSignIn(t, "gift_sender")
	helper_test.CreatePetProfile(t, senderToken, "Spender")

	_, receiverToken := helper_test.SignUpAndSignIn(t, "gift_receiver")
	receiverPet := helper_test.CreatePetProfile(t, receiverToken, "Lucky")

	// 100 - 50
	sent, status := helper_test.SendGift(t, senderToken, receiverPet.ID, "toy")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(50), sent.NewBalance)

	// steak costs 500, the wallet holds 50
	_, status = helper_test.SendGift(t, senderToken, receiverPet.ID, "steak")
	assert.Equal(t, http.StatusBadRequest, status)

	// the failed send must not have touched the balance
	sent, status = helper_test.SendGift(t, senderToken, receiverPet.ID, "bone")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(40), sent.NewBalance)

	senderWallet := helper_test.GetWallet(t, senderToken)
	assert.Equal(t, int64(40), senderWallet.Balance)
	assert.Equal(t, int64(0), senderWallet.TotalEarned)

	// gifts credit the receiver's lifetime earnings, not their spendable balance
	receiverWallet := helper_test.GetWallet(t, receiverToken)
	assert.Equal(t, entity.DefaultWalletBalance, receiverWallet.Balance)
	assert.Equal(t, int64(60), receiverWallet.TotalEarned)

	gifts := listReceivedGifts(t, receiverToken)
	assert.Equal(t, 2, len(gifts))
}

func TestUnknownGiftKindRejected(t *testing.T) {
	_, senderToken := helper_test.SignUpAndSignIn(t, "gift_typo")

	_, receiverToken := helper_test.SignUpAndSignIn(t, "gift_typo_target")
	receiverPet := helper_test.CreatePetProfile(t, receiverToken, "Nugget")

	_, status := helper_test.SendGift(t, senderToken, receiverPet.ID, "diamond")
	assert.Equal(t, http.StatusBadRequest, status)

	wallet := helper_test.GetWallet(t, senderToken)
	assert.Equal(t, entity.DefaultWalletBalance, wallet.Balance)
}

func TestGiftingOwnPetRejected(t *testing.T) {
	_, token := helper_test.SignUpAndSignIn(t, "gift_self")
	pet := helper_test.CreatePetProfile(t, token, "Mine")

	_, status := helper_test.SendGift(t, token, pet.ID, "bone")
	assert.Equal(t, http.StatusBadRequest, status)

	wallet := helper_test.GetWallet(t, token)
	assert.Equal(t, entity.DefaultWalletBalance, wallet.Balance)
}

func TestGiftToMissingPet(t *testing.T) {
	_, token := helper_test.SignUpAndSignIn(t, "gift_nobody")

	_, status := helper_test.SendGift(t, token, 999999, "bone")
	assert.Equal(t, http.StatusNotFound, status)
}

func listReceivedGifts(t *testing.T, token string) []entity.Gift {
	req, err := http.NewRequest(http.MethodGet, helper_test.BaseURL+"/v1/gifts/received", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	return helper_test.Decode[[]entity.Gift](t, resp)
}
