package swipe__test

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

// Like a seeded profile once, then again. The first swipe sticks, the
// repeat is rejected, and the like counter on the target moves exactly once.
func TestSwipeIsRecordedOnce(t *testing.T) {
	seeded, err := helper_test.PopulateUsers(globalResources.ORM, 2)
	if err != nil {
		t.Fatalf("Failed to populate users: %s", err)
	}
	target := seeded[0]

	_, token := helper_test.SignUpAndSignIn(t, "swiper1")
	helper_test.CreatePetProfile(t, token, "Biscuit")

	swipe, status := helper_test.Swipe(t, token, target.ID, "like")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "liked", swipe.Outcome)

	_, status = helper_test.Swipe(t, token, target.ID, "like")
	assert.Equal(t, http.StatusBadRequest, status)

	// Switching the decision does not help, the pair is already decided.
	_, status = helper_test.Swipe(t, token, target.ID, "pass")
	assert.Equal(t, http.StatusBadRequest, status)

	var stored entity.PetProfile
	err = globalResources.ORM.Where("id = ?", target.ID).First(&stored).Error
	assert.NilError(t, err)
	assert.Equal(t, target.LikesCount+1, stored.LikesCount)
}

func TestPassDoesNotCountAsLike(t *testing.T) {
	seeded, err := helper_test.PopulateUsers(globalResources.ORM, 1)
	if err != nil {
		t.Fatalf("Failed to populate users: %s", err)
	}
	target := seeded[0]

	_, token := helper_test.SignUpAndSignIn(t, "swiper2")
	helper_test.CreatePetProfile(t, token, "Waffle")

	swipe, status := helper_test.Swipe(t, token, target.ID, "pass")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "passed", swipe.Outcome)

	var stored entity.PetProfile
	err = globalResources.ORM.Where("id = ?", target.ID).First(&stored).Error
	assert.NilError(t, err)
	assert.Equal(t, target.LikesCount, stored.LikesCount)
}

// Two users like each other's pets. The first like reports "liked", the
// reverse like completes the match and carries the counterpart pet, and the
// match shows up exactly once in both users' match lists.
func TestMutualLikeCreatesMatch(t *testing.T) {
	_, tokenA := helper_test.SignUpAndSignIn(t, "matcher_a")
	petA := helper_test.CreatePetProfile(t, tokenA, "Rex")

	_, tokenB := helper_test.SignUpAndSignIn(t, "matcher_b")
	petB := helper_test.CreatePetProfile(t, tokenB, "Milo")

	first, status := helper_test.Swipe(t, tokenA, petB.ID, "like")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "liked", first.Outcome)
	assert.Assert(t, first.Match == nil)

	second, status := helper_test.Swipe(t, tokenB, petA.ID, "like")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "match", second.Outcome)
	assert.Assert(t, second.Match != nil)
	assert.Equal(t, "Rex", second.Match.Name)

	matchesA := listMatches(t, tokenA)
	assert.Equal(t, 1, len(matchesA))
	assert.Equal(t, "Milo", matchesA[0].Pet.Name)

	matchesB := listMatches(t, tokenB)
	assert.Equal(t, 1, len(matchesB))
	assert.Equal(t, "Rex", matchesB[0].Pet.Name)
	assert.Equal(t, matchesA[0].MatchID, matchesB[0].MatchID)
}

// A one-way like must not create a match row.
func TestOneWayLikeIsNotAMatch(t *testing.T) {
	_, tokenA := helper_test.SignUpAndSignIn(t, "lonely_a")
	helper_test.CreatePetProfile(t, tokenA, "Solo")

	_, tokenB := helper_test.SignUpAndSignIn(t, "lonely_b")
	petB := helper_test.CreatePetProfile(t, tokenB, "Pixel")

	swipe, status := helper_test.Swipe(t, tokenA, petB.ID, "like")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "liked", swipe.Outcome)

	assert.Equal(t, 0, len(listMatches(t, tokenA)))
	assert.Equal(t, 0, len(listMatches(t, tokenB)))
}

func TestSwipingOwnPetIsRejected(t *testing.T) {
	_, token := helper_test.SignUpAndSignIn(t, "narcissist")
	pet := helper_test.CreatePetProfile(t, token, "Mirror")

	_, status := helper_test.Swipe(t, token, pet.ID, "like")
	assert.Equal(t, http.StatusBadRequest, status)
}

func listMatches(t *testing.T, token string) []entity.MatchView {
	req, err := http.NewRequest(http.MethodGet, helper_test.BaseURL+"/v1/matches", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	return helper_test.Decode[entity.MatchListResponse](t, resp).Matches
}
