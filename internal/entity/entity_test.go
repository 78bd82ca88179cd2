package entity

import (
	"testing"

	"gotest.tools/assert"
)

func TestGiftPrices(t *testing.T) {
	cases := []struct {
		kind  GiftKind
		price int64
	}{
		{GiftKindBone, 10},
		{GiftKindToy, 50},
		{GiftKindSteak, 500},
	}

	for _, tc := range cases {
		price, ok := tc.kind.Price()
		assert.Assert(t, ok)
		assert.Equal(t, tc.price, price)
	}

	_, ok := GiftKind("diamond").Price()
	assert.Assert(t, !ok)
}

func TestMatchPairHelpers(t *testing.T) {
	match := Match{UserAID: 1, UserBID: 2}

	assert.Assert(t, match.HasUser(1))
	assert.Assert(t, match.HasUser(2))
	assert.Assert(t, !match.HasUser(3))

	other, ok := match.OtherUserID(1)
	assert.Assert(t, ok)
	assert.Equal(t, uint(2), other)

	other, ok = match.OtherUserID(2)
	assert.Assert(t, ok)
	assert.Equal(t, uint(1), other)

	_, ok = match.OtherUserID(3)
	assert.Assert(t, !ok)
}

// The string forms go over the wire: decisions arrive in swipe requests,
// outcomes leave in swipe responses. Clients match on these exact values.
func TestDecisionWireStrings(t *testing.T) {
	assert.Equal(t, "like", DecisionLike.String())
	assert.Equal(t, "pass", DecisionPass.String())
	assert.Equal(t, "unknown", Decision(0).String())
}

func TestOutcomeWireStrings(t *testing.T) {
	assert.Equal(t, "match", OutcomeMatch.String())
	assert.Equal(t, "liked", OutcomeLiked.String())
	assert.Equal(t, "passed", OutcomePassed.String())
	assert.Equal(t, "unknown", Outcome(0).String())
}
