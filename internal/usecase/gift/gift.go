package giftUseCase

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/pawpawapp/pawpaw-backend/internal/entity"
	"github.com/pawpawapp/pawpaw-backend/internal/realtime"
	giftRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/gift"
	profileRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/profile"
	streamRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/stream"
	walletRepo "github.com/pawpawapp/pawpaw-backend/internal/repository/wallet"
)

type IGiftUseCase interface {
	// SendGift gifts the pet with the given profile id; the coins go to the
	// pet's owning user.
	SendGift(ctx context.Context, senderID, petID uint, kind entity.GiftKind) (newBalance int64, err error)

	// SendStreamGift gifts a live stream; the coins go to the host.
	SendStreamGift(ctx context.Context, senderID, streamID uint, kind entity.GiftKind) (newBalance int64, err error)

	GetWallet(ctx context.Context, userID uint) (*entity.Wallet, error)
	ListReceivedGifts(ctx context.Context, userID uint) ([]entity.Gift, error)
}

// txRunner is satisfied by *gorm.DB; tests swap in a fake.
type txRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

type giftUseCase struct {
	db          txRunner
	walletRepo  walletRepo.IWalletRepo
	giftRepo    giftRepo.IGiftRepo
	profileRepo profileRepo.IProfileRepo
	streamRepo  streamRepo.IStreamRepo
	registry    realtime.IRegistry
}

func New(
	db txRunner,
	walletRepo walletRepo.IWalletRepo,
	giftRepo giftRepo.IGiftRepo,
	profileRepo profileRepo.IProfileRepo,
	streamRepo streamRepo.IStreamRepo,
	registry realtime.IRegistry,
) IGiftUseCase {
	return &giftUseCase{
		db:          db,
		walletRepo:  walletRepo,
		giftRepo:    giftRepo,
		profileRepo: profileRepo,
		streamRepo:  streamRepo,
		registry:    registry,
	}
}

func (u *giftUseCase) SendGift(ctx context.Context, senderID, petID uint, kind entity.GiftKind) (int64, error) {
	price, ok := kind.Price()
	if !ok {
		return 0, entity.ErrInvalidArgument
	}

	profile, err := u.profileRepo.GetProfileByID(ctx, petID)
	if err != nil {
		return 0, err
	}

	return u.transfer(ctx, senderID, profile.OwnerID, kind, price)
}

func (u *giftUseCase) SendStreamGift(ctx context.Context, senderID, streamID uint, kind entity.GiftKind) (int64, error) {
	price, ok := kind.Price()
	if !ok {
		return 0, entity.ErrInvalidArgument
	}

	stream, err := u.streamRepo.GetStreamByID(ctx, streamID)
	if err != nil {
		return 0, err
	}

	if !stream.IsLive {
		return 0, entity.ErrInvalidOperation
	}

	return u.transfer(ctx, senderID, stream.HostID, kind, price)
}

// transfer is the gift state machine: check balance, debit sender, credit
// receiver's lifetime-earned, record the gift row. It runs as one DB
// transaction so a failure at any step leaves all three untouched; the
// conditional debit keeps concurrent sends from the same sender from
// overdrawing a stale balance.
func (u *giftUseCase) transfer(ctx context.Context, senderID, receiverID uint, kind entity.GiftKind, price int64) (int64, error) {
	if receiverID == senderID {
		return 0, entity.ErrInvalidOperation
	}

	var newBalance int64

	err := u.db.Transaction(func(tx *gorm.DB) error {
		if err := u.walletRepo.EnsureWallet(ctx, tx, senderID); err != nil {
			return err
		}
		if err := u.walletRepo.EnsureWallet(ctx, tx, receiverID); err != nil {
			return err
		}

		debited, err := u.walletRepo.DebitIfSufficient(ctx, tx, senderID, price)
		if err != nil {
			return err
		}
		if !debited {
			return entity.ErrInsufficientFunds
		}

		if err := u.walletRepo.CreditEarned(ctx, tx, receiverID, price); err != nil {
			return err
		}

		if err := u.giftRepo.CreateGift(ctx, tx, &entity.Gift{
			SenderID:   senderID,
			ReceiverID: receiverID,
			Kind:       kind,
			CoinValue:  price,
			CreatedAt:  time.Now(),
		}); err != nil {
			return err
		}

		newBalance, err = u.walletRepo.GetBalance(ctx, tx, senderID)
		return err
	})

	if err != nil {
		return 0, err
	}

	u.registry.SendToUser(receiverID, entity.GiftEvent{
		Type:      "gift",
		Kind:      kind,
		CoinValue: price,
		SenderID:  senderID,
	})

	return newBalance, nil
}

func (u *giftUseCase) GetWallet(ctx context.Context, userID uint) (*entity.Wallet, error) {
	return u.walletRepo.GetWallet(ctx, userID)
}

func (u *giftUseCase) ListReceivedGifts(ctx context.Context, userID uint) ([]entity.Gift, error) {
	return u.giftRepo.ListReceivedGifts(ctx, userID)
}
